// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq_test

import (
	"fmt"
	"slices"

	"vawter.tech/enumerate/seq"
)

func ExampleEnumerate() {
	words := slices.Values([]string{"ant", "bee", "cat"})
	for idx, word := range seq.Enumerate(words) {
		fmt.Println(idx, word)
	}
	// Output:
	// 0 ant
	// 1 bee
	// 2 cat
}

// Streams adapt sources that cannot be replayed, such as generators.
func ExampleNewStream() {
	squares := func(yield func(int) bool) {
		for n := 1; ; n++ {
			if !yield(n * n) {
				return
			}
		}
	}
	s := seq.NewStream(squares, 3)
	defer s.Stop()

	for idx, v := range s.Enumerate().All() {
		fmt.Println(idx, v)
	}
	// Output:
	// 0 1
	// 1 4
	// 2 9
}
