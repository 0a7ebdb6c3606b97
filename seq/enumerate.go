// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import "iter"

// Enumerate numbers the values of a sequence, yielding (index, value)
// pairs. It is the iterator-to-iterator analogue of
// [vawter.tech/enumerate.Values] for sources that exist only as an
// [iter.Seq].
func Enumerate[V any](items iter.Seq[V]) iter.Seq2[uint, V] {
	return func(yield func(uint, V) bool) {
		var idx uint
		for v := range items {
			if !yield(idx, v) {
				return
			}
			idx++
		}
	}
}
