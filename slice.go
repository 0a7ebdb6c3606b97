// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerate

// A SliceSequence adapts a slice to the [MutableSequence] contract.
// Its cursor is the int index of an element, with the slice length
// acting as the terminal cursor.
type SliceSequence[V any] []V

var _ MutableSequence[int, int] = SliceSequence[int](nil)

// Slice adapts s to the [MutableSequence] contract. The returned
// value shares s's backing array.
func Slice[V any](s []V) SliceSequence[V] {
	return SliceSequence[V](s)
}

// Values returns a read-only [Enumerator] over the elements of s.
func Values[V any](s []V) *Enumerator[int, V, V] {
	return Readonly[int, V](Slice(s))
}

// Refs returns a mutable [Enumerator] over the elements of s. The
// pointers it presents address the slice's backing array, so updates
// through them are visible to all holders of s.
func Refs[V any](s []V) *Enumerator[int, V, *V] {
	return Mutable[int, V](Slice(s))
}

// The methods below implement [MutableSequence], interpreting the
// cursor as a slice index.

func (s SliceSequence[V]) First() int { return 0 }

func (s SliceSequence[V]) End() int { return len(s) }

func (s SliceSequence[V]) Next(c int) int {
	if c >= len(s) {
		panic(ErrPastEnd)
	}
	return c + 1
}

func (s SliceSequence[V]) At(c int) V { return s[c] }

func (s SliceSequence[V]) RefAt(c int) *V { return &s[c] }

func (s SliceSequence[V]) Len() int { return len(s) }
