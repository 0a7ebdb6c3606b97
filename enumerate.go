// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerate

import "iter"

// A Sequence is an ordered collection that can be walked from front to
// back by a cursor of type C. Cursors are opaque to this package; they
// are compared with == and are otherwise only passed back into the
// Sequence that produced them.
//
// A ready-made implementation for slices is provided by [Slice].
// Custom implementations need only the five methods below; see the
// package documentation for a worked example.
type Sequence[C comparable, V any] interface {
	// First returns a cursor addressing the first element. When the
	// sequence is empty, First returns the same cursor as End.
	First() C
	// End returns the terminal cursor, addressing the position just
	// past the last element. The terminal cursor must not be
	// dereferenced.
	End() C
	// Next returns the cursor following c. Passing the terminal
	// cursor is a contract violation; implementations in this
	// package panic with [ErrPastEnd].
	Next(c C) C
	// At returns the element addressed by c.
	At(c C) V
	// Len returns the number of elements in the sequence.
	Len() int
}

// A MutableSequence is a [Sequence] whose elements can be updated in
// place through pointers.
type MutableSequence[C comparable, V any] interface {
	Sequence[C, V]
	// RefAt returns a pointer to the element addressed by c. Writes
	// through the pointer must be visible to subsequent calls to At
	// and RefAt.
	RefAt(c C) *V
}

// An Enumerator presents the elements of a [Sequence] as (index,
// element) pairs. It holds no traversal state of its own; state lives
// in the [Cursor] values it mints, so a single Enumerator may be
// walked any number of times.
//
// The access type A is fixed when the Enumerator is constructed: V
// for [Readonly], *V for [Mutable]. Instances are cheap to create and
// need not be retained.
type Enumerator[C comparable, V, A any] struct {
	seq   Sequence[C, V]
	deref func(C) A
}

// Readonly returns an [Enumerator] that presents copies of the
// elements of s. The elements of s cannot be modified through the
// returned Enumerator.
//
// Type inference cannot see through the interface, so enumerating a
// custom [Sequence] type requires explicit instantiation:
//
//	e := enumerate.Readonly[*node, string](list)
//
// For slices, prefer [Values], which infers everything.
func Readonly[C comparable, V any](s Sequence[C, V]) *Enumerator[C, V, V] {
	return &Enumerator[C, V, V]{seq: s, deref: s.At}
}

// Mutable returns an [Enumerator] that presents pointers to the
// elements of s, allowing callers to update the sequence in place
// while traversing it.
//
// For slices, prefer [Refs], which infers everything.
func Mutable[C comparable, V any](s MutableSequence[C, V]) *Enumerator[C, V, *V] {
	return &Enumerator[C, V, *V]{seq: s, deref: s.RefAt}
}

// Begin returns a new [Cursor] addressing the enumerator's first
// pair. When the underlying sequence is empty, the returned cursor is
// already terminal and equals [Enumerator.End].
func (e *Enumerator[C, V, A]) Begin() *Cursor[C, V, A] {
	c := &Cursor[C, V, A]{e: e, pos: e.seq.First()}
	c.refresh()
	return c
}

// End returns a terminal [Cursor], addressing the position just past
// the enumerator's last pair. The returned cursor must not be
// advanced or dereferenced; its only use is as the limit in a
// [Cursor.Equal] comparison.
func (e *Enumerator[C, V, A]) End() *Cursor[C, V, A] {
	return &Cursor[C, V, A]{
		e:    e,
		pos:  e.seq.End(),
		pair: Pair[A]{idx: uint(e.seq.Len())},
	}
}

// Len returns the number of pairs a complete traversal will produce.
func (e *Enumerator[C, V, A]) Len() int {
	return e.seq.Len()
}

// All returns an iterator over the enumerator's pairs, for use with a
// range statement:
//
//	for idx, elt := range e.All() {
//		// ...
//	}
//
// The iterator is built on the same [Cursor] protocol exposed by
// [Enumerator.Begin]; breaking out of the range abandons the cursor
// with no cleanup required.
func (e *Enumerator[C, V, A]) All() iter.Seq2[uint, A] {
	return func(yield func(uint, A) bool) {
		for it, end := e.Begin(), e.End(); !it.Equal(end); it.Next() {
			if !yield(it.Pair().Unpack()) {
				return
			}
		}
	}
}
