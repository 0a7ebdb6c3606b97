// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"errors"
	"iter"

	"vawter.tech/enumerate"
)

// ErrSinglePass is the value panicked when a [Stream] is read out of
// order, such as through a rewound or stale cursor.
var ErrSinglePass = errors.New("seq: stream elements can be read only once, in order")

// ErrTruncated is the value panicked when a [Stream]'s underlying
// iterator ends before the declared length.
var ErrTruncated = errors.New("seq: stream ended before its declared length")

// A Stream presents a single-pass iterator as an [enumerate.Sequence]
// with a declared length, using uint ordinals as cursors.
//
// Elements are pulled from the iterator one at a time as the
// traversal advances. The current element is buffered and may be read
// again, but the stream cannot be rewound: reading any position other
// than the buffered one or its successor panics with [ErrSinglePass].
// If the iterator runs out before the declared length is reached,
// reading the next position panics with [ErrTruncated].
//
// A Stream is not safe for concurrent use.
type Stream[V any] struct {
	next   func() (V, bool)
	stop   func()
	size   int
	pulled uint // Count of elements taken from next.
	cur    V    // The element at ordinal pulled-1.
	have   bool // Whether cur is valid.
}

var _ enumerate.Sequence[uint, int] = (*Stream[int])(nil)

// NewStream declares that items will yield at least length values and
// returns a [Stream] over the first length of them. Excess values in
// the underlying iterator are never pulled; a shortfall panics with
// [ErrTruncated] during traversal.
//
// Callers should arrange for [Stream.Stop] to run once the stream is
// no longer needed so that the underlying iterator is released.
func NewStream[V any](items iter.Seq[V], length int) *Stream[V] {
	if length < 0 {
		panic(errors.New("length must not be negative"))
	}
	next, stop := iter.Pull(items)
	return &Stream[V]{next: next, stop: stop, size: length}
}

// Enumerate returns a read-only enumerator over the stream. It is
// shorthand for explicitly instantiating [enumerate.Readonly].
func (s *Stream[V]) Enumerate() *enumerate.Enumerator[uint, V, V] {
	return enumerate.Readonly[uint, V](s)
}

// Stop releases the underlying iterator. It is safe to call more
// than once. The stream must not be traversed after Stop.
func (s *Stream[V]) Stop() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

// The methods below implement [enumerate.Sequence] with uint ordinal
// cursors.

func (s *Stream[V]) First() uint { return 0 }

func (s *Stream[V]) End() uint { return uint(s.size) }

func (s *Stream[V]) Next(c uint) uint {
	if c >= uint(s.size) {
		panic(enumerate.ErrPastEnd)
	}
	return c + 1
}

func (s *Stream[V]) At(c uint) V {
	switch {
	case s.have && c == s.pulled-1:
		// Re-reading the current element is allowed.
		return s.cur
	case c == s.pulled:
		v, ok := s.next()
		if !ok {
			panic(ErrTruncated)
		}
		s.cur = v
		s.have = true
		s.pulled++
		return v
	default:
		panic(ErrSinglePass)
	}
}

func (s *Stream[V]) Len() int { return s.size }
