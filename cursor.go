// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerate

import "errors"

// ErrTerminal is the value panicked when a terminal cursor is
// dereferenced.
var ErrTerminal = errors.New("enumerate: terminal cursor dereferenced")

// ErrPastEnd is the value panicked when a cursor is advanced beyond
// the terminal position.
var ErrPastEnd = errors.New("enumerate: cursor advanced past end")

// A Cursor addresses one pair within an [Enumerator]'s traversal. It
// caches the [Pair] for its current position and rewrites that cache
// in place as it advances, so stepping performs no allocation.
//
// Cursors are created by [Enumerator.Begin] and [Enumerator.End].
// They are not safe for concurrent use, and the zero Cursor is not
// usable.
type Cursor[C comparable, V, A any] struct {
	e    *Enumerator[C, V, A]
	pos  C       // Position within the underlying sequence.
	pair Pair[A] // Cache, rewritten by Next.
	live bool    // False once pos reaches the terminal position.
}

// Next advances the cursor to the next pair, refreshing the cached
// [Pair] in place. Advancing a terminal cursor panics with
// [ErrPastEnd].
func (c *Cursor[C, V, A]) Next() {
	if !c.live {
		panic(ErrPastEnd)
	}
	c.pos = c.e.seq.Next(c.pos)
	c.pair.idx++
	c.refresh()
}

// Pair returns the cursor's current pair. The returned pointer is
// stable for the life of the cursor, and its contents are overwritten
// by each call to [Cursor.Next]; copy the values out to retain them
// across steps. Dereferencing a terminal cursor panics with
// [ErrTerminal].
func (c *Cursor[C, V, A]) Pair() *Pair[A] {
	if !c.live {
		panic(ErrTerminal)
	}
	return &c.pair
}

// Equal reports whether the two cursors address the same position in
// the underlying sequence. The cached pairs do not participate in the
// comparison.
func (c *Cursor[C, V, A]) Equal(other *Cursor[C, V, A]) bool {
	return c.pos == other.pos
}

// refresh rewrites the cached pair for the current position.
func (c *Cursor[C, V, A]) refresh() {
	if c.pos == c.e.seq.End() {
		var zero A
		c.pair.elem = zero
		c.live = false
		return
	}
	c.pair.elem = c.e.deref(c.pos)
	c.live = true
}
