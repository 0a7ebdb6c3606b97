// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerate

import "fmt"

// A Pair is one (index, element) result of an enumeration. The type
// parameter A is the element access: the element type itself for
// read-only traversals, or a pointer to the element for mutable ones.
//
// Pairs returned by [Cursor.Pair] are owned by their cursor and are
// rewritten in place as the cursor advances.
type Pair[A any] struct {
	idx  uint
	elem A
}

// Index returns the zero-based position of the element within its
// sequence.
func (p *Pair[A]) Index() uint { return p.idx }

// Value returns the element access.
func (p *Pair[A]) Value() A { return p.elem }

// Unpack returns the index and the element access, for assignment to
// a pair of variables.
func (p *Pair[A]) Unpack() (uint, A) { return p.idx, p.elem }

// String is for debugging use only.
func (p *Pair[A]) String() string {
	return fmt.Sprintf("%d: %v", p.idx, p.elem)
}
