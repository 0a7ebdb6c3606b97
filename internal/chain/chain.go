// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package chain provides a minimal singly-linked list. It exists to
// exercise enumeration over sequences whose cursors are not integer
// offsets.
package chain

import "vawter.tech/enumerate"

// A Node is one element of a [List]. Node pointers act as the list's
// cursors, with nil as the terminal cursor.
type Node[V any] struct {
	val  V
	next *Node[V]
}

// A List is a singly-linked sequence of values. The zero value is an
// empty list, ready for use.
type List[V any] struct {
	head *Node[V]
	tail *Node[V]
	size int
}

var _ enumerate.MutableSequence[*Node[int], int] = (*List[int])(nil)

// Of returns a [List] holding the given values in order.
func Of[V any](vals ...V) *List[V] {
	l := &List[V]{}
	for _, v := range vals {
		l.Push(v)
	}
	return l
}

// Push appends v to the end of the list.
func (l *List[V]) Push(v V) {
	n := &Node[V]{val: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Items returns the values in order, as a freshly-allocated slice.
func (l *List[V]) Items() []V {
	out := make([]V, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// The methods below implement [enumerate.MutableSequence].

func (l *List[V]) First() *Node[V] { return l.head }

func (l *List[V]) End() *Node[V] { return nil }

func (l *List[V]) Next(c *Node[V]) *Node[V] {
	if c == nil {
		panic(enumerate.ErrPastEnd)
	}
	return c.next
}

func (l *List[V]) At(c *Node[V]) V { return c.val }

func (l *List[V]) RefAt(c *Node[V]) *V { return &c.val }

func (l *List[V]) Len() int { return l.size }
