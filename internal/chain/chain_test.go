// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/enumerate"
)

func TestZeroList(t *testing.T) {
	r := require.New(t)

	var l List[string]
	r.Zero(l.Len())
	r.Nil(l.First())
	r.Nil(l.End())
	r.Empty(l.Items())
}

func TestOfAndPush(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2, 3)
	r.Equal(3, l.Len())
	r.Equal([]int{1, 2, 3}, l.Items())

	l.Push(4)
	r.Equal(4, l.Len())
	r.Equal([]int{1, 2, 3, 4}, l.Items())
}

func TestWalk(t *testing.T) {
	r := require.New(t)

	l := Of("a", "b", "c")
	n := l.First()
	r.Equal("a", l.At(n))

	n = l.Next(n)
	r.Equal("b", l.At(n))
	*l.RefAt(n) = "B"
	r.Equal("B", l.At(n))

	n = l.Next(n)
	n = l.Next(n)
	r.Equal(l.End(), n)
	r.PanicsWithValue(enumerate.ErrPastEnd, func() {
		l.Next(n)
	})
}
