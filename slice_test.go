// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceSequence(t *testing.T) {
	r := require.New(t)

	s := Slice([]int{5, 6})
	r.Equal(0, s.First())
	r.Equal(2, s.End())
	r.Equal(2, s.Len())
	r.Equal(1, s.Next(0))
	r.Equal(2, s.Next(1))
	r.Equal(6, s.At(1))

	*s.RefAt(0) = 50
	r.Equal(50, s.At(0))

	r.PanicsWithValue(ErrPastEnd, func() { s.Next(2) })
}

func TestSliceSharesBacking(t *testing.T) {
	r := require.New(t)

	orig := []string{"a", "b"}
	s := Slice(orig)
	*s.RefAt(1) = "B"
	r.Equal([]string{"a", "B"}, orig)
}

func TestEmptySliceSequence(t *testing.T) {
	r := require.New(t)

	s := Slice([]int{})
	r.Equal(s.End(), s.First())
	r.Zero(s.Len())
	r.PanicsWithValue(ErrPastEnd, func() { s.Next(0) })
}
