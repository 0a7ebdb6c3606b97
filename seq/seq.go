// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package seq bridges the standard [iter] protocol and enumeration.
//
// [Enumerate] numbers the values of any [iter.Seq]. [Stream] adapts a
// single-pass iterator into a [vawter.tech/enumerate.Sequence] so the
// cursor protocol can walk sources that cannot be revisited.
package seq
