// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package enumerate produces lazy (index, element) pairs over arbitrary
// ordered sequences.
//
// An [Enumerator] is a non-owning view: it wraps a [Sequence] and walks
// it in traversal order, pairing each element with a zero-based index.
// The underlying sequence is never copied or materialized, and writes
// made through a mutable enumeration land directly in the caller's
// storage.
//
// # Enumerating a slice
//
// The [Values] and [Refs] helpers adapt a Go slice. Values yields the
// elements themselves; Refs yields pointers so that elements can be
// updated in place:
//
//	words := []string{"alpha", "bravo", "charlie"}
//	for i, w := range enumerate.Values(words).All() {
//	    fmt.Println(i, w)
//	}
//	for i, w := range enumerate.Refs(words).All() {
//	    *w = fmt.Sprintf("%d:%s", i, *w)
//	}
//
// # Read-only versus mutable
//
// The two entry points, [Readonly] and [Mutable], fix the element
// access mode when the enumerator is constructed. A read-only
// enumerator's pairs carry elements by value, so no code path exists
// that could write back to the sequence; a mutable enumerator's pairs
// carry pointers. There is no runtime mutability flag and traversal
// never branches on the access mode.
//
// # Custom sequences
//
// Any type satisfying [Sequence] can be enumerated: it must expose a
// cursor for its first element, a terminal past-the-last cursor,
// advance, dereference, and an element count. Cursors are compared
// with ==, which is why the cursor type parameter is constrained to
// comparable. The cursor type needs no positional arithmetic, because
// the enumerator maintains the index as its own counter, advanced in
// lock-step; linked structures and pure forward streams qualify.
// [MutableSequence] additionally provides pointer access to elements
// and unlocks [Mutable].
//
// Because Go does not infer type parameters through interface
// satisfaction, custom sequence types are instantiated explicitly:
//
//	e := enumerate.Readonly[*myCursor, myElem](seq)
//
// Bundled sequence types ship typed constructors ([Values], [Refs],
// seq.Stream's Enumerate method) so that slice and stream callers
// never spell out type arguments.
//
// # Cursor protocol
//
// [Enumerator.All] is the usual way to consume an enumeration. The
// underlying protocol is also exported for callers that need explicit
// control: [Enumerator.Begin] and [Enumerator.End] produce a [Cursor]
// pair, [Cursor.Next] advances, [Cursor.Pair] dereferences, and
// [Cursor.Equal] detects termination:
//
//	for it, end := e.Begin(), e.End(); !it.Equal(end); it.Next() {
//	    i, v := it.Pair().Unpack()
//	    fmt.Println(i, v)
//	}
//
// A [Pair] returned by [Cursor.Pair] points into the cursor's own
// storage and is refreshed in place by the next advance; it must not
// be retained across advances.
//
// # Contract violations
//
// Misuse is a programming error and panics immediately: dereferencing
// a terminal cursor panics with [ErrTerminal], and advancing past the
// terminal position panics with [ErrPastEnd]. No failure is ever
// deferred or swallowed.
//
// # Concurrency
//
// Enumerators and cursors are plain single-threaded values with no
// hidden blocking or background work. Sharing a sequence, enumerator,
// or cursor across goroutines requires external synchronization;
// abandoning a traversal early is always safe.
//
// # Subpackages
//
// The seq sub-package bridges to the standard iter package:
// seq.Enumerate adds indexes to any [iter.Seq], and seq.Stream adapts
// a single-pass iter.Seq of known length to the [Sequence] contract.
// The pace sub-package rate-limits sequence consumption with
// golang.org/x/time/rate.
package enumerate
