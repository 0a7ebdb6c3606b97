// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package pace throttles the delivery of sequence elements.
//
// The functions in this package wrap iterators so that values are
// released no faster than a configured rate. They compose with
// [vawter.tech/enumerate.Enumerator.All] when a traversal drives
// rate-sensitive work.
package pace

import (
	"context"
	"errors"
	"iter"
	"runtime/trace"

	"golang.org/x/time/rate"
)

// Limit delivers the values of items no faster than r per second,
// with bursts of at most b. If ctx is canceled while waiting for
// capacity, delivery simply ends; callers that need to distinguish
// cancellation from exhaustion can check ctx.Err afterward.
func Limit[V any](ctx context.Context, items iter.Seq[V], r float64, b int) iter.Seq[V] {
	l := newLimiter(r, b)
	return func(yield func(V) bool) {
		for v := range items {
			if !wait(ctx, l) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Limit2 is the pairwise analogue of [Limit].
func Limit2[K, V any](ctx context.Context, items iter.Seq2[K, V], r float64, b int) iter.Seq2[K, V] {
	l := newLimiter(r, b)
	return func(yield func(K, V) bool) {
		for k, v := range items {
			if !wait(ctx, l) {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

func newLimiter(r float64, b int) *rate.Limiter {
	if r <= 0 {
		panic(errors.New("rate must be greater than zero"))
	}
	if b <= 0 {
		panic(errors.New("burst must be greater than zero"))
	}
	return rate.NewLimiter(rate.Limit(r), b)
}

// wait blocks until the limiter releases a token or the context is
// canceled. It reports whether a token was acquired.
func wait(ctx context.Context, l *rate.Limiter) bool {
	// Fast-path: there's capacity.
	if l.Allow() {
		return true
	}

	defer trace.StartRegion(ctx, "pace wait").End()
	return l.Wait(ctx) == nil
}
