// Package api
// Author: xitren
// License: Apache-2.0
//
// Bounded handoff contract for cross-goroutine producer/consumer pairs.

package api

// Handoff is a bounded FIFO for passing items between exactly one producer
// and one consumer goroutine. Unlike Ring, a full handoff rejects instead
// of overwriting.
type Handoff[T any] interface {
	// TryPush adds an item, returns false if full.
	TryPush(item T) bool
	// TryPop removes the oldest item, returns false if empty.
	TryPop() (T, bool)
	// Len returns the current number of items.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
}
