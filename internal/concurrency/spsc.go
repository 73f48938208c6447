// File: internal/concurrency/spsc.go
// Package concurrency implements lock-free handoff rings.
// Author: xitren
// License: Apache-2.0
//
// Single-producer/single-consumer bounded ring with minimal atomics.
// The producer owns the tail cursor, the consumer owns the head cursor;
// each publishes its cursor with a plain atomic store, so no CAS loops
// are needed. Cursors sit on separate cache lines to avoid false
// sharing between the two goroutines.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// SPSC is a bounded FIFO for exactly one producer and one consumer
// goroutine. Capacity is rounded up to a power of two for mask-based
// slot addressing.
type SPSC[T any] struct {
	head  atomic.Uint64
	_     cpu.CacheLinePad
	tail  atomic.Uint64
	_     cpu.CacheLinePad
	mask  uint64
	cells []T
}

// NewSPSC creates a ring with capacity rounded up to a power of two,
// at least 2.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &SPSC[T]{
		mask:  uint64(size - 1),
		cells: make([]T, size),
	}
}

// TryPush adds item; returns false if full. Producer side only.
func (r *SPSC[T]) TryPush(item T) bool {
	tail := r.tail.Load()
	if tail-r.head.Load() == uint64(len(r.cells)) {
		return false
	}
	r.cells[tail&r.mask] = item
	r.tail.Store(tail + 1) // publish after the slot write
	return true
}

// TryPop removes and returns the oldest item; ok is false if empty.
// Consumer side only.
func (r *SPSC[T]) TryPop() (item T, ok bool) {
	head := r.head.Load()
	if head == r.tail.Load() {
		var zero T
		return zero, false
	}
	item = r.cells[head&r.mask]
	r.head.Store(head + 1) // publish after the slot read
	return item, true
}

// Len returns the number of items currently held. Under concurrent
// mutation the count is approximate; head is loaded before tail so a
// consumer advancing between the loads can only inflate the result,
// never drive it negative.
func (r *SPSC[T]) Len() int {
	head := r.head.Load()
	return int(r.tail.Load() - head)
}

// Cap returns the fixed (rounded) capacity.
func (r *SPSC[T]) Cap() int {
	return len(r.cells)
}
