// File: ring/ring.go
// Package ring
// Author: xitren
// License: Apache-2.0
//
// Core circular buffer: cursor bookkeeping, push/pop, unchecked access.

package ring

import (
	"github.com/xitren/dmaring/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[byte] = (*Buffer[byte])(nil)
	_ api.DMA        = (*Buffer[byte])(nil)
)

// Buffer is a fixed-capacity circular buffer.
//
// tail is a monotonically increasing logical write cursor; it is never
// reduced modulo capacity, only mapped to a physical slot on access.
// size is clamped to capacity, so head = tail-size always names the
// oldest valid element. Unsigned wraparound of tail itself is accepted,
// not guarded against.
type Buffer[T any] struct {
	data []T
	tail uint64
	size int
}

// New returns an empty buffer with the given fixed capacity.
// Capacity is fixed for the buffer's lifetime; New panics when it is
// not positive.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic("dmaring: capacity must be positive")
	}
	return &Buffer[T]{data: make([]T, capacity)}
}

// at maps a logical index to the element in its physical slot.
func (b *Buffer[T]) at(idx uint64) *T {
	return &b.data[idx%uint64(len(b.data))]
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Len returns the number of currently valid elements.
func (b *Buffer[T]) Len() int { return b.size }

// Empty reports whether the buffer holds no valid elements.
func (b *Buffer[T]) Empty() bool { return b.size == 0 }

// Full reports whether occupancy reached capacity.
func (b *Buffer[T]) Full() bool { return b.size >= len(b.data) }

// Tail returns the monotonic logical write cursor.
func (b *Buffer[T]) Tail() uint64 { return b.tail }

// Head returns the logical read cursor, tail minus size.
func (b *Buffer[T]) Head() uint64 { return b.tail - uint64(b.size) }

// Clear resets occupancy to empty. Storage content is left untouched;
// stale bytes stay in their slots until overwritten.
func (b *Buffer[T]) Clear() {
	b.tail = 0
	b.size = 0
}

// Push writes v into the slot at the logical tail and advances it.
// When the buffer is already full the oldest element is silently
// discarded: size stays clamped at capacity while tail keeps moving,
// which advances the derived head past the overwritten slot.
func (b *Buffer[T]) Push(v T) {
	*b.at(b.tail) = v
	b.tail++
	b.size++
	if b.size > len(b.data) {
		b.size = len(b.data)
	}
}

// Pop removes the logically oldest element. Popping an empty buffer is
// a no-op; size never goes negative. The popped slot is not cleared.
func (b *Buffer[T]) Pop() {
	if b.size > 0 {
		b.size--
	}
}

// Front returns the element at the logical head.
// Precondition: !Empty(). Not checked.
func (b *Buffer[T]) Front() T { return *b.at(b.Head()) }

// Back returns the element at the logical tail minus one.
// Precondition: !Empty(). Not checked.
func (b *Buffer[T]) Back() T { return *b.at(b.tail - 1) }

// At returns the element at logical offset i from the head, unchecked
// against Len.
func (b *Buffer[T]) At(i int) T { return *b.at(b.Head() + uint64(i)) }

// FrontPtr returns a pointer to the element at the logical head for
// in-place mutation. Same precondition as Front.
func (b *Buffer[T]) FrontPtr() *T { return b.at(b.Head()) }

// BackPtr returns a pointer to the newest element. Same precondition
// as Back.
func (b *Buffer[T]) BackPtr() *T { return b.at(b.tail - 1) }

// AtPtr returns a pointer to the element at logical offset i from the
// head, unchecked against Len.
func (b *Buffer[T]) AtPtr(i int) *T { return b.at(b.Head() + uint64(i)) }
