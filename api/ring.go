// Package api
// Author: xitren
// License: Apache-2.0
//
// Fixed-capacity ring buffer contract.

package api

// Ring is the contract of a fixed-capacity circular container.
//
// Push never fails: a full ring overwrites its oldest element. Pop on an
// empty ring is a no-op. The contract carries no synchronization; a
// producer/consumer pair must coordinate externally (see Handoff).
type Ring[T any] interface {
	// Cap returns the fixed capacity.
	Cap() int
	// Len returns the number of currently valid elements.
	Len() int
	// Empty reports Len() == 0.
	Empty() bool
	// Full reports Len() >= Cap().
	Full() bool
	// Clear resets occupancy to zero without touching storage.
	Clear()
	// Push inserts at the logical tail, discarding the oldest element
	// when the ring is already full.
	Push(v T)
	// Pop removes the logical head; no-op when empty.
	Pop()
}

// DMA is the hardware-facing side of a ring whose backing memory may be
// written by an external engine, bypassing Push.
type DMA interface {
	// StorageSizeInBytes returns the total extent of the backing storage.
	StorageSizeInBytes() int
	// UpdateHead reconciles bookkeeping after an external writer advanced
	// the physical write cursor to pos (taken modulo capacity).
	UpdateHead(pos int)
}
