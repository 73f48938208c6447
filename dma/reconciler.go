// File: dma/reconciler.go
// Package dma
// Author: xitren
// License: Apache-2.0
//
// Transfer reservation and completion around ring.Buffer.UpdateHead.

package dma

import (
	"github.com/eapache/queue"

	"github.com/xitren/dmaring/api"
	"github.com/xitren/dmaring/ring"
)

// transfer is one in-flight reservation: n slots ending at physical
// position end once the engine finishes writing them.
type transfer struct {
	end int
	n   int
}

// Reconciler tracks in-flight DMA transfers against a ring buffer.
//
// Prepare reserves free storage ahead of the buffer's physical tail and
// returns the wrap-split regions to program into the engine; Complete
// retires the oldest reservation and advances the buffer via UpdateHead.
// Reservations complete in FIFO order, mirroring how a descriptor chain
// is consumed by hardware.
//
// Like the buffer itself, a Reconciler is not synchronized; drive it
// from the goroutine that owns the buffer.
type Reconciler[T any] struct {
	buf      *ring.Buffer[T]
	pending  *queue.Queue
	reserved int
}

// NewReconciler wraps buf. The buffer must not be mutated behind the
// reconciler's back while reservations are outstanding.
func NewReconciler[T any](buf *ring.Buffer[T]) *Reconciler[T] {
	return &Reconciler[T]{buf: buf, pending: queue.New()}
}

// Buffer returns the wrapped ring buffer.
func (r *Reconciler[T]) Buffer() *ring.Buffer[T] { return r.buf }

// Pending returns the number of in-flight reservations.
func (r *Reconciler[T]) Pending() int { return r.pending.Length() }

// Reserved returns the number of slots currently reserved.
func (r *Reconciler[T]) Reserved() int { return r.reserved }

// writePos returns the physical slot the next reservation starts at:
// the buffer's physical tail advanced past outstanding reservations.
func (r *Reconciler[T]) writePos() int {
	c := r.buf.Cap()
	return (int(r.buf.Tail()%uint64(c)) + r.reserved) % c
}

// FreeRegions returns the writable spans of backing storage, split at
// the physical wrap: at most two regions covering every slot that is
// neither logically valid nor reserved by an in-flight transfer.
func (r *Reconciler[T]) FreeRegions() []Region {
	free := r.buf.Cap() - r.buf.Len() - r.reserved
	return split(r.writePos(), free, r.buf.Cap())
}

// ReadRegions returns the readable spans holding the buffer's current
// logical content, oldest first, split at the physical wrap. The first
// region's length equals the buffer's ContiguousLen.
func (r *Reconciler[T]) ReadRegions() []Region {
	c := r.buf.Cap()
	head := int(r.buf.Head() % uint64(c))
	return split(head, r.buf.Len(), c)
}

// Prepare reserves n slots for a transfer and returns the regions to
// hand to the engine, in write order. Fails with ErrInvalidArgument for
// a non-positive n and with ErrResourceExhausted when fewer than n
// unreserved free slots remain; reserving over live content would let
// the engine race the consumer, so that is refused rather than applying
// the overwrite policy.
func (r *Reconciler[T]) Prepare(n int) ([]Region, error) {
	if n <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "transfer length must be positive").
			WithContext("length", n)
	}
	free := r.buf.Cap() - r.buf.Len() - r.reserved
	if n > free {
		return nil, api.NewError(api.ErrCodeResourceExhausted, "not enough free slots").
			WithContext("requested", n).
			WithContext("free", free)
	}
	start := r.writePos()
	regs := split(start, n, r.buf.Cap())
	r.pending.Add(transfer{end: (start + n) % r.buf.Cap(), n: n})
	r.reserved += n
	return regs, nil
}

// Complete retires the oldest in-flight reservation: the engine is done
// writing it, so the buffer's bookkeeping is advanced to the
// reservation's end position. Returns the slots made valid. A
// full-capacity reservation is realized in two UpdateHead steps; the
// state between them is internal and never observable to a
// single-threaded caller.
func (r *Reconciler[T]) Complete() (int, error) {
	if r.pending.Length() == 0 {
		return 0, api.NewError(api.ErrCodeNoPending, "no pending transfer")
	}
	tr := r.pending.Remove().(transfer)
	r.reserved -= tr.n
	c := r.buf.Cap()
	if tr.n == c {
		// A full-capacity transfer ends at its own start position, which
		// UpdateHead must read as a zero advance, not a full wrap. Step
		// through an intermediate position to realize the whole distance.
		r.buf.UpdateHead((tr.end - 1 + c) % c)
	}
	r.buf.UpdateHead(tr.end)
	return tr.n, nil
}

// Reset abandons all in-flight reservations without advancing the
// buffer, for engine aborts or teardown.
func (r *Reconciler[T]) Reset() {
	for r.pending.Length() > 0 {
		r.pending.Remove()
	}
	r.reserved = 0
}
