// File: pool/slab.go
// Package pool
// Author: xitren
// License: Apache-2.0
//
// Channel-based free list of fixed-size byte slabs. Draining a wrapped
// ring window with a flat memory operation needs contiguous scratch;
// recycling slabs keeps that path allocation-free in steady state.

package pool

// SlabPool hands out fixed-size byte slices and recycles returned ones.
type SlabPool struct {
	size int
	free chan []byte
}

// NewSlabPool creates a pool of slabs of slabSize bytes, retaining at
// most maxIdle returned slabs.
func NewSlabPool(slabSize, maxIdle int) *SlabPool {
	if slabSize < 1 {
		slabSize = 1
	}
	if maxIdle < 1 {
		maxIdle = 1
	}
	return &SlabPool{
		size: slabSize,
		free: make(chan []byte, maxIdle),
	}
}

// SlabSize returns the fixed slab length.
func (p *SlabPool) SlabSize() int { return p.size }

// Get returns a slab from the free list, or a fresh one.
func (p *SlabPool) Get() []byte {
	select {
	case b := <-p.free:
		return b
	default:
		return make([]byte, p.size)
	}
}

// Put returns a slab to the free list; slabs of a foreign size are
// dropped. The slab must not be used after Put.
func (p *SlabPool) Put(b []byte) {
	if len(b) != p.size {
		return
	}
	select {
	case p.free <- b:
	default:
		// full free list: let the GC have it
	}
}
