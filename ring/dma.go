// File: ring/dma.go
// Package ring
// Author: xitren
// License: Apache-2.0
//
// Hardware-facing surface: raw storage exposure, contiguous-run bound,
// and reconciliation after external writes.

package ring

import "unsafe"

// Storage returns the backing slice of capacity slots, physical order.
// An external writer (DMA engine, interrupt routine, memcpy) may fill
// slots directly; follow up with UpdateHead to make them logically valid.
func (b *Buffer[T]) Storage() []T { return b.data }

// StorageBytes reinterprets the backing storage as raw bytes for writers
// that deal in memory, not elements. T must be a plain-data type: fixed
// size, no Go pointers. Handing storage containing pointers to an
// external writer is undefined.
func (b *Buffer[T]) StorageBytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.data[0])), b.StorageSizeInBytes())
}

// StorageSizeInBytes returns the total extent of the backing storage.
func (b *Buffer[T]) StorageSizeInBytes() int {
	return len(b.data) * int(unsafe.Sizeof(b.data[0]))
}

// ContiguousLen returns the length of the longest physically contiguous
// run of valid elements starting at the head, i.e. how far a flat memory
// operation can go before the logical window wraps to slot 0.
func (b *Buffer[T]) ContiguousLen() int {
	h := int(b.Head() % uint64(len(b.data)))
	if run := len(b.data) - h; run < b.size {
		return run
	}
	return b.size
}

// Mend returns the iterator one past the contiguous run measured by
// ContiguousLen. Iterating [Begin, Mend) touches physically adjacent
// slots only; [Mend, End) covers the wrapped remainder.
func (b *Buffer[T]) Mend() Iterator[T] {
	return Iterator[T]{buf: b, pos: b.ContiguousLen()}
}

// UpdateHead reconciles tail and size after an external writer advanced
// the physical write cursor to pos without calling Push. pos is taken
// modulo capacity. The advance is the forward wrapping distance from the
// current physical tail to pos, in [0, capacity): pos equal to the
// current physical tail means zero advance, never a full wrap. When the
// advance overruns capacity the same overwrite-oldest clamp as Push
// applies.
func (b *Buffer[T]) UpdateHead(pos int) {
	c := len(b.data)
	p := pos % c
	if p < 0 {
		p += c
	}
	t := int(b.tail % uint64(c))
	inc := p - t
	if t > p {
		inc = c - t + p
	}
	b.tail += uint64(inc)
	b.size += inc
	if b.size > c {
		b.size = c
	}
}
