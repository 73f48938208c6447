// Package ring
// Author: xitren
// License: Apache-2.0
//
// Fixed-capacity circular buffer designed to back hardware DMA transfers.
//
// Buffer keeps a monotonically increasing tail cursor and a clamped size;
// the logical head is derived as tail-size and every logical index maps to
// a physical slot modulo capacity. A full buffer overwrites its oldest
// element on Push instead of failing.
//
// The backing storage is a plain contiguous []T exposed through Storage
// and StorageBytes so that an interrupt routine, memcpy or DMA engine can
// write into it directly; UpdateHead then resynchronizes the bookkeeping
// with what the hardware wrote, and Mend bounds the contiguous readable
// run for flat (non-wrapping) memory operations.
//
// The buffer carries no locks. Use one goroutine, or pair it with
// pool.HandoffRing when producer and consumer live on different
// goroutines. Mutating the buffer invalidates outstanding iterators.
package ring
