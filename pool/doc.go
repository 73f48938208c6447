// Package pool
// Author: xitren
// License: Apache-2.0
//
// Companion primitives for producer/consumer pairs around a ring buffer:
// a lock-free SPSC handoff ring and a free list of fixed-size byte slabs
// for staging wrapped reads into contiguous scratch memory.
package pool
