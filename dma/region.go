// File: dma/region.go
// Package dma
// Author: xitren
// License: Apache-2.0

package dma

// Region is a physically contiguous span of slots in a buffer's backing
// storage: a half-open range [Offset, Offset+Len) of physical indices
// that never crosses the array end. A logical window that wraps is
// described by two regions.
type Region struct {
	Offset int
	Len    int
}

// split cuts a wrapping span of length n starting at physical offset
// start into at most two non-wrapping regions over a storage of
// capacity c.
func split(start, n, c int) []Region {
	if n <= 0 {
		return nil
	}
	if run := c - start; n > run {
		return []Region{{Offset: start, Len: run}, {Offset: 0, Len: n - run}}
	}
	return []Region{{Offset: start, Len: n}}
}
