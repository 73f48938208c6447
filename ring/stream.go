// File: ring/stream.go
// Package ring
// Author: xitren
// License: Apache-2.0
//
// Bulk transfer between the buffer and external sequences.

package ring

import "iter"

// Append pushes every item in order, subject to the overwrite-oldest
// policy. Returns the buffer for chaining.
func (b *Buffer[T]) Append(items ...T) *Buffer[T] {
	for _, v := range items {
		b.Push(v)
	}
	return b
}

// AppendSeq pushes every element produced by seq, in sequence order.
func (b *Buffer[T]) AppendSeq(seq iter.Seq[T]) *Buffer[T] {
	for v := range seq {
		b.Push(v)
	}
	return b
}

// Discard pops the n logically oldest elements. Each pop observes the
// empty guard, so discarding more than Len leaves an empty buffer.
func (b *Buffer[T]) Discard(n int) *Buffer[T] {
	for i := 0; i < n; i++ {
		b.Pop()
	}
	return b
}

// DrainTo copies the len(dst) oldest elements into dst in logical order,
// popping each as it is copied, and reports success. The drain is
// all-or-nothing: when the buffer holds fewer than len(dst) elements
// neither the buffer nor dst is touched.
func (b *Buffer[T]) DrainTo(dst []T) bool {
	if b.size < len(dst) {
		return false
	}
	for i := range dst {
		dst[i] = b.Front()
		b.Pop()
	}
	return true
}

// Equal compares the buffer's logical content, head to tail, against
// data. Content shorter or longer than data never compares equal.
func Equal[T comparable](b *Buffer[T], data []T) bool {
	if b.Len() != len(data) {
		return false
	}
	for i, v := range data {
		if b.At(i) != v {
			return false
		}
	}
	return true
}
