// File: ring/iterator.go
// Package ring
// Author: xitren
// License: Apache-2.0
//
// Random-access iteration over the logical window, plus range-over-func
// sequences for idiomatic traversal.

package ring

import "iter"

// Iterator is a value referencing a logical position within a buffer.
// Positions range over [0, Len()]; position Len() is the one-past-the-end
// sentinel returned by End. Dereferencing maps the logical position to a
// physical slot modulo capacity.
//
// An iterator is invalidated by any mutation of its buffer; using a stale
// iterator reads whatever the slot currently holds. There is no
// generation tracking, matching the unchecked accessors elsewhere.
type Iterator[T any] struct {
	buf *Buffer[T]
	pos int
}

// Begin returns an iterator at logical position 0 (the oldest element).
func (b *Buffer[T]) Begin() Iterator[T] { return Iterator[T]{buf: b} }

// End returns the one-past-the-end iterator, so End().Diff(Begin())
// equals Len().
func (b *Buffer[T]) End() Iterator[T] { return Iterator[T]{buf: b, pos: b.size} }

// Pos returns the iterator's logical position relative to the buffer head.
func (it Iterator[T]) Pos() int { return it.pos }

// Value returns the referenced element. Precondition: the position is
// within [0, Len()). Not checked.
func (it Iterator[T]) Value() T { return it.buf.At(it.pos) }

// Ptr returns a pointer to the referenced element for in-place access.
func (it Iterator[T]) Ptr() *T { return it.buf.AtPtr(it.pos) }

// Set stores v at the referenced position.
func (it Iterator[T]) Set(v T) { *it.buf.AtPtr(it.pos) = v }

// Next returns an iterator advanced by one logical position.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.buf, it.pos + 1} }

// Prev returns an iterator moved back by one logical position.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.buf, it.pos - 1} }

// Add returns an iterator advanced by n positions; n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{it.buf, it.pos + n} }

// Sub returns an iterator moved back by n positions.
func (it Iterator[T]) Sub(n int) Iterator[T] { return Iterator[T]{it.buf, it.pos - n} }

// Diff returns the distance in logical positions between it and other.
// Defined purely on positions, independent of physical wraparound.
func (it Iterator[T]) Diff(other Iterator[T]) int { return it.pos - other.pos }

// Equal reports whether both iterators reference the same logical position.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.pos == other.pos }

// Before reports whether it references an earlier logical position.
func (it Iterator[T]) Before(other Iterator[T]) bool { return it.pos < other.pos }

// After reports whether it references a later logical position.
func (it Iterator[T]) After(other Iterator[T]) bool { return it.pos > other.pos }

// All yields (logical offset, element) pairs from the oldest element to
// the newest. The buffer must not be mutated during the walk.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.At(i)) {
				return
			}
		}
	}
}

// Values yields elements oldest-first without their offsets.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(b.At(i)) {
				return
			}
		}
	}
}

// Backward yields (logical offset, element) pairs newest-first, the
// reverse-iteration counterpart of All.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := b.size - 1; i >= 0; i-- {
			if !yield(i, b.At(i)) {
				return
			}
		}
	}
}
