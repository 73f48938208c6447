package ring

import (
	"slices"
	"testing"
)

func TestAppendChaining(t *testing.T) {
	b := New[byte](8)
	b.Append('a', 'b').Append('c')

	if !Equal(b, []byte{'a', 'b', 'c'}) {
		t.Fatalf("content after chained Append = %v", collect(b))
	}
}

func TestAppendSeq(t *testing.T) {
	src := New[int](8)
	src.Append(1, 2, 3)

	dst := New[int](8)
	dst.AppendSeq(src.Values())

	if !Equal(dst, []int{1, 2, 3}) {
		t.Fatalf("content after AppendSeq = %v", collect(dst))
	}
}

func TestDiscard(t *testing.T) {
	b := New[byte](8)
	b.Append('1', '2', '3', '4', '5')

	b.Discard(2)
	if !Equal(b, []byte{'3', '4', '5'}) {
		t.Fatalf("content after Discard(2) = %v", collect(b))
	}

	// Excess discards are per-element no-ops once empty.
	b.Discard(10)
	if b.Len() != 0 {
		t.Fatalf("Len() after over-discard = %d, want 0", b.Len())
	}
}

func TestDrainToInChunks(t *testing.T) {
	b := New[byte](10)
	b.Append('a', 'b', 'c', 'd', 'e', 'f', 'g', 'h')
	b.Append('i', 'j', 'k', 'l', 'm', 'n', 'o', 'p')

	ret1 := make([]byte, 4)
	if !b.DrainTo(ret1) {
		t.Fatal("DrainTo(4) failed with 10 elements held")
	}
	if string(ret1) != "ghij" {
		t.Fatalf("first drain = %q, want %q", ret1, "ghij")
	}
	if b.Len() != 6 {
		t.Fatalf("Len() after first drain = %d, want 6", b.Len())
	}

	ret2 := make([]byte, 6)
	if !b.DrainTo(ret2) {
		t.Fatal("DrainTo(6) failed with 6 elements held")
	}
	if string(ret2) != "klmnop" {
		t.Fatalf("second drain = %q, want %q", ret2, "klmnop")
	}
	if b.Len() != 0 {
		t.Fatalf("Len() after second drain = %d, want 0", b.Len())
	}
}

func TestDrainToAllOrNothing(t *testing.T) {
	b := New[byte](8)
	b.Append('x', 'y')

	dst := []byte{'0', '0', '0'}
	if b.DrainTo(dst) {
		t.Fatal("DrainTo succeeded with 2 elements held, 3 requested")
	}
	if string(dst) != "000" {
		t.Fatalf("destination mutated on failed drain: %q", dst)
	}
	if b.Len() != 2 {
		t.Fatalf("buffer mutated on failed drain: Len() = %d, want 2", b.Len())
	}
}

func TestDrainToEmptyDst(t *testing.T) {
	b := New[int](4)
	b.Append(1)
	if !b.DrainTo(nil) {
		t.Fatal("DrainTo(nil) failed; zero-length drain should succeed")
	}
	if b.Len() != 1 {
		t.Fatalf("Len() changed by zero-length drain: %d", b.Len())
	}
}

func TestEqual(t *testing.T) {
	b := New[byte](8)
	b.Append('a', 'b', 'c')

	if !Equal(b, []byte{'a', 'b', 'c'}) {
		t.Error("Equal = false for matching content")
	}
	if Equal(b, []byte{'a', 'b'}) {
		t.Error("Equal = true for shorter sequence")
	}
	if Equal(b, []byte{'a', 'b', 'c', 'd'}) {
		t.Error("Equal = true for longer sequence")
	}
	if Equal(b, []byte{'a', 'x', 'c'}) {
		t.Error("Equal = true for mismatched element")
	}
}

func TestEqualAcrossWrap(t *testing.T) {
	b := New[int](4)
	b.Append(1, 2, 3, 4, 5, 6)
	if !Equal(b, []int{3, 4, 5, 6}) {
		t.Fatalf("Equal = false for wrapped window %v", collect(b))
	}
}

func collect[T any](b *Buffer[T]) []T {
	return slices.Collect(b.Values())
}
