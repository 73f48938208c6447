package concurrency

import (
	"runtime"
	"testing"
)

func TestSPSC_FillAndDrain(t *testing.T) {
	r := NewSPSC[int](8)
	if r.Cap() != 8 {
		t.Fatalf("Cap() = %d, want 8", r.Cap())
	}

	for i := 0; i < 8; i++ {
		if !r.TryPush(i) {
			t.Fatalf("TryPush(%d) failed below capacity", i)
		}
	}
	if r.TryPush(99) {
		t.Fatal("TryPush succeeded on full ring")
	}
	if r.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", r.Len())
	}

	for i := 0; i < 8; i++ {
		v, ok := r.TryPop()
		if !ok || v != i {
			t.Fatalf("TryPop() = %d,%v, want %d,true", v, ok, i)
		}
	}
	if _, ok := r.TryPop(); ok {
		t.Fatal("TryPop succeeded on empty ring")
	}
}

func TestSPSC_RoundsCapacityUp(t *testing.T) {
	r := NewSPSC[int](5)
	if r.Cap() != 8 {
		t.Fatalf("Cap() = %d, want 8", r.Cap())
	}
	if r := NewSPSC[int](0); r.Cap() != 2 {
		t.Fatalf("Cap() = %d, want 2", r.Cap())
	}
}

func TestSPSC_CrossGoroutineOrder(t *testing.T) {
	const items = 100000
	r := NewSPSC[int](1024)
	done := make(chan struct{})

	go func() {
		defer close(done)
		next := 0
		for next < items {
			if v, ok := r.TryPop(); ok {
				if v != next {
					t.Errorf("popped %d, want %d", v, next)
					return
				}
				next++
			} else {
				runtime.Gosched()
			}
		}
	}()

	for i := 0; i < items; i++ {
		for !r.TryPush(i) {
			runtime.Gosched()
		}
	}
	<-done
}

func TestSPSC_LenNeverNegativeUnderObservation(t *testing.T) {
	const items = 50000
	r := NewSPSC[int](64)
	stop := make(chan struct{})
	observed := make(chan struct{})

	// A third goroutine sampling Len while producer and consumer run:
	// the count may be stale, but must never be negative.
	go func() {
		defer close(observed)
		for {
			select {
			case <-stop:
				return
			default:
				if n := r.Len(); n < 0 {
					t.Errorf("Len() = %d", n)
					return
				}
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for popped := 0; popped < items; {
			if _, ok := r.TryPop(); ok {
				popped++
			} else {
				runtime.Gosched()
			}
		}
	}()

	for i := 0; i < items; i++ {
		for !r.TryPush(i) {
			runtime.Gosched()
		}
	}
	<-done
	close(stop)
	<-observed
}

func BenchmarkSPSC_PushPop(b *testing.B) {
	r := NewSPSC[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.TryPush(i)
		r.TryPop()
	}
}
