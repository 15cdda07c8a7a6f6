package bounded

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestNewLockedWrappers(t *testing.T) {
	if la := NewLockedArena(1024); la.Usage().Capacity != 1024 {
		t.Errorf("LockedArena capacity = %d, want 1024", la.Usage().Capacity)
	}
	if lp := NewLockedPool[int](8); lp.Cap() != 8 {
		t.Errorf("LockedPool cap = %d, want 8", lp.Cap())
	}
	if lr := NewLockedRing[int](8); lr.Cap() != 8 {
		t.Errorf("LockedRing cap = %d, want 8", lr.Cap())
	}
}

func TestLockedArenaConcurrentAlloc(t *testing.T) {
	const (
		workers   = 8
		allocs    = 100
		allocSize = 16 // multiple of the alignment, so accounting is exact
	)
	la := NewLockedArena(workers * allocs * allocSize)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < allocs; i++ {
				b, err := la.AllocBytes(allocSize)
				if err != nil {
					return err
				}
				if len(b) != allocSize {
					return fmt.Errorf("alloc length = %d, want %d", len(b), allocSize)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if got := la.SizeInUse(); got != workers*allocs*allocSize {
		t.Errorf("SizeInUse = %d, want %d", got, workers*allocs*allocSize)
	}
}

func TestLockedArenaTypedAlloc(t *testing.T) {
	la := NewLockedArena(1024)

	p, err := LockedAlloc[int64](la)
	if err != nil {
		t.Fatalf("LockedAlloc error = %v", err)
	}
	*p = 99

	s, err := LockedAllocSlice[int64](la, 8)
	if err != nil {
		t.Fatalf("LockedAllocSlice error = %v", err)
	}
	if len(s) != 8 {
		t.Errorf("slice length = %d, want 8", len(s))
	}

	blk, err := la.Alloc(32)
	if err != nil {
		t.Fatalf("Alloc error = %v", err)
	}
	if _, err := la.Bytes(blk); err != nil {
		t.Errorf("Bytes error = %v", err)
	}

	la.Reset()
	if _, err := la.Bytes(blk); !errors.Is(err, ErrStaleBlock) {
		t.Errorf("Bytes after Reset error = %v, want ErrStaleBlock", err)
	}
}

func TestLockedPoolConcurrentChurn(t *testing.T) {
	const workers = 8
	lp := NewLockedPool[int](workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				h, err := lp.Acquire()
				if errors.Is(err, ErrPoolExhausted) {
					runtime.Gosched()
					continue
				}
				if err != nil {
					return err
				}
				v, err := lp.Get(h)
				if err != nil {
					return err
				}
				*v = i
				if err := lp.Release(h); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if lp.Len() != 0 {
		t.Errorf("Len after churn = %d, want 0", lp.Len())
	}
}

func TestLockedRingProducerConsumer(t *testing.T) {
	const total = 1000
	lr := NewLockedRing[int](16)

	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < total; i++ {
			for {
				err := lr.Push(i)
				if err == nil {
					break
				}
				if !errors.Is(err, ErrRingFull) {
					return err
				}
				runtime.Gosched()
			}
		}
		return nil
	})
	g.Go(func() error {
		next := 0
		for next < total {
			v, err := lr.Pop()
			if errors.Is(err, ErrRingEmpty) {
				runtime.Gosched()
				continue
			}
			if err != nil {
				return err
			}
			// Single producer, single consumer: FIFO order is preserved
			// through the lock.
			if v != next {
				return fmt.Errorf("popped %d, want %d", v, next)
			}
			next++
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if lr.Len() != 0 {
		t.Errorf("Len after drain = %d, want 0", lr.Len())
	}
}
