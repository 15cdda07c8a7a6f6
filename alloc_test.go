package bounded

import (
	"errors"
	"math"
	"testing"
)

type testHeader struct {
	Magic   uint32
	Version uint16
	Count   uint16
}

func TestAlloc(t *testing.T) {
	a := NewArena(1024)

	h, err := Alloc[testHeader](a)
	if err != nil {
		t.Fatalf("Alloc error = %v", err)
	}
	if h.Magic != 0 || h.Version != 0 || h.Count != 0 {
		t.Errorf("Alloc returned non-zeroed value: %+v", *h)
	}

	h.Magic = 0xCAFEBABE
	h.Count = 7
	if h = PtrAndKeepAlive(a, h); h.Magic != 0xCAFEBABE || h.Count != 7 {
		t.Errorf("stored value = %+v, want Magic=0xcafebabe Count=7", *h)
	}
}

func TestAllocOutOfMemory(t *testing.T) {
	a := NewArena(8)

	if _, err := Alloc[[64]byte](a); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Alloc in tiny arena error = %v, want ErrOutOfMemory", err)
	}
	if _, err := AllocSlice[uint64](a, 100); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("AllocSlice in tiny arena error = %v, want ErrOutOfMemory", err)
	}
}

func TestAllocSliceByteCountOverflow(t *testing.T) {
	a := NewArena(1024)

	// Element counts whose byte total overflows int must fail cleanly, not
	// wrap around to a tiny request.
	for _, n := range []int{math.MaxInt/8 + 1, math.MaxInt} {
		if _, err := AllocSlice[uint64](a, n); !errors.Is(err, ErrOutOfMemory) {
			t.Errorf("AllocSlice(%d) error = %v, want ErrOutOfMemory", n, err)
		}
		if _, err := AllocSliceZeroed[uint64](a, n); !errors.Is(err, ErrOutOfMemory) {
			t.Errorf("AllocSliceZeroed(%d) error = %v, want ErrOutOfMemory", n, err)
		}
	}
	if a.SizeInUse() != 0 {
		t.Errorf("failed allocations changed SizeInUse: %d, want 0", a.SizeInUse())
	}
}

func TestAllocSlice(t *testing.T) {
	a := NewArena(1024)

	s, err := AllocSlice[int32](a, 10)
	if err != nil {
		t.Fatalf("AllocSlice error = %v", err)
	}
	if len(s) != 10 {
		t.Fatalf("AllocSlice length = %d, want 10", len(s))
	}
	for i := range s {
		s[i] = int32(i * 3)
	}
	if s[9] != 27 {
		t.Errorf("s[9] = %d, want 27", s[9])
	}

	if s, err := AllocSlice[int32](a, 0); s != nil || err != nil {
		t.Errorf("AllocSlice(0) = %v, %v, want nil, nil", s, err)
	}
	if s, err := AllocSlice[int32](a, -1); s != nil || err != nil {
		t.Errorf("AllocSlice(-1) = %v, %v, want nil, nil", s, err)
	}
}

func TestAllocSliceZeroed(t *testing.T) {
	a := NewArena(1024)

	// Dirty the buffer, recycle, then check the zeroed variant really zeroes.
	dirty, _ := AllocSlice[uint64](a, 16)
	for i := range dirty {
		dirty[i] = ^uint64(0)
	}
	a.Reset()

	s, err := AllocSliceZeroed[uint64](a, 16)
	if err != nil {
		t.Fatalf("AllocSliceZeroed error = %v", err)
	}
	for i, v := range s {
		if v != 0 {
			t.Fatalf("s[%d] = %d, want 0", i, v)
		}
	}
}
