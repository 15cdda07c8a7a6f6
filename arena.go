package bounded

import "unsafe"

// DefaultArenaCapacity is the buffer size used when an arena is constructed
// with a non-positive capacity (64 KiB).
const DefaultArenaCapacity = 1 << 16

// Arena is a bump allocator over one fixed-size buffer. The buffer is
// allocated once at construction; Alloc and AllocBytes carve pieces off it by
// advancing an offset and fail with ErrOutOfMemory when the remainder is too
// small. There is no per-allocation free: Reset recycles the whole buffer at
// once. Not goroutine-safe; use LockedArena for concurrent access.
type Arena struct {
	buf    []byte
	offset uintptr
	gen    uint64
}

// Block identifies one arena allocation. Unlike a raw slice it carries the
// arena generation at allocation time, so dereferencing a block kept across
// Reset is reported as ErrStaleBlock instead of silently reading reused
// memory.
type Block struct {
	off  int
	size int
	gen  uint64
}

// NewArena creates an arena with a buffer of the given capacity in bytes.
// If capacity <= 0, DefaultArenaCapacity is used.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultArenaCapacity
	}
	return &Arena{buf: make([]byte, capacity)}
}

// AllocBytes returns an n-byte slice pointing into the arena's buffer, or
// ErrOutOfMemory if n bytes do not fit at the next aligned offset. The slice
// must not be used after Reset or Release; the arena cannot detect a raw
// slice held across Reset (Alloc returns a checkable Block instead).
// Returns (nil, nil) if n <= 0.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	a.panicIfReleased()

	off := alignUp(a.offset)
	if off+uintptr(n) > uintptr(len(a.buf)) {
		return nil, ErrOutOfMemory
	}
	a.offset = off + uintptr(n)
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.buf[off])), n), nil
}

// Alloc reserves n bytes and returns a Block handle for them. The bytes are
// reached through Block.Bytes, which re-validates the handle against the
// arena's current generation. Returns ErrOutOfMemory if n does not fit.
func (a *Arena) Alloc(n int) (Block, error) {
	if n <= 0 {
		return Block{gen: a.gen}, nil
	}
	a.panicIfReleased()

	off := alignUp(a.offset)
	if off+uintptr(n) > uintptr(len(a.buf)) {
		return Block{}, ErrOutOfMemory
	}
	a.offset = off + uintptr(n)
	return Block{off: int(off), size: n, gen: a.gen}, nil
}

// Bytes returns the block's backing slice within a. It fails with
// ErrStaleBlock if the arena has been Reset since the block was issued.
func (b Block) Bytes(a *Arena) ([]byte, error) {
	a.panicIfReleased()
	if b.gen != a.gen {
		return nil, ErrStaleBlock
	}
	if b.size == 0 {
		return nil, nil
	}
	return a.buf[b.off : b.off+b.size : b.off+b.size], nil
}

// Len returns the block's length in bytes.
func (b Block) Len() int {
	return b.size
}

// Reset makes the full buffer available again. Every outstanding Block
// becomes stale, and every slice returned by AllocBytes becomes invalid -
// the latter is a caller contract the arena cannot enforce.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.offset = 0
	a.gen++
}

// Release drops the buffer and makes the arena unusable. Any subsequent
// operation panics.
func (a *Arena) Release() {
	a.buf = nil
	a.offset = 0
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("bounded: arena use after Release()")
	}
}

// alignUp rounds an offset up to the arena's allocation alignment (8 bytes).
func alignUp(off uintptr) uintptr {
	const align = 8
	const mask = align - 1
	return (off + mask) &^ mask
}
