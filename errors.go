package bounded

import "errors"

var (
	// ErrPoolExhausted is returned by Pool.Acquire when every slot is in use.
	ErrPoolExhausted = errors.New("bounded: pool exhausted")

	// ErrInvalidHandle is returned for a handle that is out of range, refers
	// to a free slot, or carries a stale generation (double release, or a
	// handle held across Release/Reset of its slot).
	ErrInvalidHandle = errors.New("bounded: invalid handle")

	// ErrOutOfMemory is returned by arena allocation when the request does
	// not fit in the remaining buffer space.
	ErrOutOfMemory = errors.New("bounded: arena out of memory")

	// ErrStaleBlock is returned when a Block issued before the most recent
	// Arena.Reset is dereferenced.
	ErrStaleBlock = errors.New("bounded: arena block issued before reset")

	// ErrRingFull is returned by Ring.Push when the ring holds Cap elements.
	ErrRingFull = errors.New("bounded: ring buffer full")

	// ErrRingEmpty is returned by Ring.Pop and Ring.Peek when the ring holds
	// no elements.
	ErrRingEmpty = errors.New("bounded: ring buffer empty")

	// ErrTableFull is returned by Table.Insert when no slot can hold the key.
	ErrTableFull = errors.New("bounded: table full")
)
