package bounded

// DefaultSlotCapacity is the slot count used when a slot-based structure
// (Pool, Ring, Table) is constructed with a non-positive capacity.
const DefaultSlotCapacity = 64

// Handle identifies one pool slot. It pairs the slot index with the slot's
// generation at acquisition time; the generation lets the pool reject stale
// handles (double release, or a handle outliving a Release/Reset of its
// slot) as ErrInvalidHandle instead of aliasing the slot's next occupant.
// Handles carry no pool identity: presenting a handle to a pool other than
// the one that issued it is undetectable when index and generation happen
// to match, so handles must stay with their pool.
type Handle struct {
	index uint32
	gen   uint32
}

type poolSlot[T any] struct {
	value T
	gen   uint32
	inUse bool
}

// Pool is a fixed-capacity object pool. All slots live in one contiguous
// array allocated at construction; Acquire and Release recycle them without
// further allocation. Not goroutine-safe; use LockedPool for concurrent
// access.
type Pool[T any] struct {
	slots []poolSlot[T]
	live  int
}

// NewPool creates a pool with the given number of slots.
// If capacity <= 0, DefaultSlotCapacity is used.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity <= 0 {
		capacity = DefaultSlotCapacity
	}
	return &Pool[T]{slots: make([]poolSlot[T], capacity)}
}

// Acquire marks the lowest-index free slot in use and returns its handle.
// Returns ErrPoolExhausted when every slot is in use. The lowest-free-first
// scan is deterministic: releasing a low slot makes it the next one handed
// out.
func (p *Pool[T]) Acquire() (Handle, error) {
	for i := range p.slots {
		if !p.slots[i].inUse {
			p.slots[i].inUse = true
			p.live++
			return Handle{index: uint32(i), gen: p.slots[i].gen}, nil
		}
	}
	return Handle{}, ErrPoolExhausted
}

// Release frees the slot identified by h, zeroing its value and bumping its
// generation so the handle (and any copy of it) cannot be used again.
// Returns ErrInvalidHandle for out-of-range, free, or stale handles; the
// pool's state is unchanged in that case.
func (p *Pool[T]) Release(h Handle) error {
	s, err := p.slot(h)
	if err != nil {
		return err
	}
	var zero T
	s.value = zero
	s.inUse = false
	s.gen++
	p.live--
	return nil
}

// Get returns a pointer to the value in the slot identified by h. The
// pointer stays valid until the slot is Released or the pool is Reset.
func (p *Pool[T]) Get(h Handle) (*T, error) {
	s, err := p.slot(h)
	if err != nil {
		return nil, err
	}
	return &s.value, nil
}

// slot validates h and returns the slot it refers to.
func (p *Pool[T]) slot(h Handle) (*poolSlot[T], error) {
	if int(h.index) >= len(p.slots) {
		return nil, ErrInvalidHandle
	}
	s := &p.slots[h.index]
	if !s.inUse || s.gen != h.gen {
		return nil, ErrInvalidHandle
	}
	return s, nil
}

// Len returns the number of slots currently in use.
func (p *Pool[T]) Len() int {
	return p.live
}

// Cap returns the total number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Reset releases every in-use slot at once, zeroing values and bumping
// generations so all outstanding handles become invalid.
func (p *Pool[T]) Reset() {
	var zero T
	for i := range p.slots {
		s := &p.slots[i]
		if s.inUse {
			s.value = zero
			s.inUse = false
			s.gen++
		}
	}
	p.live = 0
}
