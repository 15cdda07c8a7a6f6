package bounded

// Ring is a fixed-capacity FIFO circular buffer. Push and Pop are O(1); a
// push on a full ring fails with ErrRingFull and leaves the ring untouched
// (the oldest element is never evicted). Not goroutine-safe; use LockedRing
// for concurrent access.
type Ring[T any] struct {
	slots []T
	head  int // next read position
	tail  int // next write position
	count int
}

// NewRing creates a ring holding up to capacity elements.
// If capacity <= 0, DefaultSlotCapacity is used.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = DefaultSlotCapacity
	}
	return &Ring[T]{slots: make([]T, capacity)}
}

// Push appends v at the tail. Returns ErrRingFull if the ring already holds
// Cap elements; the ring is unchanged in that case.
func (r *Ring[T]) Push(v T) error {
	if r.count == len(r.slots) {
		return ErrRingFull
	}
	r.slots[r.tail] = v
	r.tail = (r.tail + 1) % len(r.slots)
	r.count++
	return nil
}

// Pop removes and returns the element at the head, or ErrRingEmpty if the
// ring holds none. The vacated slot is zeroed so the ring does not pin
// references held by popped values.
func (r *Ring[T]) Pop() (T, error) {
	var zero T
	if r.count == 0 {
		return zero, ErrRingEmpty
	}
	v := r.slots[r.head]
	r.slots[r.head] = zero
	r.head = (r.head + 1) % len(r.slots)
	r.count--
	return v, nil
}

// Peek returns the element at the head without removing it, or ErrRingEmpty
// if the ring holds none.
func (r *Ring[T]) Peek() (T, error) {
	var zero T
	if r.count == 0 {
		return zero, ErrRingEmpty
	}
	return r.slots[r.head], nil
}

// Len returns the number of elements currently in the ring.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the ring's capacity.
func (r *Ring[T]) Cap() int {
	return len(r.slots)
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.count == 0
}

// IsFull reports whether the ring holds Cap elements.
func (r *Ring[T]) IsFull() bool {
	return r.count == len(r.slots)
}

// Reset discards all elements and zeroes the slots.
func (r *Ring[T]) Reset() {
	clear(r.slots)
	r.head = 0
	r.tail = 0
	r.count = 0
}
