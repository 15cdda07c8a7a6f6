package bounded

import "sync"

// The Locked* types wrap the base structures with a mutex for callers that
// must share one instance between goroutines. They are the packaged form of
// the external locking the base types require; partitioning one unlocked
// instance per goroutine is usually faster when the workload allows it.

// LockedArena is a mutex-protected Arena.
//
// Slices and pointers returned by allocation escape the lock: they point
// into the shared buffer and stay valid until Reset or Release, but the
// caller must coordinate Reset against outstanding allocations itself.
type LockedArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewLockedArena creates a mutex-protected arena with the given capacity.
// If capacity <= 0, DefaultArenaCapacity is used.
func NewLockedArena(capacity int) *LockedArena {
	return &LockedArena{a: NewArena(capacity)}
}

// AllocBytes allocates n bytes under the lock.
func (l *LockedArena) AllocBytes(n int) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.AllocBytes(n)
}

// Alloc reserves n bytes under the lock and returns a Block handle.
func (l *LockedArena) Alloc(n int) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Alloc(n)
}

// Bytes resolves a Block under the lock.
func (l *LockedArena) Bytes(b Block) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return b.Bytes(l.a)
}

// Reset recycles the buffer under the lock.
func (l *LockedArena) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Reset()
}

// Release drops the buffer under the lock; later operations panic.
func (l *LockedArena) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Release()
}

// SizeInUse returns the bytes currently allocated, under the lock.
func (l *LockedArena) SizeInUse() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.SizeInUse()
}

// Usage returns the occupancy snapshot, under the lock.
func (l *LockedArena) Usage() Usage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Usage()
}

// LockedAlloc allocates a zeroed T from the wrapped arena under the lock.
func LockedAlloc[T any](l *LockedArena) (*T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Alloc[T](l.a)
}

// LockedAllocSlice allocates an n-element slice of T from the wrapped arena
// under the lock.
func LockedAllocSlice[T any](l *LockedArena, n int) ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return AllocSlice[T](l.a, n)
}

// LockedPool is a mutex-protected Pool.
//
// Pointers returned by Get escape the lock; callers that mutate through them
// while other goroutines may touch the same slot need their own
// coordination, or should confine each handle to one goroutine (the usual
// pattern: acquire, work, release, all from the same goroutine).
type LockedPool[T any] struct {
	mu sync.Mutex
	p  *Pool[T]
}

// NewLockedPool creates a mutex-protected pool with the given capacity.
// If capacity <= 0, DefaultSlotCapacity is used.
func NewLockedPool[T any](capacity int) *LockedPool[T] {
	return &LockedPool[T]{p: NewPool[T](capacity)}
}

// Acquire takes the lowest free slot under the lock.
func (l *LockedPool[T]) Acquire() (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Acquire()
}

// Release frees a slot under the lock.
func (l *LockedPool[T]) Release(h Handle) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Release(h)
}

// Get validates h and returns the slot pointer, under the lock.
func (l *LockedPool[T]) Get(h Handle) (*T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Get(h)
}

// Len returns the in-use slot count, under the lock.
func (l *LockedPool[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Len()
}

// Cap returns the total slot count.
func (l *LockedPool[T]) Cap() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Cap()
}

// Reset releases every slot under the lock.
func (l *LockedPool[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p.Reset()
}

// Usage returns the occupancy snapshot, under the lock.
func (l *LockedPool[T]) Usage() Usage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Usage()
}

// LockedRing is a mutex-protected Ring. Push and Pop transfer values by
// copy, so nothing escapes the lock; this is the safest wrapper to share.
type LockedRing[T any] struct {
	mu sync.Mutex
	r  *Ring[T]
}

// NewLockedRing creates a mutex-protected ring with the given capacity.
// If capacity <= 0, DefaultSlotCapacity is used.
func NewLockedRing[T any](capacity int) *LockedRing[T] {
	return &LockedRing[T]{r: NewRing[T](capacity)}
}

// Push appends v under the lock.
func (l *LockedRing[T]) Push(v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Push(v)
}

// Pop removes and returns the head element under the lock.
func (l *LockedRing[T]) Pop() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Pop()
}

// Peek returns the head element without removing it, under the lock.
func (l *LockedRing[T]) Peek() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Peek()
}

// Len returns the element count, under the lock.
func (l *LockedRing[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Len()
}

// Cap returns the ring's capacity.
func (l *LockedRing[T]) Cap() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Cap()
}

// Reset discards all elements under the lock.
func (l *LockedRing[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Reset()
}

// Usage returns the occupancy snapshot, under the lock.
func (l *LockedRing[T]) Usage() Usage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Usage()
}
