// Package bounded implements fixed-capacity, heap-free data structures:
// an object pool, a bump-allocator arena, a FIFO ring buffer, and an
// open-addressing hash table.
//
// # Overview
//
// Every structure in this package allocates its storage exactly once, at
// construction time, as a single contiguous block. After that no operation
// allocates: capacity exhaustion is reported to the caller as an error, never
// resolved by growing. This makes the structures suitable for:
//
//   - Hot loops that must not create garbage collector pressure
//   - Soft real-time code requiring predictable, bounded operation cost
//   - Systems where memory use must be fixed and auditable up front
//   - Request-scoped scratch space with batch cleanup
//
// # Components
//
// Pool hands out reusable slots of a value type. Handles are (index,
// generation) pairs rather than pointers, so a stale handle - one already
// released, or outlived by a Reset - is detected and reported instead of
// silently aliasing whatever occupies the slot now:
//
//	pool := bounded.NewPool[Session](128)
//	h, err := pool.Acquire()
//	if err != nil {
//		// bounded.ErrPoolExhausted: all 128 slots in use
//	}
//	s, _ := pool.Get(h)
//	s.Start = time.Now()
//	pool.Release(h)
//
// Arena carves variable-size allocations out of one fixed buffer by bumping
// an offset. Individual allocations are never freed; the whole arena is
// recycled at once with Reset:
//
//	a := bounded.NewArena(1 << 20)
//	defer a.Release()
//
//	buf, err := a.AllocBytes(1024)
//	ptr, err := bounded.Alloc[Header](a)
//	a.Reset() // all outstanding allocations become invalid at once
//
// Ring is a bounded FIFO queue. Push on a full ring fails and leaves the
// ring untouched; it never evicts the oldest element:
//
//	r := bounded.NewRing[Event](256)
//	if err := r.Push(ev); err != nil {
//		// bounded.ErrRingFull: consumer has fallen behind
//	}
//	ev, err := r.Pop()
//
// Table is a fixed-capacity hash map using linear probing. Inserting an
// existing key overwrites its value in place; deletion is not supported
// (no tombstones), only table-wide Reset:
//
//	t := bounded.NewTable[string, int](512)
//	err := t.Insert("requests", 1)
//	v, ok := t.Get("requests")
//
// # Thread Safety
//
// The base types are not goroutine-safe; each instance must be confined to
// one goroutine or guarded externally. LockedArena, LockedPool, and
// LockedRing wrap the base types with a mutex for callers that share a
// single instance:
//
//	lr := bounded.NewLockedRing[Job](256)
//	go producer(lr)
//	go consumer(lr)
//
// # Error Handling
//
// Capacity exhaustion (ErrPoolExhausted, ErrOutOfMemory, ErrRingFull,
// ErrTableFull), invalid handles (ErrInvalidHandle, ErrStaleBlock), and
// empty-ring pops (ErrRingEmpty) are ordinary returned errors. The only
// panic in the package is using an Arena after Release, which is a
// programming error rather than a runtime condition.
//
// # Monitoring
//
// Every structure reports occupancy through a Usage snapshot:
//
//	u := pool.Usage()
//	fmt.Printf("pool at %.0f%% (%d/%d)\n", u.Utilization*100, u.InUse, u.Capacity)
package bounded
