package bounded

// Usage is an occupancy snapshot shared by all structures in this package.
type Usage struct {
	InUse       int     // slots or bytes currently in use
	Capacity    int     // total slots or bytes
	Utilization float64 // InUse / Capacity (0.0-1.0)
}

func snapshot(inUse, capacity int) Usage {
	u := Usage{InUse: inUse, Capacity: capacity}
	if capacity > 0 {
		u.Utilization = float64(inUse) / float64(capacity)
	}
	return u
}

// SizeInUse returns the number of bytes currently allocated from the arena,
// including internal fragmentation due to alignment. Returns 0 after
// Release.
func (a *Arena) SizeInUse() int {
	if a.buf == nil {
		return 0
	}
	return int(a.offset)
}

// Capacity returns the arena's buffer size in bytes. Returns 0 after
// Release.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns the number of bytes still available at the next aligned
// offset. A request larger than Remaining fails with ErrOutOfMemory.
func (a *Arena) Remaining() int {
	if a.buf == nil {
		return 0
	}
	off := alignUp(a.offset)
	if off >= uintptr(len(a.buf)) {
		return 0
	}
	return len(a.buf) - int(off)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
func (a *Arena) Utilization() float64 {
	return a.Usage().Utilization
}

// Usage returns the arena's occupancy snapshot.
func (a *Arena) Usage() Usage {
	return snapshot(a.SizeInUse(), a.Capacity())
}

// Usage returns the pool's occupancy snapshot in slots.
func (p *Pool[T]) Usage() Usage {
	return snapshot(p.live, len(p.slots))
}

// Usage returns the ring's occupancy snapshot in elements.
func (r *Ring[T]) Usage() Usage {
	return snapshot(r.count, len(r.slots))
}

// Usage returns the table's occupancy snapshot in entries.
func (t *Table[K, V]) Usage() Usage {
	return snapshot(t.live, len(t.slots))
}
