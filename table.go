package bounded

import "hash/maphash"

type tableSlot[K comparable, V any] struct {
	key      K
	value    V
	occupied bool
}

// Table is a fixed-capacity hash map using open addressing with linear
// probing. All slots live in one contiguous array allocated at construction.
// Inserting an existing key overwrites its value in place; deletion is not
// supported (there are no tombstones), only table-wide Reset. Because slots
// are never individually vacated, an unoccupied slot always terminates a
// probe cluster, which keeps lookups correct without tombstone bookkeeping.
// Not goroutine-safe.
type Table[K comparable, V any] struct {
	slots []tableSlot[K, V]
	seed  maphash.Seed
	live  int
}

// NewTable creates a table with the given number of slots.
// If capacity <= 0, DefaultSlotCapacity is used.
func NewTable[K comparable, V any](capacity int) *Table[K, V] {
	if capacity <= 0 {
		capacity = DefaultSlotCapacity
	}
	return &Table[K, V]{
		slots: make([]tableSlot[K, V], capacity),
		seed:  maphash.MakeSeed(),
	}
}

// bucket returns the home slot index for key. The seed is fixed for the
// table's lifetime (across Reset too), so placement is deterministic per
// instance.
func (t *Table[K, V]) bucket(key K) int {
	return int(maphash.Comparable(t.seed, key) % uint64(len(t.slots)))
}

// Insert places (key, value) in the table, overwriting the value in place if
// the key is already present. Returns ErrTableFull if the probe walk visits
// every slot without finding the key or an empty slot.
func (t *Table[K, V]) Insert(key K, value V) error {
	idx := t.bucket(key)
	for probe := 0; probe < len(t.slots); probe++ {
		s := &t.slots[(idx+probe)%len(t.slots)]
		if !s.occupied {
			s.key = key
			s.value = value
			s.occupied = true
			t.live++
			return nil
		}
		if s.key == key {
			s.value = value
			return nil
		}
	}
	return ErrTableFull
}

// Get returns the value stored for key. The probe walk stops at the first
// unoccupied slot or after visiting every slot.
func (t *Table[K, V]) Get(key K) (V, bool) {
	idx := t.bucket(key)
	for probe := 0; probe < len(t.slots); probe++ {
		s := &t.slots[(idx+probe)%len(t.slots)]
		if !s.occupied {
			break
		}
		if s.key == key {
			return s.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Len returns the number of entries currently stored.
func (t *Table[K, V]) Len() int {
	return t.live
}

// Cap returns the total number of slots.
func (t *Table[K, V]) Cap() int {
	return len(t.slots)
}

// Range calls fn for every entry in slot order until fn returns false.
// The iteration order depends on hash placement and is not meaningful to
// callers.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if s.occupied && !fn(s.key, s.value) {
			return
		}
	}
}

// Reset discards every entry. The hash seed is kept, so placement stays
// deterministic across resets.
func (t *Table[K, V]) Reset() {
	clear(t.slots)
	t.live = 0
}
