// SPDX-License-Identifier: MIT

// Package floatmap: the Map type and its probe/grow machinery.
// Layout: three parallel flat arrays (keys, values, states) of prime length.
// Probing: double hashing — start slot and decrement are both derived from
// the scrambled key; a prime capacity makes every decrement coprime with the
// table length, so a probe sequence visits every slot before repeating.
// Deletion: tombstones (slotRemoved) keep probe chains intact; a grow rehash
// purges them.

package floatmap

// Slot states. A tombstone participates in probing (chains must not break)
// but is reusable by a later insert.
const (
	slotFree byte = iota
	slotFull
	slotRemoved
)

// minCapacity is the smallest usable prime capacity. Double hashing derives
// the probe decrement modulo capacity-2, which requires capacity >= 5.
const minCapacity = 5

// Map is an open-addressing hash table from int64 keys to float32 values.
// Absent keys read as the configured default value. The zero Map is not
// usable; construct with New. Not safe for concurrent use.
type Map struct {
	keys   []int64
	values []float32
	states []byte

	size int // occupied (slotFull) entries
	used int // occupied + tombstoned entries, drives the grow threshold

	threshold    int // grow when used reaches this
	loadFactor   float64
	growFactor   float64
	defaultValue float32
	hash         hashFunc
}

// New creates an empty Map.
// Stage 1 (Resolve): gather options against documented defaults.
// Stage 2 (Prepare): round capacity up to a prime, allocate flat arrays.
// Complexity: O(capacity) time and memory.
func New(opts ...Option) *Map {
	o := gatherOptions(opts...)

	capacity := nextPrime(o.capacity)
	m := &Map{
		keys:         make([]int64, capacity),
		values:       make([]float32, capacity),
		states:       make([]byte, capacity),
		loadFactor:   o.loadFactor,
		growFactor:   o.growFactor,
		defaultValue: o.defaultValue,
		hash:         hasherFor(o.hasher),
	}
	m.threshold = int(float64(capacity) * o.loadFactor)

	return m
}

// Size returns the number of occupied entries.
// Complexity: O(1).
func (m *Map) Size() int {
	return m.size
}

// Capacity returns the current slot count (a prime).
// Complexity: O(1).
func (m *Map) Capacity() int {
	return len(m.keys)
}

// DefaultValue returns the value reported for absent keys.
// Complexity: O(1).
func (m *Map) DefaultValue() float32 {
	return m.defaultValue
}

// Get returns the value stored for key, or the configured default if absent.
// No side effects. Complexity: O(1) expected.
func (m *Map) Get(key int64) float32 {
	return m.GetOrDefault(key, m.defaultValue)
}

// GetOrDefault returns the value stored for key, or def if absent.
// No side effects. Complexity: O(1) expected.
func (m *Map) GetOrDefault(key int64, def float32) float32 {
	slot, found := m.probe(key)
	if !found {
		return def
	}

	return m.values[slot]
}

// ContainsKey reports whether key has an occupied entry.
// Complexity: O(1) expected.
func (m *Map) ContainsKey(key int64) bool {
	_, found := m.probe(key)
	return found
}

// Put inserts or overwrites the entry for key and returns the previous value,
// or the configured default if the key was absent.
// Complexity: O(1) amortized (a grow rehashes all entries).
func (m *Map) Put(key int64, value float32) float32 {
	return m.PutOrDefault(key, value, m.defaultValue)
}

// PutOrDefault inserts or overwrites the entry for key and returns the
// previous value, or def if the key was absent.
//
// Behavior highlights:
//   - Overwrite path never moves the entry: the slot is stable.
//   - Insert path prefers reusing a tombstone on the probe chain.
//   - Inserting into a virgin (free) slot may trigger a grow; the grow
//     invalidates outstanding iterators and slot indices.
//
// Complexity: O(1) amortized.
func (m *Map) PutOrDefault(key int64, value float32, def float32) float32 {
	slot, found := m.probe(key)
	if found {
		prev := m.values[slot]
		m.values[slot] = value
		return prev
	}

	// Grow before consuming a free slot, then re-probe against new arrays.
	if m.states[slot] == slotFree && m.used+1 >= m.threshold {
		m.grow()
		slot, _ = m.probe(key)
	}

	if m.states[slot] == slotFree {
		m.used++ // tombstone reuse leaves used unchanged
	}
	m.keys[slot] = key
	m.values[slot] = value
	m.states[slot] = slotFull
	m.size++

	return def
}

// Remove deletes the entry for key and returns its value, or the configured
// default if the key was absent. The slot becomes a tombstone.
// Complexity: O(1) expected.
func (m *Map) Remove(key int64) float32 {
	slot := m.FindSlot(key)
	if slot < 0 {
		return m.defaultValue
	}

	return m.RemoveAt(slot)
}

// FindSlot returns the slot index holding key, or -1 if the key is absent.
// The index remains valid until the next insert or grow.
// Complexity: O(1) expected.
func (m *Map) FindSlot(key int64) int {
	slot, found := m.probe(key)
	if !found {
		return -1
	}

	return slot
}

// ValueAt returns the value stored at an occupied slot.
// The slot MUST come from FindSlot or Iterator.Slot on an unmodified table.
// Complexity: O(1).
func (m *Map) ValueAt(slot int) float32 {
	return m.values[slot]
}

// SetAt overwrites the value at an occupied slot and returns the previous
// value. The key at the slot is unchanged.
// Complexity: O(1).
func (m *Map) SetAt(slot int, value float32) float32 {
	prev := m.values[slot]
	m.values[slot] = value

	return prev
}

// RemoveAt tombstones an occupied slot and returns its value.
// Complexity: O(1).
func (m *Map) RemoveAt(slot int) float32 {
	prev := m.values[slot]
	m.states[slot] = slotRemoved
	m.size--

	return prev
}

// probe walks the double-hashing sequence for key.
// Returns (slot, true) when the key is found at slot, or (slot, false) with
// the preferred insertion slot: the first tombstone on the chain if one was
// seen, otherwise the terminating free slot.
//
// Termination: used < threshold < capacity guarantees a free slot exists,
// and the prime capacity guarantees the sequence visits every slot.
func (m *Map) probe(key int64) (int, bool) {
	h := m.hash(key)
	p := len(m.keys)
	slot := int(h % uint64(p))
	decr := int(h%uint64(p-2)) + 1 // in [1, p-2], coprime with prime p
	insert := -1

	for {
		switch m.states[slot] {
		case slotFree:
			if insert >= 0 {
				return insert, false
			}
			return slot, false
		case slotFull:
			if m.keys[slot] == key {
				return slot, true
			}
		case slotRemoved:
			if insert < 0 {
				insert = slot // remember first reusable slot, keep scanning
			}
		}

		slot -= decr
		if slot < 0 {
			slot += p
		}
	}
}

// grow enlarges the table by the grow factor and rehashes every occupied
// entry into fresh arrays, purging tombstones. All outstanding iterators and
// slot indices are invalidated.
// Complexity: O(capacity).
func (m *Map) grow() {
	oldKeys, oldValues, oldStates := m.keys, m.values, m.states

	capacity := nextPrime(int(float64(len(oldKeys)) * m.growFactor))
	m.keys = make([]int64, capacity)
	m.values = make([]float32, capacity)
	m.states = make([]byte, capacity)
	m.threshold = int(float64(capacity) * m.loadFactor)
	m.used = m.size // fresh arrays carry no tombstones

	for s, state := range oldStates {
		if state != slotFull {
			continue
		}
		m.reinsert(oldKeys[s], oldValues[s])
	}
}

// reinsert places a known-absent key during a rehash. The fresh arrays hold
// no tombstones, so the first free slot on the chain is the insertion point.
func (m *Map) reinsert(key int64, value float32) {
	h := m.hash(key)
	p := len(m.keys)
	slot := int(h % uint64(p))
	decr := int(h%uint64(p-2)) + 1

	for m.states[slot] == slotFull {
		slot -= decr
		if slot < 0 {
			slot += p
		}
	}

	m.keys[slot] = key
	m.values[slot] = value
	m.states[slot] = slotFull
}

// nextPrime returns the least prime >= n (and >= minCapacity).
// Trial division over odd candidates; runs once per construction or grow,
// where the O(sqrt(p)) cost is dwarfed by the O(p) array allocation.
func nextPrime(n int) int {
	if n < minCapacity {
		n = minCapacity
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}

	return n
}

// isPrime reports whether odd n >= 5 is prime.
func isPrime(n int) bool {
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}
