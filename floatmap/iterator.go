// SPDX-License-Identifier: MIT

// Package floatmap: forward iteration over occupied slots.

package floatmap

// Iterator walks the occupied slots of a Map in internal slot order.
// The order is unspecified and unstable across mutations; any insert, remove
// or grow invalidates the iterator. Request a fresh Iterator to restart.
type Iterator struct {
	m    *Map
	slot int // current slot; -1 before the first Next
}

// Iter returns a new iterator positioned before the first occupied slot.
// Complexity: O(1).
func (m *Map) Iter() *Iterator {
	return &Iterator{m: m, slot: -1}
}

// Next advances to the next occupied slot.
// Returns false when the table is exhausted; Key/Value/Slot are only valid
// after Next has returned true.
// Complexity: O(1) amortized — a full pass costs O(capacity).
func (it *Iterator) Next() bool {
	for s := it.slot + 1; s < len(it.m.states); s++ {
		if it.m.states[s] == slotFull {
			it.slot = s
			return true
		}
	}
	it.slot = len(it.m.states)

	return false
}

// Key returns the key at the current slot.
func (it *Iterator) Key() int64 {
	return it.m.keys[it.slot]
}

// Value returns the value at the current slot.
func (it *Iterator) Value() float32 {
	return it.m.values[it.slot]
}

// Slot returns the current slot index, usable with the Map's slot-level
// accessors until the next mutation.
func (it *Iterator) Slot() int {
	return it.slot
}
