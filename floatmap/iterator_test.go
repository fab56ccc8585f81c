// SPDX-License-Identifier: MIT

// Package floatmap_test: iterator coverage — completeness, restartability and
// the empty-table edge case.
package floatmap_test

import (
	"testing"

	"github.com/katalvlaran/dokmatrix/floatmap"
	"github.com/stretchr/testify/require"
)

// TestIteratorEmpty ensures a fresh iterator over an empty table yields nothing.
func TestIteratorEmpty(t *testing.T) {
	m := floatmap.New()

	it := m.Iter()
	require.False(t, it.Next()) // nothing to visit
	require.False(t, it.Next()) // exhausted iterator stays exhausted
}

// TestIteratorVisitsEveryEntryOnce checks the iterator yields exactly the
// table contents, each entry once, in some slot order.
func TestIteratorVisitsEveryEntryOnce(t *testing.T) {
	m := floatmap.New(floatmap.WithCapacity(8))

	want := map[int64]float32{}
	for i := 0; i < 2500; i++ {
		k := int64(i * 31)
		want[k] = float32(i)
		m.Put(k, float32(i))
	}

	seen := map[int64]float32{}
	it := m.Iter()
	for it.Next() {
		_, dup := seen[it.Key()]
		require.False(t, dup, "key visited twice") // no slot may repeat
		seen[it.Key()] = it.Value()
	}

	require.Equal(t, want, seen)        // contents match exactly
	require.Equal(t, m.Size(), len(seen)) // count agrees with Size
}

// TestIteratorRestart verifies a fresh iterator replays the full table.
func TestIteratorRestart(t *testing.T) {
	m := floatmap.New()
	m.Put(1, 1)
	m.Put(2, 2)
	m.Put(3, 3)

	count := func() int {
		n := 0
		it := m.Iter()
		for it.Next() {
			n++
		}
		return n
	}

	require.Equal(t, 3, count()) // first pass
	require.Equal(t, 3, count()) // restart via a fresh iterator
}

// TestIteratorSkipsTombstones ensures removed entries are not yielded.
func TestIteratorSkipsTombstones(t *testing.T) {
	m := floatmap.New()
	m.Put(1, 1)
	m.Put(2, 2)
	m.Put(3, 3)
	m.Remove(2)

	keys := map[int64]bool{}
	it := m.Iter()
	for it.Next() {
		keys[it.Key()] = true
	}

	require.Equal(t, map[int64]bool{1: true, 3: true}, keys) // tombstoned key absent
}

// TestIteratorSlotAccess checks Iterator.Slot interoperates with the slot API.
func TestIteratorSlotAccess(t *testing.T) {
	m := floatmap.New()
	m.Put(42, 4.5)

	it := m.Iter()
	require.True(t, it.Next())
	require.Equal(t, int64(42), it.Key())
	require.Equal(t, it.Value(), m.ValueAt(it.Slot())) // slot index is live until mutation
}
