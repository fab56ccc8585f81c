// SPDX-License-Identifier: MIT

// Package floatmap_test contains unit tests for the Map implementation:
// construction defaults, put/get/remove semantics, slot-level access,
// grow-and-rehash behavior and hasher selection.
package floatmap_test

import (
	"testing"

	"github.com/katalvlaran/dokmatrix/floatmap"
	"github.com/stretchr/testify/require"
)

// TestNewDefaults verifies the documented construction defaults.
func TestNewDefaults(t *testing.T) {
	m := floatmap.New() // construct with all defaults

	require.Equal(t, 0, m.Size())                                // empty on construction
	require.GreaterOrEqual(t, m.Capacity(), floatmap.DefaultCapacity) // capacity rounded up to a prime
	require.Equal(t, float32(0), m.DefaultValue())               // absent keys read as zero
}

// TestGetAbsentReturnsDefault ensures absent keys read as the configured default.
func TestGetAbsentReturnsDefault(t *testing.T) {
	m := floatmap.New(floatmap.WithDefaultValue(-1)) // default -1 for absent keys

	require.Equal(t, float32(-1), m.Get(42))              // absent key yields configured default
	require.Equal(t, float32(7), m.GetOrDefault(42, 7))   // explicit default overrides
	require.False(t, m.ContainsKey(42))                   // reading must not materialize an entry
	require.Equal(t, 0, m.Size())                         // still empty
}

// TestPutInsertAndOverwrite checks insert-vs-overwrite semantics and the
// previous-value return contract.
func TestPutInsertAndOverwrite(t *testing.T) {
	m := floatmap.New()

	prev := m.Put(10, 1.5)                 // first insert
	require.Equal(t, float32(0), prev)     // absent key reports the default
	require.Equal(t, 1, m.Size())          // one entry now

	prev = m.Put(10, 2.5)                  // overwrite same key
	require.Equal(t, float32(1.5), prev)   // previous value returned
	require.Equal(t, 1, m.Size())          // no duplicate entry
	require.Equal(t, float32(2.5), m.Get(10))
}

// TestPutOrDefaultSentinel verifies the caller-supplied absence sentinel.
func TestPutOrDefaultSentinel(t *testing.T) {
	m := floatmap.New()

	prev := m.PutOrDefault(5, 0, -99)    // insert an explicit zero
	require.Equal(t, float32(-99), prev) // sentinel distinguishes "was absent"
	require.True(t, m.ContainsKey(5))    // the zero entry exists

	prev = m.PutOrDefault(5, 3, -99)   // overwrite the stored zero
	require.Equal(t, float32(0), prev) // previous stored value, not the sentinel
}

// TestRemove covers removal by key and tombstone-transparent reads.
func TestRemove(t *testing.T) {
	m := floatmap.New()
	m.Put(1, 1.0)
	m.Put(2, 2.0)

	require.Equal(t, float32(1.0), m.Remove(1)) // removed value returned
	require.Equal(t, 1, m.Size())               // size decremented
	require.False(t, m.ContainsKey(1))          // key gone
	require.Equal(t, float32(2.0), m.Get(2))    // unrelated entry unaffected

	require.Equal(t, float32(0), m.Remove(1)) // absent removal reports the default
	require.Equal(t, 1, m.Size())             // size unchanged

	m.Put(1, 9.0)                            // re-insert over the tombstone
	require.Equal(t, float32(9.0), m.Get(1)) // fresh value visible
	require.Equal(t, 2, m.Size())
}

// TestSlotAccessors exercises the low-level FindSlot/ValueAt/SetAt/RemoveAt
// path used by dok.Matrix row swaps.
func TestSlotAccessors(t *testing.T) {
	m := floatmap.New()
	m.Put(77, 4.25)

	require.Equal(t, -1, m.FindSlot(78)) // absent key has no slot

	slot := m.FindSlot(77)
	require.GreaterOrEqual(t, slot, 0)           // present key resolves to a slot
	require.Equal(t, float32(4.25), m.ValueAt(slot))

	prev := m.SetAt(slot, 8.5)                  // in-place overwrite at the slot
	require.Equal(t, float32(4.25), prev)       // previous value returned
	require.Equal(t, float32(8.5), m.Get(77))   // visible through the key path
	require.Equal(t, 1, m.Size())               // SetAt never changes size

	prev = m.RemoveAt(slot)              // tombstone the slot
	require.Equal(t, float32(8.5), prev) // removed value returned
	require.Equal(t, 0, m.Size())
	require.False(t, m.ContainsKey(77))
}

// TestGrowPreservesEntries forces multiple rehashes and verifies no entry is
// lost or corrupted.
func TestGrowPreservesEntries(t *testing.T) {
	m := floatmap.New(floatmap.WithCapacity(8)) // tiny table to force growth

	const n = 5000
	for i := 0; i < n; i++ {
		m.Put(int64(i*i), float32(i)) // spread keys non-linearly
	}

	require.Equal(t, n, m.Size()) // every insert kept
	for i := 0; i < n; i++ {
		require.Equal(t, float32(i), m.Get(int64(i*i))) // values survive rehash
	}
}

// TestGrowPurgesTombstones checks that remove/insert churn keeps working
// well past the original capacity (tombstones must be reclaimed on grow).
func TestGrowPurgesTombstones(t *testing.T) {
	m := floatmap.New(floatmap.WithCapacity(8))

	for i := 0; i < 10000; i++ {
		m.Put(int64(i), float32(i)) // insert
		m.Remove(int64(i))          // and immediately tombstone
	}

	require.Equal(t, 0, m.Size()) // steady-state empty table

	m.Put(123, 1.25) // table must still accept inserts
	require.Equal(t, float32(1.25), m.Get(123))
}

// TestNegativeKeys ensures the full signed key range round-trips, matching
// packed coordinates whose row uses the high 32 bits.
func TestNegativeKeys(t *testing.T) {
	m := floatmap.New()

	keys := []int64{-1, -1 << 62, 1 << 62, 0, 0x7FFFFFFFFFFFFFFF, -0x8000000000000000}
	for i, k := range keys {
		m.Put(k, float32(i+1))
	}
	for i, k := range keys {
		require.Equal(t, float32(i+1), m.Get(k)) // each extreme key resolves independently
	}
	require.Equal(t, len(keys), m.Size())
}

// TestHasherSelection verifies every supported hasher produces a working table.
func TestHasherSelection(t *testing.T) {
	for _, id := range []floatmap.HasherID{
		floatmap.HasherXXHash,
		floatmap.HasherMurmur3,
		floatmap.HasherXXH3,
	} {
		t.Run(id.String(), func(t *testing.T) {
			m := floatmap.New(floatmap.WithHasher(id), floatmap.WithCapacity(8))
			for i := 0; i < 1000; i++ {
				m.Put(int64(i), float32(i))
			}
			require.Equal(t, 1000, m.Size())
			for i := 0; i < 1000; i++ {
				require.Equal(t, float32(i), m.Get(int64(i)))
			}
		})
	}
}

// TestHasherNames pins the HasherID.String values.
func TestHasherNames(t *testing.T) {
	require.Equal(t, "xxhash", floatmap.HasherXXHash.String())
	require.Equal(t, "murmur3", floatmap.HasherMurmur3.String())
	require.Equal(t, "xxh3", floatmap.HasherXXH3.String())
	require.Equal(t, "unknown", floatmap.HasherID(200).String())
}

// TestOptionPanics ensures option constructors reject nonsensical values.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { floatmap.WithCapacity(0) })      // capacity must be positive
	require.Panics(t, func() { floatmap.WithLoadFactor(0) })    // load factor must be in (0,1)
	require.Panics(t, func() { floatmap.WithLoadFactor(1) })    // load factor must be in (0,1)
	require.Panics(t, func() { floatmap.WithGrowFactor(1) })    // grow factor must exceed 1
	require.Panics(t, func() { floatmap.WithHasher(200) })      // unknown hasher id
}
