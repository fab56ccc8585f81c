// SPDX-License-Identifier: MIT

// Package dok: packed coordinate keys.
// A (row, column) pair becomes one int64: row in the high 32 bits, column in
// the low 32 bits, both halves treated as unsigned. Distinct pairs map to
// distinct keys over the full 32-bit range of each half, and unpacking is
// bit-exact. Callers validate sign and bounds before packing.

package dok

// PackKey combines a (row, col) pair into one 64-bit key.
// Complexity: O(1).
func PackKey(row, col int) int64 {
	return int64(uint64(uint32(row))<<32 | uint64(uint32(col)))
}

// UnpackKey is the exact inverse of PackKey.
// Complexity: O(1).
func UnpackKey(key int64) (row, col int) {
	return KeyRow(key), KeyCol(key)
}

// KeyRow extracts the row index from a packed key.
func KeyRow(key int64) int {
	return int(uint32(uint64(key) >> 32))
}

// KeyCol extracts the column index from a packed key.
func KeyCol(key int64) int {
	return int(uint32(uint64(key)))
}
