// SPDX-License-Identifier: MIT

// Package floatmap: key-scrambling hash functions selectable at construction.
// Packed (row,col) keys concentrate their entropy in a few low bits of each
// 32-bit half; scrambling them through a real hash function keeps the
// double-hashing probe sequence uniform.

package floatmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// HasherID identifies the 64-bit hash function used to scramble keys before
// probing. The choice affects probe distribution only, never correctness.
type HasherID uint8

const (
	// HasherXXHash uses cespare/xxhash (XXH64). The default.
	HasherXXHash HasherID = iota

	// HasherMurmur3 uses spaolacci/murmur3 (x64 128-bit, low half).
	HasherMurmur3

	// HasherXXH3 uses zeebo/xxh3 (XXH3-64).
	HasherXXH3
)

// String returns the hasher name.
func (h HasherID) String() string {
	switch h {
	case HasherXXHash:
		return "xxhash"
	case HasherMurmur3:
		return "murmur3"
	case HasherXXH3:
		return "xxh3"
	default:
		return "unknown"
	}
}

// hashFunc scrambles a raw key into a uniformly distributed uint64.
type hashFunc func(key int64) uint64

// hasherFor maps a HasherID to its hashFunc. Unknown IDs are rejected by
// WithHasher, so the default arm is unreachable from public entry points.
func hasherFor(id HasherID) hashFunc {
	switch id {
	case HasherMurmur3:
		return hashMurmur3
	case HasherXXH3:
		return hashXXH3
	default:
		return hashXXHash
	}
}

// keyBytes serializes a key in little-endian order for byte-oriented hashers.
// The [8]byte array stays on the stack; no per-call allocation.
func keyBytes(key int64) [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(key))
	return b
}

// hashXXHash scrambles key via XXH64.
func hashXXHash(key int64) uint64 {
	b := keyBytes(key)
	return xxhash.Sum64(b[:])
}

// hashMurmur3 scrambles key via MurmurHash3 (x64 variant).
func hashMurmur3(key int64) uint64 {
	b := keyBytes(key)
	return murmur3.Sum64(b[:])
}

// hashXXH3 scrambles key via XXH3-64.
func hashXXH3(key int64) uint64 {
	b := keyBytes(key)
	return xxh3.Hash(b[:])
}
