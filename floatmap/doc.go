// SPDX-License-Identifier: MIT

// Package floatmap implements an open-addressing hash table specialized for
// int64 keys and float32 values, with an implicit default value for absent
// keys ("absent means default").
//
// The floatmap package provides:
//
//   - Map — double-hashing open addressing over prime-sized flat arrays,
//     tombstone deletion, automatic grow-and-rehash at a configurable load
//     factor.
//   - Slot-level accessors (FindSlot/ValueAt/SetAt/RemoveAt) so callers that
//     relocate entries between two known keys can avoid redundant probes.
//   - Iterator — a restartable forward iterator over occupied slots, in the
//     table's internal slot order.
//
// The table is the backing store of dok.Matrix; it owns its arrays
// exclusively and performs no locking. Concurrent mutation is undefined
// behavior and must be prevented by the caller.
package floatmap
