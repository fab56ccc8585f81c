// SPDX-License-Identifier: MIT

// Package dok implements a Dictionary-Of-Keys sparse matrix of float32
// values: a hash table keyed by a packed (row, column) coordinate.
//
// The dok package provides:
//
//   - Matrix — growable or fixed-shape sparse matrix with O(1) expected
//     random reads and writes, non-zero bookkeeping (NNZ), row swap, and
//     row/column/full-matrix visitation.
//   - PackKey/UnpackKey — the bit-exact 64-bit coordinate encoding (row in
//     the high 32 bits, column in the low 32 bits).
//   - Vector/DenseVector — the dense-row abstraction used by GetRowVector.
//   - ToRowMajor/ToColumnMajor — one-shot conversion into the read-optimized
//     compressed.CSR/compressed.CSC layouts.
//
// DoK is the right shape for incremental construction: writes land in any
// order at hash-table speed, and "absent means zero" keeps memory at O(nnz).
// Structured traversal over rows or columns is O(cols)/O(rows) per lane;
// convert to CSR/CSC once construction is done when traversal dominates.
//
// Matrices are single-threaded: no internal locking, and concurrent
// mutation is undefined behavior.
package dok
