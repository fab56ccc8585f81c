// Package dokmatrix is an in-memory toolkit for building sparse float32
// matrices incrementally and handing them off to linear-algebra consumers.
//
// 🚀 What is dokmatrix?
//
//	A small, focused library that brings together:
//		• floatmap/    — an open-addressing int64→float32 hash table with an
//		  implicit default value, slot-level access and a slot-order iterator
//		• dok/         — a Dictionary-Of-Keys sparse matrix: growable or
//		  fixed-shape, O(1) random writes, row/column visitation, row swap
//		• compressed/  — read-optimized CSR/CSC matrices plus the COO
//		  counting-sort converter that builds them in O(nnz + rows + cols)
//
// ✨ Why choose dokmatrix?
//
//   - Construction-friendly – random-order Set/Get at hash-table speed
//   - Conversion-ready – one call turns a DoK into CSR or CSC for traversal
//   - Predictable errors – sentinel errors, errors.Is-friendly, no surprises
//   - Pure Go – no cgo; hashing backed by xxhash/murmur3/xxh3
//
// The usual flow: fill a dok.Matrix with Set calls in any order, then call
// ToRowMajor (CSR) or ToColumnMajor (CSC) once for downstream reads.
//
// Single-threaded by design: matrices and tables carry no internal locking;
// callers own the synchronization story.
//
//	go get github.com/katalvlaran/dokmatrix
package dokmatrix
