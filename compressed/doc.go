// SPDX-License-Identifier: MIT

// Package compressed implements read-optimized sparse matrix layouts:
//
//   - CSR — compressed sparse row: entries grouped by row, column indices
//     sorted within each row, O(1) row-start lookup, O(log k) element reads.
//   - CSC — compressed sparse column: the column-major mirror of CSR.
//
// Both are built from COO (coordinate) form — three parallel arrays of row
// indices, column indices and values — by a counting-sort converter that
// runs in O(nnz + rows + cols) with no comparison sort across rows. An
// optional flag accumulates duplicate coordinates by summation, for inputs
// built through paths that may repeat a coordinate.
//
// Matrices in this package are immutable after construction. The usual
// producer is dok.Matrix, whose ToRowMajor/ToColumnMajor drain its hash
// table into the parallel arrays consumed here.
package compressed
