// SPDX-License-Identifier: MIT

// Package dok: one-shot conversion into compressed layouts.
// The hash table is drained through its iterator into three parallel arrays
// (rows, cols, values) and handed to the compressed package's COO converter.
// An iterator that runs dry before yielding the table's reported size means
// the table and its bookkeeping disagree — an internal invariant violation
// that panics rather than silently truncating the conversion.

package dok

import (
	"fmt"

	"github.com/katalvlaran/dokmatrix/compressed"
)

// ToRowMajor converts the matrix into a read-optimized CSR layout.
// The DoK never stores duplicate coordinates, but the converter's
// duplicate-combination flag is set regardless so the contract holds for
// matrices assembled through other paths.
//
// Errors: converter sentinels (compressed.ErrOutOfRange et al.) — not
// expected for a well-formed matrix. Panics on table/iterator
// desynchronization.
// Complexity: O(nnz + rows + cols).
func (m *Matrix) ToRowMajor() (*compressed.CSR, error) {
	rows, cols, values := m.drain()
	return compressed.NewCSR(rows, cols, values, m.rows, m.cols, true)
}

// ToColumnMajor converts the matrix into a read-optimized CSC layout.
// Same contract as ToRowMajor.
// Complexity: O(nnz + rows + cols).
func (m *Matrix) ToColumnMajor() (*compressed.CSC, error) {
	rows, cols, values := m.drain()
	return compressed.NewCSC(rows, cols, values, m.rows, m.cols, true)
}

// drain empties the hash table into parallel coordinate/value arrays via one
// iterator pass, unpacking each entry's key.
func (m *Matrix) drain() (rows, cols []int, values []float32) {
	n := m.elements.Size()
	rows = make([]int, n)
	cols = make([]int, n)
	values = make([]float32, n)

	it := m.elements.Iter()
	for i := 0; i < n; i++ {
		if !it.Next() {
			// Table size and iteration disagree: the backing store is
			// corrupt and the conversion must not truncate silently.
			panic(fmt.Sprintf("dok: iterator exhausted at entry %d of %d", i, n))
		}
		rows[i] = KeyRow(it.Key())
		cols[i] = KeyCol(it.Key())
		values[i] = it.Value()
	}

	return rows, cols, values
}
