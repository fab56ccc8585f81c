// SPDX-License-Identifier: MIT

// Package compressed: CSR (compressed sparse row) matrix.

package compressed

import (
	"fmt"
	"sort"
)

// CSR is an immutable row-major compressed sparse matrix of float32 values.
// Entries are grouped by row; within a row, column indices are sorted
// ascending. Reads never mutate.
type CSR struct {
	rows, cols int
	rowPtr     []int     // length rows+1; rowPtr[r]..rowPtr[r+1] bounds row r
	colIdx     []int     // column index per entry, sorted within each row
	values     []float32 // value per entry, parallel to colIdx
}

// NewCSR builds a CSR matrix from COO coordinate arrays.
// When combine is true, duplicate (row, col) coordinates accumulate by
// addition; DoK-produced input never carries duplicates, but other builders
// may.
//
// Errors: ErrParallelArrays, ErrBadShape, ErrOutOfRange (from the converter).
// Complexity: O(nnz + numRows) plus per-row ordering.
func NewCSR(rows, cols []int, values []float32, numRows, numCols int,
	combine bool) (*CSR, error) {
	ptr, idx, data, err := fromCOO(rows, cols, values, numRows, numCols, combine)
	if err != nil {
		return nil, fmt.Errorf("NewCSR: %w", err)
	}

	return &CSR{rows: numRows, cols: numCols, rowPtr: ptr, colIdx: idx, values: data}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *CSR) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
// Complexity: O(1).
func (m *CSR) Cols() int {
	return m.cols
}

// NNZ returns the number of stored entries.
// Complexity: O(1).
func (m *CSR) NNZ() int {
	return len(m.values)
}

// rowBounds validates row and returns its entry range [s, e).
func (m *CSR) rowBounds(row int) (int, int, error) {
	if row < 0 || row >= m.rows {
		return 0, 0, fmt.Errorf("CSR row %d of %d: %w", row, m.rows, ErrOutOfRange)
	}

	return m.rowPtr[row], m.rowPtr[row+1], nil
}

// Get returns the value at (row, col), or def when no entry is stored there.
// Stage 1 (Validate): bounds-check both indices.
// Stage 2 (Execute): binary-search the sorted column indices of the row.
// Complexity: O(log k) for k entries in the row.
func (m *CSR) Get(row, col int, def float32) (float32, error) {
	s, e, err := m.rowBounds(row)
	if err != nil {
		return def, err
	}
	if col < 0 || col >= m.cols {
		return def, fmt.Errorf("CSR col %d of %d: %w", col, m.cols, ErrOutOfRange)
	}

	seg := m.colIdx[s:e]
	i := sort.SearchInts(seg, col)
	if i < len(seg) && seg[i] == col {
		return m.values[s+i], nil
	}

	return def, nil
}

// GetRow materializes row into dst: the first min(len(dst), Cols()) positions
// are overwritten (zeros for absent entries); positions beyond are untouched.
// Complexity: O(cols).
func (m *CSR) GetRow(row int, dst []float32) error {
	s, e, err := m.rowBounds(row)
	if err != nil {
		return err
	}

	end := len(dst)
	if m.cols < end {
		end = m.cols
	}
	for i := 0; i < end; i++ {
		dst[i] = 0
	}
	for i := s; i < e; i++ {
		if m.colIdx[i] < end {
			dst[m.colIdx[i]] = m.values[i]
		}
	}

	return nil
}

// ColumnsInRow returns the number of stored entries in row.
// Complexity: O(1) — the row pointer array answers directly.
func (m *CSR) ColumnsInRow(row int) (int, error) {
	s, e, err := m.rowBounds(row)
	if err != nil {
		return 0, err
	}

	return e - s, nil
}

// EachInRow invokes proc for every column of row in ascending column order.
// Absent entries are reported as 0 only when materializeZeros is set.
// Complexity: O(cols) with materializeZeros, O(k) otherwise.
func (m *CSR) EachInRow(row int, proc func(col int, v float32), materializeZeros bool) error {
	s, e, err := m.rowBounds(row)
	if err != nil {
		return err
	}

	if !materializeZeros {
		for i := s; i < e; i++ {
			proc(m.colIdx[i], m.values[i])
		}
		return nil
	}

	next := s // cursor over the stored entries of the row
	for col := 0; col < m.cols; col++ {
		if next < e && m.colIdx[next] == col {
			proc(col, m.values[next])
			next++
			continue
		}
		proc(col, 0)
	}

	return nil
}

// EachNonZeroInRow invokes proc for every entry of row whose stored value is
// non-zero, in ascending column order. A stored explicit zero (possible when
// combined duplicates cancel) is skipped.
// Complexity: O(k) for k entries in the row.
func (m *CSR) EachNonZeroInRow(row int, proc func(col int, v float32)) error {
	s, e, err := m.rowBounds(row)
	if err != nil {
		return err
	}

	for i := s; i < e; i++ {
		if m.values[i] != 0 {
			proc(m.colIdx[i], m.values[i])
		}
	}

	return nil
}

// EachNonZeroCell invokes proc for every stored non-zero entry, row by row,
// columns ascending within each row.
// Complexity: O(nnz).
func (m *CSR) EachNonZeroCell(proc func(row, col int, v float32)) {
	for row := 0; row < m.rows; row++ {
		for i := m.rowPtr[row]; i < m.rowPtr[row+1]; i++ {
			if m.values[i] != 0 {
				proc(row, m.colIdx[i], m.values[i])
			}
		}
	}
}
