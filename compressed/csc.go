// SPDX-License-Identifier: MIT

// Package compressed: CSC (compressed sparse column) matrix — the
// column-major mirror of CSR.

package compressed

import (
	"fmt"
	"sort"
)

// CSC is an immutable column-major compressed sparse matrix of float32
// values. Entries are grouped by column; within a column, row indices are
// sorted ascending. Reads never mutate.
type CSC struct {
	rows, cols int
	colPtr     []int     // length cols+1; colPtr[c]..colPtr[c+1] bounds column c
	rowIdx     []int     // row index per entry, sorted within each column
	values     []float32 // value per entry, parallel to rowIdx
}

// NewCSC builds a CSC matrix from COO coordinate arrays.
// When combine is true, duplicate (row, col) coordinates accumulate by
// addition.
//
// Errors: ErrParallelArrays, ErrBadShape, ErrOutOfRange (from the converter).
// Complexity: O(nnz + numCols) plus per-column ordering.
func NewCSC(rows, cols []int, values []float32, numRows, numCols int,
	combine bool) (*CSC, error) {
	// The converter compresses along its major axis; for CSC that is columns.
	ptr, idx, data, err := fromCOO(cols, rows, values, numCols, numRows, combine)
	if err != nil {
		return nil, fmt.Errorf("NewCSC: %w", err)
	}

	return &CSC{rows: numRows, cols: numCols, colPtr: ptr, rowIdx: idx, values: data}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *CSC) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
// Complexity: O(1).
func (m *CSC) Cols() int {
	return m.cols
}

// NNZ returns the number of stored entries.
// Complexity: O(1).
func (m *CSC) NNZ() int {
	return len(m.values)
}

// colBounds validates col and returns its entry range [s, e).
func (m *CSC) colBounds(col int) (int, int, error) {
	if col < 0 || col >= m.cols {
		return 0, 0, fmt.Errorf("CSC col %d of %d: %w", col, m.cols, ErrOutOfRange)
	}

	return m.colPtr[col], m.colPtr[col+1], nil
}

// Get returns the value at (row, col), or def when no entry is stored there.
// Complexity: O(log k) for k entries in the column.
func (m *CSC) Get(row, col int, def float32) (float32, error) {
	s, e, err := m.colBounds(col)
	if err != nil {
		return def, err
	}
	if row < 0 || row >= m.rows {
		return def, fmt.Errorf("CSC row %d of %d: %w", row, m.rows, ErrOutOfRange)
	}

	seg := m.rowIdx[s:e]
	i := sort.SearchInts(seg, row)
	if i < len(seg) && seg[i] == row {
		return m.values[s+i], nil
	}

	return def, nil
}

// GetColumn materializes col into dst: the first min(len(dst), Rows())
// positions are overwritten (zeros for absent entries); positions beyond are
// untouched.
// Complexity: O(rows).
func (m *CSC) GetColumn(col int, dst []float32) error {
	s, e, err := m.colBounds(col)
	if err != nil {
		return err
	}

	end := len(dst)
	if m.rows < end {
		end = m.rows
	}
	for i := 0; i < end; i++ {
		dst[i] = 0
	}
	for i := s; i < e; i++ {
		if m.rowIdx[i] < end {
			dst[m.rowIdx[i]] = m.values[i]
		}
	}

	return nil
}

// RowsInColumn returns the number of stored entries in col.
// Complexity: O(1).
func (m *CSC) RowsInColumn(col int) (int, error) {
	s, e, err := m.colBounds(col)
	if err != nil {
		return 0, err
	}

	return e - s, nil
}

// EachInColumn invokes proc for every row of col in ascending row order.
// Absent entries are reported as 0 only when materializeZeros is set.
// Complexity: O(rows) with materializeZeros, O(k) otherwise.
func (m *CSC) EachInColumn(col int, proc func(row int, v float32), materializeZeros bool) error {
	s, e, err := m.colBounds(col)
	if err != nil {
		return err
	}

	if !materializeZeros {
		for i := s; i < e; i++ {
			proc(m.rowIdx[i], m.values[i])
		}
		return nil
	}

	next := s // cursor over the stored entries of the column
	for row := 0; row < m.rows; row++ {
		if next < e && m.rowIdx[next] == row {
			proc(row, m.values[next])
			next++
			continue
		}
		proc(row, 0)
	}

	return nil
}

// EachNonZeroInColumn invokes proc for every entry of col whose stored value
// is non-zero, in ascending row order.
// Complexity: O(k) for k entries in the column.
func (m *CSC) EachNonZeroInColumn(col int, proc func(row int, v float32)) error {
	s, e, err := m.colBounds(col)
	if err != nil {
		return err
	}

	for i := s; i < e; i++ {
		if m.values[i] != 0 {
			proc(m.rowIdx[i], m.values[i])
		}
	}

	return nil
}

// EachNonZeroCell invokes proc for every stored non-zero entry, column by
// column, rows ascending within each column.
// Complexity: O(nnz).
func (m *CSC) EachNonZeroCell(proc func(row, col int, v float32)) {
	for col := 0; col < m.cols; col++ {
		for i := m.colPtr[col]; i < m.colPtr[col+1]; i++ {
			if m.values[i] != 0 {
				proc(m.rowIdx[i], col, m.values[i])
			}
		}
	}
}
