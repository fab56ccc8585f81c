// SPDX-License-Identifier: MIT

// Package dok: callback visitation over rows, columns and the whole matrix.
// Row/column walks visit lanes in index order; the whole-matrix walk follows
// the hash table's slot order, which is unspecified and unstable across
// mutations. Callbacks must not mutate the matrix they visit.

package dok

import "fmt"

// IndexProc receives one lane position and its value during a row or column
// walk.
type IndexProc func(index int, value float32)

// ColProc receives a column index during EachColumnIndexInRow.
type ColProc func(col int)

// CellProc receives a full (row, col, value) cell during EachNonZeroCell.
type CellProc func(row, col int, value float32)

// EachInRow invokes proc for every column of row in ascending column order.
// Absent cells are reported as 0 only when materializeZeros is set;
// otherwise only present entries (including stored zeros) are visited.
//
// Errors: ErrNegativeIndex, ErrOutOfRange, ErrNilProcedure.
// Complexity: O(cols) expected.
func (m *Matrix) EachInRow(row int, proc IndexProc, materializeZeros bool) error {
	if err := m.checkRow("EachInRow", row); err != nil {
		return err
	}
	if proc == nil {
		return fmt.Errorf("dok.EachInRow(%d): %w", row, ErrNilProcedure)
	}

	for col := 0; col < m.cols; col++ {
		slot := m.elements.FindSlot(PackKey(row, col))
		if slot < 0 {
			if materializeZeros {
				proc(col, 0)
			}
			continue
		}
		proc(col, m.elements.ValueAt(slot))
	}

	return nil
}

// EachNonZeroInRow invokes proc for every column of row whose STORED value
// is non-zero, in ascending column order. The value is re-checked at read
// time: an explicit zero written over a present entry is correctly skipped.
//
// Errors: ErrNegativeIndex, ErrOutOfRange, ErrNilProcedure.
// Complexity: O(cols) expected.
func (m *Matrix) EachNonZeroInRow(row int, proc IndexProc) error {
	if err := m.checkRow("EachNonZeroInRow", row); err != nil {
		return err
	}
	if proc == nil {
		return fmt.Errorf("dok.EachNonZeroInRow(%d): %w", row, ErrNilProcedure)
	}

	for col := 0; col < m.cols; col++ {
		if v := m.elements.Get(PackKey(row, col)); v != 0 {
			proc(col, v)
		}
	}

	return nil
}

// EachColumnIndexInRow invokes proc with the column index of every present
// entry in row, regardless of its stored value, in ascending column order.
//
// Errors: ErrNegativeIndex, ErrOutOfRange, ErrNilProcedure.
// Complexity: O(cols) expected.
func (m *Matrix) EachColumnIndexInRow(row int, proc ColProc) error {
	if err := m.checkRow("EachColumnIndexInRow", row); err != nil {
		return err
	}
	if proc == nil {
		return fmt.Errorf("dok.EachColumnIndexInRow(%d): %w", row, ErrNilProcedure)
	}

	for col := 0; col < m.cols; col++ {
		if m.elements.ContainsKey(PackKey(row, col)) {
			proc(col)
		}
	}

	return nil
}

// EachInColumn invokes proc for every row of col in ascending row order.
// Absent cells are reported as 0 only when materializeZeros is set.
//
// Errors: ErrNegativeIndex, ErrOutOfRange, ErrNilProcedure.
// Complexity: O(rows) expected.
func (m *Matrix) EachInColumn(col int, proc IndexProc, materializeZeros bool) error {
	if err := m.checkCol("EachInColumn", col); err != nil {
		return err
	}
	if proc == nil {
		return fmt.Errorf("dok.EachInColumn(%d): %w", col, ErrNilProcedure)
	}

	for row := 0; row < m.rows; row++ {
		slot := m.elements.FindSlot(PackKey(row, col))
		if slot < 0 {
			if materializeZeros {
				proc(row, 0)
			}
			continue
		}
		proc(row, m.elements.ValueAt(slot))
	}

	return nil
}

// EachNonZeroInColumn invokes proc for every row of col whose stored value
// is non-zero, in ascending row order.
//
// Errors: ErrNegativeIndex, ErrOutOfRange, ErrNilProcedure.
// Complexity: O(rows) expected.
func (m *Matrix) EachNonZeroInColumn(col int, proc IndexProc) error {
	if err := m.checkCol("EachNonZeroInColumn", col); err != nil {
		return err
	}
	if proc == nil {
		return fmt.Errorf("dok.EachNonZeroInColumn(%d): %w", col, ErrNilProcedure)
	}

	for row := 0; row < m.rows; row++ {
		if v := m.elements.Get(PackKey(row, col)); v != 0 {
			proc(row, v)
		}
	}

	return nil
}

// EachNonZeroCell invokes proc with every present entry of the matrix, in
// hash-table slot order — one table pass, O(nnz) rather than O(rows×cols).
// This is the fast full-matrix traversal; the visit order is unspecified.
//
// Errors: ErrNilProcedure.
func (m *Matrix) EachNonZeroCell(proc CellProc) error {
	if proc == nil {
		return fmt.Errorf("dok.EachNonZeroCell: %w", ErrNilProcedure)
	}
	if m.nnz == 0 {
		return nil
	}

	it := m.elements.Iter()
	for it.Next() {
		proc(KeyRow(it.Key()), KeyCol(it.Key()), it.Value())
	}

	return nil
}
