// SPDX-License-Identifier: MIT

// Package dok: the Matrix type — construction, element access, row swap and
// per-row accessors. Visitation lives in iterate.go, conversion in
// convert.go, the coordinate encoding in key.go.

package dok

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dokmatrix/floatmap"
)

// Matrix is a Dictionary-Of-Keys sparse matrix of float32 values.
//
// The backing hash table is owned exclusively by the Matrix and never
// escapes; "absent key" and "value zero" are the same thing to readers.
// Two shape policies share this one type, chosen at construction:
//
//   - growable (New, NewWithSize): Rows/Cols extend monotonically whenever a
//     write lands at or beyond the current bounds; they never shrink.
//   - fixed (NewFixed): writes outside the constructed shape fail with
//     ErrOutOfRange; the shape is immutable for the life of the value.
//
// NNZ counts entries present in the table. Entries are only ever created by
// a non-zero write; overwriting a present entry — even with zero — neither
// creates nor removes it, so NNZ is monotonic (there is no delete).
// Not safe for concurrent use.
type Matrix struct {
	elements *floatmap.Map // sole backing store, never aliased outward

	rows, cols int
	nnz        int
	fixed      bool
}

// New creates an empty growable matrix with 0×0 logical extent.
// Dimensions extend as writes land. Accepts the same options as NewWithSize.
//
// Errors: ErrInvalidSparsity.
// Complexity: O(initial capacity).
func New(opts ...Option) (*Matrix, error) {
	return newMatrix(0, 0, false, opts...)
}

// NewWithSize creates a growable matrix with an initial logical extent.
// The extent seeds the sparsity-based table sizing and still grows on
// out-of-bounds writes.
//
// Errors: ErrBadShape (negative dims), ErrInvalidSparsity.
// Complexity: O(initial capacity).
func NewWithSize(rows, cols int, opts ...Option) (*Matrix, error) {
	return newMatrix(rows, cols, false, opts...)
}

// NewFixed creates a fixed-shape matrix. Writes outside rows×cols fail with
// ErrOutOfRange instead of growing the extent.
//
// Errors: ErrBadShape (negative dims), ErrInvalidSparsity.
// Complexity: O(initial capacity).
func NewFixed(rows, cols int, opts ...Option) (*Matrix, error) {
	return newMatrix(rows, cols, true, opts...)
}

// newMatrix resolves options, validates them and sizes the backing table.
// Stage 1 (Validate): shape non-negative, sparsity within [0, 1].
// Stage 2 (Size): explicit capacity override, else rows*cols*sparsity,
// floored at MinInitialCapacity either way.
// Stage 3 (Build): construct the owned floatmap with default value 0.
func newMatrix(rows, cols int, fixed bool, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("dok.New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	o := gatherOptions(opts...)
	if o.sparsity < 0 || o.sparsity > 1 || math.IsNaN(o.sparsity) {
		return nil, fmt.Errorf("dok.New: sparsity %v: %w", o.sparsity, ErrInvalidSparsity)
	}

	capacity := o.capacity
	if capacity == 0 {
		capacity = int(math.Round(float64(rows) * float64(cols) * o.sparsity))
	}
	if capacity < MinInitialCapacity {
		capacity = MinInitialCapacity
	}

	return &Matrix{
		elements: floatmap.New(
			floatmap.WithCapacity(capacity),
			floatmap.WithDefaultValue(0),
			floatmap.WithHasher(o.hasher),
		),
		rows:  rows,
		cols:  cols,
		fixed: fixed,
	}, nil
}

// Rows returns the current number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the current number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols
}

// NNZ returns the number of entries present in the backing table.
// Complexity: O(1).
func (m *Matrix) NNZ() int {
	return m.nnz
}

// Fixed reports whether the matrix shape is immutable.
// Complexity: O(1).
func (m *Matrix) Fixed() bool {
	return m.fixed
}

// Get returns the value at (row, col), or def when no entry is stored there.
// Reads beyond the current extent are legal and report def; only negative
// indices are rejected. No mutation.
//
// Errors: ErrNegativeIndex.
// Complexity: O(1) expected.
func (m *Matrix) Get(row, col int, def float32) (float32, error) {
	if row < 0 || col < 0 {
		return def, fmt.Errorf("dok.Get(%d,%d): %w", row, col, ErrNegativeIndex)
	}

	return m.elements.GetOrDefault(PackKey(row, col), def), nil
}

// Set writes value at (row, col).
//
// Behavior highlights:
//   - Writing zero to an absent cell is a no-op: sparsity is preserved and
//     no entry materializes.
//   - A write creating an entry increments NNZ and, on a growable matrix,
//     extends Rows/Cols to cover the cell.
//   - Overwriting a present entry (any value, including zero) leaves NNZ and
//     the extent unchanged.
//
// Errors: ErrNegativeIndex; ErrOutOfRange (fixed shape only).
// Complexity: O(1) amortized.
func (m *Matrix) Set(row, col int, value float32) error {
	_, err := m.update(row, col, value)
	return err
}

// GetAndSet writes value at (row, col) with Set semantics and additionally
// returns the value that was present before the write (zero if none).
//
// Errors: ErrNegativeIndex; ErrOutOfRange (fixed shape only).
// Complexity: O(1) amortized.
func (m *Matrix) GetAndSet(row, col int, value float32) (float32, error) {
	return m.update(row, col, value)
}

// update implements the shared Set/GetAndSet mutation path.
// Presence is decided by slot lookup, not by comparing the previous value
// against zero, so a stored explicit zero is never mistaken for absence and
// NNZ stays exact.
func (m *Matrix) update(row, col int, value float32) (float32, error) {
	if row < 0 || col < 0 {
		return 0, fmt.Errorf("dok.Set(%d,%d): %w", row, col, ErrNegativeIndex)
	}
	if m.fixed && (row >= m.rows || col >= m.cols) {
		return 0, fmt.Errorf("dok.Set(%d,%d) in %dx%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}

	key := PackKey(row, col)
	if slot := m.elements.FindSlot(key); slot >= 0 {
		return m.elements.SetAt(slot, value), nil // present: in-place overwrite
	}

	// Absent cell: zero writes never materialize an entry.
	if value == 0 {
		return 0, nil
	}

	m.elements.Put(key, value)
	m.nnz++
	if !m.fixed {
		if row >= m.rows {
			m.rows = row + 1
		}
		if col >= m.cols {
			m.cols = col + 1
		}
	}

	return 0, nil
}

// Swap exchanges the entire contents of two rows, column by column, across
// the full current column range.
//
// Implementation:
//   - Stage 1 (Validate): both rows inside [0, Rows).
//   - Stage 2 (Exchange): per column — both present: exchange values at the
//     two existing slots (no key churn); one present: tombstone it and
//     re-insert under the other row's key; neither: skip.
//
// Behavior highlights:
//   - NNZ is unchanged; entries move, none appear or vanish.
//   - Swap is its own inverse: applying it twice restores the original.
//
// Errors: ErrNegativeIndex, ErrOutOfRange.
// Complexity: O(cols) expected.
func (m *Matrix) Swap(row1, row2 int) error {
	if err := m.checkRow("Swap", row1); err != nil {
		return err
	}
	if err := m.checkRow("Swap", row2); err != nil {
		return err
	}

	for col := 0; col < m.cols; col++ {
		k1 := PackKey(row1, col)
		k2 := PackKey(row2, col)

		s1 := m.elements.FindSlot(k1)
		s2 := m.elements.FindSlot(k2)

		switch {
		case s1 >= 0 && s2 >= 0:
			// Both present: in-place value exchange, slots keep their keys.
			v1 := m.elements.ValueAt(s1)
			v2 := m.elements.SetAt(s2, v1)
			m.elements.SetAt(s1, v2)
		case s1 >= 0:
			// Only row1 holds this column: relocate the entry under k2.
			m.elements.Put(k2, m.elements.RemoveAt(s1))
		case s2 >= 0:
			// Only row2 holds this column: relocate the entry under k1.
			m.elements.Put(k1, m.elements.RemoveAt(s2))
		}
	}

	return nil
}

// ColumnsInRow counts the columns of row holding a present entry.
// DoK carries no per-row index, so this scans all columns — O(cols), not
// O(nnz); a deliberate trade-off of the representation.
//
// Errors: ErrNegativeIndex, ErrOutOfRange.
func (m *Matrix) ColumnsInRow(row int) (int, error) {
	if err := m.checkRow("ColumnsInRow", row); err != nil {
		return 0, err
	}

	count := 0
	for col := 0; col < m.cols; col++ {
		if m.elements.ContainsKey(PackKey(row, col)) {
			count++
		}
	}

	return count, nil
}

// GetRow fills the first min(len(dst), Cols()) positions of dst with the
// row's values (zeros for absent cells); positions beyond are untouched.
//
// Errors: ErrNegativeIndex, ErrOutOfRange.
// Complexity: O(min(len(dst), cols)) expected.
func (m *Matrix) GetRow(row int, dst []float32) error {
	if err := m.checkRow("GetRow", row); err != nil {
		return err
	}

	end := len(dst)
	if m.cols < end {
		end = m.cols
	}
	for col := 0; col < end; col++ {
		dst[col] = m.elements.Get(PackKey(row, col))
	}

	return nil
}

// GetRowVector clears v and sets every non-zero cell of the row into it.
// Zero-valued cells (absent or stored) are skipped, so v's own default
// stands in for them.
//
// Errors: ErrNegativeIndex, ErrOutOfRange, ErrNilVector.
// Complexity: O(cols) expected.
func (m *Matrix) GetRowVector(row int, v Vector) error {
	if err := m.checkRow("GetRowVector", row); err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("dok.GetRowVector(%d): %w", row, ErrNilVector)
	}

	v.Clear()
	for col := 0; col < m.cols; col++ {
		if val := m.elements.Get(PackKey(row, col)); val != 0 {
			v.Set(col, val)
		}
	}

	return nil
}

// checkRow validates a row index against the current extent.
func (m *Matrix) checkRow(op string, row int) error {
	if row < 0 {
		return fmt.Errorf("dok.%s: row %d: %w", op, row, ErrNegativeIndex)
	}
	if row >= m.rows {
		return fmt.Errorf("dok.%s: row %d of %d: %w", op, row, m.rows, ErrOutOfRange)
	}

	return nil
}

// checkCol validates a column index against the current extent.
func (m *Matrix) checkCol(op string, col int) error {
	if col < 0 {
		return fmt.Errorf("dok.%s: col %d: %w", op, col, ErrNegativeIndex)
	}
	if col >= m.cols {
		return fmt.Errorf("dok.%s: col %d of %d: %w", op, col, m.cols, ErrOutOfRange)
	}

	return nil
}
