// SPDX-License-Identifier: MIT

// Package compressed_test: CSC coverage mirroring the CSR suite along the
// column axis.
package compressed_test

import (
	"testing"

	"github.com/katalvlaran/dokmatrix/compressed"
	"github.com/stretchr/testify/require"
)

// newTestCSC builds the same 3×3 matrix as newTestCSR in column-major form.
func newTestCSC(t *testing.T) *compressed.CSC {
	t.Helper()

	rows := []int{2, 0, 1}
	cols := []int{1, 0, 2}
	vals := []float32{-4.0, 1.5, 3.25}

	m, err := compressed.NewCSC(rows, cols, vals, 3, 3, true)
	require.NoError(t, err)

	return m
}

// TestNewCSCShape verifies dimensions and entry count.
func TestNewCSCShape(t *testing.T) {
	m := newTestCSC(t)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 3, m.NNZ())
}

// TestNewCSCValidation covers the construction error sentinels.
func TestNewCSCValidation(t *testing.T) {
	_, err := compressed.NewCSC([]int{0, 1}, []int{0}, []float32{1}, 2, 2, false)
	require.ErrorIs(t, err, compressed.ErrParallelArrays)

	_, err = compressed.NewCSC(nil, nil, nil, 2, -2, false)
	require.ErrorIs(t, err, compressed.ErrBadShape)

	_, err = compressed.NewCSC([]int{0}, []int{5}, []float32{1}, 2, 2, false)
	require.ErrorIs(t, err, compressed.ErrOutOfRange)
}

// TestCSCGet reads present and absent cells plus the bounds sentinels.
func TestCSCGet(t *testing.T) {
	m := newTestCSC(t)

	v, err := m.Get(2, 1, 0)
	require.NoError(t, err)
	require.Equal(t, float32(-4.0), v) // stored entry

	v, err = m.Get(0, 1, 6)
	require.NoError(t, err)
	require.Equal(t, float32(6), v) // absent entry reads as the default

	_, err = m.Get(0, 3, 0)
	require.ErrorIs(t, err, compressed.ErrOutOfRange) // column beyond bounds

	_, err = m.Get(-1, 0, 0)
	require.ErrorIs(t, err, compressed.ErrOutOfRange) // negative row
}

// TestCSCGetColumn checks dense column materialization.
func TestCSCGetColumn(t *testing.T) {
	m := newTestCSC(t)

	dst := make([]float32, 3)
	require.NoError(t, m.GetColumn(1, dst))
	require.Equal(t, []float32{0, 0, -4.0}, dst) // column 1 densified

	require.ErrorIs(t, m.GetColumn(3, dst), compressed.ErrOutOfRange)
}

// TestCSCRowsInColumn verifies the O(1) per-column entry count.
func TestCSCRowsInColumn(t *testing.T) {
	m := newTestCSC(t)

	n, err := m.RowsInColumn(2)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = m.RowsInColumn(-1)
	require.ErrorIs(t, err, compressed.ErrOutOfRange)
}

// TestCSCEachInColumn checks ascending-row visitation with and without
// materialized zeros.
func TestCSCEachInColumn(t *testing.T) {
	m := newTestCSC(t)

	var rows []int
	var vals []float32
	require.NoError(t, m.EachInColumn(0, func(row int, v float32) {
		rows = append(rows, row)
		vals = append(vals, v)
	}, true))
	require.Equal(t, []int{0, 1, 2}, rows)        // every row, in order
	require.Equal(t, []float32{1.5, 0, 0}, vals)  // zeros materialized

	rows = nil
	require.NoError(t, m.EachNonZeroInColumn(0, func(row int, v float32) {
		rows = append(rows, row)
	}))
	require.Equal(t, []int{0}, rows) // stored entries only
}

// TestCSCEachNonZeroCellOrder pins the column-major visitation order.
func TestCSCEachNonZeroCellOrder(t *testing.T) {
	m := newTestCSC(t)

	type cell struct {
		row, col int
		v        float32
	}
	var got []cell
	m.EachNonZeroCell(func(row, col int, v float32) {
		got = append(got, cell{row, col, v})
	})

	require.Equal(t, []cell{
		{0, 0, 1.5},
		{2, 1, -4.0},
		{1, 2, 3.25},
	}, got) // columns ascending, rows ascending within each column
}

// TestCSCCombineDuplicates ensures duplicate coordinates accumulate along
// the column axis too.
func TestCSCCombineDuplicates(t *testing.T) {
	rows := []int{1, 1, 0}
	cols := []int{0, 0, 0}
	vals := []float32{2.5, 0.5, 1}

	m, err := compressed.NewCSC(rows, cols, vals, 2, 1, true)
	require.NoError(t, err)
	require.Equal(t, 2, m.NNZ())

	v, err := m.Get(1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(3), v) // 2.5 + 0.5 accumulated
}
