// SPDX-License-Identifier: MIT

// Package dok_test: DenseVector coverage.
package dok_test

import (
	"testing"

	"github.com/katalvlaran/dokmatrix/dok"
	"github.com/stretchr/testify/require"
)

// TestDenseVectorBasics covers construction, Set/At and Clear.
func TestDenseVectorBasics(t *testing.T) {
	v := dok.NewDenseVector(3)
	require.Equal(t, 3, v.Len())

	v.Set(1, 2.5)
	require.Equal(t, float32(2.5), v.At(1))
	require.Equal(t, float32(0), v.At(0))  // untouched position
	require.Equal(t, float32(0), v.At(99)) // beyond length reads as zero
	require.Equal(t, float32(0), v.At(-1)) // negative reads as zero

	v.Clear()
	require.Equal(t, float32(0), v.At(1)) // cleared
	require.Equal(t, 3, v.Len())          // length kept
}

// TestDenseVectorGrowsOnSet verifies extend-with-zeros semantics.
func TestDenseVectorGrowsOnSet(t *testing.T) {
	v := dok.NewDenseVector(1)

	v.Set(4, 7) // beyond current length
	require.Equal(t, 5, v.Len())
	require.Equal(t, []float32{0, 0, 0, 0, 7}, v.Values())

	v.Set(-1, 3) // negative indices are ignored
	require.Equal(t, 5, v.Len())
}
