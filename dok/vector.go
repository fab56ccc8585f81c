// SPDX-License-Identifier: MIT

// Package dok: the dense-vector abstraction consumed by GetRowVector.

package dok

// Vector is the minimal dense-row sink: GetRowVector clears it, then sets
// every non-zero cell of the requested row.
type Vector interface {
	// Clear resets every position to zero.
	Clear()

	// Set assigns value at index. Implementations define their own policy
	// for indices beyond their current length.
	Set(index int, value float32)
}

// DenseVector is a flat float32 implementation of Vector that grows on
// demand: Set beyond the current length extends the vector with zeros.
// Negative indices are ignored.
type DenseVector struct {
	data []float32
}

// NewDenseVector creates a DenseVector of length n, initialized to zeros.
// Complexity: O(n).
func NewDenseVector(n int) *DenseVector {
	return &DenseVector{data: make([]float32, n)}
}

// Len returns the current length.
// Complexity: O(1).
func (v *DenseVector) Len() int {
	return len(v.data)
}

// At returns the value at index, or 0 when index is outside the current
// length — mirroring the sparse "absent means zero" convention.
// Complexity: O(1).
func (v *DenseVector) At(index int) float32 {
	if index < 0 || index >= len(v.data) {
		return 0
	}

	return v.data[index]
}

// Clear resets every position to zero, keeping the length.
// Complexity: O(len).
func (v *DenseVector) Clear() {
	for i := range v.data {
		v.data[i] = 0
	}
}

// Set assigns value at index, extending the vector with zeros when index is
// at or beyond the current length. Negative indices are ignored.
// Complexity: O(1) amortized.
func (v *DenseVector) Set(index int, value float32) {
	if index < 0 {
		return
	}
	for index >= len(v.data) {
		v.data = append(v.data, 0)
	}
	v.data[index] = value
}

// Values returns the backing slice (not a copy); treat it as read-only.
// Complexity: O(1).
func (v *DenseVector) Values() []float32 {
	return v.data
}
