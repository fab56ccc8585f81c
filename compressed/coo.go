// SPDX-License-Identifier: MIT

// Package compressed: the COO→compressed converter core shared by CSR and
// CSC. The converter is phrased along a "major" axis (rows for CSR, columns
// for CSC); callers pass the axes in the appropriate order.

package compressed

import (
	"fmt"
	"sort"
)

// fromCOO builds a compressed layout from parallel coordinate arrays.
//
// Implementation:
//   - Stage 1 (Validate): equal array lengths, non-negative shape, every
//     entry inside the declared bounds.
//   - Stage 2 (Histogram): count entries per major index, prefix-sum into
//     the ptr array — ptr[i] is the start offset of major index i.
//   - Stage 3 (Scatter): place each entry into its major bucket via a cursor
//     array initialized from ptr; one pass, no comparison sort across majors.
//   - Stage 4 (Order): sort each bucket by minor index so accessors can
//     binary-search; buckets are typically tiny.
//   - Stage 5 (Combine): when combine is set, adjacent equal minors within a
//     bucket accumulate by addition and the arrays compact in place.
//
// Inputs:
//   - major, minor: coordinate arrays along the compressed and the other
//     axis respectively (rows,cols for CSR; cols,rows for CSC).
//   - values: entry values, parallel to major/minor.
//   - numMajor, numMinor: declared matrix extent along each axis.
//   - combine: accumulate duplicate (major, minor) coordinates by summation.
//
// Returns:
//   - ptr: offsets array of length numMajor+1 (ptr[numMajor] == nnz).
//   - indices: minor indices, grouped by major, sorted within each group.
//   - data: values parallel to indices.
//
// Errors:
//   - ErrParallelArrays (Stage 1), ErrBadShape (Stage 1), ErrOutOfRange
//     (Stage 1, per-entry bounds).
//
// Complexity:
//   - Time O(nnz + numMajor + Σ k·log k) over bucket sizes k; Space O(nnz + numMajor).
func fromCOO(major, minor []int, values []float32, numMajor, numMinor int,
	combine bool) (ptr, indices []int, data []float32, err error) {
	// Validate parallel-array lengths before touching any entry.
	nnz := len(values)
	if len(major) != nnz || len(minor) != nnz {
		return nil, nil, nil, fmt.Errorf("fromCOO: %w", ErrParallelArrays)
	}
	// Validate declared shape.
	if numMajor < 0 || numMinor < 0 {
		return nil, nil, nil, fmt.Errorf("fromCOO: %w", ErrBadShape)
	}
	// Validate every coordinate against the declared bounds.
	for i := 0; i < nnz; i++ {
		if major[i] < 0 || major[i] >= numMajor {
			return nil, nil, nil, fmt.Errorf("fromCOO: entry %d major %d: %w", i, major[i], ErrOutOfRange)
		}
		if minor[i] < 0 || minor[i] >= numMinor {
			return nil, nil, nil, fmt.Errorf("fromCOO: entry %d minor %d: %w", i, minor[i], ErrOutOfRange)
		}
	}

	// Histogram entries per major index, shifted by one so the prefix sum
	// lands start offsets directly into ptr.
	ptr = make([]int, numMajor+1)
	for i := 0; i < nnz; i++ {
		ptr[major[i]+1]++
	}
	for i := 0; i < numMajor; i++ {
		ptr[i+1] += ptr[i]
	}

	// Scatter entries into their buckets using a cursor per major index.
	indices = make([]int, nnz)
	data = make([]float32, nnz)
	cursor := make([]int, numMajor)
	copy(cursor, ptr[:numMajor])
	for i := 0; i < nnz; i++ {
		p := cursor[major[i]]
		indices[p] = minor[i]
		data[p] = values[i]
		cursor[major[i]] = p + 1
	}

	// Order each bucket by minor index (required for binary-search reads).
	for i := 0; i < numMajor; i++ {
		s, e := ptr[i], ptr[i+1]
		if e-s > 1 {
			sort.Sort(pairSorter{idx: indices[s:e], val: data[s:e]})
		}
	}

	if combine {
		ptr, indices, data = combineDuplicates(ptr, indices, data, numMajor)
	}

	return ptr, indices, data, nil
}

// combineDuplicates merges adjacent equal minors within each sorted bucket,
// accumulating values by addition, and compacts the arrays in place.
// Complexity: O(nnz + numMajor).
func combineDuplicates(ptr, indices []int, data []float32,
	numMajor int) ([]int, []int, []float32) {
	w := 0 // write cursor over the compacted arrays
	newPtr := make([]int, numMajor+1)
	for i := 0; i < numMajor; i++ {
		newPtr[i] = w
		for r := ptr[i]; r < ptr[i+1]; r++ {
			if w > newPtr[i] && indices[w-1] == indices[r] {
				data[w-1] += data[r] // duplicate coordinate: accumulate
				continue
			}
			indices[w] = indices[r]
			data[w] = data[r]
			w++
		}
	}
	newPtr[numMajor] = w

	return newPtr, indices[:w], data[:w]
}

// pairSorter sorts a bucket's minor indices and values in lockstep.
type pairSorter struct {
	idx []int
	val []float32
}

func (p pairSorter) Len() int           { return len(p.idx) }
func (p pairSorter) Less(i, j int) bool { return p.idx[i] < p.idx[j] }
func (p pairSorter) Swap(i, j int) {
	p.idx[i], p.idx[j] = p.idx[j], p.idx[i]
	p.val[i], p.val[j] = p.val[j], p.val[i]
}
