// SPDX-License-Identifier: MIT

// Package dok: functional configuration for Matrix construction.
// Options size the backing hash table and select its hasher; nothing here
// changes matrix semantics. Sparsity is validated at construction (not in
// the setter) so callers receive ErrInvalidSparsity instead of a panic —
// matching the package error contract for invalid arguments.

package dok

import "github.com/katalvlaran/dokmatrix/floatmap"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSparsity is the expected non-zero fraction used to size the
	// initial table when dimensions are known.
	DefaultSparsity = 0.05

	// MinInitialCapacity is the floor for the backing table's initial slot
	// count, regardless of the sparsity estimate.
	MinInitialCapacity = 16384
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	sparsity float64           // expected nnz/(rows*cols); DefaultSparsity
	capacity int               // explicit capacity override; 0 = derive from sparsity
	hasher   floatmap.HasherID // passthrough to the backing table
}

// WithSparsity sets the expected non-zero ratio used to size the initial
// hash table: capacity = max(MinInitialCapacity, round(rows*cols*ratio)).
// Validated at construction; out-of-range ratios yield ErrInvalidSparsity.
//
// Complexity: O(1).
func WithSparsity(ratio float64) Option {
	return func(o *Options) { o.sparsity = ratio }
}

// WithInitialCapacity overrides the sparsity-derived sizing with an explicit
// slot count (still floored at MinInitialCapacity).
//
// Complexity: O(1).
func WithInitialCapacity(n int) Option {
	return func(o *Options) { o.capacity = n }
}

// WithHasher selects the backing table's key-scrambling hash function.
// Unknown IDs panic inside floatmap.WithHasher at construction.
//
// Complexity: O(1).
func WithHasher(id floatmap.HasherID) Option {
	return func(o *Options) { o.hasher = id }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics. Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		sparsity: DefaultSparsity,
		capacity: 0,
		hasher:   floatmap.HasherXXHash,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
