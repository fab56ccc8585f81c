// SPDX-License-Identifier: MIT
// Package compressed: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// compressed package. Constructors and accessors MUST return these sentinels
// and tests MUST check them via errors.Is. No routine panics on
// user-triggered error conditions.

package compressed

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows/columns) at construction.
	ErrBadShape = errors.New("compressed: invalid shape")

	// ErrParallelArrays indicates the COO input arrays differ in length.
	ErrParallelArrays = errors.New("compressed: coordinate arrays length mismatch")

	// ErrOutOfRange indicates an index (row or column) outside valid bounds,
	// either in a COO entry at construction or in an accessor argument.
	ErrOutOfRange = errors.New("compressed: index out of range")
)
