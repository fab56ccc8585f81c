// SPDX-License-Identifier: MIT
// Package dok: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dok
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for internal invariant violations
// (table/iterator desynchronization during conversion).

package dok

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are negative at
	// construction.
	ErrBadShape = errors.New("dok: invalid shape")

	// ErrInvalidSparsity is returned when a sparsity hint falls outside
	// [0, 1] at construction.
	ErrInvalidSparsity = errors.New("dok: sparsity must be in [0, 1]")

	// ErrNegativeIndex indicates a negative row or column index passed to an
	// accessor. Always a programming error to fix, not a condition to handle.
	ErrNegativeIndex = errors.New("dok: negative index")

	// ErrOutOfRange indicates a row or column index at or beyond current
	// bounds, for operations that enforce range checks (GetRow, Swap,
	// visitation, and every write on a fixed-shape matrix).
	ErrOutOfRange = errors.New("dok: index out of range")

	// ErrNilVector indicates a nil Vector passed to GetRowVector.
	ErrNilVector = errors.New("dok: nil vector")

	// ErrNilProcedure indicates a nil callback passed to a visitation method.
	ErrNilProcedure = errors.New("dok: nil procedure")
)
