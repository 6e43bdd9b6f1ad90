// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All accessors and constructors return these sentinels (optionally wrapped
// with call-site context via %w); tests check them with errors.Is.
// Nothing in this package panics on caller-supplied data.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a column or row index is outside valid bounds.
	// Public accessors (At/Set/RowSum/ColumnSum) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes, e.g. ragged row-major input.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was used where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
