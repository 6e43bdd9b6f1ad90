// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the nil/shape checks used by callers.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap once more with their own context.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and width == height.
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// AI-Hints: use before treating m as a graph adjacency matrix.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if !m.IsSquare() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}
