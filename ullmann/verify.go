// SPDX-License-Identifier: MIT

package ullmann

import (
	"fmt"

	"github.com/katalvlaran/subiso/matrix"
)

// Assignment derives the mapping function of a bound mapping matrix:
// out[q] is the first data column d with (d,q) == 1. A row without any set
// bit maps to 0; a search without PruneOriginal never produces such a row.
func Assignment(mapping *matrix.Dense) ([]int, error) {
	if err := matrix.ValidateNotNil(mapping); err != nil {
		return nil, fmt.Errorf("Assignment: %w", err)
	}

	return assignment(mapping), nil
}

func assignment(mapping *matrix.Dense) []int {
	out := make([]int, mapping.Height())
	var row, col int
	for row = 0; row < mapping.Height(); row++ {
		for col = 0; col < mapping.Width(); col++ {
			if one(mapping, col, row) {
				out[row] = col
				break
			}
		}
	}

	return out
}

// IsIsomorphism reports whether the bound mapping matrix maps every query
// edge r1→r2 onto a data edge map(r1)→map(r2). A single missing edge
// rejects the whole candidate. mapping must be |data| wide and |query| high.
//
// Errors:
//   - ErrNilGraph for nil inputs.
//   - ErrDataNotSquare / ErrQueryNotSquare for non-square graphs.
//   - matrix.ErrDimensionMismatch when mapping does not fit the graphs.
func IsIsomorphism(mapping, data, query *matrix.Dense) (bool, error) {
	if mapping == nil || data == nil || query == nil {
		return false, ErrNilGraph
	}
	if !data.IsSquare() {
		return false, ErrDataNotSquare
	}
	if !query.IsSquare() {
		return false, ErrQueryNotSquare
	}
	if mapping.Width() != data.Width() || mapping.Height() != query.Width() {
		return false, fmt.Errorf("IsIsomorphism: mapping %dx%d for data %d, query %d: %w",
			mapping.Width(), mapping.Height(), data.Width(), query.Width(), matrix.ErrDimensionMismatch)
	}

	return isIsomorphism(mapping, data, query), nil
}

// isIsomorphism is the unchecked kernel used by the engine.
func isIsomorphism(mapping, data, query *matrix.Dense) bool {
	image := assignment(mapping)
	n := query.Width()

	var r1, r2 int
	for r1 = 0; r1 < n; r1++ {
		for r2 = 0; r2 < n; r2++ {
			if one(query, r2, r1) && !one(data, image[r2], image[r1]) {
				return false
			}
		}
	}

	return true
}
