// SPDX-License-Identifier: MIT

// Package ullmann - candidate pruning (constraint propagation).
//
// Two rules are available besides PruneNone:
//
//   - PruneOriginal reproduces the historical rule bit for bit. For every
//     enabled candidate (d,q) and every query neighbour x of q it asks only
//     whether column d of the data graph holds any 1 at all (it does not
//     consult x's candidates), and it clears the TRANSPOSED cell (q,d)
//     instead of (d,q). When d >= |query| that cell lies outside the mapping
//     matrix and the search fails with matrix.ErrOutOfRange. The rule can
//     therefore clear rows that were already bound; such rows fall back to
//     data node 0 in Assignment.
//
//   - PruneRefined is the textbook refinement: (d,q) survives only if every
//     query edge q→x is matched by some data edge d→y with (y,x) still a
//     candidate. Passes repeat until nothing changes. It is sound: it never
//     removes a pair used by a valid embedding, so a row it empties proves
//     the branch dead and the engine backtracks. The result list is
//     identical to PruneNone.

package ullmann

import (
	"fmt"

	"github.com/katalvlaran/subiso/matrix"
)

// Prune applies mode to mapping in place. mapping must be |data| wide and
// |query| high; query and data must be square.
//
// Errors:
//   - ErrNilGraph for nil inputs.
//   - matrix.ErrDimensionMismatch when the shapes disagree.
//   - matrix.ErrOutOfRange when PruneOriginal writes outside mapping.
func Prune(mode PruneMode, mapping, query, data *matrix.Dense) error {
	if mapping == nil || query == nil || data == nil {
		return ErrNilGraph
	}
	if !query.IsSquare() || !data.IsSquare() ||
		mapping.Width() != data.Width() || mapping.Height() != query.Width() {
		return fmt.Errorf("Prune: mapping %dx%d, query %dx%d, data %dx%d: %w",
			mapping.Width(), mapping.Height(), query.Width(), query.Height(),
			data.Width(), data.Height(), matrix.ErrDimensionMismatch)
	}

	switch mode {
	case PruneNone:
		return nil
	case PruneOriginal:
		return pruneOriginal(mapping, query, data)
	case PruneRefined:
		pruneRefined(mapping, query, data)

		return nil
	default:
		return fmt.Errorf("%w: unknown prune mode %s", ErrInvalidArgument, mode)
	}
}

// one reads (col,row) as a boolean. Callers guarantee bounds.
func one(m *matrix.Dense, col, row int) bool {
	v, _ := m.At(col, row) // bounds validated by Prune / Search

	return v == 1
}

// pruneOriginal walks the mapping row by row, reading live cells so that
// earlier clears influence later checks, exactly as the historical rule did.
func pruneOriginal(mapping, query, data *matrix.Dense) error {
	var (
		row, col, x, y int
		hasNeighbourY  bool
	)
	for row = 0; row < mapping.Height(); row++ {
		for col = 0; col < mapping.Width(); col++ {
			if !one(mapping, col, row) {
				continue
			}
			for x = 0; x < query.Width(); x++ {
				if !one(query, x, row) {
					continue
				}

				hasNeighbourY = false
				for y = 0; y < data.Width(); y++ {
					if one(data, col, y) {
						hasNeighbourY = true
						break
					}
				}
				if hasNeighbourY {
					continue
				}

				// transposed cell (row,col), not (col,row)
				if err := mapping.Set(row, col, 0); err != nil {
					return fmt.Errorf("pruneOriginal: candidate (%d,%d): %w", col, row, err)
				}
			}
		}
	}

	return nil
}

// pruneRefined iterates the Ullman refinement until a pass changes nothing.
// Each pass is O(Q·D·Q·D); the number of passes is bounded by the number of
// enabled candidates.
func pruneRefined(mapping, query, data *matrix.Dense) {
	var (
		q, d, x, y int
		supported  bool
		changed    = true
	)
	for changed {
		changed = false
		for q = 0; q < mapping.Height(); q++ {
			for d = 0; d < mapping.Width(); d++ {
				if !one(mapping, d, q) {
					continue
				}
				for x = 0; x < query.Width(); x++ {
					if !one(query, x, q) { // query edge q→x
						continue
					}
					supported = false
					for y = 0; y < data.Width(); y++ {
						if one(data, y, d) && one(mapping, y, x) { // data edge d→y, x may map to y
							supported = true
							break
						}
					}
					if !supported {
						_ = mapping.Set(d, q, 0) // in bounds: (d,q) was just read
						changed = true
						break
					}
				}
			}
		}
	}
}

// hasEmptyRow reports whether some row of mapping has no candidate left.
func hasEmptyRow(mapping *matrix.Dense) bool {
	var row int
	for row = 0; row < mapping.Height(); row++ {
		if sum, _ := mapping.RowSum(row); sum == 0 {
			return true
		}
	}

	return false
}
