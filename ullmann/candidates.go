// SPDX-License-Identifier: MIT

package ullmann

import (
	"fmt"

	"github.com/katalvlaran/subiso/matrix"
)

// InitialCandidates materialises the compatibility table of query against
// data: a mapping matrix of width |data| and height |query| where (d,q) = 1
// iff pred(query, data, q, d) holds. A nil pred resolves to DegreeCriterion.
// No search or pruning happens here.
//
// Complexity: O(|query|·|data|) predicate calls.
func InitialCandidates(data, query *matrix.Dense, pred Predicate) (*matrix.Dense, error) {
	if data == nil || query == nil {
		return nil, ErrNilGraph
	}
	if pred == nil {
		pred = DegreeCriterion
	}

	dataSize, querySize := data.Width(), query.Width()
	m, err := matrix.NewDense(dataSize, querySize)
	if err != nil {
		return nil, fmt.Errorf("InitialCandidates: %w", err)
	}

	var q, d int
	for q = 0; q < querySize; q++ {
		for d = 0; d < dataSize; d++ {
			if !pred(query, data, q, d) {
				continue
			}
			if err = m.Set(d, q, 1); err != nil {
				return nil, fmt.Errorf("InitialCandidates: %w", err)
			}
		}
	}

	return m, nil
}
