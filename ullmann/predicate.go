// SPDX-License-Identifier: MIT

package ullmann

import "github.com/katalvlaran/subiso/matrix"

// DegreeCriterion is the default predicate: query node q is compatible with
// data node d iff out-degree(q) <= out-degree(d). This is necessary, not
// sufficient, for q→d to be part of a structure-preserving embedding.
// Indices outside either graph are never compatible.
func DegreeCriterion(query, data *matrix.Dense, queryIndex, dataIndex int) bool {
	qd, err := query.RowSum(queryIndex)
	if err != nil {
		return false
	}
	dd, err := data.RowSum(dataIndex)
	if err != nil {
		return false
	}

	return qd <= dd
}

// InDegreeCriterion is the in-degree twin of DegreeCriterion:
// in-degree(q) <= in-degree(d).
func InDegreeCriterion(query, data *matrix.Dense, queryIndex, dataIndex int) bool {
	qd, err := query.ColumnSum(queryIndex)
	if err != nil {
		return false
	}
	dd, err := data.ColumnSum(dataIndex)
	if err != nil {
		return false
	}

	return qd <= dd
}

// LabelCriterion returns a predicate accepting (q,d) iff queryLabels[q] ==
// dataLabels[d]. Nodes without a label (index past the slice) never match.
// The slices are captured as-is; callers must not mutate them during a search.
func LabelCriterion(queryLabels, dataLabels []string) Predicate {
	return func(_, _ *matrix.Dense, queryIndex, dataIndex int) bool {
		if queryIndex < 0 || queryIndex >= len(queryLabels) {
			return false
		}
		if dataIndex < 0 || dataIndex >= len(dataLabels) {
			return false
		}

		return queryLabels[queryIndex] == dataLabels[dataIndex]
	}
}

// AllOf returns the conjunction of preds, evaluated left to right with
// short-circuit. Nil entries are skipped; AllOf() accepts every pair.
func AllOf(preds ...Predicate) Predicate {
	return func(query, data *matrix.Dense, queryIndex, dataIndex int) bool {
		for _, p := range preds {
			if p != nil && !p(query, data, queryIndex, dataIndex) {
				return false
			}
		}

		return true
	}
}
