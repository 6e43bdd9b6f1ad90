// Package ullmann implements J. R. Ullmann's backtracking algorithm for
// subgraph isomorphism on directed graphs given as adjacency matrices.
//
// What:
//
//   - Search(data, query, opts...) enumerates every injective mapping of the
//     query nodes onto data nodes that carries each query edge onto a data
//     edge. Results are mapping matrices (|data| wide, |query| high) with a
//     single 1 per row.
//   - InitialCandidates builds the seed candidate matrix from a Predicate.
//   - Prune applies one of the PruneMode rules to a candidate matrix.
//   - IsIsomorphism / Assignment check and decode a bound mapping matrix.
//   - SearchBatch runs many queries against one data graph on a worker pool.
//
// Graph convention (see package matrix): row r lists the out-edges of node
// r, so At(c, r) == 1 means r → c.
//
// Key Types:
//
//   - Predicate: pure func(query, data, q, d) bool; DegreeCriterion is the
//     default, InDegreeCriterion / LabelCriterion / AllOf are provided.
//   - PruneMode: PruneNone, PruneOriginal, PruneRefined.
//   - Option / Options: functional configuration with DefaultOptions().
//
// Complexity:
//
//   - Time:   exponential in |query| in the worst case.
//   - Memory: O(|query|² · |data|) for the per-level matrix clones.
//
// Errors:
//
//   - ErrInvalidArgument and its refinements for bad preconditions.
//   - matrix.ErrOutOfRange from PruneOriginal on some inputs.
//   - context errors on cancellation; hook errors wrapped.
//
// Example:
//
//	data, _ := matrix.FromRows([][]int{{0, 1, 0, 0}, {0, 0, 1, 1}, {0, 0, 0, 1}, {0, 0, 0, 0}})
//	query, _ := matrix.FromRows([][]int{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}})
//	found, err := ullmann.Search(data, query)
package ullmann
