// Package matrix provides the integer grid used to describe directed graphs
// and node-mapping tables for subgraph search.
//
// Indexing convention:
//
//	Every accessor takes (col, row): column first, row second. A matrix
//	built from a conventional row-major [][]int via FromRows is transposed
//	on ingestion, so external rows[r][c] becomes At(c, r).
//
// As a graph adjacency matrix, row r lists the out-edges of node r:
// At(c, r) == 1 means an edge r → c. RowSum(n) is therefore the out-degree
// of node n and ColumnSum(n) its in-degree.
//
// The same type also stores mapping (candidate) matrices of shape
// width = |data graph|, height = |query graph|, where At(d, q) == 1 means
// "query node q may map to data node d".
//
// Complexity quicksheet:
//   - NewDense, FromRows, Clone, Equal: O(w*h)
//   - At, Set: O(1)
//   - RowSum: O(w); ColumnSum: O(h)
//
// Errors:
//   - ErrInvalidDimensions for negative shapes.
//   - ErrOutOfRange for out-of-bounds access.
//   - ErrDimensionMismatch for ragged row-major input.
//   - ErrNonSquare / ErrNilMatrix from the validators.
package matrix
