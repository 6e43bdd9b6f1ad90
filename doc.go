// Package subiso finds copies of a small directed graph inside a larger one.
//
// Given a "query" graph and a "data" graph, both as binary adjacency
// matrices, it enumerates mappings of query nodes onto distinct data nodes
// that preserve every query edge (subgraph isomorphism, Ullmann's method).
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/  - integer (col,row) grid: adjacency and mapping matrices,
//	           row/column sums, validators, diagnostic rendering
//	ullmann/ - candidate building, predicates, pruning, verification,
//	           backtracking search and batch search
//
// Quick ASCII example:
//
//	query:  A → B        data:  0 → 1 → 2
//	         ↘ ↓                     ↘ ↓
//	           C                       3
//
// maps A→1, B→2, C→3.
//
//	go get github.com/katalvlaran/subiso
package subiso
