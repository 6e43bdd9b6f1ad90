// SPDX-License-Identifier: MIT
// Package ullmann_test contains shared fixtures for the search tests.
//
// Purpose:
//   - Two reference scenarios with known, ordered solutions.
//   - A brute-force enumerator used as an oracle on random graphs.

package ullmann_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/matrix"
	"github.com/katalvlaran/subiso/ullmann"
)

// Scenario A: data 0→1, 1→2, 1→3, 2→3; query 0→1, 0→2, 1→2. One solution.
var (
	dataA = [][]int{
		{0, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
	queryA = [][]int{
		{0, 1, 1},
		{0, 0, 1},
		{0, 0, 0},
	}
	mappingA = [][]int{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
)

// Scenario B: data 0→1, 0→2, 1→2, 1→3; query 0→1, 0→2 (node 2 has no out-edge).
// Four solutions in column order.
var (
	dataB = [][]int{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	queryB = [][]int{
		{0, 1, 1},
		{0, 0, 0},
		{0, 0, 0},
	}
	assignmentsB = [][]int{
		{0, 1, 2},
		{0, 2, 1},
		{1, 2, 3},
		{1, 3, 2},
	}
)

func mustRows(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// assignments decodes every result into its query→data vector.
func assignments(t testing.TB, results []*matrix.Dense) [][]int {
	t.Helper()
	out := make([][]int, 0, len(results))
	for _, r := range results {
		a, err := ullmann.Assignment(r)
		require.NoError(t, err)
		out = append(out, a)
	}

	return out
}

// randomGraph returns an n×n adjacency matrix where each arc, self-loops
// included, is present with probability p.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Float64() < p {
				require.NoError(t, m.Set(c, r, 1))
			}
		}
	}

	return m
}

// bruteForce enumerates injective, edge-preserving mappings in
// lexicographic order of the assignment vector.
func bruteForce(data, query *matrix.Dense) [][]int {
	q, d := query.Width(), data.Width()
	var (
		out  [][]int
		cur  = make([]int, q)
		used = make([]bool, d)
		walk func(row int)
	)
	edge := func(m *matrix.Dense, from, to int) bool {
		v, _ := m.At(to, from)
		return v == 1
	}
	walk = func(row int) {
		if row == q {
			for r1 := 0; r1 < q; r1++ {
				for r2 := 0; r2 < q; r2++ {
					if edge(query, r1, r2) && !edge(data, cur[r1], cur[r2]) {
						return
					}
				}
			}
			out = append(out, append([]int(nil), cur...))
			return
		}
		for c := 0; c < d; c++ {
			if used[c] {
				continue
			}
			used[c], cur[row] = true, c
			walk(row + 1)
			used[c] = false
		}
	}
	walk(0)

	return out
}
