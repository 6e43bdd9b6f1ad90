// SPDX-License-Identifier: MIT

package ullmann_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/matrix"
	"github.com/katalvlaran/subiso/ullmann"
)

func TestInitialCandidatesDegree(t *testing.T) {
	m, err := ullmann.InitialCandidates(mustRows(t, dataA), mustRows(t, queryA), nil)
	require.NoError(t, err)

	w, h := m.Shape()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, [][]int{
		{0, 1, 0, 0}, // out-degree 2 only at data node 1
		{1, 1, 1, 0},
		{1, 1, 1, 1},
	}, m.ToRows())
}

func TestInitialCandidatesCustomPredicate(t *testing.T) {
	var pairs [][2]int
	pred := func(q, d *matrix.Dense, qi, di int) bool {
		pairs = append(pairs, [2]int{qi, di})
		return qi == di
	}
	m, err := ullmann.InitialCandidates(mustRows(t, dataB), mustRows(t, queryB), pred)
	require.NoError(t, err)

	assert.Len(t, pairs, 12)
	assert.Equal(t, [2]int{0, 0}, pairs[0])
	assert.Equal(t, [2]int{2, 3}, pairs[11])
	assert.Equal(t, [][]int{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}, m.ToRows())
}

func TestInitialCandidatesNil(t *testing.T) {
	_, err := ullmann.InitialCandidates(nil, mustRows(t, queryA), nil)
	assert.ErrorIs(t, err, ullmann.ErrNilGraph)
}
