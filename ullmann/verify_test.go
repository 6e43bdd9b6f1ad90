// SPDX-License-Identifier: MIT

package ullmann_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/matrix"
	"github.com/katalvlaran/subiso/ullmann"
)

func TestIsIsomorphism(t *testing.T) {
	data, query := mustRows(t, dataA), mustRows(t, queryA)

	ok, err := ullmann.IsIsomorphism(mustRows(t, mappingA), data, query)
	require.NoError(t, err)
	assert.True(t, ok)

	// 0→1, 0→2, 1→3: query edge 1→2 lands on data 2→1, which is missing.
	bad := mustRows(t, [][]int{
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	ok, err = ullmann.IsIsomorphism(bad, data, query)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsIsomorphismErrors(t *testing.T) {
	data, query := mustRows(t, dataA), mustRows(t, queryA)
	mapping := mustRows(t, mappingA)
	rect := mustRows(t, [][]int{{0, 1}})

	_, err := ullmann.IsIsomorphism(nil, data, query)
	assert.ErrorIs(t, err, ullmann.ErrNilGraph)
	_, err = ullmann.IsIsomorphism(mapping, rect, query)
	assert.ErrorIs(t, err, ullmann.ErrDataNotSquare)
	_, err = ullmann.IsIsomorphism(mapping, data, rect)
	assert.ErrorIs(t, err, ullmann.ErrQueryNotSquare)
	_, err = ullmann.IsIsomorphism(mustRows(t, queryA), data, query)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAssignment(t *testing.T) {
	got, err := ullmann.Assignment(mustRows(t, mappingA))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	// a row without a set bit falls back to data node 0
	got, err = ullmann.Assignment(mustRows(t, [][]int{
		{0, 0, 0},
		{0, 0, 1},
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, got)

	_, err = ullmann.Assignment(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
