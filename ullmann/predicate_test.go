// SPDX-License-Identifier: MIT

package ullmann_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/subiso/matrix"
	"github.com/katalvlaran/subiso/ullmann"
)

func TestDegreeCriterion(t *testing.T) {
	data, query := mustRows(t, dataA), mustRows(t, queryA)

	assert.True(t, ullmann.DegreeCriterion(query, data, 0, 1))
	assert.False(t, ullmann.DegreeCriterion(query, data, 0, 0))
	assert.True(t, ullmann.DegreeCriterion(query, data, 2, 3))
	assert.False(t, ullmann.DegreeCriterion(query, data, 5, 0), "query index out of range")
	assert.False(t, ullmann.DegreeCriterion(query, data, 0, 9), "data index out of range")
}

func TestInDegreeCriterion(t *testing.T) {
	data, query := mustRows(t, dataA), mustRows(t, queryA)

	// query node 2 has in-degree 2; data node 3 too, data node 1 only 1.
	assert.True(t, ullmann.InDegreeCriterion(query, data, 2, 3))
	assert.False(t, ullmann.InDegreeCriterion(query, data, 2, 1))
	assert.True(t, ullmann.InDegreeCriterion(query, data, 0, 0))
	assert.False(t, ullmann.InDegreeCriterion(query, data, -1, 0))
}

func TestLabelCriterion(t *testing.T) {
	pred := ullmann.LabelCriterion([]string{"a", "b"}, []string{"b", "a", "a"})

	assert.True(t, pred(nil, nil, 0, 1))
	assert.True(t, pred(nil, nil, 1, 0))
	assert.False(t, pred(nil, nil, 0, 0))
	assert.False(t, pred(nil, nil, 2, 0), "unlabelled query node")
	assert.False(t, pred(nil, nil, 0, 3), "unlabelled data node")
}

func TestAllOf(t *testing.T) {
	yes := func(_, _ *matrix.Dense, _, _ int) bool { return true }
	calls := 0
	no := func(_, _ *matrix.Dense, _, _ int) bool {
		calls++
		return false
	}

	assert.True(t, ullmann.AllOf()(nil, nil, 0, 0))
	assert.True(t, ullmann.AllOf(yes, nil, yes)(nil, nil, 0, 0))
	assert.False(t, ullmann.AllOf(no, no)(nil, nil, 0, 0))
	assert.Equal(t, 1, calls, "short-circuit after the first rejection")
}
