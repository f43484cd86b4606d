package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/tree"
)

// star5 is a star with center 1 and leaves 2..5.
func star5(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.New(5, []tree.Edge{{U: 1, V: 2}, {U: 1, V: 3}, {U: 4, V: 1}, {U: 1, V: 5}})
	require.NoError(t, err)
	return tr
}

func TestNew_SingleNode(t *testing.T) {
	tr, err := tree.New(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.N())
	assert.Empty(t, tr.Neighbors(1))
	assert.Equal(t, 0, tr.Degree(1))
	assert.Equal(t, []int{1}, tr.Leaves())
}

func TestNew_NeighborsKeepInputOrder(t *testing.T) {
	tr := star5(t)
	assert.Equal(t, []int{2, 3, 4, 5}, tr.Neighbors(1))
	assert.Equal(t, []int{1}, tr.Neighbors(4))
	assert.Equal(t, 4, tr.Degree(1))
	assert.Equal(t, []int{2, 3, 4, 5}, tr.Leaves())
	assert.False(t, tr.Weighted())
}

func TestNew_Weights(t *testing.T) {
	tr, err := tree.New(3, []tree.Edge{{U: 1, V: 2, Weight: 7}, {U: 2, V: 3, Weight: 0}})
	require.NoError(t, err)
	assert.True(t, tr.Weighted())

	nbs, ws := tr.Adjacent(2)
	assert.Equal(t, []int{1, 3}, nbs)
	assert.Equal(t, []int64{7, 0}, ws)
}

func TestNew_EdgesReturnsCopy(t *testing.T) {
	tr := star5(t)
	edges := tr.Edges()
	edges[0].U = 99
	assert.Equal(t, 1, tr.Edges()[0].U)
}

func TestNew_HasNode(t *testing.T) {
	tr := star5(t)
	assert.True(t, tr.HasNode(1))
	assert.True(t, tr.HasNode(5))
	assert.False(t, tr.HasNode(0))
	assert.False(t, tr.HasNode(6))
}

func TestNew_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []tree.Edge
		want  error
	}{
		{"zero nodes", 0, nil, tree.ErrInvalidInput},
		{"too few edges", 3, []tree.Edge{{U: 1, V: 2}}, tree.ErrInvalidInput},
		{"too many edges", 2, []tree.Edge{{U: 1, V: 2}, {U: 2, V: 1}}, tree.ErrInvalidInput},
		{"out of range", 2, []tree.Edge{{U: 1, V: 3}}, tree.ErrNodeOutOfRange},
		{"zero id", 2, []tree.Edge{{U: 0, V: 1}}, tree.ErrNodeOutOfRange},
		{"self loop", 2, []tree.Edge{{U: 2, V: 2}}, tree.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := tree.New(tc.n, tc.edges)
			assert.Nil(t, tr)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_StrictValidation(t *testing.T) {
	// 1-2, 2-3, 3-1 closes a cycle and leaves 4 disconnected.
	cyclic := []tree.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 1}}
	_, err := tree.New(4, cyclic)
	assert.NoError(t, err, "cycles pass the cheap checks")

	_, err = tree.New(4, cyclic, tree.WithStrictValidation())
	assert.ErrorIs(t, err, tree.ErrNotATree)
	assert.ErrorIs(t, err, tree.ErrInvalidInput)

	dup := []tree.Edge{{U: 1, V: 2}, {U: 2, V: 1}}
	_, err = tree.New(3, dup, tree.WithStrictValidation())
	assert.ErrorIs(t, err, tree.ErrNotATree)

	_, err = tree.New(4, []tree.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}, tree.WithStrictValidation())
	assert.NoError(t, err)
}
