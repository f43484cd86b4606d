package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/tree"
)

// TestBuilders_Functional checks size, edge count and tree validity of every
// constructor under strict validation.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		opts  []builder.BuilderOption
		wantN int
		check func(t *testing.T, tr *tree.Tree)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantN: 4,
			check: func(t *testing.T, tr *tree.Tree) {
				assert.Equal(t, []int{2}, tr.Neighbors(1))
				assert.Equal(t, []int{1, 3}, tr.Neighbors(2))
			},
		},
		{
			name: "Path(1)", ctor: builder.Path(1), wantN: 1,
		},
		{
			name: "Star(6)", ctor: builder.Star(6), wantN: 6,
			check: func(t *testing.T, tr *tree.Tree) {
				assert.Equal(t, 5, tr.Degree(builder.CenterNode))
				assert.Equal(t, []int{2, 3, 4, 5, 6}, tr.Leaves())
			},
		},
		{
			name: "Binary(7)", ctor: builder.Binary(7), wantN: 7,
			check: func(t *testing.T, tr *tree.Tree) {
				assert.Equal(t, []int{1, 6, 7}, tr.Neighbors(3))
				assert.Equal(t, []int{4, 5, 6, 7}, tr.Leaves())
			},
		},
		{
			name: "Caterpillar(3,2)", ctor: builder.Caterpillar(3, 2), wantN: 9,
			check: func(t *testing.T, tr *tree.Tree) {
				assert.Equal(t, []int{1, 3, 6, 7}, tr.Neighbors(2))
				assert.Len(t, tr.Leaves(), 6)
			},
		},
		{
			name: "Random(50)", ctor: builder.Random(50), wantN: 50,
			opts: []builder.BuilderOption{builder.WithSeed(7)},
		},
		{
			name: "Shuffled Path(30)", ctor: builder.Path(30), wantN: 30,
			opts: []builder.BuilderOption{builder.WithSeed(3), builder.WithShuffledLabels()},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tr, err := builder.BuildTree([]tree.Option{tree.WithStrictValidation()}, tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, tr.N())
			assert.Len(t, tr.Edges(), tc.wantN-1)
			if tc.check != nil {
				tc.check(t, tr)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	_, err := builder.BuildTree(nil, nil, builder.Path(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildTree(nil, nil, builder.Star(-1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildTree(nil, nil, builder.Caterpillar(2, -1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildTree(nil, nil, builder.Random(10))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildTree(nil, []builder.BuilderOption{builder.WithShuffledLabels()}, builder.Path(4))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildTree(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuilders_Deterministic(t *testing.T) {
	_, a, err := builder.Edges(builder.Random(100), builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9)))
	require.NoError(t, err)
	_, b, err := builder.Edges(builder.Random(100), builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuilders_Weights(t *testing.T) {
	tr, err := builder.BuildTree(nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(3))},
		builder.Path(5))
	require.NoError(t, err)
	assert.True(t, tr.Weighted())
	for _, e := range tr.Edges() {
		assert.Equal(t, int64(3), e.Weight)
	}
}

func TestNodeValuesAndCosts(t *testing.T) {
	assert.Equal(t, []int64{0, 1, 1, 1}, builder.NodeValues(3))
	assert.Equal(t, []int64{0, 5, 5}, builder.NodeValues(2, builder.WithWeightFn(builder.ConstantWeightFn(5))))

	costs := builder.ColorCosts(2)
	assert.Equal(t, [][2]int64{{0, 0}, {0, 1}, {0, 1}}, costs)

	vals := builder.NodeValues(20, builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(-5, 5)))
	for _, v := range vals[1:] {
		assert.GreaterOrEqual(t, v, int64(-5))
		assert.LessOrEqual(t, v, int64(5))
	}
}
