package kmeans

import (
	"context"
	"testing"

	"github.com/hupe1980/kmeans/testutil"
	"github.com/hupe1980/kmeans/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestRecomputeCentroids(t *testing.T) {
	groups := [][]vector.Point{
		{{0, 0}, {2, 2}, {4, 8}},
		{{10, 10}},
	}

	centroids, err := RecomputeCentroids(groups)
	require.NoError(t, err)
	require.Len(t, centroids, 2)
	assert.Equal(t, vector.Point{2, 10.0 / 3.0}, centroids[0])
	assert.Equal(t, vector.Point{10, 10}, centroids[1])
}

func TestRecomputeCentroids_SkipsEmptyGroups(t *testing.T) {
	groups := [][]vector.Point{
		{},
		{{1, 1}, {3, 3}},
		nil,
	}

	centroids, err := RecomputeCentroids(groups)
	require.NoError(t, err)
	assert.Equal(t, []vector.Point{{2, 2}}, centroids)

	centroids, err = RecomputeCentroids(nil)
	require.NoError(t, err)
	assert.Empty(t, centroids)
}

func TestRecomputeCentroids_CoordinateMeans(t *testing.T) {
	rng := testutil.NewRNG(4711)
	points := rng.UniformPoints(300, 5)
	centroids := rng.UniformPoints(4, 5)

	p, err := Assign(centroids, points)
	require.NoError(t, err)

	groups := p.PointGroups()
	next, err := RecomputeCentroids(groups)
	require.NoError(t, err)
	require.Len(t, next, len(groups))

	for g, group := range groups {
		for j := range 5 {
			col := make([]float64, len(group))
			for i, pt := range group {
				col[i] = pt[j]
			}
			assert.InDelta(t, stat.Mean(col, nil), next[g][j], 1e-12)
		}
	}
}

func TestRecomputeCentroids_DimensionMismatch(t *testing.T) {
	_, err := RecomputeCentroids([][]vector.Point{{{1, 2}, {3}}})
	var dimErr *ErrDimensionMismatch
	assert.ErrorAs(t, err, &dimErr)
}

func TestRecomputeParallel_MatchesSequential(t *testing.T) {
	rng := testutil.NewRNG(7)
	groups := [][]vector.Point{
		rng.GaussianPoints(100, 3),
		{},
		rng.GaussianPoints(1, 3),
		rng.GaussianPoints(57, 3),
	}

	seq, err := RecomputeCentroids(groups)
	require.NoError(t, err)

	par, err := recomputeParallel(context.Background(), groups, 4)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
	assert.Len(t, par, 3)
}

func TestRecomputeParallel_Error(t *testing.T) {
	_, err := recomputeParallel(context.Background(), [][]vector.Point{{{1}, {2, 3}}, {{1}}}, 2)
	var dimErr *ErrDimensionMismatch
	assert.ErrorAs(t, err, &dimErr)
}
