package kmeans

import (
	"math"
	"testing"

	"github.com/hupe1980/kmeans/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_Accessors(t *testing.T) {
	centroids := []vector.Point{{0}, {100}, {10}}
	points := []vector.Point{{1}, {9}, {12}, {-1}}

	p, err := Assign(centroids, points)
	require.NoError(t, err)

	assert.Equal(t, centroids, p.Centroids())
	assert.Equal(t, points, p.Points())
	assert.Equal(t, 0, p.Label(0))
	assert.Equal(t, 2, p.Label(1))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 0, p.Size(1))

	groups := p.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, 0, groups[0].Index)
	assert.Equal(t, vector.Point{0}, groups[0].Centroid)
	assert.Equal(t, []vector.Point{{1}, {-1}}, groups[0].Points)
	assert.Equal(t, 2, groups[1].Index)
	assert.Equal(t, []vector.Point{{9}, {12}}, groups[1].Points)

	assert.Equal(t, [][]vector.Point{{{1}, {-1}}, {{9}, {12}}}, p.PointGroups())
}

func TestPartition_CopiesAreIndependent(t *testing.T) {
	p, err := Assign([]vector.Point{{0}}, []vector.Point{{1}, {2}})
	require.NoError(t, err)

	labels := p.Labels()
	labels[0] = 7
	assert.Equal(t, 0, p.Label(0))

	m := p.Members(0)
	m.Add(99)
	assert.Equal(t, 2, p.Size(0))
}

func TestQuality(t *testing.T) {
	centroids := []vector.Point{{0, 0}, {10, 0}}
	points := []vector.Point{{0, 1}, {0, -3}, {10, 2}}

	p, err := Assign(centroids, points)
	require.NoError(t, err)

	q, err := Quality(p)
	require.NoError(t, err)
	assert.InDelta(t, (1.0+9.0+4.0)/3.0, q, 1e-12)

	q2, err := p.Quality()
	require.NoError(t, err)
	assert.Equal(t, q, q2)
}

func TestQuality_ExactFit(t *testing.T) {
	points := []vector.Point{{1, 2}, {3, 4}}

	p, err := Assign(points, points)
	require.NoError(t, err)

	q, err := Quality(p)
	require.NoError(t, err)
	assert.Zero(t, q)
}

func TestQuality_Empty(t *testing.T) {
	_, err := Quality(nil)
	assert.ErrorIs(t, err, vector.ErrEmpty)

	p, err := Assign([]vector.Point{{1}}, nil)
	require.NoError(t, err)

	_, err = Quality(p)
	assert.ErrorIs(t, err, vector.ErrEmpty)
}

func TestPartition_GroupsFollowCentroidOrder(t *testing.T) {
	centroids := []vector.Point{{0}, {10}}
	points := []vector.Point{{9}, {1}, {11}}

	p, err := Assign(centroids, points)
	require.NoError(t, err)

	groups := p.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, 0, groups[0].Index)
	assert.Equal(t, 1, groups[1].Index)
	assert.Equal(t, [][]vector.Point{{{1}}, {{9}, {11}}}, p.PointGroups())
}

func TestQuality_Overflow(t *testing.T) {
	points := []vector.Point{{1e200, 0}, {-1e200, 0}, {0, 1}}

	p, err := Assign([]vector.Point{{0, 0}}, points)
	require.NoError(t, err)

	q, err := Quality(p)
	assert.ErrorIs(t, err, vector.ErrNonFinite)
	assert.Zero(t, q)
}

func TestQuality_MatchesSquaredDistances(t *testing.T) {
	centroids := []vector.Point{{10, 41, 23}, {20, 32, 4}}
	points := []vector.Point{
		{10, 41, 23},
		{22, 30, 29},
		{11, 42, 5},
		{20, 32, 4},
		{12, 40, 12},
		{21, 36, 23},
	}

	p, err := Assign(centroids, points)
	require.NoError(t, err)

	var sum float64
	for i, pt := range points {
		c := centroids[p.Label(i)]
		d := math.Pow(pt[0]-c[0], 2) + math.Pow(pt[1]-c[1], 2) + math.Pow(pt[2]-c[2], 2)
		sum += d
	}

	q, err := Quality(p)
	require.NoError(t, err)
	assert.InDelta(t, sum/float64(len(points)), q, 1e-9)
}
