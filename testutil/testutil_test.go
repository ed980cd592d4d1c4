package testutil

import (
	"testing"

	"github.com/hupe1980/kmeans/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.UniformPoints(8, 32)

	assert.Equal(t, 8, len(pts))
	assert.Equal(t, 32, len(pts[0]))
	for _, p := range pts {
		for _, c := range p {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.Less(t, c, 1.0)
		}
	}

	// Rows do not share capacity.
	pts[0] = append(pts[0], 5)
	assert.Len(t, pts[1], 32)
}

func TestGaussianPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.GaussianPoints(8, 4)

	assert.Equal(t, 8, len(pts))
	assert.Equal(t, 4, len(pts[0]))
}

func TestBlobs(t *testing.T) {
	rng := NewRNG(4711)
	centers := []vector.Point{{0, 0}, {100, 100}}

	pts, labels := rng.Blobs(centers, 10, 0.5)

	require.Len(t, pts, 20)
	require.Len(t, labels, 20)
	for i, p := range pts {
		c := centers[labels[i]]
		assert.InDelta(t, c[0], p[0], 5)
		assert.InDelta(t, c[1], p[1], 5)
	}
	assert.Equal(t, []int{0, 1, 0, 1}, labels[:4])
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformPoints(1, 10)
	n1 := rng.Intn(100)

	rng.Reset()
	v2 := rng.UniformPoints(1, 10)
	n2 := rng.Intn(100)

	assert.Equal(t, v1, v2)
	assert.Equal(t, n1, n2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestDatasets(t *testing.T) {
	dim, err := vector.Validate(SixPoints())
	require.NoError(t, err)
	assert.Equal(t, 3, dim)

	dim, err = vector.Validate(SixteenPoints())
	require.NoError(t, err)
	assert.Equal(t, 2, dim)
	assert.Len(t, SixteenPoints(), 16)
}
