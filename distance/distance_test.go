package distance

import (
	"math"
	"testing"

	"github.com/hupe1980/kmeans/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		p, q     vector.Point
		expected float64
	}{
		{"Simple", vector.Point{0, 0}, vector.Point{3, 4}, 5},
		{"Zero", vector.Point{0, 0, 0}, vector.Point{0, 0, 0}, 0},
		{"Identical", vector.Point{1, 2, 3}, vector.Point{1, 2, 3}, 0},
		{"Mixed", vector.Point{1, -1}, vector.Point{-1, 1}, math.Sqrt(8)},
		{"Single", vector.Point{2}, vector.Point{-3}, 5},
		{"ThreeD", vector.Point{10, 41, 23}, vector.Point{22, 30, 29}, math.Sqrt(144 + 121 + 36)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Euclidean(tt.p, tt.q)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
			assert.InDelta(t, floats.Distance(tt.p, tt.q, 2), got, 1e-12)
		})
	}
}

func TestSquaredEuclidean(t *testing.T) {
	got, err := SquaredEuclidean(vector.Point{1, 2, 3}, vector.Point{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 27.0, got)
}

func TestEuclidean_DimensionMismatch(t *testing.T) {
	_, err := Euclidean(vector.Point{1, 2}, vector.Point{1, 2, 3})

	var dimErr *vector.ErrDimensionMismatch
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Actual)

	_, err = SquaredEuclidean(vector.Point{1}, nil)
	assert.Error(t, err)
}

func TestEuclidean_Properties(t *testing.T) {
	points := []vector.Point{
		{10, 41, 23},
		{22, 30, 29},
		{11, 42, 5},
		{20, 32, 4},
		{12, 40, 12},
		{21, 36, 23},
	}

	for _, p := range points {
		d, err := Euclidean(p, p)
		require.NoError(t, err)
		assert.Zero(t, d)
	}

	for _, p := range points {
		for _, q := range points {
			pq, err := Euclidean(p, q)
			require.NoError(t, err)
			qp, err := Euclidean(q, p)
			require.NoError(t, err)
			assert.Equal(t, pq, qp)

			for _, r := range points {
				pr, err := Euclidean(p, r)
				require.NoError(t, err)
				rq, err := Euclidean(r, q)
				require.NoError(t, err)
				assert.LessOrEqual(t, pq, pr+rq+1e-9)
			}
		}
	}
}

func TestProvider(t *testing.T) {
	fn, err := Provider(MetricL2)
	require.NoError(t, err)

	d, err := fn(vector.Point{0, 0}, vector.Point{6, 8})
	require.NoError(t, err)
	assert.Equal(t, 10.0, d)

	_, err = Provider(Metric(999))
	assert.Error(t, err)
}

func TestMetric_String(t *testing.T) {
	assert.Equal(t, "L2", MetricL2.String())
	assert.Equal(t, "Unknown(7)", Metric(7).String())
}
