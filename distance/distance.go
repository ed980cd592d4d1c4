package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/kmeans/internal/fsum"
	"github.com/hupe1980/kmeans/vector"
)

// SquaredEuclidean returns the sum of squared coordinate differences
// between p and q. Points of different dimension yield an
// *vector.ErrDimensionMismatch and no partial result.
func SquaredEuclidean(p, q vector.Point) (float64, error) {
	if len(p) != len(q) {
		return 0, &vector.ErrDimensionMismatch{Expected: len(p), Actual: len(q)}
	}

	var acc fsum.Accumulator
	for i := range p {
		d := p[i] - q[i]
		acc.Add(d * d)
	}

	return acc.Sum(), nil
}

// Euclidean returns the Euclidean distance between p and q.
func Euclidean(p, q vector.Point) (float64, error) {
	sq, err := SquaredEuclidean(p, q)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq), nil
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricL2 Metric = iota
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(p, q vector.Point) (float64, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return Euclidean, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
