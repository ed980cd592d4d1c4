package vector

import "github.com/hupe1980/kmeans/internal/fsum"

// Mean returns the arithmetic mean of values. The sum is computed exactly
// and rounded once, so the result does not depend on the order of values.
// It returns ErrEmpty if values is empty.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return fsum.Sum(values) / float64(len(values)), nil
}
