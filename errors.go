package kmeans

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/kmeans/vector"
)

var (
	// ErrInvalidConfig is matched by every configuration error
	// (errors.Is(err, ErrInvalidConfig)).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = fmt.Errorf("%w: k must be positive", ErrInvalidConfig)

	// ErrInvalidIterations is returned when the iteration count is negative.
	ErrInvalidIterations = fmt.Errorf("%w: iterations must not be negative", ErrInvalidConfig)

	// ErrEmptyDataset is returned when clustering is requested on no points.
	ErrEmptyDataset = fmt.Errorf("%w: dataset has no points", vector.ErrEmpty)

	// ErrDatasetTooLarge is returned for datasets with more than math.MaxUint32 points.
	ErrDatasetTooLarge = fmt.Errorf("%w: dataset exceeds %d points", ErrInvalidConfig, uint64(math.MaxUint32))

	// ErrNoCentroids is returned when points are assigned to an empty centroid set.
	ErrNoCentroids = fmt.Errorf("%w: no centroids", vector.ErrEmpty)
)

// ErrDimensionMismatch indicates points of differing dimension were
// compared, transposed or clustered together.
type ErrDimensionMismatch = vector.ErrDimensionMismatch

// ErrInsufficientPoints indicates that k exceeds the number of distinct
// points in the dataset. It matches ErrInvalidConfig.
type ErrInsufficientPoints struct {
	K         int
	Available int
}

func (e *ErrInsufficientPoints) Error() string {
	return fmt.Sprintf("%v: k=%d exceeds the %d distinct points available", ErrInvalidConfig, e.K, e.Available)
}

func (e *ErrInsufficientPoints) Unwrap() error { return ErrInvalidConfig }
