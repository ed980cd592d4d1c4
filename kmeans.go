package kmeans

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/hupe1980/kmeans/internal/sample"
	"github.com/hupe1980/kmeans/vector"
)

// parallelThreshold is the dataset size below which runs stay single-threaded.
const parallelThreshold = 1000

// Clusterer runs k-means clustering.
//
// A Clusterer is immutable after New and safe for concurrent use.
type Clusterer struct {
	opts options
}

// New creates a Clusterer configured by optFns.
func New(optFns ...Option) *Clusterer {
	return &Clusterer{opts: applyOptions(optFns)}
}

// KMeans returns the centroids of data after clustering it into at most k
// groups with exactly iterations assignment/update cycles.
//
// It is shorthand for New(optFns...).Train(context.Background(), data, k, iterations).
func KMeans(data []vector.Point, k, iterations int, optFns ...Option) ([]vector.Point, error) {
	return New(optFns...).Train(context.Background(), data, k, iterations)
}

// Train runs the iteration driver and returns the final centroids.
//
// The initial centroids are k distinct points sampled without replacement
// from data. Each iteration assigns every point to its nearest centroid and
// replaces the centroids by the means of their groups. There is no
// convergence test: exactly iterations cycles run, and iterations == 0
// returns the sampled points unchanged.
//
// A centroid that attracts no points is dropped rather than re-seeded, so
// the result can hold fewer than k centroids. This is reported through the
// logger and metrics collector, not as an error.
//
// Configuration errors match ErrInvalidConfig. ctx is checked between
// iterations; on cancellation ctx.Err() is returned and no centroids.
func (c *Clusterer) Train(ctx context.Context, data []vector.Point, k, iterations int) ([]vector.Point, error) {
	start := time.Now()

	_, centroids, err := c.train(ctx, data, k, iterations)

	c.opts.metricsCollector.RecordRun(k, len(centroids), iterations, time.Since(start), err)
	c.opts.logger.LogRun(ctx, k, len(centroids), iterations, err)

	if err != nil {
		return nil, err
	}
	return centroids, nil
}

// Fit is Train followed by a final assignment of data to the returned
// centroids and the quality of that partition.
func (c *Clusterer) Fit(ctx context.Context, data []vector.Point, k, iterations int) (*Result, error) {
	start := time.Now()

	res, err := c.fit(ctx, data, k, iterations)

	n := 0
	if res != nil {
		n = len(res.Centroids)
	}
	c.opts.metricsCollector.RecordRun(k, n, iterations, time.Since(start), err)
	c.opts.logger.LogRun(ctx, k, n, iterations, err)

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Clusterer) fit(ctx context.Context, data []vector.Point, k, iterations int) (*Result, error) {
	seeds, centroids, err := c.train(ctx, data, k, iterations)
	if err != nil {
		return nil, err
	}

	partition, err := Assign(centroids, data)
	if err != nil {
		return nil, err
	}

	quality, err := partition.Quality()
	if err != nil {
		return nil, err
	}

	return &Result{
		K:          k,
		Iterations: iterations,
		Seeds:      seeds,
		Centroids:  centroids,
		Partition:  partition,
		Quality:    quality,
	}, nil
}

func (c *Clusterer) train(ctx context.Context, data []vector.Point, k, iterations int) ([]vector.Point, []vector.Point, error) {
	dim, distinct, err := validate(data, k, iterations)
	if err != nil {
		return nil, nil, err
	}

	workers, release, err := c.acquire(ctx, len(data), dim, k)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	idx, err := sample.Indices(c.opts.newRand(), len(distinct), k)
	if err != nil {
		return nil, nil, err
	}

	seeds := make([]vector.Point, k)
	for i, j := range idx {
		seeds[i] = data[distinct[j]].Clone()
	}

	logger := c.opts.logger.WithK(k).WithDimension(dim).WithCount(len(data))

	centroids := seeds
	for i := range iterations {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		iterStart := time.Now()

		partition, err := assignParallel(ctx, centroids, data, workers)
		if err != nil {
			return nil, nil, err
		}

		next, err := recomputeParallel(ctx, partition.PointGroups(), workers)
		if err != nil {
			return nil, nil, err
		}

		if len(next) < len(centroids) {
			logger.LogDegenerate(ctx, i, len(centroids), len(next))
			c.opts.metricsCollector.RecordDegenerate(len(centroids), len(next))
		}

		centroids = next

		c.opts.metricsCollector.RecordIteration(i, len(next), time.Since(iterStart))
		logger.LogIteration(ctx, i, len(next))
	}

	if iterations == 0 {
		// Keep Seeds and Centroids independent for callers of Fit.
		centroids = make([]vector.Point, len(seeds))
		for i, s := range seeds {
			centroids[i] = s.Clone()
		}
	}

	return seeds, centroids, nil
}

// validate checks the run configuration and returns the dataset dimension
// and the indices of its distinct points.
func validate(data []vector.Point, k, iterations int) (int, []int, error) {
	if k < 1 {
		return 0, nil, ErrInvalidK
	}
	if iterations < 0 {
		return 0, nil, ErrInvalidIterations
	}

	if uint64(len(data)) > math.MaxUint32 {
		return 0, nil, ErrDatasetTooLarge
	}

	dim, err := vector.Validate(data)
	if err != nil {
		if errors.Is(err, vector.ErrEmpty) {
			return 0, nil, ErrEmptyDataset
		}
		return 0, nil, err
	}

	distinct := vector.Distinct(data)
	if k > len(distinct) {
		return 0, nil, &ErrInsufficientPoints{K: k, Available: len(distinct)}
	}

	return dim, distinct, nil
}

// acquire reserves the run's working set and worker slots from the
// resource controller. It returns the number of goroutines the run may use.
func (c *Clusterer) acquire(ctx context.Context, n, dim, k int) (int, func(), error) {
	workers := c.opts.workers
	if n < parallelThreshold {
		workers = 1
	}

	rc := c.opts.controller
	if rc == nil {
		return workers, func() {}, nil
	}

	mem := workingSetBytes(n, dim, k)
	if err := rc.AcquireMemory(ctx, mem); err != nil {
		return 0, nil, err
	}

	// The calling goroutine is always available; extra slots are best-effort.
	extra := 0
	for extra < workers-1 && rc.TryAcquireWorker() {
		extra++
	}

	release := func() {
		for range extra {
			rc.ReleaseWorker()
		}
		rc.ReleaseMemory(mem)
	}

	return 1 + extra, release, nil
}

// workingSetBytes estimates the peak memory of one iteration: labels,
// membership bitmaps, two centroid sets and the transposed group columns.
func workingSetBytes(n, dim, k int) int64 {
	const float64Size = 8
	labels := int64(n) * 8
	bitmaps := int64(n) * 2
	centroids := 2 * int64(k) * int64(dim) * float64Size
	columns := int64(n) * int64(dim) * float64Size
	return labels + bitmaps + centroids + columns
}
