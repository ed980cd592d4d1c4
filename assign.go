package kmeans

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/vector"
)

// Assign maps every point to its nearest centroid and groups the points
// by centroid.
//
// The nearest centroid is found by a linear scan; when several centroids
// are equally close the first one in centroids wins. Centroids that
// attract no point are absent from the partition's groups. Assign has no
// side effects and does not modify its inputs.
func Assign(centroids, points []vector.Point) (*Partition, error) {
	if len(centroids) == 0 {
		return nil, ErrNoCentroids
	}
	if uint64(len(points)) > math.MaxUint32 {
		return nil, ErrDatasetTooLarge
	}

	distFunc, err := distance.Provider(distance.MetricL2)
	if err != nil {
		return nil, err
	}

	labels := make([]int, len(points))
	if err := assignRange(distFunc, centroids, points, labels, 0, len(points)); err != nil {
		return nil, err
	}

	return newPartition(centroids, points, labels), nil
}

// assignParallel is Assign with the point range split into disjoint
// chunks, one per worker. Each worker only writes its own label range and
// the partition is built afterwards, so the result equals Assign.
func assignParallel(ctx context.Context, centroids, points []vector.Point, workers int) (*Partition, error) {
	if workers <= 1 {
		return Assign(centroids, points)
	}
	if len(centroids) == 0 {
		return nil, ErrNoCentroids
	}
	if uint64(len(points)) > math.MaxUint32 {
		return nil, ErrDatasetTooLarge
	}

	distFunc, err := distance.Provider(distance.MetricL2)
	if err != nil {
		return nil, err
	}

	n := len(points)
	labels := make([]int, n)
	chunkSize := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return assignRange(distFunc, centroids, points, labels, start, end)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newPartition(centroids, points, labels), nil
}

func assignRange(distFunc distance.Func, centroids, points []vector.Point, labels []int, start, end int) error {
	for i := start; i < end; i++ {
		best, err := nearest(distFunc, centroids, points[i])
		if err != nil {
			return err
		}
		labels[i] = best
	}
	return nil
}

// nearest returns the index of the centroid closest to p under distFunc.
func nearest(distFunc distance.Func, centroids []vector.Point, p vector.Point) (int, error) {
	best := 0
	minDist := math.Inf(1)

	for j, c := range centroids {
		d, err := distFunc(p, c)
		if err != nil {
			return -1, err
		}
		if d < minDist {
			minDist = d
			best = j
		}
	}

	return best, nil
}
