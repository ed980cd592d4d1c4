package kmeans

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kmeans/vector"
)

// RecomputeCentroids returns one new centroid per non-empty group: the
// coordinate-wise mean of the group's points. Output order follows the
// input order. Empty groups are skipped, so the result may be shorter than
// groups; no centroid is invented for them.
func RecomputeCentroids(groups [][]vector.Point) ([]vector.Point, error) {
	out := make([]vector.Point, 0, len(groups))
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		c, err := centroidOf(group)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// recomputeParallel computes the centroid of every group concurrently.
// Each group is still summed by a single goroutine in input order.
func recomputeParallel(ctx context.Context, groups [][]vector.Point, workers int) ([]vector.Point, error) {
	if workers <= 1 {
		return RecomputeCentroids(groups)
	}

	slots := make([]vector.Point, len(groups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, group := range groups {
		if len(group) == 0 {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := centroidOf(group)
			if err != nil {
				return err
			}
			slots[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]vector.Point, 0, len(groups))
	for _, c := range slots {
		if c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func centroidOf(group []vector.Point) (vector.Point, error) {
	columns, err := vector.Transpose(group)
	if err != nil {
		return nil, err
	}

	c := make(vector.Point, len(columns))
	for j, col := range columns {
		if c[j], err = vector.Mean(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}
