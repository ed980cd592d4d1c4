// Package kmeans provides k-means clustering of points in n-dimensional
// Euclidean space.
//
// Given a dataset and a cluster count k, the engine samples k distinct
// points as initial centroids and then alternates two steps a fixed number
// of times: every point is assigned to its nearest centroid, and every
// centroid is replaced by the mean of the points assigned to it.
//
// # Quick Start
//
//	centroids, err := kmeans.KMeans(points, 3, 20, kmeans.WithSeed(42))
//
// With the final partition and its quality:
//
//	c := kmeans.New(kmeans.WithSeed(42))
//	res, err := c.Fit(ctx, points, 3, 20)
//	for _, g := range res.Partition.Groups() {
//	    fmt.Println(g.Centroid, len(g.Points))
//	}
//	fmt.Println(res.Quality)
//
// # Building Blocks
//
// The steps of the algorithm are exported on their own:
//
//	p, err := kmeans.Assign(centroids, points)           // nearest-centroid partition
//	next, err := kmeans.RecomputeCentroids(p.PointGroups()) // group means
//	q, err := kmeans.Quality(p)                          // mean squared distance
//
// # Determinism
//
// Centroid sampling is the only source of randomness. WithSeed makes every
// run draw from a fresh source with the same seed, so repeated runs on the
// same data return identical centroids. Sums are computed exactly and
// rounded once, and parallel runs (WithWorkers) sum every group in input
// order, so results do not depend on the worker count.
//
// # Lost Centroids
//
// A centroid that attracts no points during an iteration is dropped, not
// re-seeded, and the run continues with fewer centroids. The result can
// therefore hold fewer than k centroids; Result.Degenerate reports this and
// the logger and metrics collector record it. Callers that need exactly k
// centroids can retry with a different seed.
//
// # Key Features
//
//   - Exact (compensated) summation for means and distances
//   - First-wins tie-breaking for reproducible assignments
//   - Optional parallel assignment/update with shared resource limits
//   - Structured logging (log/slog) and pluggable metrics
package kmeans
