// Package distance provides the distance functions used to compare points.
//
// Sums of squared coordinate differences are accumulated exactly and
// rounded once, so results are independent of coordinate order and free
// of the drift naive accumulation shows on long vectors.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance
//
// # Usage
//
//	d, err := distance.Euclidean(p, q)
//	sq, err := distance.SquaredEuclidean(p, q)
//	fn, err := distance.Provider(distance.MetricL2)
package distance
