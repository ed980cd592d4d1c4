// Package testutil provides testing utilities for the clustering engine.
//
// This package is intended for use in tests, examples and benchmarks only.
// It provides a seeded random source, synthetic point generators and the
// small reference datasets used throughout the documentation.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, 3)           // uniform [0, 1)
//	pts, labels := rng.Blobs(centers, 50, 0.1) // Gaussian blobs
//
// An *RNG also satisfies kmeans.Rand, so it can seed centroid sampling.
package testutil
