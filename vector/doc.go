// Package vector provides the geometry primitives used by the clustering
// engine: a dimension-checked point type, exact arithmetic means and a
// transpose helper for coordinate-wise computations.
//
// Points are treated as immutable values. Nothing in this package modifies
// a Point it receives; functions that produce points allocate new ones.
package vector
