// Package fsum implements exact floating-point summation.
//
// The accumulator keeps a list of non-overlapping partial sums
// (Shewchuk's algorithm) and rounds them once at the end, so the
// result is the correctly rounded sum of the inputs regardless of
// their order. This matches the behavior of Python's math.fsum.
package fsum
