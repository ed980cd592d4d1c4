// Package resource bounds the resources clustering runs may use together.
//
// A Controller is shared by every Clusterer that should draw from the same
// budget. Each run reserves an estimate of its working set in bytes and
// borrows worker slots for its parallel assignment and update passes.
// Runs that cannot get extra worker slots continue with fewer goroutines.
package resource
