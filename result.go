package kmeans

import (
	"github.com/hupe1980/kmeans/codec"
	"github.com/hupe1980/kmeans/vector"
)

// Result is the outcome of Clusterer.Fit.
type Result struct {
	// K is the requested number of clusters.
	K int
	// Iterations is the number of assignment/update cycles run.
	Iterations int
	// Seeds are the sampled initial centroids.
	Seeds []vector.Point
	// Centroids are the final centroids; there may be fewer than K.
	Centroids []vector.Point
	// Partition is the assignment of the data to Centroids.
	Partition *Partition
	// Quality is the mean squared distance of the points to their centroid.
	Quality float64
}

// Degenerate reports whether centroids were lost during the run.
func (r *Result) Degenerate() bool {
	return len(r.Centroids) < r.K
}

// Report is the serializable summary of a Result.
type Report struct {
	K          int         `json:"k"`
	Iterations int         `json:"iterations"`
	Quality    float64     `json:"quality"`
	Centroids  [][]float64 `json:"centroids"`
	Sizes      []int       `json:"sizes"`
}

// Report summarizes r. Sizes[i] is the number of points assigned to Centroids[i].
func (r *Result) Report() Report {
	rep := Report{
		K:          r.K,
		Iterations: r.Iterations,
		Quality:    r.Quality,
		Centroids:  make([][]float64, len(r.Centroids)),
		Sizes:      make([]int, len(r.Centroids)),
	}
	for i, c := range r.Centroids {
		rep.Centroids[i] = []float64(c.Clone())
		if r.Partition != nil {
			rep.Sizes[i] = r.Partition.Size(i)
		}
	}
	return rep
}

// Encode serializes the report of r with c. If c is nil, codec.Default is used.
func (r *Result) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(r.Report())
}
