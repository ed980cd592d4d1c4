package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/kmeans/vector"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Intn returns, as an int, a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, dim int) []vector.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([]vector.Point, num)

	for i := range num {
		p := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// GaussianPoints generates points with coordinates from a standard normal distribution.
func (r *RNG) GaussianPoints(num, dim int) []vector.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([]vector.Point, num)

	for i := range num {
		p := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range p {
			p[j] = r.rand.NormFloat64()
		}
		points[i] = p
	}

	return points
}

// Blobs generates perCenter points around each center with Gaussian noise
// of standard deviation spread. Points are interleaved (center 0, 1, ...,
// 0, 1, ...) and labels[i] is the index of the center point i was drawn
// around.
func (r *RNG) Blobs(centers []vector.Point, perCenter int, spread float64) ([]vector.Point, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := len(centers) * perCenter
	points := make([]vector.Point, 0, num)
	labels := make([]int, 0, num)

	for range perCenter {
		for c, center := range centers {
			p := make(vector.Point, len(center))
			for j := range center {
				p[j] = center[j] + r.rand.NormFloat64()*spread
			}
			points = append(points, p)
			labels = append(labels, c)
		}
	}

	return points, labels
}
