// Package sample draws unweighted random samples without replacement.
package sample

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// ErrSampleTooLarge is returned when more elements are requested than exist.
var ErrSampleTooLarge = errors.New("sample larger than population")

// Source is the random source used for sampling.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed int in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// Indices returns k distinct indices drawn uniformly from [0, n),
// in selection order.
//
// Small samples use rejection against a taken-set; samples covering more
// than half the population use a partial Fisher-Yates shuffle.
func Indices(src Source, n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, ErrSampleTooLarge
	}
	if k == 0 {
		return []int{}, nil
	}

	if 2*k > n {
		return shuffle(src, n, k), nil
	}

	taken := bitset.New(uint(n))
	out := make([]int, 0, k)
	for len(out) < k {
		j := src.Intn(n)
		if taken.Test(uint(j)) {
			continue
		}
		taken.Set(uint(j))
		out = append(out, j)
	}

	return out, nil
}

func shuffle(src Source, n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	for i := range k {
		j := i + src.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k:k]
}
