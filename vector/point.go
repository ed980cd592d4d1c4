package vector

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Point is a coordinate in n-dimensional real space.
// A centroid is a Point in a different role.
type Point []float64

// New returns a Point holding a copy of coords.
func New(coords ...float64) Point {
	return Point(slices.Clone(coords))
}

// Dim returns the number of coordinates.
func (p Point) Dim() int {
	return len(p)
}

// Clone returns a copy of p that shares no storage with it.
func (p Point) Clone() Point {
	return slices.Clone(p)
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return slices.Equal(p, q)
}

// CheckDim returns an *ErrDimensionMismatch if p does not have dim coordinates.
func (p Point) CheckDim(dim int) error {
	if len(p) != dim {
		return &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
	}
	return nil
}

func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Validate checks that points is non-empty, that every point has the
// dimension of the first one and that all coordinates are finite.
// It returns the common dimension.
func Validate(points []Point) (int, error) {
	if len(points) == 0 {
		return 0, ErrEmpty
	}

	dim := len(points[0])
	if dim == 0 {
		return 0, ErrInvalidDimension
	}

	for i, p := range points {
		if err := p.CheckDim(dim); err != nil {
			return 0, fmt.Errorf("point %d: %w", i, err)
		}
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return 0, fmt.Errorf("point %d: %w", i, ErrNonFinite)
			}
		}
	}

	return dim, nil
}

// Distinct returns the indices of the first occurrence of every distinct
// point, in input order. Points compare by exact coordinate value; -0 and
// +0 are the same coordinate.
func Distinct(points []Point) []int {
	seen := make(map[string]struct{}, len(points))
	indices := make([]int, 0, len(points))

	var buf []byte
	for i, p := range points {
		buf = buf[:0]
		for _, c := range p {
			if c == 0 {
				c = 0 // fold -0 into +0
			}
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c))
		}
		key := string(buf)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		indices = append(indices, i)
	}

	return indices
}
