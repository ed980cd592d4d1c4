package kmeans

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/internal/fsum"
	"github.com/hupe1980/kmeans/vector"
)

// Partition is the result of an assignment step.
//
// Centroids are kept in an arena and referenced by position; each point is
// labeled with the index of its nearest centroid and every centroid owns a
// bitmap of the point indices assigned to it. Centroids that attracted no
// points stay in the arena but have no group.
type Partition struct {
	centroids []vector.Point
	points    []vector.Point
	labels    []int
	members   []*roaring.Bitmap
	groups    int
}

// Group is one non-empty cluster of a Partition.
type Group struct {
	// Index is the position of the centroid in Partition.Centroids.
	Index    int
	Centroid vector.Point
	Points   []vector.Point
}

func newPartition(centroids, points []vector.Point, labels []int) *Partition {
	members := make([]*roaring.Bitmap, len(centroids))
	for i := range members {
		members[i] = roaring.New()
	}

	// Indices are added in ascending order, so bitmap iteration order
	// equals input order and per-group summation stays deterministic.
	for i, l := range labels {
		members[l].Add(uint32(i))
	}

	groups := 0
	for _, m := range members {
		if !m.IsEmpty() {
			groups++
		}
	}

	return &Partition{
		centroids: centroids,
		points:    points,
		labels:    labels,
		members:   members,
		groups:    groups,
	}
}

// Centroids returns the centroid arena the points were assigned against,
// including centroids without points.
func (p *Partition) Centroids() []vector.Point {
	return p.centroids
}

// Points returns the assigned points in input order.
func (p *Partition) Points() []vector.Point {
	return p.points
}

// Label returns the centroid index of the i-th point.
func (p *Partition) Label(i int) int {
	return p.labels[i]
}

// Labels returns a copy of the point-to-centroid mapping.
func (p *Partition) Labels() []int {
	return slices.Clone(p.labels)
}

// Len returns the number of non-empty groups.
func (p *Partition) Len() int {
	if p == nil {
		return 0
	}
	return p.groups
}

// Size returns the number of points assigned to centroid c.
func (p *Partition) Size(c int) int {
	return int(p.members[c].GetCardinality())
}

// Members returns a copy of the point indices assigned to centroid c.
func (p *Partition) Members(c int) *roaring.Bitmap {
	return p.members[c].Clone()
}

// Group returns the points assigned to centroid c in input order.
func (p *Partition) Group(c int) []vector.Point {
	m := p.members[c]
	out := make([]vector.Point, 0, m.GetCardinality())
	it := m.Iterator()
	for it.HasNext() {
		out = append(out, p.points[it.Next()])
	}
	return out
}

// Groups returns the non-empty groups in ascending centroid order.
//
// The order depends only on the centroids, not on which point of a group
// comes first in the input, so it is stable across parallel runs.
func (p *Partition) Groups() []Group {
	out := make([]Group, 0, p.groups)
	for c, m := range p.members {
		if m.IsEmpty() {
			continue
		}
		out = append(out, Group{
			Index:    c,
			Centroid: p.centroids[c],
			Points:   p.Group(c),
		})
	}
	return out
}

// PointGroups returns the points of every non-empty group, in the same
// order as Groups (ascending centroid index, not the order in which each
// group's first point appears). It is the input of RecomputeCentroids.
func (p *Partition) PointGroups() [][]vector.Point {
	out := make([][]vector.Point, 0, p.groups)
	for c, m := range p.members {
		if m.IsEmpty() {
			continue
		}
		out = append(out, p.Group(c))
	}
	return out
}

// Quality returns the mean squared distance from every point to its
// centroid. See Quality.
func (p *Partition) Quality() (float64, error) {
	if p == nil || len(p.labels) == 0 {
		return 0, vector.ErrEmpty
	}

	var acc fsum.Accumulator
	for c, m := range p.members {
		centroid := p.centroids[c]
		it := m.Iterator()
		for it.HasNext() {
			d, err := distance.SquaredEuclidean(centroid, p.points[it.Next()])
			if err != nil {
				return 0, err
			}
			acc.Add(d)
		}
	}

	q := acc.Sum() / float64(acc.Len())
	if math.IsInf(q, 0) || math.IsNaN(q) {
		return 0, fmt.Errorf("quality overflows float64: %w", vector.ErrNonFinite)
	}
	return q, nil
}

// Quality returns the mean, over every (centroid, point) pair of the
// partition, of the squared Euclidean distance between them. Lower is
// better. It does not feed back into clustering; use it to compare runs,
// for instance across different k.
//
// It returns vector.ErrEmpty for a nil or empty partition and
// vector.ErrNonFinite when the squared distances overflow float64.
func Quality(p *Partition) (float64, error) {
	return p.Quality()
}
