// Package cluster groups points that sit within a distance of each other.
//
// Proximity makes a single forward pass over the points. A point is compared
// against the members a cluster has at the moment it is visited, so a member
// added late does not pull in points visited earlier, and such a point can end
// up in two clusters. Results depend on input order.
package cluster

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/zeusync/spawnkit/internal/core/systems/physics"
	"github.com/zeusync/spawnkit/pkg/sequence"
)

// Cluster is a set of indices into the point slice it was built from.
type Cluster[P any] struct {
	members *roaring.Bitmap
	points  []P
}

func newCluster[P any](points []P, seed int) *Cluster[P] {
	members := roaring.New()
	members.Add(uint32(seed))
	return &Cluster[P]{members: members, points: points}
}

func (c *Cluster[P]) Len() int { return int(c.members.GetCardinality()) }

func (c *Cluster[P]) Contains(i int) bool { return c.members.Contains(uint32(i)) }

// Indices returns member indices in ascending order.
func (c *Cluster[P]) Indices() []int {
	out := make([]int, 0, c.Len())
	it := c.members.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Points lazily yields member points in ascending index order.
func (c *Cluster[P]) Points() *sequence.Iterator[P] {
	return sequence.FromSeq(func(yield func(P) bool) {
		it := c.members.Iterator()
		for it.HasNext() {
			if !yield(c.points[it.Next()]) {
				return
			}
		}
	})
}

// anyWithin reports whether some member is within maxSq of point y.
func (c *Cluster[P]) anyWithin(y int, maxSq float64, distSq func(a, b P) float64) bool {
	it := c.members.Iterator()
	for it.HasNext() {
		if distSq(c.points[it.Next()], c.points[y]) <= maxSq {
			return true
		}
	}
	return false
}

// Proximity clusters 3D points whose chained distances stay within maxDistance.
func Proximity(points []physics.Vec3, maxDistance float64) []*Cluster[physics.Vec3] {
	return ProximityFunc(points, maxDistance, physics.DistanceSquared3)
}

// ProximityFunc clusters points using a squared distance metric; maxDistance
// is squared once and compared against distSq.
func ProximityFunc[P any](points []P, maxDistance float64, distSq func(a, b P) float64) []*Cluster[P] {
	maxSq := maxDistance * maxDistance

	owner := make([]*Cluster[P], len(points))
	// indices in the order they were first assigned
	order := make([]int, 0, len(points))
	assign := func(i int, c *Cluster[P]) {
		if owner[i] == nil {
			order = append(order, i)
		}
		owner[i] = c
	}

	for x := range points {
		if owner[x] != nil {
			continue
		}
		c := newCluster(points, x)
		assign(x, c)

		for y := range points {
			if c.Contains(y) {
				continue
			}
			if c.anyWithin(y, maxSq, distSq) {
				c.members.Add(uint32(y))
				assign(y, c)
			}
		}
	}

	seen := make(map[*Cluster[P]]struct{}, len(order))
	clusters := make([]*Cluster[P], 0)
	for _, i := range order {
		c := owner[i]
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		clusters = append(clusters, c)
	}
	return clusters
}
