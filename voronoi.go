package delaunay

import (
	"math"
	"sort"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
)

// The Voronoi diagram is read off the faces in one pass. Every triangle's
// circumcenter is a Voronoi vertex shared by its three corners. Every hull edge
// contributes the bisector ray between its two endpoints, pointing away from
// the hull. A vertex that picked up rays is on the hull and has an unbounded
// region; every other vertex is surrounded by triangles and has a closed one.

// BoundedRegion is a closed Voronoi region, counterclockwise.
type BoundedRegion[V any] struct {
	Vertex  V
	Polygon geom.Polygon
}

// UnboundedRegion is the Voronoi region of a hull vertex. Its boundary runs
// in along the Start ray (read backward), through the Polyline, and out along
// the End ray. Start and End have their origins at the first and last points
// of the polyline. When the polyline is empty, the rays start on the hull
// edges instead.
type UnboundedRegion[V any] struct {
	Vertex     V
	Start, End geom.Axis
	Polyline   geom.Polyline
}

// Regions are ordered by vertex insertion order within each list.
type Regions[V any] struct {
	Bounded   []BoundedRegion[V]
	Unbounded []UnboundedRegion[V]
}

type regionAccumulator struct {
	points     []geom.Point
	start, end geom.Axis
	// Counts, since a vertex in a collinear strip gets two of each
	starts, ends int
}

func (t Triangulation[V]) Regions() Regions[V] {
	accumulators := make([]regionAccumulator, t.registry.Len())

	for _, face := range t.faces {
		switch face := face.(type) {
		case advanced.InteriorFace:
			center := face.Circumcircle.Center
			for _, id := range face.IDs() {
				accumulators[id].points = append(accumulators[id].points, center)
			}

		case advanced.EdgeFace:
			// The bisector of the hull edge, pointing outward. The edge face is to
			// the left of A->B, so outward is +90 degrees.
			ray := geom.Axis{
				Origin:    geom.Midpoint(face.A.Position, face.B.Position),
				Direction: face.EdgeDirection.RotateCounterclockwise(),
			}
			a := &accumulators[face.A.ID]
			a.end = ray
			a.ends++
			b := &accumulators[face.B.ID]
			b.start = ray
			b.starts++

		case advanced.CornerFace:
			// A wedge between two rays at infinity borders no other vertex
		}
	}

	var regions Regions[V]
	for id, acc := range accumulators {
		value := t.registry.value(id)
		center := t.registry.position(id)

		switch {
		case acc.starts == 0 && acc.ends == 0:
			if len(acc.points) == 0 {
				continue
			}
			regions.Bounded = append(regions.Bounded, BoundedRegion[V]{
				Vertex:  value,
				Polygon: geom.Polygon{Points: sortAround(center, acc.points)},
			})

		case acc.starts == 1 && acc.ends == 1:
			regions.Unbounded = append(regions.Unbounded, unboundedRegion(value, acc))

		default:
			// Only one ray, or a vertex in the middle of a line of points, whose
			// region is a strip with two rays on each side. Neither fits the
			// region types, so the vertex is left out.
		}
	}
	return regions
}

func unboundedRegion[V any](value V, acc regionAccumulator) UnboundedRegion[V] {
	// Walk across the region from the start ray toward the end ray. Turning
	// the start ray clockwise points back into the region.
	across := geom.Axis{Origin: acc.start.Origin, Direction: acc.start.Direction.RotateClockwise()}
	points := append([]geom.Point(nil), acc.points...)
	sort.SliceStable(points, func(i, j int) bool {
		return across.SignedDistanceAlong(points[i]) < across.SignedDistanceAlong(points[j])
	})

	region := UnboundedRegion[V]{
		Vertex:   value,
		Start:    acc.start,
		End:      acc.end,
		Polyline: geom.Polyline{Points: points},
	}
	if len(points) > 0 {
		region.Start = acc.start.MoveTo(points[0])
		region.End = acc.end.MoveTo(points[len(points)-1])
	}
	return region
}

// Sort points counterclockwise around center, starting from the positive X
// axis.
func sortAround(center geom.Point, points []geom.Point) []geom.Point {
	sorted := append([]geom.Point(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pseudoAngle(center, sorted[i]) < pseudoAngle(center, sorted[j])
	})
	return sorted
}

// pseudoAngle increases monotonically with the angle of p around center, over
// [0, 4) instead of [0, 2π). No trig required.
func pseudoAngle(center, p geom.Point) float64 {
	dx := p.X - center.X
	dy := p.Y - center.Y
	r := dx / (math.Abs(dx) + math.Abs(dy))
	if dy < 0 {
		return 3 + r
	}
	return 1 - r
}
