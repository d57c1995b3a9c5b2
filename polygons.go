package delaunay

import (
	"sort"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
)

// VoronoiPolygon is a Voronoi region cut down to a bounding box.
type VoronoiPolygon[V any] struct {
	Vertex  V
	Polygon geom.Polygon
}

// Polygons returns every vertex's Voronoi region clipped to box, in insertion
// order. Unlike Regions, every region is closed, so this is usually what you
// want for drawing. Vertices whose region misses the box entirely are left
// out.
//
// Each region is built by starting from the box and cutting away everything
// on the far side of the bisector with each Delaunay neighbor.
func (t Triangulation[V]) Polygons(box geom.BoundingBox) []VoronoiPolygon[V] {
	if box.IsEmpty() {
		return nil
	}

	neighbors := t.neighbors()
	boxPolygon := geom.PolygonOf(box)

	var result []VoronoiPolygon[V]
	for id := 0; id < t.registry.Len(); id++ {
		position := t.registry.position(id)
		polygon := boxPolygon
		for _, neighbor := range neighbors[id] {
			other := t.registry.position(neighbor)
			direction, ok := geom.DirectionFrom(position, other)
			if !ok {
				continue
			}
			bisector := geom.Axis{
				Origin:    geom.Midpoint(position, other),
				Direction: direction.RotateCounterclockwise(),
			}
			polygon = polygon.ClipLeftOf(bisector)
			if len(polygon.Points) == 0 {
				break
			}
		}

		if polygon.IsDegenerate() {
			continue
		}
		result = append(result, VoronoiPolygon[V]{
			Vertex:  t.registry.value(id),
			Polygon: polygon,
		})
	}
	return result
}

// Neighbors of each vertex along triangle and hull edges, sorted by id.
func (t Triangulation[V]) neighbors() [][]int {
	sets := make([]map[int]struct{}, t.registry.Len())
	link := func(a, b int) {
		if advanced.IsOuter(a) || advanced.IsOuter(b) {
			return
		}
		if sets[a] == nil {
			sets[a] = make(map[int]struct{})
		}
		if sets[b] == nil {
			sets[b] = make(map[int]struct{})
		}
		sets[a][b] = struct{}{}
		sets[b][a] = struct{}{}
	}

	for _, face := range t.faces {
		ids := face.IDs()
		link(ids[0], ids[1])
		link(ids[1], ids[2])
		link(ids[2], ids[0])
	}

	result := make([][]int, len(sets))
	for id, set := range sets {
		for neighbor := range set {
			result[id] = append(result[id], neighbor)
		}
		sort.Ints(result[id])
	}
	return result
}

// Neighbors returns the values adjacent to the vertex at position p, or false
// if there is no vertex there.
func (t Triangulation[V]) Neighbors(p Point) ([]V, bool) {
	rec, ok := t.registry.find(p)
	if !ok {
		return nil, false
	}
	ids := t.neighbors()[rec.vertex.ID]
	result := make([]V, len(ids))
	for i, id := range ids {
		result[i] = t.registry.value(id)
	}
	return result, true
}
