package delaunay

import (
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
)

// Face is a triangle of the triangulation, with its corners given as the
// original values, counterclockwise.
type Face[V any] struct {
	Vertices     [3]V
	Triangle     geom.Triangle
	Circumcircle geom.Circle
}

// Mesh is an indexed form of the triangulation. Faces index into Vertices.
type Mesh[V any] struct {
	Vertices []V
	Faces    [][3]int
}

// All of the exports below only report faces with three real corners. The
// faces reaching off to infinity are an implementation detail.
func (t Triangulation[V]) interiorFaces() []advanced.InteriorFace {
	var result []advanced.InteriorFace
	for _, face := range t.faces {
		if interior, ok := face.(advanced.InteriorFace); ok {
			result = append(result, interior)
		}
	}
	return result
}

func (t Triangulation[V]) Faces() []Face[V] {
	interiors := t.interiorFaces()
	result := make([]Face[V], len(interiors))
	for i, face := range interiors {
		result[i] = t.export(face)
	}
	return result
}

func (t Triangulation[V]) export(face advanced.InteriorFace) Face[V] {
	return Face[V]{
		Vertices: [3]V{
			t.registry.value(face.A.ID),
			t.registry.value(face.B.ID),
			t.registry.value(face.C.ID),
		},
		Triangle:     face.Triangle(),
		Circumcircle: face.Circumcircle,
	}
}

func (t Triangulation[V]) Triangles() []geom.Triangle {
	interiors := t.interiorFaces()
	result := make([]geom.Triangle, len(interiors))
	for i, face := range interiors {
		result[i] = face.Triangle()
	}
	return result
}

func (t Triangulation[V]) Circumcircles() []geom.Circle {
	interiors := t.interiorFaces()
	result := make([]geom.Circle, len(interiors))
	for i, face := range interiors {
		result[i] = face.Circumcircle
	}
	return result
}

// Vertices returns the values in insertion order. The slice is a copy.
func (t Triangulation[V]) Vertices() []V {
	result := make([]V, t.registry.Len())
	for i, rec := range t.registry.records {
		result[i] = rec.value
	}
	return result
}

// Points returns the vertex positions in insertion order.
func (t Triangulation[V]) Points() []Point {
	result := make([]Point, t.registry.Len())
	for i, rec := range t.registry.records {
		result[i] = rec.vertex.Position
	}
	return result
}

func (t Triangulation[V]) Len() int {
	return t.registry.Len()
}

func (t Triangulation[V]) IsEmpty() bool {
	return t.registry.Len() == 0
}

func (t Triangulation[V]) Mesh() Mesh[V] {
	interiors := t.interiorFaces()
	mesh := Mesh[V]{
		Vertices: t.Vertices(),
		Faces:    make([][3]int, len(interiors)),
	}
	for i, face := range interiors {
		mesh.Faces[i] = face.IDs()
	}
	return mesh
}

// Locate returns the face containing p, if p is inside the convex hull and not
// exactly on an edge.
func (t Triangulation[V]) Locate(p Point) (Face[V], bool) {
	for _, face := range t.faces {
		if !face.Contains(p) {
			continue
		}
		interior, ok := face.(advanced.InteriorFace)
		if !ok {
			return Face[V]{}, false
		}
		return t.export(interior), true
	}
	return Face[V]{}, false
}

// Dump returns a debug description of every face, including the ones with
// corners at infinity.
func (t Triangulation[V]) Dump() []string {
	result := make([]string, len(t.faces))
	for i, face := range t.faces {
		result[i] = face.String()
	}
	return result
}
