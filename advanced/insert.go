package advanced

import "github.com/osuushi/delaunay/geom"

// Incremental Delaunay insertion, Bowyer-Watson style. Inserting a vertex
//
//  1. finds the cavity: every face whose circumcircle (or half-plane, for
//     faces with outer corners) contains the new point,
//  2. takes the boundary of the cavity by cancelling the edges cavity faces
//     share with each other, and
//  3. connects the new vertex to every boundary edge.
//
// Because of the outer corners, the cavity never needs special handling when
// the new point is outside the current convex hull.
//
// Nothing here mutates its input. Face slices passed in are only read, so an
// older triangulation stays valid after a newer one is built from it.

// InitialFaces covers the plane around a single vertex with three corner
// faces, one for each pair of outer corners.
func InitialFaces(v Vertex) []Face {
	return []Face{
		NewCornerFace(v, FirstOuterID, SecondOuterID),
		NewCornerFace(v, SecondOuterID, ThirdOuterID),
		NewCornerFace(v, ThirdOuterID, FirstOuterID),
	}
}

// FindCavity splits faces into those in conflict with p and those that are
// kept.
func FindCavity(p geom.Point, faces []Face) (cavity, retained []Face) {
	retained = make([]Face, 0, len(faces))
	for _, face := range faces {
		if face.InRegion(p) {
			cavity = append(cavity, face)
		} else {
			retained = append(retained, face)
		}
	}
	return cavity, retained
}

// Retriangulate builds the faces that fill the cavity around v.
func Retriangulate(v Vertex, cavity []Face) []Face {
	boundary := newCavityBoundary()
	for _, face := range cavity {
		boundary.addFace(face)
	}

	result := make([]Face, 0, boundary.Len())
	for _, e := range boundary.Edges() {
		if face, ok := joinEdge(v, e); ok {
			result = append(result, face)
		}
	}
	return result
}

// Insert returns the faces after inserting v. The caller is responsible for
// making sure no existing vertex has the same position.
func Insert(v Vertex, faces []Face) []Face {
	newFaces, _ := InsertWithCavity(v, faces)
	return newFaces
}

// InsertWithCavity is Insert, but also reports how many faces were replaced.
func InsertWithCavity(v Vertex, faces []Face) (newFaces []Face, cavitySize int) {
	if len(faces) == 0 {
		return InitialFaces(v), 0
	}

	cavity, retained := FindCavity(v.Position, faces)
	if len(cavity) == 0 {
		// The faces tile the plane, and every face's region contains the face
		// itself, so something has gone badly wrong numerically.
		fatalf("vertex %d at %v is not in conflict with any face", v.ID, v.Position)
	}
	return append(retained, Retriangulate(v, cavity)...), len(cavity)
}

// Connect v to a boundary edge. The edge runs counterclockwise around the
// cavity, so (start, end, v) is a counterclockwise face.
//
//	    start ---- end
//	         \    /
//	          \  /
//	           v
func joinEdge(v Vertex, e edge) (Face, bool) {
	start, end := e.start, e.end
	switch {
	case !start.IsOuter() && !end.IsOuter():
		circle, ok := geom.CircleThroughPoints(start.Position, end.Position, v.Position)
		if !ok {
			// Exactly collinear. This is a sliver with no area, so there's
			// nothing to cover.
			return nil, false
		}
		return InteriorFace{A: start, B: end, C: v, Circumcircle: circle}, true

	case !start.IsOuter():
		// (start, ∞, v) rotates to (v, start, ∞)
		return newEdgeFace(v, start, end.ID), true

	case !end.IsOuter():
		// (∞, end, v) rotates to (end, v, ∞)
		return newEdgeFace(end, v, start.ID), true

	default:
		// (∞1, ∞2, v) rotates to (v, ∞1, ∞2)
		return NewCornerFace(v, start.ID, end.ID), true
	}
}

func newEdgeFace(a, b Vertex, outerID int) EdgeFace {
	direction, ok := geom.DirectionFrom(a.Position, b.Position)
	if !ok {
		fatalf("edge face between coincident vertices %d and %d", a.ID, b.ID)
	}
	return EdgeFace{A: a, B: b, OuterID: outerID, EdgeDirection: direction}
}
