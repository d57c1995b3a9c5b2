package advanced

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/dbg"
	"github.com/osuushi/delaunay/geom"
)

// The triangulation covers the whole plane, not just the convex hull. To get
// there without special cases, we pretend there are three extra vertices
// infinitely far away, in three directions 120 degrees apart. Every face is
// then a triangle, but a face may have one or two of these "outer" corners.
// Outer corners are identified by small negative ids, which can never collide
// with a real vertex id.
//
// You can think of this as the usual Bowyer-Watson "super triangle", with the
// super triangle pushed out to infinity. Each face's circumcircle becomes a
// half-plane in the limit, and the insertion algorithm never needs to know
// where the convex hull is.
const (
	FirstOuterID  = -1
	SecondOuterID = -2
	ThirdOuterID  = -3
)

var outerDirections = [3]geom.Direction{
	geom.DirectionFromAngle(math.Pi / 2),      // -1
	geom.DirectionFromAngle(7 * math.Pi / 6),  // -2
	geom.DirectionFromAngle(11 * math.Pi / 6), // -3
}

// IsOuter reports whether id refers to one of the outer corners.
func IsOuter(id int) bool {
	return id <= FirstOuterID && id >= ThirdOuterID
}

// OuterDirection is the direction toward an outer corner.
func OuterDirection(id int) geom.Direction {
	if !IsOuter(id) {
		fatalf("%d is not an outer vertex id", id)
	}
	return outerDirections[-id-1]
}

// The direction of the edge between two outer corners, which is what a corner
// face's half-plane is measured against.
func outerEdgeDirection(fromID, toID int) geom.Direction {
	from := OuterDirection(fromID).Vector()
	to := OuterDirection(toID).Vector()
	direction, ok := geom.DirectionFrom(from, to)
	if !ok {
		fatalf("outer edge %d -> %d has no direction", fromID, toID)
	}
	return direction
}

// Vertex is a real vertex as the engine sees it: an identity and a position.
// The user's value lives in the registry, keyed by ID.
type Vertex struct {
	ID       int
	Position geom.Point
}

func outer(id int) Vertex {
	return Vertex{ID: id}
}

func (v Vertex) IsOuter() bool {
	return IsOuter(v.ID)
}

// Face is one of InteriorFace, EdgeFace or CornerFace. The faces of a
// triangulation tile the plane.
type Face interface {
	// Is p in the face's circumcircle? For faces with outer corners, the
	// "circle" is a half-plane. The faces answering yes form the cavity that an
	// insertion at p replaces.
	InRegion(p geom.Point) bool

	// Is p strictly inside the face itself? Unlike InRegion, this is the region
	// the face covers in the tiling.
	Contains(p geom.Point) bool

	// Corner ids in counterclockwise order. Outer corners are negative.
	IDs() [3]int

	// The three directed edges, counterclockwise.
	edges() [3]edge

	fmt.Stringer

	// This is a dummy method that seals the interface. Only the three face
	// types in this file are faces.
	faceTypeHint()
}

func (InteriorFace) faceTypeHint() {}
func (EdgeFace) faceTypeHint()     {}
func (CornerFace) faceTypeHint()   {}

// InteriorFace has three real corners, counterclockwise.
type InteriorFace struct {
	A, B, C      Vertex
	Circumcircle geom.Circle
}

// EdgeFace has two real corners and an outer corner. It lies on the hull edge
// from A to B, and the outer corner is to the left of that edge.
type EdgeFace struct {
	A, B          Vertex
	OuterID       int
	EdgeDirection geom.Direction // A to B
}

// CornerFace has one real corner and two outer corners. The outer corners are
// in counterclockwise order, and EdgeDirection points from the first toward
// the second.
type CornerFace struct {
	A                  Vertex
	OuterID1, OuterID2 int
	EdgeDirection      geom.Direction
}

func NewCornerFace(a Vertex, outerID1, outerID2 int) CornerFace {
	return CornerFace{
		A:             a,
		OuterID1:      outerID1,
		OuterID2:      outerID2,
		EdgeDirection: outerEdgeDirection(outerID1, outerID2),
	}
}

func (f InteriorFace) Triangle() geom.Triangle {
	return geom.Triangle{A: f.A.Position, B: f.B.Position, C: f.C.Position}
}

func (f InteriorFace) InRegion(p geom.Point) bool {
	return geom.InCircle(f.A.Position, f.B.Position, f.C.Position, p)
}

func (f InteriorFace) Contains(p geom.Point) bool {
	return f.Triangle().Contains(p)
}

func (f InteriorFace) IDs() [3]int {
	return [3]int{f.A.ID, f.B.ID, f.C.ID}
}

func (f InteriorFace) edges() [3]edge {
	return [3]edge{{f.A, f.B}, {f.B, f.C}, {f.C, f.A}}
}

func (f EdgeFace) axis() geom.Axis {
	return geom.Axis{Origin: f.A.Position, Direction: f.EdgeDirection}
}

// The half-plane left of A->B. A point exactly on the line is in the circle
// only if it's strictly between A and B; that's where a circle through A, B
// and a far away point crosses the line.
func (f EdgeFace) InRegion(p geom.Point) bool {
	axis := f.axis()
	offset := axis.SignedDistanceFrom(p)
	if offset != 0 {
		return offset > 0
	}
	along := axis.SignedDistanceAlong(p)
	return along > 0 && along < axis.SignedDistanceAlong(f.B.Position)
}

// The face itself is the half-strip left of A->B, between the rays from A and
// B toward the outer corner.
func (f EdgeFace) Contains(p geom.Point) bool {
	toward := OuterDirection(f.OuterID)
	return f.axis().SignedDistanceFrom(p) > 0 &&
		toward.CrossWith(p.Sub(f.B.Position)) > 0 &&
		toward.CrossWith(p.Sub(f.A.Position)) < 0
}

func (f EdgeFace) IDs() [3]int {
	return [3]int{f.A.ID, f.B.ID, f.OuterID}
}

func (f EdgeFace) edges() [3]edge {
	o := outer(f.OuterID)
	return [3]edge{{f.A, f.B}, {f.B, o}, {o, f.A}}
}

// The half-plane through A on the right of EdgeDirection, which is the side
// facing both outer corners. When p is exactly on the boundary line, the
// limit of the circle through A and two far points (placed symmetrically about
// the origin) decides: p is inside when it's closer to the origin than A is.
func (f CornerFace) InRegion(p geom.Point) bool {
	offset := geom.Axis{Origin: f.A.Position, Direction: f.EdgeDirection}.SignedDistanceFrom(p)
	if offset != 0 {
		return offset < 0
	}
	return p.Dot(p) < f.A.Position.Dot(f.A.Position)
}

// The face itself is the wedge at A between the rays toward the two outer
// corners.
func (f CornerFace) Contains(p geom.Point) bool {
	rel := p.Sub(f.A.Position)
	return OuterDirection(f.OuterID1).CrossWith(rel) > 0 &&
		OuterDirection(f.OuterID2).CrossWith(rel) < 0
}

func (f CornerFace) IDs() [3]int {
	return [3]int{f.A.ID, f.OuterID1, f.OuterID2}
}

func (f CornerFace) edges() [3]edge {
	o1 := outer(f.OuterID1)
	o2 := outer(f.OuterID2)
	return [3]edge{{f.A, o1}, {o1, o2}, {o2, f.A}}
}

// Debug output. Interior faces are green, edge faces cyan, corner faces
// yellow, same as the query graph dumps used to be.

func (f InteriorFace) String() string {
	return fmt.Sprintf("%s ⟨%s %s %s⟩ ⊙%v r=%g",
		aurora.Green("Interior"), vertexName(f.A.ID), vertexName(f.B.ID), vertexName(f.C.ID),
		f.Circumcircle.Center, f.Circumcircle.Radius)
}

func (f EdgeFace) String() string {
	return fmt.Sprintf("%s ⟨%s %s %s⟩ %v",
		aurora.Cyan("Edge"), vertexName(f.A.ID), vertexName(f.B.ID), vertexName(f.OuterID), f.EdgeDirection)
}

func (f CornerFace) String() string {
	return fmt.Sprintf("%s ⟨%s %s %s⟩ %v",
		aurora.Yellow("Corner"), vertexName(f.A.ID), vertexName(f.OuterID1), vertexName(f.OuterID2), f.EdgeDirection)
}

func vertexName(id int) string {
	if IsOuter(id) {
		return fmt.Sprintf("∞%d", -id)
	}
	return fmt.Sprintf("%s#%d", dbg.Name(id), id)
}
