package geom

import "math"

type Triangle struct {
	A, B, C Point
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// SignedArea is positive for counterclockwise triangles.
func (t Triangle) SignedArea() float64 {
	return Orientation(t.A, t.B, t.C) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Contains is strict: points on an edge are outside. The triangle may wind
// either way.
func (t Triangle) Contains(p Point) bool {
	d1 := Orientation(t.A, t.B, p)
	d2 := Orientation(t.B, t.C, p)
	d3 := Orientation(t.C, t.A, p)
	return (d1 > 0 && d2 > 0 && d3 > 0) || (d1 < 0 && d2 < 0 && d3 < 0)
}

func (t Triangle) Circumcircle() (Circle, bool) {
	return CircleThroughPoints(t.A, t.B, t.C)
}

// Polygon is a closed ring of points. The last point connects back to the
// first, so it is not repeated.
type Polygon struct {
	Points []Point
}

// PolygonOf returns the box as a counterclockwise polygon starting at its
// lower left corner.
func PolygonOf(box BoundingBox) Polygon {
	vertices := box.Vertices()
	return Polygon{Points: vertices[:]}
}

// SignedArea by the shoelace formula. Positive for counterclockwise rings.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[(i+1)%len(poly.Points)]
		sum += p.Cross(q)
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

// Centroid is the average of the ring's points. This is not the area
// centroid, but it is always inside a convex polygon, which is all the
// Voronoi code needs.
func (poly Polygon) Centroid() Point {
	var sum Point
	for _, p := range poly.Points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(poly.Points)))
}

// ClipLeftOf keeps the part of the polygon on the left of the axis (points on
// the axis are kept). This is one step of Sutherland-Hodgman clipping, and is
// only guaranteed to produce a single ring for convex input.
func (poly Polygon) ClipLeftOf(axis Axis) Polygon {
	n := len(poly.Points)
	result := make([]Point, 0, n+1)
	for i, current := range poly.Points {
		next := poly.Points[(i+1)%n]
		currentOffset := axis.SignedDistanceFrom(current)
		nextOffset := axis.SignedDistanceFrom(next)

		if currentOffset >= 0 {
			result = append(result, current)
		}
		// Strict on both sides so a vertex lying on the axis isn't emitted twice
		if (currentOffset > 0 && nextOffset < 0) || (currentOffset < 0 && nextOffset > 0) {
			t := currentOffset / (currentOffset - nextOffset)
			result = append(result, Interpolate(current, next, t))
		}
	}
	return Polygon{Points: result}
}

// IsDegenerate is true for rings that can't enclose any area.
func (poly Polygon) IsDegenerate() bool {
	return len(poly.Points) < 3 || poly.Area() == 0
}

// Polyline is an open chain of points.
type Polyline struct {
	Points []Point
}

func (line Polyline) Length() float64 {
	var length float64
	for i := 1; i < len(line.Points); i++ {
		length += Distance(line.Points[i-1], line.Points[i])
	}
	return length
}
