// Package geom holds the small pieces of analytic geometry the triangulation
// is built from. Points and rectangles come straight from golang/geo's r2
// package; everything else is a closed-form formula on top of them.
package geom

import "github.com/golang/geo/r2"

// Point is a position in the plane.
type Point = r2.Point

// BoundingBox is an axis aligned rectangle.
type BoundingBox = r2.Rect

func SquaredDistance(p, q Point) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

func Distance(p, q Point) float64 {
	return p.Sub(q).Norm()
}

// Interpolate returns the point at parameter t along the segment from p to q.
// t = 0 gives p, t = 1 gives q, and values outside that range extrapolate.
func Interpolate(p, q Point, t float64) Point {
	return p.Add(q.Sub(p).Mul(t))
}

func Midpoint(p, q Point) Point {
	return Interpolate(p, q, 0.5)
}

// Compare orders points lexicographically, by X and then by Y. It returns -1,
// 0 or 1, and 0 only for exactly equal points.
func Compare(p, q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}
	return 0
}

// Circumcenter of the triangle abc. The second result is false when the three
// points are exactly collinear, in which case there is no circumcenter.
//
// The computation is done relative to a, which keeps the magnitudes small when
// the triangle is far from the origin.
func Circumcenter(a, b, c Point) (Point, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * ab.Cross(ac)
	if d == 0 {
		return Point{}, false
	}
	abSq := ab.Dot(ab)
	acSq := ac.Dot(ac)
	offset := Point{
		X: (ac.Y*abSq - ab.Y*acSq) / d,
		Y: (ab.X*acSq - ac.X*abSq) / d,
	}
	return a.Add(offset), true
}

// BoundingBoxOf returns the smallest box containing all the points. An empty
// argument list gives the empty rectangle.
func BoundingBoxOf(points ...Point) BoundingBox {
	// RectFromPoints gives the zero rect, which is a point at the origin
	if len(points) == 0 {
		return r2.EmptyRect()
	}
	return r2.RectFromPoints(points...)
}

// Padded grows the box by margin on every side.
func Padded(box BoundingBox, margin float64) BoundingBox {
	return box.ExpandedByMargin(margin)
}
