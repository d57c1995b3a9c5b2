package geom

import "math"

type Circle struct {
	Center Point
	Radius float64
}

// CircleThroughPoints builds the circumcircle of three points. It fails when
// the points are exactly collinear.
func CircleThroughPoints(a, b, c Point) (Circle, bool) {
	center, ok := Circumcenter(a, b, c)
	if !ok {
		return Circle{}, false
	}
	// Average the three distances so the radius doesn't favour one corner
	radius := (Distance(center, a) + Distance(center, b) + Distance(center, c)) / 3
	return Circle{Center: center, Radius: radius}, true
}

// Contains reports whether p is strictly inside the circle.
func (c Circle) Contains(p Point) bool {
	return SquaredDistance(c.Center, p) < c.Radius*c.Radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Orientation is twice the signed area of the triangle abc. It is positive
// when abc winds counterclockwise, negative for clockwise, and zero when the
// points are collinear.
func Orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// InCircle reports whether d lies strictly inside the circle through a, b and
// c, which must wind counterclockwise. This is the usual lifted determinant,
// taken relative to d. Unlike going through a Circle, it never takes a square
// root, so exactly cocircular points with small integer coordinates come out
// as exactly zero (not inside).
func InCircle(a, b, c, d Point) bool {
	ad := a.Sub(d)
	bd := b.Sub(d)
	cd := c.Sub(d)
	det := ad.Dot(ad)*bd.Cross(cd) -
		bd.Dot(bd)*ad.Cross(cd) +
		cd.Dot(cd)*ad.Cross(bd)
	return det > 0
}
