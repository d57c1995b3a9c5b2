package geom

// Axis is a directed line through an origin point. Voronoi rays are axes read
// from the origin forward.
type Axis struct {
	Origin    Point
	Direction Direction
}

// SignedDistanceFrom is the perpendicular offset of p from the axis. Points to
// the left of the axis (looking along its direction) are positive.
func (a Axis) SignedDistanceFrom(p Point) float64 {
	return a.Direction.CrossWith(p.Sub(a.Origin))
}

// SignedDistanceAlong is the position of p's projection onto the axis,
// measured from the origin.
func (a Axis) SignedDistanceAlong(p Point) float64 {
	return a.Direction.ComponentIn(p.Sub(a.Origin))
}

// PointAt returns the point at distance t along the axis.
func (a Axis) PointAt(t float64) Point {
	return a.Origin.Add(a.Direction.Vector().Mul(t))
}

// MoveTo keeps the direction and replaces the origin.
func (a Axis) MoveTo(origin Point) Axis {
	return Axis{Origin: origin, Direction: a.Direction}
}
