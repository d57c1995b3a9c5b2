package geom

import (
	"fmt"
	"math"
)

// Direction is a unit vector. The zero value is not a valid direction; build
// one with DirectionFrom or DirectionFromAngle.
type Direction struct {
	x, y float64
}

// DirectionFrom gives the direction from p toward q. It fails only when the
// points are equal.
func DirectionFrom(p, q Point) (Direction, bool) {
	return DirectionOf(q.Sub(p))
}

// DirectionOf normalizes a vector. It fails for the zero vector.
func DirectionOf(v Point) (Direction, bool) {
	length := v.Norm()
	if length == 0 {
		return Direction{}, false
	}
	return Direction{v.X / length, v.Y / length}, true
}

// DirectionFromAngle is measured counterclockwise from the positive X axis, in
// radians.
func DirectionFromAngle(radians float64) Direction {
	return Direction{math.Cos(radians), math.Sin(radians)}
}

func (d Direction) X() float64 { return d.x }
func (d Direction) Y() float64 { return d.y }

// Vector returns the direction as a unit length vector.
func (d Direction) Vector() Point {
	return Point{X: d.x, Y: d.y}
}

// RotateCounterclockwise rotates by +90 degrees.
func (d Direction) RotateCounterclockwise() Direction {
	return Direction{-d.y, d.x}
}

// RotateClockwise rotates by -90 degrees.
func (d Direction) RotateClockwise() Direction {
	return Direction{d.y, -d.x}
}

func (d Direction) Reverse() Direction {
	return Direction{-d.x, -d.y}
}

// ComponentIn is the dot product with a vector.
func (d Direction) ComponentIn(v Point) float64 {
	return d.x*v.X + d.y*v.Y
}

// CrossWith is the z component of the cross product d × v. Positive means v
// points to the left of d.
func (d Direction) CrossWith(v Point) float64 {
	return d.x*v.Y - d.y*v.X
}

func (d Direction) String() string {
	return fmt.Sprintf("Direction(%g, %g)", d.x, d.y)
}
