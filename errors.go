package delaunay

import (
	"fmt"

	"github.com/osuushi/delaunay/geom"
)

// CoincidentVerticesError is returned when a value is inserted at exactly the
// position of a vertex already in the triangulation. First is the value that
// was there already, Second the one that was rejected.
//
// Use errors.As to get at the values:
//
//	var coincident *delaunay.CoincidentVerticesError[MyValue]
//	if errors.As(err, &coincident) { ... }
type CoincidentVerticesError[V any] struct {
	First, Second V
	Position      geom.Point
}

func (e *CoincidentVerticesError[V]) Error() string {
	return fmt.Sprintf("coincident vertices at %v: %v and %v", e.Position, e.First, e.Second)
}
