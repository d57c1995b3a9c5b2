// Incremental Delaunay triangulation for Go, with the dual Voronoi diagram.
//
// A Triangulation holds arbitrary values, each with a position given by a
// function you supply. Inserting a value returns a new triangulation and leaves
// the old one as it was, so old snapshots stay valid.
//
// The triangulation covers the whole plane, not just the convex hull of the
// points. Internally, the region outside the hull is made of faces with corners
// at infinity, which is what lets every Voronoi region, bounded or not, be read
// straight off the faces. Only the ordinary triangles are exposed by Faces and
// Triangles.
package delaunay

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
)

type Point = geom.Point

// Triangulation is an immutable Delaunay triangulation of values of type V. The
// zero value is not usable; start from Empty, FromValues or FromPoints.
type Triangulation[V any] struct {
	positionOf func(V) Point
	registry   registry[V]
	faces      []advanced.Face
	logger     *zap.Logger
}

// Empty returns a triangulation with no vertices. positionOf is used to place
// every value inserted from here on.
func Empty[V any](positionOf func(V) Point, opts ...Option) Triangulation[V] {
	o := applyOptions(opts)
	return Triangulation[V]{
		positionOf: positionOf,
		logger:     o.logger,
	}
}

// FromValues builds a triangulation from a batch of values.
//
// The values are inserted in order of position (by x, then y), not in the
// order given, so the result doesn't depend on the input order and vertex
// identities follow the sorted order. If any two values share a position, a
// *CoincidentVerticesError is returned and no triangulation is built.
func FromValues[V any](values []V, positionOf func(V) Point, opts ...Option) (Triangulation[V], error) {
	type pending struct {
		value    V
		position Point
	}
	sorted := make([]pending, len(values))
	for i, value := range values {
		sorted[i] = pending{value: value, position: positionOf(value)}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return geom.Compare(sorted[i].position, sorted[j].position) < 0
	})

	// After sorting, any duplicates are neighbors
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].position == sorted[i].position {
			return Triangulation[V]{}, &CoincidentVerticesError[V]{
				First:    sorted[i-1].value,
				Second:   sorted[i].value,
				Position: sorted[i].position,
			}
		}
	}

	result := Empty(positionOf, opts...)
	for _, p := range sorted {
		var err error
		if result, err = result.insert(p.value, p.position); err != nil {
			return Triangulation[V]{}, err
		}
	}
	return result, nil
}

// FromPoints is FromValues for bare points.
func FromPoints(points []Point, opts ...Option) (Triangulation[Point], error) {
	return FromValues(points, identity, opts...)
}

// EmptyPoints is Empty for bare points.
func EmptyPoints(opts ...Option) Triangulation[Point] {
	return Empty(identity, opts...)
}

func identity(p Point) Point {
	return p
}

// Insert returns a new triangulation with value added. The receiver is not
// modified.
//
// If a vertex already exists at the value's position, the result is the
// receiver itself, along with a *CoincidentVerticesError.
func (t Triangulation[V]) Insert(value V) (Triangulation[V], error) {
	position := t.positionOf(value)
	if existing, ok := t.registry.find(position); ok {
		t.logger.Debug("rejected coincident vertex",
			zap.Stringer("position", position),
			zap.Int("existing", existing.vertex.ID),
		)
		return t, &CoincidentVerticesError[V]{
			First:    existing.value,
			Second:   value,
			Position: position,
		}
	}
	return t.insert(value, position)
}

// InsertAll inserts the values one at a time, in the order given. It stops at
// the first error, returning the triangulation built up to that point.
func (t Triangulation[V]) InsertAll(values ...V) (Triangulation[V], error) {
	for _, value := range values {
		next, err := t.Insert(value)
		if err != nil {
			return t, err
		}
		t = next
	}
	return t, nil
}

// The insertion itself, with no duplicate check. Engine failures come out of
// advanced as panics and are turned back into errors here.
func (t Triangulation[V]) insert(value V, position Point) (result Triangulation[V], err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = t
			err = errors.Wrapf(recoveredErr, "could not insert vertex at %v", position)
		}
	}()

	nextRegistry, vertex := t.registry.register(value, position)
	faces, cavitySize := advanced.InsertWithCavity(vertex, t.faces)

	t.logger.Debug("inserted vertex",
		zap.Int("id", vertex.ID),
		zap.Stringer("position", position),
		zap.Int("cavity", cavitySize),
		zap.Int("faces", len(faces)),
	)

	return Triangulation[V]{
		positionOf: t.positionOf,
		registry:   nextRegistry,
		faces:      faces,
		logger:     t.logger,
	}, nil
}
