package advanced

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/delaunay/geom"
)

// Helpers

func insertAll(points ...geom.Point) []Face {
	var faces []Face
	for i, p := range points {
		faces = Insert(Vertex{ID: i, Position: p}, faces)
	}
	return faces
}

type faceCounts struct {
	interior, edge, corner int
}

func countFaces(faces []Face) faceCounts {
	var counts faceCounts
	for _, face := range faces {
		switch face.(type) {
		case InteriorFace:
			counts.interior++
		case EdgeFace:
			counts.edge++
		case CornerFace:
			counts.corner++
		}
	}
	return counts
}

// Check that every sample point lands in exactly one face. Sample offsets are
// irrational-ish so we never sit exactly on a face boundary.
func assertTilesPlane(t *testing.T, faces []Face, min, max float64) {
	t.Helper()
	step := (max - min) / 37
	for y := min + step*0.3183; y < max; y += step {
		for x := min + step*0.2718; x < max; x += step {
			p := geom.Point{X: x, Y: y}
			count := 0
			for _, face := range faces {
				if face.Contains(p) {
					count++
				}
			}
			if !assert.Equal(t, 1, count, "point %v is covered by %d faces", p, count) {
				return
			}
		}
	}
}

func TestInitialFaces(t *testing.T) {
	v := vertexAt(0, 1, 2)
	faces := InitialFaces(v)
	require.Len(t, faces, 3)
	assert.Equal(t, faceCounts{corner: 3}, countFaces(faces))

	var pairs [][2]int
	for _, face := range faces {
		ids := face.IDs()
		assert.Equal(t, 0, ids[0])
		pairs = append(pairs, [2]int{ids[1], ids[2]})
	}
	assert.ElementsMatch(t, [][2]int{{-1, -2}, {-2, -3}, {-3, -1}}, pairs)

	assertTilesPlane(t, faces, -10, 10)
}

func TestInsert(t *testing.T) {
	t.Run("first vertex", func(t *testing.T) {
		faces, cavitySize := InsertWithCavity(vertexAt(0, 0, 0), nil)
		assert.Equal(t, 0, cavitySize)
		assert.Equal(t, faceCounts{corner: 3}, countFaces(faces))
	})

	t.Run("two vertices", func(t *testing.T) {
		faces := insertAll(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0})
		assert.Equal(t, faceCounts{edge: 2, corner: 3}, countFaces(faces))
		assertTilesPlane(t, faces, -5, 5)
	})

	t.Run("triangle", func(t *testing.T) {
		faces := insertAll(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 0, Y: 1})
		assert.Equal(t, faceCounts{interior: 1, edge: 3, corner: 3}, countFaces(faces))

		for _, face := range faces {
			if interior, ok := face.(InteriorFace); ok {
				assert.Equal(t, [3]int{0, 1, 2}, interior.IDs())
				assert.InDelta(t, 0.5, interior.Circumcircle.Center.X, 1e-12)
				assert.InDelta(t, 0.5, interior.Circumcircle.Center.Y, 1e-12)
				assert.Greater(t, interior.Triangle().SignedArea(), 0.0)
			}
		}
		assertTilesPlane(t, faces, -5, 5)
	})

	t.Run("point on a hull edge", func(t *testing.T) {
		// The middle point lands exactly on the segment between the first two,
		// which are both hull edges. Both edge faces must be in the cavity.
		faces := insertAll(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Point{X: 1, Y: 0})
		assert.Equal(t, faceCounts{edge: 4, corner: 3}, countFaces(faces))
		assertTilesPlane(t, faces, -5, 5)
	})

	t.Run("point on an interior edge", func(t *testing.T) {
		faces := insertAll(
			geom.Point{X: 0, Y: 0},
			geom.Point{X: 2, Y: 0},
			geom.Point{X: 1, Y: 3},
			geom.Point{X: 1, Y: -3},
			geom.Point{X: 1, Y: 0},
		)
		counts := countFaces(faces)
		assert.Equal(t, 4, counts.interior)
		assertTilesPlane(t, faces, -5, 5)
	})

	t.Run("does not modify its input", func(t *testing.T) {
		faces := insertAll(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 0, Y: 1})
		snapshot := append([]Face(nil), faces...)
		Insert(vertexAt(3, 0.3, 0.3), faces)
		assert.Equal(t, snapshot, faces)
	})

	t.Run("random points tile the plane", func(t *testing.T) {
		r := rand.New(rand.NewSource(1234))
		var points []geom.Point
		for i := 0; i < 60; i++ {
			points = append(points, geom.Point{X: r.Float64()*10 - 5, Y: r.Float64()*10 - 5})
		}
		faces := insertAll(points...)
		assertTilesPlane(t, faces, -8, 8)

		// Euler: with n real vertices and the 3 outer ones, there are 2(n+3)-5
		// triangles (the outer triangle itself is the missing face).
		assert.Len(t, faces, 2*(len(points)+3)-5)
	})
}

func TestInsert_EmptyCavity(t *testing.T) {
	// A lone interior face doesn't tile the plane, so a point far away from it
	// has nowhere to go
	a := vertexAt(0, 0, 0)
	b := vertexAt(1, 1, 0)
	c := vertexAt(2, 0, 1)
	circle, _ := geom.CircleThroughPoints(a.Position, b.Position, c.Position)
	faces := []Face{InteriorFace{A: a, B: b, C: c, Circumcircle: circle}}

	err := func() (err error) {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		Insert(vertexAt(3, 10, 10), faces)
		return nil
	}()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertex 3")
	assert.Contains(t, err.Error(), "is not in conflict with any face")
}

func TestCavityBoundary(t *testing.T) {
	v := func(id int) Vertex { return Vertex{ID: id} }

	b := newCavityBoundary()
	b.toggle(edge{v(1), v(2)})
	b.toggle(edge{v(2), v(3)})
	b.toggle(edge{v(-1), v(1)})
	assert.Equal(t, 3, b.Len())

	// The same edge in the other direction cancels
	b.toggle(edge{v(2), v(1)})
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []edge{{v(2), v(3)}, {v(-1), v(1)}}, b.Edges())

	assert.Equal(t, keyOf(edge{v(-3), v(5)}), keyOf(edge{v(5), v(-3)}))
	assert.NotEqual(t, keyOf(edge{v(-3), v(5)}), keyOf(edge{v(3), v(5)}))
}

func TestJoinEdge(t *testing.T) {
	p := vertexAt(9, 0, 0)

	t.Run("two real corners", func(t *testing.T) {
		face, ok := joinEdge(p, edge{vertexAt(0, 1, 0), vertexAt(1, 0, 1)})
		require.True(t, ok)
		require.IsType(t, InteriorFace{}, face)
		assert.Equal(t, [3]int{0, 1, 9}, face.IDs())
	})

	t.Run("collinear is dropped", func(t *testing.T) {
		_, ok := joinEdge(p, edge{vertexAt(0, 1, 0), vertexAt(1, 2, 0)})
		assert.False(t, ok)
	})

	t.Run("real then outer", func(t *testing.T) {
		face, ok := joinEdge(p, edge{vertexAt(0, 1, 0), outer(FirstOuterID)})
		require.True(t, ok)
		require.IsType(t, EdgeFace{}, face)
		assert.Equal(t, [3]int{9, 0, FirstOuterID}, face.IDs())
		assert.InDelta(t, 1, face.(EdgeFace).EdgeDirection.X(), 1e-12)
	})

	t.Run("outer then real", func(t *testing.T) {
		face, ok := joinEdge(p, edge{outer(SecondOuterID), vertexAt(0, 1, 0)})
		require.True(t, ok)
		require.IsType(t, EdgeFace{}, face)
		assert.Equal(t, [3]int{0, 9, SecondOuterID}, face.IDs())
		assert.InDelta(t, -1, face.(EdgeFace).EdgeDirection.X(), 1e-12)
	})

	t.Run("two outer corners", func(t *testing.T) {
		face, ok := joinEdge(p, edge{outer(ThirdOuterID), outer(FirstOuterID)})
		require.True(t, ok)
		require.IsType(t, CornerFace{}, face)
		assert.Equal(t, [3]int{9, ThirdOuterID, FirstOuterID}, face.IDs())
	})
}
