package delaunay

// This contains no actual tests. It holds helpers for checking that a
// triangulation is valid.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/delaunay/geom"
)

// Check the empty circle property: no vertex is strictly inside any
// triangle's circumcircle. Also checks that every triangle winds
// counterclockwise and has area.
func assertDelaunay[V any](t *testing.T, tri Triangulation[V]) {
	t.Helper()
	points := tri.Points()
	for _, face := range tri.Faces() {
		triangle := face.Triangle
		require.Greater(t, triangle.SignedArea(), 0.0, "clockwise or flat triangle %v", triangle)
		for _, p := range points {
			if p == triangle.A || p == triangle.B || p == triangle.C {
				continue
			}
			require.False(t,
				geom.InCircle(triangle.A, triangle.B, triangle.C, p),
				"%v is inside the circumcircle of %v", p, triangle,
			)
		}
	}
}

// Sample a grid over the box and check that each sample is covered by exactly
// one face, counting the faces that reach off to infinity. The offsets keep
// samples off of the edges in the fixtures, which sit on round numbers.
func assertTilesPlane[V any](t *testing.T, tri Triangulation[V], box geom.BoundingBox) {
	t.Helper()
	const steps = 41
	dx := box.X.Length() / steps
	dy := box.Y.Length() / steps
	for y := box.Y.Lo + dy*0.3183; y < box.Y.Hi; y += dy {
		for x := box.X.Lo + dx*0.2718; x < box.X.Hi; x += dx {
			p := geom.Point{X: x, Y: y}
			count := 0
			for _, face := range tri.faces {
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

// The triangulation of a convex region has no holes, so the triangle areas
// add up to the hull's area. This checks that against a known area.
func assertTotalArea[V any](t *testing.T, tri Triangulation[V], expected float64) {
	t.Helper()
	var total float64
	for _, triangle := range tri.Triangles() {
		total += triangle.Area()
	}
	assert.InDelta(t, expected, total, 1e-9*expected)
}
