package delaunay

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/internal/svgpoints"
)

// Point sets drawn in an SVG editor. Fixtures are available by name in the
// fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) []Point {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	points, err := svgpoints.Parse(fixture)
	require.NoError(t, err, "could not parse fixture %q", name)
	require.NotEmpty(t, points, "no points in fixture %q", name)
	return points
}

func TestFixtures(t *testing.T) {
	for _, tc := range []struct {
		name      string
		points    int
		triangles int
	}{
		{"scatter", 24, 38},
		{"star", 11, 15},
		// Every cell of the grid is four co-circular points; either diagonal
		// is allowed, but the count is fixed
		{"grid", 16, 18},
	} {
		t.Run(tc.name, func(t *testing.T) {
			points := loadFixture(t, tc.name)
			require.Len(t, points, tc.points)

			tri, err := FromPoints(points)
			require.NoError(t, err)
			assert.Len(t, tri.Triangles(), tc.triangles)
			assertDelaunay(t, tri)

			box := geom.Padded(geom.BoundingBoxOf(points...), 20)
			assertTilesPlane(t, tri, box)

			polygons := tri.Polygons(box)
			assert.Len(t, polygons, tc.points)
			assertPolygonsCoverBox(t, polygons, box)

			regions := tri.Regions()
			assert.Equal(t, tc.points, len(regions.Bounded)+len(regions.Unbounded))
		})
	}
}
