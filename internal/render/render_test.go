package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/geom"
)

func triangle(t *testing.T) delaunay.Triangulation[geom.Point] {
	tri, err := delaunay.FromPoints([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 50}})
	require.NoError(t, err)
	return tri
}

func TestDraw(t *testing.T) {
	c := Draw(triangle(t), Options{Scale: 2, Padding: 10})
	assert.Equal(t, 220, c.Width())
	assert.Equal(t, 120, c.Height())

	// The vertex at the origin is drawn at the lower left, inside the padding
	r, g, b, _ := c.Image().At(10, 110).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestDraw_Empty(t *testing.T) {
	c := Draw(delaunay.EmptyPoints(), DefaultOptions())
	assert.Equal(t, 100, c.Width())
	assert.Equal(t, 100, c.Height())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(triangle(t), path, Options{Scale: 1, Padding: 5, Circles: true}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	err = SavePNG(triangle(t), filepath.Join(t.TempDir(), "missing", "out.png"), DefaultOptions())
	assert.Error(t, err)
}
