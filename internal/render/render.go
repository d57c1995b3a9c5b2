// Package render draws triangulations with gg, for the command line tool and
// for eyeballing things while debugging.
package render

import (
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/geom"
)

type Options struct {
	// Pixels per unit
	Scale float64
	// Pixels of margin around the points. The Voronoi regions are drawn out to
	// the edge of the image.
	Padding int
	// Draw circumcircles
	Circles bool
}

func DefaultOptions() Options {
	return Options{Scale: 1, Padding: 50}
}

// Voronoi fills, cycled by vertex
var palette = []color.RGBA{
	{0x26, 0x46, 0x53, 0xff},
	{0x2a, 0x9d, 0x8f, 0xff},
	{0xe9, 0xc4, 0x6a, 0xff},
	{0xf4, 0xa2, 0x61, 0xff},
	{0xe7, 0x6f, 0x51, 0xff},
	{0x6d, 0x59, 0x7a, 0xff},
	{0x35, 0x5c, 0x7d, 0xff},
}

// Draw renders the Voronoi regions, then the triangles, optionally the
// circumcircles, and finally the vertices. The origin is at the bottom left.
func Draw[V any](tri delaunay.Triangulation[V], opts Options) *gg.Context {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	padding := float64(opts.Padding)

	bounds := geom.BoundingBoxOf(tri.Points()...)
	if bounds.IsEmpty() {
		bounds = geom.BoundingBoxOf(geom.Point{})
	}
	width := int(opts.Scale*bounds.X.Length() + 2*padding)
	height := int(opts.Scale*bounds.Y.Length() + 2*padding)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then move the
	// lower left of the points to just inside the padding
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-bounds.X.Lo, -bounds.Y.Lo)

	// Everything that's on the canvas, in point coordinates
	canvas := geom.Padded(bounds, padding/opts.Scale)
	lineWidth := 1 / opts.Scale

	for i, region := range tri.Polygons(canvas) {
		c.SetColor(palette[i%len(palette)])
		tracePolygon(c, region.Polygon.Points)
		c.Fill()
	}

	c.SetRGB(1, 1, 1)
	c.SetLineWidth(lineWidth)
	for _, triangle := range tri.Triangles() {
		vertices := triangle.Vertices()
		tracePolygon(c, vertices[:])
		c.Stroke()
	}

	if opts.Circles {
		c.SetRGBA(1, 1, 1, 0.35)
		for _, circle := range tri.Circumcircles() {
			c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
			c.Stroke()
		}
	}

	c.SetRGB(1, 1, 1)
	for _, p := range tri.Points() {
		c.DrawCircle(p.X, p.Y, 3/opts.Scale)
		c.Fill()
	}
	return c
}

func tracePolygon(c *gg.Context, points []geom.Point) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// SavePNG draws the triangulation to a PNG file.
func SavePNG[V any](tri delaunay.Triangulation[V], path string, opts Options) error {
	if err := Draw(tri, opts).SavePNG(path); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	return nil
}

// Preview prints the triangulation to a terminal that understands inline
// images (iTerm and friends).
func Preview[V any](tri delaunay.Triangulation[V], w io.Writer, opts Options) error {
	dir, err := os.MkdirTemp("", "delaunay")
	if err != nil {
		return errors.Wrap(err, "could not create preview directory")
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "preview.png")
	if err := SavePNG(tri, path, opts); err != nil {
		return err
	}
	if err := imgcat.CatFile(path, w); err != nil {
		return errors.Wrap(err, "could not print preview")
	}
	return nil
}
