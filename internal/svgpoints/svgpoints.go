// Package svgpoints pulls point sets out of SVG documents. It is not a full
// (or even correct) SVG reader: it collects circle centres and the vertices of
// polygons and polylines, in document order, and ignores transforms and
// everything else. That's enough to draw a point set in an editor and feed it
// to the triangulation.
package svgpoints

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/delaunay/geom"
)

// Parse reads an SVG document and returns its points.
func Parse(r io.Reader) ([]geom.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse svg")
	}
	var points []geom.Point
	if err := collect(root, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func collect(el *svgparser.Element, points *[]geom.Point) error {
	switch el.Name {
	case "circle", "ellipse":
		x, err := attribute(el, "cx")
		if err != nil {
			return err
		}
		y, err := attribute(el, "cy")
		if err != nil {
			return err
		}
		*points = append(*points, geom.Point{X: x, Y: y})

	case "polygon", "polyline":
		parsed, err := ParsePointList(el.Attributes["points"])
		if err != nil {
			return errors.Wrapf(err, "bad points in <%s>", el.Name)
		}
		*points = append(*points, parsed...)
	}

	for _, child := range el.Children {
		if err := collect(child, points); err != nil {
			return err
		}
	}
	return nil
}

// Missing coordinates default to zero, as in SVG itself.
func attribute(el *svgparser.Element, name string) (float64, error) {
	raw, ok := el.Attributes[name]
	if !ok || raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s value %q in <%s>", name, raw, el.Name)
	}
	return value, nil
}

// ParsePointList parses an SVG points attribute such as "0,0 10,0 5,8". Commas
// and whitespace are interchangeable separators.
func ParsePointList(s string) ([]geom.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	points := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}
