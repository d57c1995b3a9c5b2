package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/internal/render"
	"github.com/osuushi/delaunay/internal/svgpoints"
)

// Demo of triangulation. Reads points and prints a summary of the
// triangulation and its Voronoi diagram, optionally drawing both to a PNG.
//
// Input on stdin should be newline separated points in the form "x y". Blank
// lines are ignored. With --svg, points are read from the circles and polygons
// in an SVG file instead.

type config struct {
	svg     string
	output  string
	scale   float64
	circles bool
	imgcat  bool
	dump    bool
	verbose bool
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("delaunay", "Delaunay triangulation and Voronoi diagram of a set of points.")
	app.Flag("svg", "Read points from an SVG file instead of stdin.").
		Envar("DELAUNAY_SVG").ExistingFileVar(&cfg.svg)
	app.Flag("output", "Write a PNG rendering to this path.").
		Short('o').Envar("DELAUNAY_OUTPUT").StringVar(&cfg.output)
	app.Flag("scale", "Pixels per unit in the rendering.").
		Default("1").Envar("DELAUNAY_SCALE").Float64Var(&cfg.scale)
	app.Flag("circles", "Draw circumcircles.").
		Envar("DELAUNAY_CIRCLES").BoolVar(&cfg.circles)
	app.Flag("imgcat", "Print the rendering to the terminal (iTerm only).").
		Envar("DELAUNAY_IMGCAT").BoolVar(&cfg.imgcat)
	app.Flag("dump", "Print every face, including the ones reaching off to infinity.").
		Envar("DELAUNAY_DUMP").BoolVar(&cfg.dump)
	app.Flag("verbose", "Log every insertion.").
		Short('v').Envar("DELAUNAY_VERBOSE").BoolVar(&cfg.verbose)
	return app
}

func main() {
	var cfg config
	app := newApp(&cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return zapConfig.Build()
}

func run(cfg config, in io.Reader, out io.Writer, logger *zap.Logger) error {
	points, err := loadPoints(cfg, in)
	if err != nil {
		return err
	}
	logger.Info("read points", zap.Int("count", len(points)))

	tri, err := delaunay.FromPoints(points, delaunay.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "could not triangulate")
	}

	regions := tri.Regions()
	fmt.Fprintf(out, "Read %d points\n", tri.Len())
	fmt.Fprintf(out, "%d triangles\n", len(tri.Triangles()))
	fmt.Fprintf(out, "%d bounded and %d unbounded Voronoi regions\n", len(regions.Bounded), len(regions.Unbounded))

	if cfg.dump {
		for _, line := range tri.Dump() {
			fmt.Fprintln(out, line)
		}
	}

	opts := render.DefaultOptions()
	opts.Scale = cfg.scale
	opts.Circles = cfg.circles

	if cfg.output != "" {
		if err := render.SavePNG(tri, cfg.output, opts); err != nil {
			return err
		}
		logger.Info("wrote rendering", zap.String("path", cfg.output))
	}
	if cfg.imgcat {
		if err := render.Preview(tri, out, opts); err != nil {
			return err
		}
	}
	return nil
}

func loadPoints(cfg config, in io.Reader) ([]geom.Point, error) {
	if cfg.svg == "" {
		return readPoints(in)
	}
	f, err := os.Open(cfg.svg)
	if err != nil {
		return nil, errors.Wrap(err, "could not open svg")
	}
	defer f.Close()
	return svgpoints.Parse(f)
}

func readPoints(in io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read input")
	}
	return points, nil
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geom.Point{X: x, Y: y}, nil
}
