// SPDX-License-Identifier: MIT

// Package chart renders a function of one variable, optionally with the
// iterates of a root search, as an SVG or PNG image using gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrInvalidRange indicates xmin >= xmax or a non-finite bound.
	ErrInvalidRange = errors.New("chart: invalid x range")

	// ErrNoData indicates f was not finite at any sample.
	ErrNoData = errors.New("chart: function has no finite samples in range")

	// ErrFormat indicates an unsupported image format.
	ErrFormat = errors.New("chart: unsupported format")
)

// Func is a real function of one variable that may fail at some points.
type Func interface {
	Eval(x float64) (float64, error)
}

// Point is a marked (x, y) pair, e.g. one root-finder iterate.
type Point struct {
	X, Y float64
}

const (
	DefaultSamples = 400
	DefaultWidth   = 6 * vg.Inch
	DefaultHeight  = 4 * vg.Inch
	DefaultFormat  = "svg"
)

// Option configures a chart.
type Option func(*Options)

// Options is the effective chart configuration.
type Options struct {
	title         string
	samples       int
	width, height vg.Length
	format        string
}

// WithTitle sets the plot title.
func WithTitle(title string) Option { return func(o *Options) { o.title = title } }

// WithSamples sets how many points of f are sampled. Panics unless n >= 2.
func WithSamples(n int) Option {
	if n < 2 {
		panic("chart: WithSamples: n must be >= 2")
	}

	return func(o *Options) { o.samples = n }
}

// WithSize sets the image size.
func WithSize(width, height vg.Length) Option {
	return func(o *Options) { o.width, o.height = width, height }
}

// WithFormat selects "svg" (default) or "png".
func WithFormat(format string) Option { return func(o *Options) { o.format = format } }

// Function plots f over [xmin, xmax] with the given points marked and writes
// the encoded image to w. Samples where f fails or is not finite break the
// curve instead of aborting the plot.
func Function(w io.Writer, f Func, xmin, xmax float64, marks []Point, opts ...Option) error {
	o := Options{samples: DefaultSamples, width: DefaultWidth, height: DefaultHeight, format: DefaultFormat}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.format != "svg" && o.format != "png" {
		return fmt.Errorf("Function: %q: %w", o.format, ErrFormat)
	}
	if !finite(xmin) || !finite(xmax) || xmin >= xmax {
		return fmt.Errorf("Function: [%g, %g]: %w", xmin, xmax, ErrInvalidRange)
	}

	segments := sample(f, xmin, xmax, o.samples)
	if len(segments) == 0 {
		return fmt.Errorf("Function: %w", ErrNoData)
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	axis, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: 0}, {X: xmax, Y: 0}})
	if err != nil {
		return fmt.Errorf("Function: %w", err)
	}
	axis.Color = color.Gray{Y: 128}
	axis.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(axis)

	curve := color.RGBA{R: 31, G: 119, B: 180, A: 255}
	for i, seg := range segments {
		line, err := plotter.NewLine(seg)
		if err != nil {
			return fmt.Errorf("Function: %w", err)
		}
		line.Color = curve
		line.Width = vg.Points(1.5)
		p.Add(line)
		if i == 0 {
			p.Legend.Add("f(x)", line)
		}
	}

	if pts := markXYs(marks); len(pts) > 0 {
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("Function: %w", err)
		}
		sc.GlyphStyle.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add("iterates", sc)
	}
	p.X.Min, p.X.Max = xmin, xmax

	wt, err := p.WriterTo(o.width, o.height, o.format)
	if err != nil {
		return fmt.Errorf("Function: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("Function: %w", err)
	}

	return nil
}

// sample evaluates f on a uniform grid and splits the curve at failures.
func sample(f Func, xmin, xmax float64, n int) []plotter.XYs {
	var (
		out []plotter.XYs
		cur plotter.XYs
	)
	step := (xmax - xmin) / float64(n-1)
	for i := 0; i < n; i++ {
		x := xmin + float64(i)*step
		y, err := f.Eval(x)
		if err != nil || !finite(y) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x, Y: y})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

// markXYs drops non-finite marks.
func markXYs(marks []Point) plotter.XYs {
	pts := make(plotter.XYs, 0, len(marks))
	for _, m := range marks {
		if finite(m.X) && finite(m.Y) {
			pts = append(pts, plotter.XY{X: m.X, Y: m.Y})
		}
	}

	return pts
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
