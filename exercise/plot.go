// SPDX-License-Identifier: MIT
package exercise

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/roots"
	"github.com/katalvlaran/numlab/store"
)

const (
	// halfWidth is the plotted distance either side of x when the record has no bracket.
	halfWidth = 5.0
	// maxMarks bounds the iterates drawn; the latest ones are kept.
	maxMarks = 200
)

// Plot draws the record's equation. With a root method name, that method is
// run first and its iterates are marked; an empty method plots the curve only.
// The x range is [xl, xr] when both are set, else x ± 5, widened to cover
// every iterate.
func Plot(ctx context.Context, w io.Writer, method string, rec store.Record, opts ...chart.Option) error {
	f, err := equation(rec)
	if err != nil {
		return fmt.Errorf("Plot: %w: %w", ErrNotPlottable, err)
	}
	lo, hi, err := plotRange(rec)
	if err != nil {
		return fmt.Errorf("Plot: %w", err)
	}

	var marks []chart.Point
	if method != "" {
		if e, ok := registry[method]; !ok || e.Kind != KindRoot {
			return fmt.Errorf("Plot %q: %w", method, ErrNotPlottable)
		}
		rep, err := Run(ctx, method, rec)
		res, ok := rep.Result.(roots.Result)
		if !ok {
			return fmt.Errorf("Plot: %w", err)
		}
		// A failed search still has a trace worth drawing.
		trace := res.Trace
		if len(trace) > maxMarks {
			trace = trace[len(trace)-maxMarks:]
		}
		for _, it := range trace {
			y, ferr := f.Eval(it.X)
			if ferr != nil {
				continue
			}
			marks = append(marks, chart.Point{X: it.X, Y: y})
			lo, hi = math.Min(lo, it.X), math.Max(hi, it.X)
		}
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	opts = append([]chart.Option{chart.WithTitle(f.String())}, opts...)

	return chart.Function(w, f, lo, hi, marks, opts...)
}

func plotRange(rec store.Record) (float64, float64, error) {
	xl, errL := rec.Float(store.FieldXL)
	xr, errR := rec.Float(store.FieldXR)
	if errL == nil && errR == nil && xl != xr {
		return math.Min(xl, xr), math.Max(xl, xr), nil
	}
	x, err := rec.Float(store.FieldX)
	if err == nil {
		return x - halfWidth, x + halfWidth, nil
	}
	if errors.Is(err, store.ErrEmptyField) {
		return 0, 0, fmt.Errorf("%w: no xl/xr or x", ErrNotPlottable)
	}

	return 0, 0, err
}
