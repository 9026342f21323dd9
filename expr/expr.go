// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Function is a compiled expression in the free variable x.
type Function struct {
	src     string
	program *vm.Program
}

// Compile parses src once; the returned Function can be evaluated many times.
//
// Errors: ErrParse for empty text, syntax errors and unknown identifiers.
func Compile(src string) (*Function, error) {
	text := strings.TrimSpace(src)
	if text == "" {
		return nil, fmt.Errorf("Compile: empty expression: %w", ErrParse)
	}

	program, err := expr.Compile(text, expr.Env(env{}))
	if err != nil {
		return nil, fmt.Errorf("Compile(%q): %w: %w", text, ErrParse, err)
	}

	return &Function{src: text, program: program}, nil
}

// MustCompile is like Compile but panics on error. Intended for literals in
// tests and examples.
func MustCompile(src string) *Function {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}

	return f
}

// Eval evaluates the expression at x.
//
// Errors: ErrEvaluation when the program fails, yields a non-numeric value,
// or yields NaN/±Inf (e.g. sqrt of a negative number, 1/0).
func (f *Function) Eval(x float64) (float64, error) {
	e := baseEnv
	e.X = x

	out, err := expr.Run(f.program, e)
	if err != nil {
		return 0, fmt.Errorf("Eval(%s, x=%g): %w: %w", f.src, x, ErrEvaluation, err)
	}

	v, ok := toFloat(out)
	if !ok {
		return 0, fmt.Errorf("Eval(%s, x=%g): result %v (%T) is not a number: %w", f.src, x, out, out, ErrEvaluation)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("Eval(%s, x=%g): result %g: %w", f.src, x, v, ErrEvaluation)
	}

	return v, nil
}

// String returns the normalized source text.
func (f *Function) String() string { return f.src }

// toFloat promotes the numeric kinds expr may produce.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
