// SPDX-License-Identifier: MIT

package expr

import "math"

// env is the evaluation environment: the free variable plus the math table.
// Field tags give the names visible inside expressions.
type env struct {
	X float64 `expr:"x"`

	Pi  float64 `expr:"pi"`
	E   float64 `expr:"e"`
	Phi float64 `expr:"phi"`

	Sin   func(float64) float64          `expr:"sin"`
	Cos   func(float64) float64          `expr:"cos"`
	Tan   func(float64) float64          `expr:"tan"`
	Asin  func(float64) float64          `expr:"asin"`
	Acos  func(float64) float64          `expr:"acos"`
	Atan  func(float64) float64          `expr:"atan"`
	Atan2 func(float64, float64) float64 `expr:"atan2"`
	Sinh  func(float64) float64          `expr:"sinh"`
	Cosh  func(float64) float64          `expr:"cosh"`
	Tanh  func(float64) float64          `expr:"tanh"`
	Exp   func(float64) float64          `expr:"exp"`
	Ln    func(float64) float64          `expr:"ln"`
	Log   func(float64) float64          `expr:"log"`
	Log10 func(float64) float64          `expr:"log10"`
	Log2  func(float64) float64          `expr:"log2"`
	Sqrt  func(float64) float64          `expr:"sqrt"`
	Cbrt  func(float64) float64          `expr:"cbrt"`
	Pow   func(float64, float64) float64 `expr:"pow"`
	Hypot func(float64, float64) float64 `expr:"hypot"`
}

// baseEnv holds the shared table; Eval copies it by value and sets X.
var baseEnv = env{
	Pi:  math.Pi,
	E:   math.E,
	Phi: math.Phi,

	Sin:   math.Sin,
	Cos:   math.Cos,
	Tan:   math.Tan,
	Asin:  math.Asin,
	Acos:  math.Acos,
	Atan:  math.Atan,
	Atan2: math.Atan2,
	Sinh:  math.Sinh,
	Cosh:  math.Cosh,
	Tanh:  math.Tanh,
	Exp:   math.Exp,
	Ln:    math.Log,
	Log:   math.Log,
	Log10: math.Log10,
	Log2:  math.Log2,
	Sqrt:  math.Sqrt,
	Cbrt:  math.Cbrt,
	Pow:   math.Pow,
	Hypot: math.Hypot,
}

// Names returns the identifiers available inside expressions, in a fixed order.
func Names() []string {
	return []string{
		"x", "pi", "e", "phi",
		"sin", "cos", "tan", "asin", "acos", "atan", "atan2",
		"sinh", "cosh", "tanh", "exp", "ln", "log", "log10", "log2",
		"sqrt", "cbrt", "pow", "hypot",
	}
}
