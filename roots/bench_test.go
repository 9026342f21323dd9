// SPDX-License-Identifier: MIT
package roots_test

import (
	"testing"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/roots"
)

var sinkR roots.Result

func BenchmarkBisectionClosure(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r, err := roots.Bisection(sqMinus2, 0, 2)
		if err != nil {
			b.Fatal(err)
		}
		sinkR = r
	}
}

func BenchmarkBisectionExpression(b *testing.B) {
	f := expr.MustCompile("x^2 - 2")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := roots.Bisection(f, 0, 2)
		if err != nil {
			b.Fatal(err)
		}
		sinkR = r
	}
}
