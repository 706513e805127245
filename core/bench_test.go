// Package core_test provides benchmarks for core.Operator operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// BenchmarkAddOperatorProduct measures insertion of distinct keys.
func BenchmarkAddOperatorProduct(b *testing.B) {
	o := core.NewOperator[label]()
	v := calculator.NewComplex(1, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = o.AddOperatorProduct(label(fmt.Sprintf("k%d", i)), v)
	}
}

// BenchmarkMultiply measures the bilinear fold of two 64-entry operators.
func BenchmarkMultiply(b *testing.B) {
	left := core.NewOperator[label]()
	right := core.NewOperator[label]()
	for i := 0; i < 64; i++ {
		_ = left.AddOperatorProduct(label(fmt.Sprintf("l%d", i)), calculator.NewComplex(float64(i), 0))
		_ = right.AddOperatorProduct(label(fmt.Sprintf("r%d", i)), calculator.NewComplex(0, float64(i)))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out := core.NewOperator[label]()
		_ = core.Multiply(out, left, right, mulLabel)
	}
}

// BenchmarkRemove measures order-preserving removal from the front.
func BenchmarkRemove(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		o := core.NewOperator[label](core.WithCapacity(256))
		for j := 0; j < 256; j++ {
			_ = o.AddOperatorProduct(label(fmt.Sprintf("k%d", j)), calculator.One)
		}
		b.StartTimer()
		o.Remove("k0")
	}
}
