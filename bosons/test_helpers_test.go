// SPDX-License-Identifier: MIT
// Package bosons_test contains shared fixtures for qalgebra/bosons tests.

package bosons_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/bosons"
)

func cx(re, im float64) calculator.Complex { return calculator.NewComplex(re, im) }

func bp(t *testing.T, s string) bosons.BosonProduct {
	t.Helper()
	p, err := bosons.ParseBosonProduct(s)
	require.NoError(t, err, "ParseBosonProduct(%q)", s)
	return p
}

func hbp(t *testing.T, s string) bosons.HermitianBosonProduct {
	t.Helper()
	p, err := bosons.ParseHermitianBosonProduct(s)
	require.NoError(t, err, "ParseHermitianBosonProduct(%q)", s)
	return p
}

// set stores v under k and fails the test on error.
func set[K core.Key[K]](t *testing.T, o *core.Operator[K], k K, v calculator.Complex) {
	t.Helper()
	_, _, err := o.Set(k, v)
	require.NoError(t, err, "Set(%s)", k)
}

// requireValue asserts the stored value of k within a small tolerance.
func requireValue[K core.Key[K]](t *testing.T, o *core.Operator[K], k K, want calculator.Complex) {
	t.Helper()
	got := o.Get(k)
	require.True(t, want.IsClose(got, 1e-12), "Get(%s) = %s, want %s", k, got, want)
}

// termMap flattens a term list into text -> weight.
func termMap[K core.Key[K]](terms []core.Term[K]) map[string]complex128 {
	out := make(map[string]complex128, len(terms))
	for _, tm := range terms {
		c, _ := tm.Value.Complex128()
		out[tm.Key.String()] += c
	}
	return out
}

// opMap flattens an operator into text -> value.
func opMap[K core.Key[K]](o *core.Operator[K]) map[string]complex128 {
	out := make(map[string]complex128, o.Len())
	for k, v := range o.All() {
		c, _ := v.Complex128()
		out[k.String()] = c
	}
	return out
}
