// SPDX-License-Identifier: MIT
// Package mixed_test contains shared fixtures for qalgebra/mixed tests.

package mixed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/mixed"
)

func cx(re, im float64) calculator.Complex { return calculator.NewComplex(re, im) }

// one is the layout used by most tests: one subsystem of each kind.
var one = mixed.Layout{Spins: 1, Bosons: 1, Fermions: 1}

func mp(t *testing.T, s string) mixed.MixedProduct {
	t.Helper()
	p, err := mixed.ParseMixedProduct(s)
	require.NoError(t, err, "ParseMixedProduct(%q)", s)
	return p
}

func hmp(t *testing.T, s string) mixed.HermitianMixedProduct {
	t.Helper()
	p, err := mixed.ParseHermitianMixedProduct(s)
	require.NoError(t, err, "ParseHermitianMixedProduct(%q)", s)
	return p
}

func mdp(t *testing.T, s string) mixed.MixedDecoherenceProduct {
	t.Helper()
	p, err := mixed.ParseMixedDecoherenceProduct(s)
	require.NoError(t, err, "ParseMixedDecoherenceProduct(%q)", s)
	return p
}

func mpm(t *testing.T, s string) mixed.MixedPlusMinusProduct {
	t.Helper()
	p, err := mixed.ParseMixedPlusMinusProduct(s)
	require.NoError(t, err, "ParseMixedPlusMinusProduct(%q)", s)
	return p
}

// set stores v under k and fails the test on error.
func set[K core.Key[K]](t *testing.T, o *core.Operator[K], k K, v calculator.Complex) {
	t.Helper()
	_, _, err := o.Set(k, v)
	require.NoError(t, err, "Set(%s)", k)
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
