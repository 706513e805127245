// SPDX-License-Identifier: MIT
// Package spins_test contains shared fixtures for qalgebra/spins tests.

package spins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/spins"
)

func cx(re, im float64) calculator.Complex { return calculator.NewComplex(re, im) }

func pauli(t *testing.T, s string) spins.PauliProduct {
	t.Helper()
	p, err := spins.ParsePauliProduct(s)
	require.NoError(t, err, "ParsePauliProduct(%q)", s)
	return p
}

func deco(t *testing.T, s string) spins.DecoherenceProduct {
	t.Helper()
	p, err := spins.ParseDecoherenceProduct(s)
	require.NoError(t, err, "ParseDecoherenceProduct(%q)", s)
	return p
}

func pm(t *testing.T, s string) spins.PlusMinusProduct {
	t.Helper()
	p, err := spins.ParsePlusMinusProduct(s)
	require.NoError(t, err, "ParsePlusMinusProduct(%q)", s)
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
