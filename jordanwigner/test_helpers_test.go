// SPDX-License-Identifier: MIT
// Package jordanwigner_test contains shared fixtures for
// qalgebra/jordanwigner tests.

package jordanwigner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
	"github.com/katalvlaran/qalgebra/spins"
)

func cx(re, im float64) calculator.Complex { return calculator.NewComplex(re, im) }

func fp(t *testing.T, s string) fermions.FermionProduct {
	t.Helper()
	p, err := fermions.ParseFermionProduct(s)
	require.NoError(t, err, "ParseFermionProduct(%q)", s)
	return p
}

func hfp(t *testing.T, s string) fermions.HermitianFermionProduct {
	t.Helper()
	p, err := fermions.ParseHermitianFermionProduct(s)
	require.NoError(t, err, "ParseHermitianFermionProduct(%q)", s)
	return p
}

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

// opMap flattens an operator into text -> value.
func opMap[K core.Key[K]](o *core.Operator[K]) map[string]complex128 {
	out := make(map[string]complex128, o.Len())
	for k, v := range o.All() {
		c, _ := v.Complex128()
		out[k.String()] = c
	}
	return out
}
