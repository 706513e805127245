// SPDX-License-Identifier: MIT
// Package mixed_test verifies the mixed key types: text form, conjugation,
// Hermitian orientation and multiplication.

package mixed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/bosons"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
	"github.com/katalvlaran/qalgebra/mixed"
	"github.com/katalvlaran/qalgebra/spins"
)

// TestMixedProduct_Parse VERIFIES the text form and the layout.
func TestMixedProduct_Parse(t *testing.T) {
	p := mp(t, "S0X1Y:Bc0a1:Fc0a0:")
	assert.Equal(t, one, p.Layout())
	assert.Equal(t, "S0X1Y:Bc0a1:Fc0a0:", p.String())
	assert.Equal(t, []int{2}, p.CurrentNumberSpins())
	assert.Equal(t, []int{2}, p.CurrentNumberBosonicModes())
	assert.Equal(t, []int{1}, p.CurrentNumberFermionicModes())

	id := mp(t, "SI:BI:")
	assert.True(t, id.IsEmpty())
	assert.Equal(t, "SI:BI:", id.String())
	assert.Equal(t, mixed.Layout{Spins: 1, Bosons: 1}, id.Layout())

	f, err := fermions.NewFermionProduct([]int{0}, []int{0})
	require.NoError(t, err)
	built := mixed.NewMixedProduct(
		[]spins.PauliProduct{spins.NewPauliProduct().X(0).Y(1)},
		[]bosons.BosonProduct{bosons.NewBosonProduct([]int{0}, []int{1})},
		[]fermions.FermionProduct{f},
	)
	assert.True(t, built.Equal(p))
	assert.Equal(t, 0, built.Compare(p))
}

// TestMixedProduct_ParseErrors VERIFIES prefix and sub-product failures.
func TestMixedProduct_ParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"Q0X:", core.ErrFromStringFailed},
		{"S0X:Ba0c1:", core.ErrIndicesNotNormalOrdered},
		{"S0W:", core.ErrIncorrectPauliEntry},
	}
	for _, tc := range cases {
		_, err := mixed.ParseMixedProduct(tc.in)
		assert.ErrorIs(t, err, tc.want, tc.in)
	}
}

// TestMixedProduct_Conjugate VERIFIES per-subsystem conjugation and phase.
func TestMixedProduct_Conjugate(t *testing.T) {
	c, phase := mp(t, "S0Y:Bc0a1:Fc0c1a2:").HermitianConjugate()
	assert.Equal(t, "S0Y:Bc1a0:Fc2a0a1:", c.String())
	assert.Equal(t, -1.0, phase)

	assert.True(t, mp(t, "S0Z:Bc0a0:Fc1a1:").IsNaturalHermitian())
	assert.False(t, mp(t, "S0Z:Bc0:").IsNaturalHermitian())
}

// TestMixedProduct_Mul VERIFIES the cartesian combination of subsystems.
func TestMixedProduct_Mul(t *testing.T) {
	terms, err := mp(t, "S0X:Bc0:Fa0:").Mul(mp(t, "S0Y:Ba0:Fc0:"))
	require.NoError(t, err)
	assert.Equal(t, map[string]complex128{
		"S0Z:Bc0a0:FI:":    1i,
		"S0Z:Bc0a0:Fc0a0:": -1i,
	}, termMap(terms))

	terms, err = mp(t, "SI:Fc0:").Mul(mp(t, "SI:Fc0:"))
	require.NoError(t, err)
	assert.Empty(t, terms, "c0·c0 vanishes")

	_, err = mp(t, "S0X:").Mul(mp(t, "S0X:Bc0:"))
	assert.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems)
}

// TestMixedProduct_MulBosons VERIFIES contractions inside one boson
// subsystem.
func TestMixedProduct_MulBosons(t *testing.T) {
	terms, err := mp(t, "SI:Ba0:Ba0:").Mul(mp(t, "SI:Bc0:Bc1:"))
	require.NoError(t, err)
	assert.Equal(t, map[string]complex128{
		"SI:BI:Bc1a0:":    1,
		"SI:Bc0a0:Bc1a0:": 1,
	}, termMap(terms))
}

// TestHermitianMixedProduct_Orientation VERIFIES the deciding subsystem.
func TestHermitianMixedProduct_Orientation(t *testing.T) {
	valid := []string{"S0X:Bc0a1:", "S0X:Bc0a0:Fa0:", "SI:BI:Fc0a1:", "S0Z:", "SI:Bc0a1:Bc1a0:"}
	for _, s := range valid {
		_, err := mixed.ParseHermitianMixedProduct(s)
		assert.NoError(t, err, s)
	}
	invalid := []string{"S0X:Bc1a0:", "S0X:Bc0a0:Fc0:", "SI:Bc1a0:Bc0a1:"}
	for _, s := range invalid {
		_, err := mixed.ParseHermitianMixedProduct(s)
		assert.ErrorIs(t, err, core.ErrCreatorsAnnihilatorsMinimumIndex, s)
	}
}

// TestHermitianFromProduct VERIFIES conjugation of the value and the
// natural-key check.
func TestHermitianFromProduct(t *testing.T) {
	h, v, err := mixed.HermitianFromProduct(mp(t, "SI:Bc1a0:"), cx(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "SI:Bc0a1:", h.String())
	assert.True(t, v.Equal(cx(1, -2)))

	h, v, err = mixed.HermitianFromProduct(mp(t, "SI:Fc2a0a1:"), cx(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "SI:Fc0c1a2:", h.String())
	assert.True(t, v.Equal(cx(-1, 1)))

	h, v, err = mixed.HermitianFromProduct(mp(t, "S0X:Bc0a1:"), cx(0, 3))
	require.NoError(t, err)
	assert.Equal(t, "S0X:Bc0a1:", h.String())
	assert.True(t, v.Equal(cx(0, 3)))

	_, _, err = mixed.HermitianFromProduct(mp(t, "S0Z:Bc0a0:"), cx(1, 1))
	assert.ErrorIs(t, err, core.ErrNonHermitianOperator)
}

// TestHermitianMixedProduct_Mul VERIFIES the expansion into h + h†.
func TestHermitianMixedProduct_Mul(t *testing.T) {
	terms, err := hmp(t, "SI:Bc0a1:").MulProduct(mp(t, "SI:Bc1:"))
	require.NoError(t, err)
	assert.Equal(t, map[string]complex128{
		"SI:Bc0c1a1:": 1,
		"SI:Bc0:":     1,
		"SI:Bc1c1a0:": 1,
	}, termMap(terms))

	terms, err = hmp(t, "S0X:").Mul(hmp(t, "S0Y:"))
	require.NoError(t, err)
	assert.Equal(t, map[string]complex128{"S0Z:": 1i}, termMap(terms))

	_, err = hmp(t, "S0X:").Mul(hmp(t, "S0X:Bc0a1:"))
	assert.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems)

	// overlapping fermion modes: c0c1a0a1 = -n0n1
	terms, err = hmp(t, "SI:Fc0c1a0a1:").Mul(hmp(t, "SI:Fc0c1a0a1:"))
	require.NoError(t, err)
	assert.Equal(t, map[string]complex128{"SI:Fc0c1a0a1:": -1}, termMap(terms))

	terms, err = hmp(t, "SI:Fc0a1:").Mul(hmp(t, "SI:Fc0a1:"))
	require.NoError(t, err)
	assert.Equal(t, map[string]complex128{
		"SI:Fc0a0:":     1,
		"SI:Fc1a1:":     1,
		"SI:Fc0c1a0a1:": 2,
	}, termMap(terms))

	c, phase := hmp(t, "SI:Bc0a1:").HermitianConjugate()
	assert.Equal(t, "SI:Bc0a1:", c.String())
	assert.Equal(t, 1.0, phase)
}

// TestMixedVariants VERIFIES the spin alphabet rewrites.
func TestMixedVariants(t *testing.T) {
	assert.Equal(t, map[string]complex128{"S0+:Bc0:": 1, "S0-:Bc0:": 1},
		termMap(mp(t, "S0X:Bc0:").ToMixedPlusMinusProduct()))
	assert.Equal(t, map[string]complex128{"S0iY:Fc0:": -1i},
		termMap(mp(t, "S0Y:Fc0:").ToMixedDecoherenceProduct()))
	assert.Equal(t, map[string]complex128{"S0X:Ba0:": 0.5, "S0Y:Ba0:": 0.5i},
		termMap(mpm(t, "S0+:Ba0:").ToMixedProduct()))
	assert.Equal(t, map[string]complex128{"S0+:": 1, "S0-:": -1},
		termMap(mdp(t, "S0iY:").ToMixedPlusMinusProduct()))

	c, phase := mdp(t, "S0iY1X:Bc0:").HermitianConjugate()
	assert.Equal(t, "S0iY1X:Ba0:", c.String())
	assert.Equal(t, -1.0, phase)
}
