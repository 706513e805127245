// SPDX-License-Identifier: MIT
// Package mixed_test verifies the mixed containers and systems.

package mixed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/mixed"
)

// TestMixedOperator_Layout VERIFIES the layout guard and its propagation.
func TestMixedOperator_Layout(t *testing.T) {
	o := mixed.NewMixedOperator(one)
	assert.Equal(t, one, mixed.LayoutOf(o))

	_, _, err := o.Set(mp(t, "S0X:"), cx(1, 0))
	require.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems)
	assert.True(t, o.IsEmpty())

	set(t, o, mp(t, "S0X:Bc0:Fa1:"), cx(1, 0))
	assert.Equal(t, one, mixed.LayoutOf(o.Clone()))
	assert.Equal(t, one, mixed.LayoutOf(o.EmptyClone(0)))

	_, _, err = o.Clone().Set(mp(t, "S0X:Bc0:"), cx(1, 0))
	assert.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems, "clones keep the guard")
}

// TestMixedHamiltonian_Policy VERIFIES the real-value rule on natural keys.
func TestMixedHamiltonian_Policy(t *testing.T) {
	h := mixed.NewMixedHamiltonian(one)
	_, _, err := h.Set(hmp(t, "S0Z:BI:FI:"), cx(0, 1))
	require.ErrorIs(t, err, core.ErrNonHermitianOperator)

	set(t, h, hmp(t, "S0Z:Bc0a1:FI:"), cx(0, 1))
	set(t, h, hmp(t, "S0Z:BI:Fc0a0:"), cx(2, 0))
	assert.Equal(t, 2, h.Len())
}

// TestMulMixed VERIFIES operator products against hand expansions.
func TestMulMixed(t *testing.T) {
	l := mixed.NewMixedOperator(one)
	set(t, l, mp(t, "S0X:BI:Fa0:"), cx(2, 0))
	r := mixed.NewMixedOperator(one)
	set(t, r, mp(t, "S0Y:Bc0:Fc0:"), cx(0, 1))

	got, err := mixed.MulMixed(l, r)
	require.NoError(t, err)
	assert.Equal(t, one, mixed.LayoutOf(got))
	assert.Equal(t, map[string]complex128{
		"S0Z:Bc0:FI:":    -2,
		"S0Z:Bc0:Fc0a0:": 2,
	}, opMap(got))

	_, err = mixed.MulMixed(l, mixed.NewMixedOperator(mixed.Layout{Spins: 1}))
	assert.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems)

	h := mixed.NewMixedHamiltonian(one)
	set(t, h, hmp(t, "SI:Bc0a1:FI:"), cx(0, 1))
	o := mixed.NewMixedOperator(one)
	set(t, o, mp(t, "SI:Bc1:FI:"), cx(2, 0))

	got, err = mixed.MulMixedHamiltonianOperator(h, o)
	require.NoError(t, err)
	assert.Equal(t, map[string]complex128{
		"SI:Bc0:FI:":     2i,
		"SI:Bc0c1a1:FI:": 2i,
		"SI:Bc1c1a0:FI:": -2i,
	}, opMap(got))

	expanded := mixed.MixedOperatorFromHamiltonian(h)
	want, err := mixed.MulMixed(o, expanded)
	require.NoError(t, err)
	got, err = mixed.MulMixedOperatorHamiltonian(o, h)
	require.NoError(t, err)
	assert.True(t, got.IsClose(want, 1e-12))

	want, err = mixed.MulMixed(expanded, expanded)
	require.NoError(t, err)
	got, err = mixed.MulMixedHamiltonian(h, h)
	require.NoError(t, err)
	assert.True(t, got.IsClose(want, 1e-12))
}

// TestMixedConversions VERIFIES the Hamiltonian and alphabet casts.
func TestMixedConversions(t *testing.T) {
	h := mixed.NewMixedHamiltonian(one)
	set(t, h, hmp(t, "S0X:Bc0a1:FI:"), cx(1, 2))
	set(t, h, hmp(t, "S0Z:BI:Fc1a1:"), cx(3, 0))

	assert.Equal(t, map[string]complex128{
		"S0X:Bc0a1:FI:": 1 + 2i,
		"S0X:Bc1a0:FI:": 1 - 2i,
		"S0Z:BI:Fc1a1:": 3,
	}, opMap(mixed.MixedOperatorFromHamiltonian(h)))

	scaled := mixed.MulMixedHamiltonianComplex(h, cx(2, 0))
	c, _ := scaled.Get(mp(t, "S0X:Bc1a0:FI:")).Complex128()
	assert.Equal(t, complex(2, -4), c)

	g := mixed.NewMixedOperator(one)
	set(t, g, mp(t, "S0X:Bc0a1:FI:"), cx(1, 2))
	back, err := mixed.MixedHamiltonianFromOperator(g)
	require.NoError(t, err)
	assert.Equal(t, one, mixed.LayoutOf(back))
	assert.Equal(t, map[string]complex128{"S0X:Bc0a1:FI:": 1 + 2i}, opMap(back))

	set(t, g, mp(t, "S0X:Bc1a0:FI:"), cx(1, -2))
	_, err = mixed.MixedHamiltonianFromOperator(g)
	require.ErrorIs(t, err, core.ErrCreatorsAnnihilatorsMinimumIndex)

	sb := mixed.Layout{Spins: 1, Bosons: 1}
	o := mixed.NewMixedOperator(sb)
	set(t, o, mp(t, "S0X:Bc0:"), cx(2, 0))
	pm := mixed.MixedOperatorToPlusMinus(o)
	assert.Equal(t, sb, mixed.LayoutOf(pm))
	assert.Equal(t, map[string]complex128{"S0+:Bc0:": 2, "S0-:Bc0:": 2}, opMap(pm))
	assert.Equal(t, map[string]complex128{"S0X:Bc0:": 2}, opMap(mixed.MixedPlusMinusToOperator(pm)))
}

// TestMixedHelpers VERIFIES separation and per-subsystem counting.
func TestMixedHelpers(t *testing.T) {
	o := mixed.NewMixedOperator(one)
	set(t, o, mp(t, "S0X:Bc0a1:FI:"), cx(1, 0))
	set(t, o, mp(t, "S3Y:Bc1a0:FI:"), cx(2, 0))
	set(t, o, mp(t, "S0X1X:Bc0:Fc4:"), cx(3, 0))

	match, rest := mixed.SeparateIntoNTerms(o, mixed.Counts{
		Spins:    []int{1},
		Bosons:   [][2]int{{1, 1}},
		Fermions: [][2]int{{0, 0}},
	})
	assert.Equal(t, 2, match.Len())
	assert.Equal(t, []mixed.MixedProduct{mp(t, "S0X1X:Bc0:Fc4:")}, rest.Keys())
	assert.Equal(t, one, mixed.LayoutOf(match))

	assert.Equal(t, []int{4}, mixed.CurrentNumberSpins(o))
	assert.Equal(t, []int{2}, mixed.CurrentNumberBosonicModes(o))
	assert.Equal(t, []int{5}, mixed.CurrentNumberFermionicModes(o))
}

// TestMixedNoise VERIFIES the noise guard and the construction from full
// operators.
func TestMixedNoise(t *testing.T) {
	n := mixed.NewMixedLindbladNoiseOperator(one)
	_, _, err := n.Set(core.Pair[mixed.MixedDecoherenceProduct]{Left: mdp(t, "SI:BI:FI:"), Right: mdp(t, "S0X:BI:FI:")}, cx(1, 0))
	require.ErrorIs(t, err, core.ErrInvalidLindbladTerms)
	_, _, err = n.Set(core.Pair[mixed.MixedDecoherenceProduct]{Left: mdp(t, "S0X:"), Right: mdp(t, "S0X:")}, cx(1, 0))
	require.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems)

	left := mixed.NewMixedOperator(one)
	set(t, left, mp(t, "S0X:BI:FI:"), cx(1, 0))
	set(t, left, mp(t, "SI:BI:FI:"), cx(5, 0))
	right := mixed.NewMixedOperator(one)
	set(t, right, mp(t, "S0Y:Bc0:FI:"), cx(1, 0))

	require.NoError(t, mixed.AddNoiseFromFullOperators(n, left, right, cx(1, 0)))
	require.Equal(t, 1, n.Len(), "identity halves are skipped")
	got, _ := n.Get(core.Pair[mixed.MixedDecoherenceProduct]{Left: mdp(t, "S0X:BI:FI:"), Right: mdp(t, "S0iY:Bc0:FI:")}).Complex128()
	assert.Equal(t, 1i, got)

	err = mixed.AddNoiseFromFullOperators(n, left, mixed.NewMixedOperator(mixed.Layout{Spins: 1}), cx(1, 0))
	assert.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems)
	assert.Equal(t, 1, n.Len())

	match, rest := mixed.SeparateNoiseIntoNTerms(n,
		mixed.Counts{Spins: []int{1}, Bosons: [][2]int{{0, 0}}, Fermions: [][2]int{{0, 0}}},
		mixed.Counts{Spins: []int{1}, Bosons: [][2]int{{1, 0}}, Fermions: [][2]int{{0, 0}}})
	assert.Equal(t, 1, match.Len())
	assert.True(t, rest.IsEmpty())
}

// TestMixedSystems VERIFIES per-subsystem bounds and open-system grouping.
func TestMixedSystems(t *testing.T) {
	op := mixed.NewMixedOperator(one)
	set(t, op, mp(t, "S2Z:Bc1:FI:"), cx(1, 0))

	_, err := mixed.NewMixedSystem(op.Clone(), mixed.Bounds{Spins: []int{2}, Bosons: []int{core.Unbounded}, Fermions: []int{core.Unbounded}})
	require.ErrorIs(t, err, core.ErrNumberSpinsExceeded)

	_, err = mixed.NewMixedSystem(op.Clone(), mixed.Unbounded(mixed.Layout{Spins: 1}))
	require.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems)

	s, err := mixed.NewMixedSystem(op, mixed.Bounds{Spins: []int{3}, Bosons: []int{core.Unbounded}, Fermions: []int{1}})
	require.NoError(t, err)
	_, _, err = s.Set(mp(t, "SI:BI:Fc1:"), cx(1, 0))
	require.ErrorIs(t, err, core.ErrNumberModesExceeded)
	assert.Equal(t, mixed.Bounds{Spins: []int{3}, Bosons: []int{2}, Fermions: []int{1}}, mixed.SystemBounds(s))

	open := mixed.NewMixedLindbladOpenSystem(mixed.Bounds{Spins: []int{2}, Bosons: []int{3}, Fermions: []int{core.Unbounded}})
	_, _, err = open.System().Set(hmp(t, "S0X:Bc0a1:FI:"), cx(1, 0))
	require.NoError(t, err)
	_, _, err = open.Noise().Set(core.Pair[mixed.MixedDecoherenceProduct]{Left: mdp(t, "S1Z:BI:Fa0:"), Right: mdp(t, "S1Z:BI:Fa0:")}, cx(1, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, open.Bounds())

	data, err := core.Marshal(core.MsgPack, mixed.EncodeMixedLindbladOpenSystem(open))
	require.NoError(t, err)
	var p core.OpenSystemPayload
	require.NoError(t, core.Unmarshal(core.MsgPack, data, &p))
	back, err := mixed.DecodeMixedLindbladOpenSystem(p)
	require.NoError(t, err)
	assert.True(t, back.Equal(open))
	assert.Equal(t, one, mixed.LayoutOf(back.System().View()))

	hs, err := mixed.NewMixedHamiltonianSystem(mixed.NewMixedHamiltonian(one), mixed.Unbounded(one))
	require.NoError(t, err)
	ns, err := mixed.NewMixedLindbladNoiseSystem(mixed.NewMixedLindbladNoiseOperator(mixed.Layout{Spins: 2}), mixed.Unbounded(mixed.Layout{Spins: 2}))
	require.NoError(t, err)
	_, err = mixed.GroupMixedLindbladOpenSystem(hs, ns)
	assert.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems)
}
