// SPDX-License-Identifier: MIT
// Package fermions_test verifies the fermionic product algebra.
//
// Purpose:
//   - Lock in the ladder grammar and its error sentinels.
//   - Check reordering signs, conjugation and anticommutation.
//   - Validate the Hermitian orientation rule.

package fermions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
)

// TestFermionProduct_Parse VERIFIES the ladder text and its round trip.
func TestFermionProduct_Parse(t *testing.T) {
	p := fp(t, "c0c2a1")
	assert.Equal(t, []int{0, 2}, p.Creators())
	assert.Equal(t, []int{1}, p.Annihilators())
	assert.Equal(t, 3, p.CurrentNumberModes())
	assert.Equal(t, "c0c2a1", p.String())

	for _, s := range []string{"I", ""} {
		id := fp(t, s)
		assert.True(t, id.IsEmpty(), "%q is the identity", s)
		assert.Equal(t, "I", id.String())
	}
	for _, s := range []string{"c0", "a3", "c0c1a0a1", "c10a2"} {
		assert.True(t, fp(t, s).Equal(fp(t, fp(t, s).String())), s)
	}
}

// TestFermionProduct_ParseErrors VERIFIES the sentinel per failure kind.
func TestFermionProduct_ParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"c1c0", core.ErrIncorrectlyOrderedIndices},
		{"c0c0", core.ErrIndicesContainDoubles},
		{"a2a2", core.ErrIndicesContainDoubles},
		{"a0c1", core.ErrIndicesNotNormalOrdered},
		{"x0", core.ErrFromStringFailed},
		{"c", core.ErrFromStringFailed},
	}
	for _, tc := range cases {
		_, err := fermions.ParseFermionProduct(tc.in)
		assert.ErrorIs(t, err, tc.want, "ParseFermionProduct(%q)", tc.in)
	}
}

// TestCreateValidPair VERIFIES sorting with sign tracking.
func TestCreateValidPair(t *testing.T) {
	p, v, err := fermions.CreateValidPair([]int{2, 0}, []int{1}, cx(1, 0))
	require.NoError(t, err)
	assert.Equal(t, "c0c2a1", p.String())
	assert.True(t, v.Equal(cx(-1, 0)))

	p, v, err = fermions.CreateValidPair([]int{1, 0}, []int{3, 2}, cx(0, 2))
	require.NoError(t, err)
	assert.Equal(t, "c0c1a2a3", p.String())
	assert.True(t, v.Equal(cx(0, 2)), "two swaps cancel")

	_, _, err = fermions.CreateValidPair([]int{0, 0}, []int{1}, cx(1, 0))
	require.ErrorIs(t, err, core.ErrIndicesContainDoubles)
}

// TestFermionProduct_Conjugate VERIFIES the reordering sign of p† and the
// involution law.
func TestFermionProduct_Conjugate(t *testing.T) {
	c, sign := fp(t, "c0c1a2").HermitianConjugate()
	assert.Equal(t, "c2a0a1", c.String())
	assert.Equal(t, -1.0, sign)

	for _, s := range []string{"c0a1", "c0c1a2", "c0c1c4a2a3", "a5", "c0a0"} {
		p := fp(t, s)
		c1, p1 := p.HermitianConjugate()
		c2, p2 := c1.HermitianConjugate()
		assert.True(t, c2.Equal(p), s)
		assert.Equal(t, 1.0, p1*p2, s)
	}
	assert.True(t, fp(t, "c0c3a0a3").IsNaturalHermitian())
	assert.False(t, fp(t, "c0a1").IsNaturalHermitian())
}

// TestFermionProduct_Mul VERIFIES anticommutation through products.
func TestFermionProduct_Mul(t *testing.T) {
	cases := []struct {
		l, r string
		want map[string]complex128
	}{
		{"a0", "c0", map[string]complex128{"I": 1, "c0a0": -1}},
		{"a0", "c1", map[string]complex128{"c1a0": -1}},
		{"c0", "c0", map[string]complex128{}},
		{"a0a1", "c1", map[string]complex128{"a0": 1, "c1a0a1": 1}},
		{"c0a0a1", "c2a3", map[string]complex128{"c0c2a0a1a3": 1}},
		{"I", "c3a1", map[string]complex128{"c3a1": 1}},
		{"a0a1", "c0c1", map[string]complex128{"I": -1, "c0a0": 1, "c1a1": 1, "c0c1a0a1": 1}},
		{"a1a0", "c1c0", map[string]complex128{"I": -1, "c0a0": 1, "c1a1": 1, "c0c1a0a1": 1}},
		{"c0c1a0a1", "c0c1a0a1", map[string]complex128{"c0c1a0a1": -1}},
		{"c0a0", "c0a0", map[string]complex128{"c0a0": 1}},
	}
	for _, tc := range cases {
		got := termMap(fp(t, tc.l).Mul(fp(t, tc.r)))
		assert.Equal(t, tc.want, got, "%s·%s", tc.l, tc.r)
	}
}

// TestFermionProduct_RemapModes VERIFIES the sign of a relabelling.
func TestFermionProduct_RemapModes(t *testing.T) {
	p, sign, err := fp(t, "c0c1a2").RemapModes(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	assert.Equal(t, "c0c1a2", p.String())
	assert.Equal(t, -1.0, sign)

	_, _, err = fp(t, "c0c1").RemapModes(map[int]int{0: 1})
	require.ErrorIs(t, err, core.ErrIndicesContainDoubles)
}

// TestHermitianFermionProduct_Orientation VERIFIES the zipped scan rule.
func TestHermitianFermionProduct_Orientation(t *testing.T) {
	for _, s := range []string{"c0a0a1", "c0a1", "a3", "c0c1a0a2", "I"} {
		_, err := fermions.ParseHermitianFermionProduct(s)
		assert.NoError(t, err, s)
	}
	for _, s := range []string{"c1a0", "c0c1a0", "c0", "c0c2a0a1"} {
		_, err := fermions.ParseHermitianFermionProduct(s)
		assert.ErrorIs(t, err, core.ErrCreatorsAnnihilatorsMinimumIndex, s)
	}

	h, v, err := fermions.CreateValidHermitianPair([]int{1}, []int{0}, cx(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "c0a1", h.String())
	assert.True(t, v.Equal(cx(1, -2)))

	h, v, err = fermions.CreateValidHermitianPair([]int{1, 2}, []int{0}, cx(1, 0))
	require.NoError(t, err)
	assert.Equal(t, "c0a1a2", h.String())
	assert.True(t, v.Equal(cx(-1, 0)), "(c1c2a0)† = -c0a1a2")

	h, v = fermions.HermitianFromProduct(fp(t, "c1a0"), cx(0, 2))
	assert.Equal(t, "c0a1", h.String())
	assert.True(t, v.Equal(cx(0, -2)))

	c, phase := h.HermitianConjugate()
	assert.True(t, c.Equal(h))
	assert.Equal(t, 1.0, phase)
	assert.True(t, hfp(t, "c0c2a0a2").IsNaturalHermitian())
}

// TestHermitianFermionProduct_Mul VERIFIES the expansion into p + p†.
func TestHermitianFermionProduct_Mul(t *testing.T) {
	got := termMap(hfp(t, "c0a0a1").Mul(hfp(t, "c2a3")))
	assert.Equal(t, map[string]complex128{
		"c0c2a0a1a3": 1,
		"c0c3a0a1a2": 1,
		"c0c1c2a0a3": 1,
		"c0c1c3a0a2": 1,
	}, got)

	got = termMap(hfp(t, "c0a1").MulProduct(fp(t, "c1")))
	assert.Equal(t, map[string]complex128{"c0": 1, "c0c1a1": -1}, got)

	got = termMap(fp(t, "c2").MulHermitian(hfp(t, "c0a0")))
	assert.Equal(t, map[string]complex128{"c0c2a0": -1}, got)
}

// TestHermitianFermionProduct_MulOverlapping VERIFIES squares of keys whose
// creators and annihilators share modes.
func TestHermitianFermionProduct_MulOverlapping(t *testing.T) {
	// c0c1a0a1 = -n0n1, so its square is n0n1 = -c0c1a0a1
	got := termMap(hfp(t, "c0c1a0a1").Mul(hfp(t, "c0c1a0a1")))
	assert.Equal(t, map[string]complex128{"c0c1a0a1": -1}, got)

	// (c0a1 + c1a0)² = n0 + n1 - 2n0n1
	got = termMap(hfp(t, "c0a1").Mul(hfp(t, "c0a1")))
	assert.Equal(t, map[string]complex128{"c0a0": 1, "c1a1": 1, "c0c1a0a1": 2}, got)
}
