// SPDX-License-Identifier: MIT
//
// File: variants.go
// Role: MixedDecoherenceProduct and MixedPlusMinusProduct, the mixed keys
//       over the decoherence and plus/minus spin alphabets, and the
//       conversions between the three mixed key types.

package mixed

import (
	"slices"

	"github.com/katalvlaran/qalgebra/bosons"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
	"github.com/katalvlaran/qalgebra/spins"
)

// MixedDecoherenceProduct keys mixed Lindblad noise.
type MixedDecoherenceProduct struct {
	tuple[spins.DecoherenceProduct]
}

var _ core.Key[MixedDecoherenceProduct] = MixedDecoherenceProduct{}

func NewMixedDecoherenceProduct(s []spins.DecoherenceProduct, b []bosons.BosonProduct, f []fermions.FermionProduct) MixedDecoherenceProduct {
	return MixedDecoherenceProduct{newTuple(s, b, f)}
}

// ParseMixedDecoherenceProduct reads "S0X1iY:Bc0:Fa1:" text.
func ParseMixedDecoherenceProduct(s string) (MixedDecoherenceProduct, error) {
	t, err := parseTuple(s, spins.ParseDecoherenceProduct)
	if err != nil {
		return MixedDecoherenceProduct{}, err
	}
	return MixedDecoherenceProduct{t}, nil
}

func (p MixedDecoherenceProduct) Spins() []spins.DecoherenceProduct { return slices.Clone(p.spinParts) }
func (p MixedDecoherenceProduct) Equal(o MixedDecoherenceProduct) bool {
	return p.equal(o.tuple)
}
func (p MixedDecoherenceProduct) Compare(o MixedDecoherenceProduct) int {
	return p.compare(o.tuple)
}

func (p MixedDecoherenceProduct) HermitianConjugate() (MixedDecoherenceProduct, float64) {
	t, phase := p.conjugate()
	return MixedDecoherenceProduct{t}, phase
}

func (p MixedDecoherenceProduct) IsNaturalHermitian() bool { return p.natural() }

// ToMixedProduct rewrites every spin subsystem in the Pauli alphabet.
func (p MixedDecoherenceProduct) ToMixedProduct() []core.Term[MixedProduct] {
	return convertSpins(p.tuple, func(d spins.DecoherenceProduct) []core.Term[spins.PauliProduct] {
		q, w := d.ToPauli()
		return []core.Term[spins.PauliProduct]{core.NewTerm(q, real(w), imag(w))}
	}, func(t tuple[spins.PauliProduct]) MixedProduct { return MixedProduct{t} })
}

// ToMixedPlusMinusProduct rewrites every spin subsystem in the plus/minus
// alphabet.
func (p MixedDecoherenceProduct) ToMixedPlusMinusProduct() []core.Term[MixedPlusMinusProduct] {
	return convertSpins(p.tuple, spins.DecoherenceProduct.ToPlusMinus,
		func(t tuple[spins.PlusMinusProduct]) MixedPlusMinusProduct { return MixedPlusMinusProduct{t} })
}

// MixedPlusMinusProduct keys mixed operators in the plus/minus alphabet.
type MixedPlusMinusProduct struct {
	tuple[spins.PlusMinusProduct]
}

var _ core.Key[MixedPlusMinusProduct] = MixedPlusMinusProduct{}

func NewMixedPlusMinusProduct(s []spins.PlusMinusProduct, b []bosons.BosonProduct, f []fermions.FermionProduct) MixedPlusMinusProduct {
	return MixedPlusMinusProduct{newTuple(s, b, f)}
}

// ParseMixedPlusMinusProduct reads "S0+1-:Bc0:Fa1:" text.
func ParseMixedPlusMinusProduct(s string) (MixedPlusMinusProduct, error) {
	t, err := parseTuple(s, spins.ParsePlusMinusProduct)
	if err != nil {
		return MixedPlusMinusProduct{}, err
	}
	return MixedPlusMinusProduct{t}, nil
}

func (p MixedPlusMinusProduct) Spins() []spins.PlusMinusProduct { return slices.Clone(p.spinParts) }
func (p MixedPlusMinusProduct) Equal(o MixedPlusMinusProduct) bool {
	return p.equal(o.tuple)
}
func (p MixedPlusMinusProduct) Compare(o MixedPlusMinusProduct) int {
	return p.compare(o.tuple)
}

func (p MixedPlusMinusProduct) HermitianConjugate() (MixedPlusMinusProduct, float64) {
	t, phase := p.conjugate()
	return MixedPlusMinusProduct{t}, phase
}

func (p MixedPlusMinusProduct) IsNaturalHermitian() bool { return p.natural() }

// ToMixedProduct rewrites every spin subsystem in the Pauli alphabet.
func (p MixedPlusMinusProduct) ToMixedProduct() []core.Term[MixedProduct] {
	return convertSpins(p.tuple, spins.PlusMinusProduct.ToPauli,
		func(t tuple[spins.PauliProduct]) MixedProduct { return MixedProduct{t} })
}

// ToMixedDecoherenceProduct rewrites every spin subsystem in the
// decoherence alphabet.
func (p MixedPlusMinusProduct) ToMixedDecoherenceProduct() []core.Term[MixedDecoherenceProduct] {
	return convertSpins(p.tuple, spins.PlusMinusProduct.ToDecoherence,
		func(t tuple[spins.DecoherenceProduct]) MixedDecoherenceProduct { return MixedDecoherenceProduct{t} })
}

// ToMixedPlusMinusProduct rewrites every spin subsystem in the plus/minus
// alphabet.
func (p MixedProduct) ToMixedPlusMinusProduct() []core.Term[MixedPlusMinusProduct] {
	return convertSpins(p.tuple, spins.PauliProduct.ToPlusMinus,
		func(t tuple[spins.PlusMinusProduct]) MixedPlusMinusProduct { return MixedPlusMinusProduct{t} })
}

// ToMixedDecoherenceProduct rewrites every spin subsystem in the
// decoherence alphabet.
func (p MixedProduct) ToMixedDecoherenceProduct() []core.Term[MixedDecoherenceProduct] {
	return convertSpins(p.tuple, func(q spins.PauliProduct) []core.Term[spins.DecoherenceProduct] {
		d, w := q.ToDecoherence()
		return []core.Term[spins.DecoherenceProduct]{core.NewTerm(d, real(w), imag(w))}
	}, func(t tuple[spins.DecoherenceProduct]) MixedDecoherenceProduct { return MixedDecoherenceProduct{t} })
}

// convertSpins maps every spin subsystem through conv and takes the
// cartesian product; boson and fermion subsystems are kept.
func convertSpins[A spinKey[A], R spinKey[R], K any](t tuple[A], conv func(A) []core.Term[R], wrap func(tuple[R]) K) []core.Term[K] {
	factors := make([][]core.Term[R], len(t.spinParts))
	for i, s := range t.spinParts {
		factors[i] = conv(s)
	}
	combos := cross(factors)
	out := make([]core.Term[K], 0, len(combos))
	for _, c := range combos {
		out = append(out, core.NewTerm(wrap(withSpins(t, c.parts)), real(c.weight), imag(c.weight)))
	}
	return out
}
