// SPDX-License-Identifier: MIT
//
// File: hermitian.go
// Role: HermitianMixedProduct, the key of mixed Hamiltonians.
// Orientation:
//   - Subsystems are scanned in order (bosons, then fermions); the first
//     one that differs from its adjoint decides, using the ladder rule of
//     core.ConjugateOrientation. Spin subsystems (Pauli) never decide.

package mixed

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qalgebra/bosons"
	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
	"github.com/katalvlaran/qalgebra/spins"
)

// HermitianMixedProduct stands for p + p† for the MixedProduct p with the
// same sub-products.
type HermitianMixedProduct struct {
	tuple[spins.PauliProduct]
}

var _ core.Key[HermitianMixedProduct] = HermitianMixedProduct{}

// NewHermitianMixedProduct copies the sub-products and checks the
// orientation.
//
// Errors:
//   - ErrCreatorsAnnihilatorsMinimumIndex: the deciding subsystem is in
//     conjugate orientation.
func NewHermitianMixedProduct(s []spins.PauliProduct, b []bosons.BosonProduct, f []fermions.FermionProduct) (HermitianMixedProduct, error) {
	t := newTuple(s, b, f)
	if t.conjugateOriented() {
		return HermitianMixedProduct{}, fmt.Errorf("%s: %w", t, core.ErrCreatorsAnnihilatorsMinimumIndex)
	}
	return HermitianMixedProduct{t}, nil
}

// ParseHermitianMixedProduct reads the MixedProduct text form and checks
// the orientation.
func ParseHermitianMixedProduct(s string) (HermitianMixedProduct, error) {
	t, err := parseTuple(s, spins.ParsePauliProduct)
	if err != nil {
		return HermitianMixedProduct{}, err
	}
	return NewHermitianMixedProduct(t.spinParts, t.bosonParts, t.fermionParts)
}

// CreateValidHermitianPair returns the Hermitian key for the given
// sub-products and the coefficient value takes on it: in conjugate
// orientation the tuple is conjugated and the value becomes conj(value)
// times the phase.
//
// Errors:
//   - ErrNonHermitianOperator: the key is natural and the value complex.
func CreateValidHermitianPair(s []spins.PauliProduct, b []bosons.BosonProduct, f []fermions.FermionProduct, value calculator.Complex) (HermitianMixedProduct, calculator.Complex, error) {
	return HermitianFromProduct(NewMixedProduct(s, b, f), value)
}

// HermitianFromProduct is CreateValidHermitianPair for an existing product.
func HermitianFromProduct(p MixedProduct, value calculator.Complex) (HermitianMixedProduct, calculator.Complex, error) {
	t := p.tuple
	if t.conjugateOriented() {
		var phase float64
		t, phase = t.conjugate()
		value = value.Conj().ScaleFloat(phase)
	}
	if t.natural() && !value.Im.IsZero() {
		return HermitianMixedProduct{}, calculator.Zero, fmt.Errorf("%s: %w", t, core.ErrNonHermitianOperator)
	}
	return HermitianMixedProduct{t}, value, nil
}

// Product returns the general product with the same sub-products.
func (h HermitianMixedProduct) Product() MixedProduct {
	return MixedProduct{newTuple(h.spinParts, h.bosonParts, h.fermionParts)}
}

func (h HermitianMixedProduct) Spins() []spins.PauliProduct { return slices.Clone(h.spinParts) }

func (h HermitianMixedProduct) Equal(o HermitianMixedProduct) bool { return h.equal(o.tuple) }
func (h HermitianMixedProduct) Compare(o HermitianMixedProduct) int { return h.compare(o.tuple) }

// HermitianConjugate returns (h, 1).
func (h HermitianMixedProduct) HermitianConjugate() (HermitianMixedProduct, float64) { return h, 1 }

func (h HermitianMixedProduct) IsNaturalHermitian() bool { return h.natural() }

// expand returns p with weight 1 and, for non-natural h, p† with its phase.
func (h HermitianMixedProduct) expand() []core.Term[MixedProduct] {
	p := h.Product()
	out := []core.Term[MixedProduct]{core.NewTerm(p, 1, 0)}
	if !h.IsNaturalHermitian() {
		c, phase := p.HermitianConjugate()
		out = append(out, core.NewTerm(c, phase, 0))
	}
	return out
}

// Mul returns (h + h†)(o + o†) as general products.
func (h HermitianMixedProduct) Mul(o HermitianMixedProduct) ([]core.Term[MixedProduct], error) {
	var out []core.Term[MixedProduct]
	for _, l := range h.expand() {
		terms, err := l.Key.MulHermitian(o)
		if err != nil {
			return nil, err
		}
		out = append(out, scaleTerms(terms, l.Value)...)
	}
	return out, nil
}

// MulProduct returns (h + h†)·p.
func (h HermitianMixedProduct) MulProduct(p MixedProduct) ([]core.Term[MixedProduct], error) {
	var out []core.Term[MixedProduct]
	for _, l := range h.expand() {
		terms, err := l.Key.Mul(p)
		if err != nil {
			return nil, err
		}
		out = append(out, scaleTerms(terms, l.Value)...)
	}
	return out, nil
}
