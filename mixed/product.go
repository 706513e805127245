// SPDX-License-Identifier: MIT
//
// File: product.go
// Role: MixedProduct, the key of general mixed operators, and its
//       multiplication.
// Multiplication:
//   - spin subsystems multiply pairwise into one product each (phases
//     multiply);
//   - boson and fermion subsystems each yield a term list; the result is
//     the cartesian product of all lists, so an empty fermion list empties
//     the whole result.

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

// MixedProduct is a tuple of Pauli, boson and fermion products, one per
// subsystem. The zero value has no subsystems.
type MixedProduct struct {
	tuple[spins.PauliProduct]
}

var _ core.Key[MixedProduct] = MixedProduct{}

// NewMixedProduct copies the given sub-products.
func NewMixedProduct(s []spins.PauliProduct, b []bosons.BosonProduct, f []fermions.FermionProduct) MixedProduct {
	return MixedProduct{newTuple(s, b, f)}
}

// ParseMixedProduct reads "S0X1Y:Bc0a1:Fc0a0:" text.
//
// Errors:
//   - ErrFromStringFailed: unknown subsystem prefix.
//   - parse errors of the sub-products.
func ParseMixedProduct(s string) (MixedProduct, error) {
	t, err := parseTuple(s, spins.ParsePauliProduct)
	if err != nil {
		return MixedProduct{}, err
	}
	return MixedProduct{t}, nil
}

// CreateValidPair is NewMixedProduct returning value unchanged.
func CreateValidPair(s []spins.PauliProduct, b []bosons.BosonProduct, f []fermions.FermionProduct, value calculator.Complex) (MixedProduct, calculator.Complex) {
	return NewMixedProduct(s, b, f), value
}

// Spins returns a copy of the spin sub-products.
func (p MixedProduct) Spins() []spins.PauliProduct { return slices.Clone(p.spinParts) }

func (p MixedProduct) Equal(o MixedProduct) bool { return p.equal(o.tuple) }
func (p MixedProduct) Compare(o MixedProduct) int { return p.compare(o.tuple) }

// HermitianConjugate conjugates every subsystem; the phase is the product
// of the subsystem phases.
func (p MixedProduct) HermitianConjugate() (MixedProduct, float64) {
	t, phase := p.conjugate()
	return MixedProduct{t}, phase
}

// IsNaturalHermitian reports whether every subsystem is its own adjoint.
func (p MixedProduct) IsNaturalHermitian() bool { return p.natural() }

// Mul returns p·o.
//
// Errors:
//   - ErrMismatchedNumberSubsystems: the layouts differ.
func (p MixedProduct) Mul(o MixedProduct) ([]core.Term[MixedProduct], error) {
	if p.Layout() != o.Layout() {
		return nil, fmt.Errorf("%s * %s: %w", p, o, core.ErrMismatchedNumberSubsystems)
	}

	coefficient := complex(1, 0)
	spinParts := make([]spins.PauliProduct, len(p.spinParts))
	for i := range p.spinParts {
		var phase complex128
		spinParts[i], phase = p.spinParts[i].Mul(o.spinParts[i])
		coefficient *= phase
	}

	bosonFactors := make([][]core.Term[bosons.BosonProduct], len(p.bosonParts))
	for i := range p.bosonParts {
		bosonFactors[i] = p.bosonParts[i].Mul(o.bosonParts[i])
	}
	fermionFactors := make([][]core.Term[fermions.FermionProduct], len(p.fermionParts))
	for i := range p.fermionParts {
		fermionFactors[i] = p.fermionParts[i].Mul(o.fermionParts[i])
	}

	var out []core.Term[MixedProduct]
	for _, b := range cross(bosonFactors) {
		for _, f := range cross(fermionFactors) {
			w := coefficient * b.weight * f.weight
			key := MixedProduct{tuple[spins.PauliProduct]{spinParts: spinParts, bosonParts: b.parts, fermionParts: f.parts}}
			out = append(out, core.NewTerm(key, real(w), imag(w)))
		}
	}
	return out, nil
}

// MulHermitian returns p·(h + h†).
func (p MixedProduct) MulHermitian(h HermitianMixedProduct) ([]core.Term[MixedProduct], error) {
	var out []core.Term[MixedProduct]
	for _, r := range h.expand() {
		terms, err := p.Mul(r.Key)
		if err != nil {
			return nil, err
		}
		out = append(out, scaleTerms(terms, r.Value)...)
	}
	return out, nil
}

func mulMixed(l, r MixedProduct) ([]core.Term[MixedProduct], error) { return l.Mul(r) }

// choice is one element of a cartesian product of term lists.
type choice[P any] struct {
	parts  []P
	weight complex128
}

// cross expands a list of term lists into every combination, one term per
// list, with the weights multiplied. An empty input yields the single empty
// combination; any empty list yields none.
func cross[P any](factors [][]core.Term[P]) []choice[P] {
	out := []choice[P]{{weight: 1}}
	for _, terms := range factors {
		next := make([]choice[P], 0, len(out)*len(terms))
		for _, c := range out {
			for _, t := range terms {
				w, _ := t.Value.Complex128()
				next = append(next, choice[P]{parts: append(slices.Clone(c.parts), t.Key), weight: c.weight * w})
			}
		}
		out = next
	}
	return out
}

func scaleTerms[K any](terms []core.Term[K], by calculator.Complex) []core.Term[K] {
	for i := range terms {
		terms[i].Value = terms[i].Value.Mul(by)
	}
	return terms
}
