// SPDX-License-Identifier: MIT
//
// File: hermitian.go
// Role: HermitianFermionProduct, the key of fermionic Hamiltonians.
// Orientation:
//   - Zip creators with annihilators from the lowest index. The first
//     unequal pair must have annihilator > creator; if every zipped pair is
//     equal, creators must not outnumber annihilators.
//   - A product in the other orientation is the conjugate of a valid one.

package fermions

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// HermitianFermionProduct stands for p + p† for the FermionProduct p with
// the same indices. The zero value is the identity.
type HermitianFermionProduct struct {
	creators     []int
	annihilators []int
}

var _ core.Key[HermitianFermionProduct] = HermitianFermionProduct{}

// NewHermitianFermionProduct builds a product in canonical orientation.
//
// Errors:
//   - ErrIndicesContainDoubles, ErrIncorrectlyOrderedIndices: as for
//     NewFermionProduct.
//   - ErrCreatorsAnnihilatorsMinimumIndex: the sides are in conjugate
//     orientation.
func NewHermitianFermionProduct(creators, annihilators []int) (HermitianFermionProduct, error) {
	if err := checkIncreasing(creators); err != nil {
		return HermitianFermionProduct{}, err
	}
	if err := checkIncreasing(annihilators); err != nil {
		return HermitianFermionProduct{}, err
	}
	if core.ConjugateOrientation(creators, annihilators) {
		return HermitianFermionProduct{}, fmt.Errorf("creators %v, annihilators %v: %w",
			creators, annihilators, core.ErrCreatorsAnnihilatorsMinimumIndex)
	}
	return HermitianFermionProduct{creators: slices.Clone(creators), annihilators: slices.Clone(annihilators)}, nil
}

// ParseHermitianFermionProduct reads "c0a1" text; "" and "I" are the identity.
func ParseHermitianFermionProduct(s string) (HermitianFermionProduct, error) {
	c, a, err := core.ParseLadder(s)
	if err != nil {
		return HermitianFermionProduct{}, err
	}
	return NewHermitianFermionProduct(c, a)
}

// flipSign is the sign of (c†_C c_A)† = flipSign·c†_A c_C for sorted C, A.
func flipSign(creators, annihilators []int) float64 {
	nc, na := len(creators), len(annihilators)
	return paritySign(nc*(nc-1)/2 + na*(na-1)/2)
}

// CreateValidHermitianPair sorts arbitrary index lists, applies the sign
// of the reordering and, when the result is in conjugate orientation,
// flips it and replaces the value by the matching coefficient of the
// adjoint.
//
// Errors:
//   - ErrIndicesContainDoubles: an index repeats on one side.
func CreateValidHermitianPair(creators, annihilators []int, value calculator.Complex) (HermitianFermionProduct, calculator.Complex, error) {
	c, a, sign, err := canonicalSides(creators, annihilators)
	if err != nil {
		return HermitianFermionProduct{}, calculator.Zero, err
	}
	value = value.ScaleFloat(sign)
	if core.ConjugateOrientation(c, a) {
		return HermitianFermionProduct{creators: a, annihilators: c}, value.Conj().ScaleFloat(flipSign(c, a)), nil
	}
	return HermitianFermionProduct{creators: c, annihilators: a}, value, nil
}

// HermitianFromProduct returns the Hermitian key covering p together with
// the coefficient that value·p contributes to it.
func HermitianFromProduct(p FermionProduct, value calculator.Complex) (HermitianFermionProduct, calculator.Complex) {
	if core.ConjugateOrientation(p.creators, p.annihilators) {
		h := HermitianFermionProduct{creators: slices.Clone(p.annihilators), annihilators: slices.Clone(p.creators)}
		return h, value.Conj().ScaleFloat(flipSign(p.creators, p.annihilators))
	}
	return HermitianFermionProduct{creators: slices.Clone(p.creators), annihilators: slices.Clone(p.annihilators)}, value
}

// Product returns the general product with the same indices.
func (h HermitianFermionProduct) Product() FermionProduct {
	return FermionProduct{creators: slices.Clone(h.creators), annihilators: slices.Clone(h.annihilators)}
}

func (h HermitianFermionProduct) String() string {
	return core.FormatLadder(h.creators, h.annihilators)
}

func (h HermitianFermionProduct) Creators() []int         { return slices.Clone(h.creators) }
func (h HermitianFermionProduct) Annihilators() []int     { return slices.Clone(h.annihilators) }
func (h HermitianFermionProduct) NumberCreators() int     { return len(h.creators) }
func (h HermitianFermionProduct) NumberAnnihilators() int { return len(h.annihilators) }

// CurrentNumberModes is the highest index + 1, or 0.
func (h HermitianFermionProduct) CurrentNumberModes() int {
	return core.NumberOfModes(h.creators, h.annihilators)
}

func (h HermitianFermionProduct) IsEmpty() bool {
	return len(h.creators) == 0 && len(h.annihilators) == 0
}

func (h HermitianFermionProduct) Equal(o HermitianFermionProduct) bool {
	return core.EqualInts(h.creators, o.creators) && core.EqualInts(h.annihilators, o.annihilators)
}

func (h HermitianFermionProduct) Compare(o HermitianFermionProduct) int {
	return h.Product().Compare(o.Product())
}

// RemapModes moves indices through mapping and restores canonical form,
// returning the coefficient value takes on the new key.
//
// Errors:
//   - ErrIndicesContainDoubles: mapping is not injective on a side.
func (h HermitianFermionProduct) RemapModes(mapping map[int]int, value calculator.Complex) (HermitianFermionProduct, calculator.Complex, error) {
	return CreateValidHermitianPair(remap(h.creators, mapping), remap(h.annihilators, mapping), value)
}

// HermitianConjugate returns (h, 1): h already stands for p + p†.
func (h HermitianFermionProduct) HermitianConjugate() (HermitianFermionProduct, float64) {
	return h, 1
}

// IsNaturalHermitian reports whether creators == annihilators.
func (h HermitianFermionProduct) IsNaturalHermitian() bool {
	return core.EqualInts(h.creators, h.annihilators)
}

// expand returns p with weight 1 and, when h is not natural, p† with its
// conjugation sign.
func (h HermitianFermionProduct) expand() []core.Term[FermionProduct] {
	p := h.Product()
	out := []core.Term[FermionProduct]{core.NewTerm(p, 1, 0)}
	if !h.IsNaturalHermitian() {
		c, sign := p.HermitianConjugate()
		out = append(out, core.NewTerm(c, sign, 0))
	}
	return out
}

// Mul returns (h + h†)(o + o†) as general products.
func (h HermitianFermionProduct) Mul(o HermitianFermionProduct) []core.Term[FermionProduct] {
	var out []core.Term[FermionProduct]
	for _, l := range h.expand() {
		for _, t := range l.Key.MulHermitian(o) {
			out = append(out, core.Term[FermionProduct]{Key: t.Key, Value: t.Value.Mul(l.Value)})
		}
	}
	return out
}

// MulProduct returns (h + h†)·p.
func (h HermitianFermionProduct) MulProduct(p FermionProduct) []core.Term[FermionProduct] {
	var out []core.Term[FermionProduct]
	for _, l := range h.expand() {
		for _, t := range l.Key.Mul(p) {
			out = append(out, core.Term[FermionProduct]{Key: t.Key, Value: t.Value.Mul(l.Value)})
		}
	}
	return out
}

// canonicalHermitian rejects keys a Hamiltonian cannot hold; used by the
// conversion from general operators.
func canonicalHermitian(p FermionProduct) (HermitianFermionProduct, error) {
	return NewHermitianFermionProduct(p.creators, p.annihilators)
}
