// SPDX-License-Identifier: MIT
//
// File: hermitian.go
// Role: HermitianBosonProduct, the key of bosonic Hamiltonians.
// Orientation:
//   - Zip sorted creators with sorted annihilators. The first unequal pair
//     must have annihilator > creator; if every zipped pair is equal,
//     creators must not outnumber annihilators.

package bosons

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// HermitianBosonProduct stands for p + p† for the BosonProduct p with the
// same indices. The zero value is the identity.
type HermitianBosonProduct struct {
	creators     []int
	annihilators []int
}

var _ core.Key[HermitianBosonProduct] = HermitianBosonProduct{}

// NewHermitianBosonProduct sorts both sides and checks the orientation.
//
// Errors:
//   - ErrCreatorsAnnihilatorsMinimumIndex: the sides are in conjugate
//     orientation.
func NewHermitianBosonProduct(creators, annihilators []int) (HermitianBosonProduct, error) {
	c, a := sorted(creators), sorted(annihilators)
	if core.ConjugateOrientation(c, a) {
		return HermitianBosonProduct{}, fmt.Errorf("creators %v, annihilators %v: %w",
			c, a, core.ErrCreatorsAnnihilatorsMinimumIndex)
	}
	return HermitianBosonProduct{creators: c, annihilators: a}, nil
}

// ParseHermitianBosonProduct reads "c0a1" text; "" and "I" are the identity.
func ParseHermitianBosonProduct(s string) (HermitianBosonProduct, error) {
	c, a, err := core.ParseLadder(s)
	if err != nil {
		return HermitianBosonProduct{}, err
	}
	return NewHermitianBosonProduct(c, a)
}

// CreateValidHermitianPair sorts both sides and, in conjugate orientation,
// swaps them and conjugates value.
func CreateValidHermitianPair(creators, annihilators []int, value calculator.Complex) (HermitianBosonProduct, calculator.Complex) {
	c, a := sorted(creators), sorted(annihilators)
	if core.ConjugateOrientation(c, a) {
		return HermitianBosonProduct{creators: a, annihilators: c}, value.Conj()
	}
	return HermitianBosonProduct{creators: c, annihilators: a}, value
}

// HermitianFromProduct returns the Hermitian key covering p and the
// coefficient value·p contributes to it.
func HermitianFromProduct(p BosonProduct, value calculator.Complex) (HermitianBosonProduct, calculator.Complex) {
	return CreateValidHermitianPair(p.creators, p.annihilators, value)
}

// Product returns the general product with the same indices.
func (h HermitianBosonProduct) Product() BosonProduct {
	return BosonProduct{creators: slices.Clone(h.creators), annihilators: slices.Clone(h.annihilators)}
}

func (h HermitianBosonProduct) String() string {
	return core.FormatLadder(h.creators, h.annihilators)
}

func (h HermitianBosonProduct) Creators() []int         { return slices.Clone(h.creators) }
func (h HermitianBosonProduct) Annihilators() []int     { return slices.Clone(h.annihilators) }
func (h HermitianBosonProduct) NumberCreators() int     { return len(h.creators) }
func (h HermitianBosonProduct) NumberAnnihilators() int { return len(h.annihilators) }

func (h HermitianBosonProduct) CurrentNumberModes() int {
	return core.NumberOfModes(h.creators, h.annihilators)
}

func (h HermitianBosonProduct) IsEmpty() bool {
	return len(h.creators) == 0 && len(h.annihilators) == 0
}

func (h HermitianBosonProduct) Equal(o HermitianBosonProduct) bool {
	return core.EqualInts(h.creators, o.creators) && core.EqualInts(h.annihilators, o.annihilators)
}

func (h HermitianBosonProduct) Compare(o HermitianBosonProduct) int {
	return h.Product().Compare(o.Product())
}

// RemapModes moves indices through mapping and restores the orientation,
// returning the coefficient value takes on the new key.
func (h HermitianBosonProduct) RemapModes(mapping map[int]int, value calculator.Complex) (HermitianBosonProduct, calculator.Complex) {
	return CreateValidHermitianPair(remap(h.creators, mapping), remap(h.annihilators, mapping), value)
}

// HermitianConjugate returns (h, 1).
func (h HermitianBosonProduct) HermitianConjugate() (HermitianBosonProduct, float64) {
	return h, 1
}

// IsNaturalHermitian reports whether creators == annihilators.
func (h HermitianBosonProduct) IsNaturalHermitian() bool {
	return core.EqualInts(h.creators, h.annihilators)
}

// expand returns p and, for non-natural h, p†.
func (h HermitianBosonProduct) expand() []BosonProduct {
	p := h.Product()
	if h.IsNaturalHermitian() {
		return []BosonProduct{p}
	}
	c, _ := p.HermitianConjugate()
	return []BosonProduct{p, c}
}

// Mul returns (h + h†)(o + o†) as general products.
func (h HermitianBosonProduct) Mul(o HermitianBosonProduct) []core.Term[BosonProduct] {
	var out []core.Term[BosonProduct]
	for _, l := range h.expand() {
		out = append(out, l.MulHermitian(o)...)
	}
	return out
}

// MulProduct returns (h + h†)·p.
func (h HermitianBosonProduct) MulProduct(p BosonProduct) []core.Term[BosonProduct] {
	var out []core.Term[BosonProduct]
	for _, l := range h.expand() {
		out = append(out, l.Mul(p)...)
	}
	return out
}
