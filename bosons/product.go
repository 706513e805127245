// SPDX-License-Identifier: MIT
//
// File: product.go
// Role: BosonProduct, the key of general bosonic operators.
// Invariants:
//   - creators and annihilators are sorted (repeats allowed);
//   - slices are never shared with callers.

package bosons

import (
	"slices"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// BosonProduct is a normal-ordered product of bosonic creators and
// annihilators. The zero value is the identity.
type BosonProduct struct {
	creators     []int
	annihilators []int
}

var _ core.Key[BosonProduct] = BosonProduct{}

// NewBosonProduct sorts both sides. Panics on a negative index.
func NewBosonProduct(creators, annihilators []int) BosonProduct {
	return BosonProduct{creators: sorted(creators), annihilators: sorted(annihilators)}
}

// ParseBosonProduct reads "c0c0a1" text; "" and "I" are the identity.
func ParseBosonProduct(s string) (BosonProduct, error) {
	c, a, err := core.ParseLadder(s)
	if err != nil {
		return BosonProduct{}, err
	}
	return NewBosonProduct(c, a), nil
}

// CreateValidPair is NewBosonProduct returning value unchanged; bosonic
// reordering carries no sign.
func CreateValidPair(creators, annihilators []int, value calculator.Complex) (BosonProduct, calculator.Complex) {
	return NewBosonProduct(creators, annihilators), value
}

func (p BosonProduct) String() string { return core.FormatLadder(p.creators, p.annihilators) }

// Creators returns a copy of the creator indices.
func (p BosonProduct) Creators() []int { return slices.Clone(p.creators) }

// Annihilators returns a copy of the annihilator indices.
func (p BosonProduct) Annihilators() []int { return slices.Clone(p.annihilators) }

func (p BosonProduct) NumberCreators() int     { return len(p.creators) }
func (p BosonProduct) NumberAnnihilators() int { return len(p.annihilators) }

// CurrentNumberModes is the highest index + 1, or 0.
func (p BosonProduct) CurrentNumberModes() int {
	return core.NumberOfModes(p.creators, p.annihilators)
}

func (p BosonProduct) IsEmpty() bool { return len(p.creators) == 0 && len(p.annihilators) == 0 }

func (p BosonProduct) Equal(o BosonProduct) bool {
	return core.EqualInts(p.creators, o.creators) && core.EqualInts(p.annihilators, o.annihilators)
}

// Compare orders by creators, then annihilators (length first).
func (p BosonProduct) Compare(o BosonProduct) int {
	if c := core.CompareInts(p.creators, o.creators); c != 0 {
		return c
	}
	return core.CompareInts(p.annihilators, o.annihilators)
}

// RemapModes moves every index through mapping; unmapped indices stay.
func (p BosonProduct) RemapModes(mapping map[int]int) BosonProduct {
	return NewBosonProduct(remap(p.creators, mapping), remap(p.annihilators, mapping))
}

// HermitianConjugate swaps the sides; the phase is always 1.
func (p BosonProduct) HermitianConjugate() (BosonProduct, float64) {
	return BosonProduct{creators: slices.Clone(p.annihilators), annihilators: slices.Clone(p.creators)}, 1
}

// IsNaturalHermitian reports whether creators == annihilators.
func (p BosonProduct) IsNaturalHermitian() bool {
	return core.EqualInts(p.creators, p.annihilators)
}

// Mul returns p·o in normal order.
func (p BosonProduct) Mul(o BosonProduct) []core.Term[BosonProduct] {
	cts := contract(p.annihilators, o.creators)
	out := make([]core.Term[BosonProduct], 0, len(cts))
	for _, ct := range cts {
		creators := append(slices.Clone(p.creators), ct.creators...)
		annihilators := append(ct.annihilators, o.annihilators...)
		out = append(out, core.NewTerm(NewBosonProduct(creators, annihilators), ct.weight, 0))
	}
	return out
}

// MulHermitian returns p·(h + h†), the second term only for non-natural h.
func (p BosonProduct) MulHermitian(h HermitianBosonProduct) []core.Term[BosonProduct] {
	var out []core.Term[BosonProduct]
	for _, r := range h.expand() {
		out = append(out, p.Mul(r)...)
	}
	return out
}

func mulBoson(l, r BosonProduct) ([]core.Term[BosonProduct], error) {
	return l.Mul(r), nil
}
