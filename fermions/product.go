// SPDX-License-Identifier: MIT
//
// File: product.go
// Role: FermionProduct, the key of general fermionic operators.
// Invariants:
//   - creators and annihilators are strictly increasing;
//   - slices are never shared with callers.

package fermions

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// FermionProduct is a normal-ordered product of fermionic creators and
// annihilators. The zero value is the identity.
type FermionProduct struct {
	creators     []int
	annihilators []int
}

var _ core.Key[FermionProduct] = FermionProduct{}

func errDoubles(idx []int) error {
	return fmt.Errorf("fermion indices %v: %w", idx, core.ErrIndicesContainDoubles)
}

func errOrder(idx []int) error {
	return fmt.Errorf("fermion indices %v: %w", idx, core.ErrIncorrectlyOrderedIndices)
}

// NewFermionProduct builds a product from strictly increasing sides.
//
// Errors:
//   - ErrIndicesContainDoubles: an index repeats on one side.
//   - ErrIncorrectlyOrderedIndices: a side is not increasing.
//
// Panics on a negative index.
func NewFermionProduct(creators, annihilators []int) (FermionProduct, error) {
	if err := checkIncreasing(creators); err != nil {
		return FermionProduct{}, err
	}
	if err := checkIncreasing(annihilators); err != nil {
		return FermionProduct{}, err
	}
	return FermionProduct{creators: slices.Clone(creators), annihilators: slices.Clone(annihilators)}, nil
}

// ParseFermionProduct reads "c0c1a2" text; "" and "I" are the identity.
func ParseFermionProduct(s string) (FermionProduct, error) {
	c, a, err := core.ParseLadder(s)
	if err != nil {
		return FermionProduct{}, err
	}
	return NewFermionProduct(c, a)
}

// canonicalSides sorts both sides and returns the sign of the reordering.
func canonicalSides(creators, annihilators []int) ([]int, []int, float64, error) {
	c, double, pc := sortAndSignal(creators)
	if double {
		return nil, nil, 0, errDoubles(creators)
	}
	a, double, pa := sortAndSignal(annihilators)
	if double {
		return nil, nil, 0, errDoubles(annihilators)
	}
	for _, i := range c {
		if i < 0 {
			panic(panicNegativeMode)
		}
	}
	for _, i := range a {
		if i < 0 {
			panic(panicNegativeMode)
		}
	}
	return c, a, paritySign(pc + pa), nil
}

// CreateValidPair sorts arbitrary index lists into a product and returns
// value with the sign of the reordering applied.
//
// Errors:
//   - ErrIndicesContainDoubles: an index repeats on one side.
func CreateValidPair(creators, annihilators []int, value calculator.Complex) (FermionProduct, calculator.Complex, error) {
	c, a, sign, err := canonicalSides(creators, annihilators)
	if err != nil {
		return FermionProduct{}, calculator.Zero, err
	}
	return FermionProduct{creators: c, annihilators: a}, value.ScaleFloat(sign), nil
}

// String returns the canonical text.
func (p FermionProduct) String() string { return core.FormatLadder(p.creators, p.annihilators) }

// Creators returns a copy of the creator indices.
func (p FermionProduct) Creators() []int { return slices.Clone(p.creators) }

// Annihilators returns a copy of the annihilator indices.
func (p FermionProduct) Annihilators() []int { return slices.Clone(p.annihilators) }

func (p FermionProduct) NumberCreators() int     { return len(p.creators) }
func (p FermionProduct) NumberAnnihilators() int { return len(p.annihilators) }

// CurrentNumberModes is the highest index + 1, or 0.
func (p FermionProduct) CurrentNumberModes() int {
	return core.NumberOfModes(p.creators, p.annihilators)
}

// IsEmpty reports whether p is the identity.
func (p FermionProduct) IsEmpty() bool { return len(p.creators) == 0 && len(p.annihilators) == 0 }

// Equal reports index-wise equality.
func (p FermionProduct) Equal(o FermionProduct) bool {
	return core.EqualInts(p.creators, o.creators) && core.EqualInts(p.annihilators, o.annihilators)
}

// Compare orders by creators, then annihilators (length first).
func (p FermionProduct) Compare(o FermionProduct) int {
	if c := core.CompareInts(p.creators, o.creators); c != 0 {
		return c
	}
	return core.CompareInts(p.annihilators, o.annihilators)
}

// RemapModes moves every index through mapping (unmapped indices stay)
// and returns the reordered product with the sign of the reordering.
//
// Errors:
//   - ErrIndicesContainDoubles: two indices of one side map to the same mode.
func (p FermionProduct) RemapModes(mapping map[int]int) (FermionProduct, float64, error) {
	c, a, sign, err := canonicalSides(remap(p.creators, mapping), remap(p.annihilators, mapping))
	if err != nil {
		return FermionProduct{}, 0, err
	}
	return FermionProduct{creators: c, annihilators: a}, sign, nil
}

func remap(idx []int, mapping map[int]int) []int {
	out := make([]int, len(idx))
	for n, i := range idx {
		out[n] = i
		if j, ok := mapping[i]; ok {
			out[n] = j
		}
	}
	return out
}

// HermitianConjugate returns p† and the sign of restoring normal order:
// (c†_A c_B)† = c†_{rev B} c_{rev A}.
func (p FermionProduct) HermitianConjugate() (FermionProduct, float64) {
	c := slices.Clone(p.annihilators)
	slices.Reverse(c)
	a := slices.Clone(p.creators)
	slices.Reverse(a)
	sc, sa, sign, err := canonicalSides(c, a)
	if err != nil {
		core.Internalf("FermionProduct(%s).HermitianConjugate: %v", p, err)
	}
	return FermionProduct{creators: sc, annihilators: sa}, sign
}

// IsNaturalHermitian reports whether creators == annihilators.
func (p FermionProduct) IsNaturalHermitian() bool {
	return core.EqualInts(p.creators, p.annihilators)
}

// Mul returns p·o in normal order. Contractions leading to a repeated index
// vanish and are omitted.
func (p FermionProduct) Mul(o FermionProduct) []core.Term[FermionProduct] {
	var out []core.Term[FermionProduct]
	for _, ct := range contract(p.annihilators, o.creators) {
		creators := append(slices.Clone(p.creators), ct.creators...)
		annihilators := append(slices.Clone(ct.annihilators), o.annihilators...)
		c, a, sign, err := canonicalSides(creators, annihilators)
		if err != nil {
			continue
		}
		out = append(out, core.NewTerm(FermionProduct{creators: c, annihilators: a}, ct.sign*sign, 0))
	}
	return out
}

// MulHermitian returns p·(h + h†) where the second term is present only
// when h is not naturally Hermitian.
func (p FermionProduct) MulHermitian(h HermitianFermionProduct) []core.Term[FermionProduct] {
	var out []core.Term[FermionProduct]
	for _, r := range h.expand() {
		for _, t := range p.Mul(r.Key) {
			out = append(out, core.Term[FermionProduct]{Key: t.Key, Value: t.Value.Mul(r.Value)})
		}
	}
	return out
}

func mulFermion(l, r FermionProduct) ([]core.Term[FermionProduct], error) {
	return l.Mul(r), nil
}
