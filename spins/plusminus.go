// SPDX-License-Identifier: MIT
//
// File: plusminus.go
// Role: PlusMinusProduct, products of σ+, σ- and Z.

package spins

import (
	"iter"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// PlusMinusProduct is a tensor product over the alphabet {+, -, Z}.
// The zero value is the identity.
type PlusMinusProduct struct {
	s sites[SinglePlusMinus]
}

var _ core.Key[PlusMinusProduct] = PlusMinusProduct{}

// NewPlusMinusProduct returns the identity product.
func NewPlusMinusProduct() PlusMinusProduct { return PlusMinusProduct{} }

// ParsePlusMinusProduct reads "0+1-2Z"-style text.
func ParsePlusMinusProduct(s string) (PlusMinusProduct, error) {
	st, err := parseSites(s, ParseSinglePlusMinus)
	if err != nil {
		return PlusMinusProduct{}, err
	}
	return PlusMinusProduct{s: st}, nil
}

func (p PlusMinusProduct) String() string { return p.s.format() }

// Get returns the operator at index, PlusMinusI when unset.
func (p PlusMinusProduct) Get(index int) SinglePlusMinus { return p.s.get(index) }

// Set returns p with op placed at index; PlusMinusI removes the site.
func (p PlusMinusProduct) Set(index int, op SinglePlusMinus) PlusMinusProduct {
	return PlusMinusProduct{s: p.s.set(index, op)}
}

// Plus, Minus and Z are Set shorthands.
func (p PlusMinusProduct) Plus(index int) PlusMinusProduct { return p.Set(index, PlusMinusPlus) }
func (p PlusMinusProduct) Minus(index int) PlusMinusProduct { return p.Set(index, PlusMinusMinus) }
func (p PlusMinusProduct) Z(index int) PlusMinusProduct { return p.Set(index, PlusMinusZ) }

func (p PlusMinusProduct) Len() int { return len(p.s) }
func (p PlusMinusProduct) IsEmpty() bool { return len(p.s) == 0 }
func (p PlusMinusProduct) Indices() []int { return p.s.indices() }
func (p PlusMinusProduct) CurrentNumberSpins() int { return p.s.numberSpins() }

// All yields (index, op) in increasing index order.
func (p PlusMinusProduct) All() iter.Seq2[int, SinglePlusMinus] {
	return func(yield func(int, SinglePlusMinus) bool) {
		for _, st := range p.s {
			if !yield(st.index, st.op) {
				return
			}
		}
	}
}

func (p PlusMinusProduct) RemapQubits(mapping map[int]int) (PlusMinusProduct, error) {
	s, err := p.s.remap(mapping)
	if err != nil {
		return PlusMinusProduct{}, err
	}
	return PlusMinusProduct{s: s}, nil
}

// Concatenate joins two products on disjoint sites.
func (p PlusMinusProduct) Concatenate(o PlusMinusProduct) (PlusMinusProduct, error) {
	st, err := p.s.concat(o.s)
	if err != nil {
		return PlusMinusProduct{}, err
	}
	return PlusMinusProduct{s: st}, nil
}

func (p PlusMinusProduct) Equal(o PlusMinusProduct) bool { return p.s.equal(o.s) }
func (p PlusMinusProduct) Compare(o PlusMinusProduct) int { return p.s.compare(o.s) }

// HermitianConjugate swaps + and - on every site; the phase is 1.
func (p PlusMinusProduct) HermitianConjugate() (PlusMinusProduct, float64) {
	out := make(sites[SinglePlusMinus], len(p.s))
	for n, st := range p.s {
		out[n] = site[SinglePlusMinus]{index: st.index, op: st.op.Conjugate()}
	}
	return PlusMinusProduct{s: out}, 1
}

// IsNaturalHermitian reports that p holds only Z sites.
func (p PlusMinusProduct) IsNaturalHermitian() bool {
	for _, st := range p.s {
		if st.op != PlusMinusZ {
			return false
		}
	}
	return true
}

// Mul returns p·o. A site where both act contributes the single-site list
// of SinglePlusMinus.Mul; the result is their cartesian product, empty when
// any site vanishes.
func (p PlusMinusProduct) Mul(o PlusMinusProduct) []core.Term[PlusMinusProduct] {
	lists := []sites[SinglePlusMinus]{nil}
	weights := []complex128{1}
	zip(p.s, o.s, func(i int, a, b SinglePlusMinus) {
		opts := a.Mul(b)
		nextL := make([]sites[SinglePlusMinus], 0, len(lists)*len(opts))
		nextW := make([]complex128, 0, len(lists)*len(opts))
		for n := range lists {
			for _, w := range opts {
				l := lists[n]
				if w.Op != PlusMinusI {
					l = append(append(make(sites[SinglePlusMinus], 0, len(l)+1), l...), site[SinglePlusMinus]{index: i, op: w.Op})
				}
				nextL = append(nextL, l)
				nextW = append(nextW, weights[n]*w.Weight)
			}
		}
		lists, weights = nextL, nextW
	})
	out := make([]core.Term[PlusMinusProduct], len(lists))
	for n := range lists {
		out[n] = core.Term[PlusMinusProduct]{Key: PlusMinusProduct{s: lists[n]}, Value: calculator.FromComplex128(weights[n])}
	}
	return out
}

// ToPauli expands p with Pauli matrices.
func (p PlusMinusProduct) ToPauli() []core.Term[PauliProduct] {
	lists, weights := expand(p.s, SinglePlusMinus.ToPauli)
	out := make([]core.Term[PauliProduct], len(lists))
	for n := range lists {
		out[n] = core.Term[PauliProduct]{Key: PauliProduct{s: lists[n]}, Value: calculator.FromComplex128(weights[n])}
	}
	return out
}

// ToDecoherence expands p in the decoherence alphabet.
func (p PlusMinusProduct) ToDecoherence() []core.Term[DecoherenceProduct] {
	lists, weights := expand(p.s, SinglePlusMinus.ToDecoherence)
	out := make([]core.Term[DecoherenceProduct], len(lists))
	for n := range lists {
		out[n] = core.Term[DecoherenceProduct]{Key: DecoherenceProduct{s: lists[n]}, Value: calculator.FromComplex128(weights[n])}
	}
	return out
}

func mulPlusMinus(a, b PlusMinusProduct) ([]core.Term[PlusMinusProduct], error) {
	return a.Mul(b), nil
}
