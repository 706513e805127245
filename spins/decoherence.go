// SPDX-License-Identifier: MIT
//
// File: decoherence.go
// Role: DecoherenceProduct, the key of decoherence operators and of qubit
//       Lindblad noise.

package spins

import (
	"iter"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// DecoherenceProduct is a tensor product over the alphabet {X, iY, Z}.
// All product phases are real. The zero value is the identity.
type DecoherenceProduct struct {
	s sites[SingleDecoherence]
}

var _ core.Key[DecoherenceProduct] = DecoherenceProduct{}

// NewDecoherenceProduct returns the identity product.
func NewDecoherenceProduct() DecoherenceProduct { return DecoherenceProduct{} }

// ParseDecoherenceProduct reads "0X1iY"-style text.
func ParseDecoherenceProduct(s string) (DecoherenceProduct, error) {
	st, err := parseSites(s, ParseSingleDecoherence)
	if err != nil {
		return DecoherenceProduct{}, err
	}
	return DecoherenceProduct{s: st}, nil
}

func (p DecoherenceProduct) String() string { return p.s.format() }

// Get returns the operator at index, DecoherenceI when unset.
func (p DecoherenceProduct) Get(index int) SingleDecoherence { return p.s.get(index) }

// Set returns p with op placed at index; DecoherenceI removes the site.
func (p DecoherenceProduct) Set(index int, op SingleDecoherence) DecoherenceProduct {
	return DecoherenceProduct{s: p.s.set(index, op)}
}

func (p DecoherenceProduct) X(index int) DecoherenceProduct { return p.Set(index, DecoherenceX) }
func (p DecoherenceProduct) IY(index int) DecoherenceProduct { return p.Set(index, DecoherenceIY) }
func (p DecoherenceProduct) Z(index int) DecoherenceProduct { return p.Set(index, DecoherenceZ) }

func (p DecoherenceProduct) Len() int { return len(p.s) }
func (p DecoherenceProduct) IsEmpty() bool { return len(p.s) == 0 }
func (p DecoherenceProduct) Indices() []int { return p.s.indices() }
func (p DecoherenceProduct) CurrentNumberSpins() int { return p.s.numberSpins() }

// All yields (index, op) in increasing index order.
func (p DecoherenceProduct) All() iter.Seq2[int, SingleDecoherence] {
	return func(yield func(int, SingleDecoherence) bool) {
		for _, st := range p.s {
			if !yield(st.index, st.op) {
				return
			}
		}
	}
}

func (p DecoherenceProduct) RemapQubits(mapping map[int]int) (DecoherenceProduct, error) {
	s, err := p.s.remap(mapping)
	if err != nil {
		return DecoherenceProduct{}, err
	}
	return DecoherenceProduct{s: s}, nil
}

// Concatenate joins two products on disjoint sites.
func (p DecoherenceProduct) Concatenate(o DecoherenceProduct) (DecoherenceProduct, error) {
	st, err := p.s.concat(o.s)
	if err != nil {
		return DecoherenceProduct{}, err
	}
	return DecoherenceProduct{s: st}, nil
}

func (p DecoherenceProduct) Equal(o DecoherenceProduct) bool { return p.s.equal(o.s) }
func (p DecoherenceProduct) Compare(o DecoherenceProduct) int { return p.s.compare(o.s) }

// HermitianConjugate returns p with phase -1 when p holds an odd number of
// iY sites, +1 otherwise.
func (p DecoherenceProduct) HermitianConjugate() (DecoherenceProduct, float64) {
	phase := 1.0
	for _, st := range p.s {
		if st.op == DecoherenceIY {
			phase = -phase
		}
	}
	return p, phase
}

// IsNaturalHermitian reports an even number of iY sites.
func (p DecoherenceProduct) IsNaturalHermitian() bool {
	_, phase := p.HermitianConjugate()
	return phase > 0
}

// Mul returns p·o with a real phase.
func (p DecoherenceProduct) Mul(o DecoherenceProduct) (DecoherenceProduct, float64) {
	out := make(sites[SingleDecoherence], 0, len(p.s)+len(o.s))
	phase := 1.0
	zip(p.s, o.s, func(i int, a, b SingleDecoherence) {
		op, ph := a.Mul(b)
		phase *= ph
		if op != DecoherenceI {
			out = append(out, site[SingleDecoherence]{index: i, op: op})
		}
	})
	return DecoherenceProduct{s: out}, phase
}

// ToPauli rewrites p with Pauli matrices; every iY contributes a factor i.
func (p DecoherenceProduct) ToPauli() (PauliProduct, complex128) {
	out := make(sites[SinglePauli], len(p.s))
	phase := complex(1, 0)
	for n, st := range p.s {
		op, ph := st.op.ToPauli()
		out[n] = site[SinglePauli]{index: st.index, op: op}
		phase *= ph
	}
	return PauliProduct{s: out}, phase
}

// ToPlusMinus expands p in the ladder alphabet.
func (p DecoherenceProduct) ToPlusMinus() []core.Term[PlusMinusProduct] {
	lists, weights := expand(p.s, SingleDecoherence.ToPlusMinus)
	out := make([]core.Term[PlusMinusProduct], len(lists))
	for n := range lists {
		out[n] = core.Term[PlusMinusProduct]{Key: PlusMinusProduct{s: lists[n]}, Value: calculator.FromComplex128(weights[n])}
	}
	return out
}

func mulDecoherence(a, b DecoherenceProduct) ([]core.Term[DecoherenceProduct], error) {
	p, ph := a.Mul(b)
	return []core.Term[DecoherenceProduct]{core.NewTerm(p, ph, 0)}, nil
}
