// SPDX-License-Identifier: MIT
//
// File: pauli.go
// Role: PauliProduct, the key of qubit operators and Hamiltonians.

package spins

import (
	"iter"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// PauliProduct is a tensor product of Pauli matrices on distinct sites.
// The zero value is the identity.
type PauliProduct struct {
	s sites[SinglePauli]
}

var _ core.Key[PauliProduct] = PauliProduct{}

// NewPauliProduct returns the identity product.
func NewPauliProduct() PauliProduct { return PauliProduct{} }

// ParsePauliProduct reads "0X1Y"-style text; "" and "I" are the identity.
func ParsePauliProduct(s string) (PauliProduct, error) {
	st, err := parseSites(s, ParseSinglePauli)
	if err != nil {
		return PauliProduct{}, err
	}
	return PauliProduct{s: st}, nil
}

// String returns the canonical text.
func (p PauliProduct) String() string { return p.s.format() }

// Get returns the operator at index, PauliI when unset.
func (p PauliProduct) Get(index int) SinglePauli { return p.s.get(index) }

// Set returns p with op placed at index; PauliI removes the site.
// Panics on a negative index.
func (p PauliProduct) Set(index int, op SinglePauli) PauliProduct {
	return PauliProduct{s: p.s.set(index, op)}
}

// X, Y and Z are Set shorthands.
func (p PauliProduct) X(index int) PauliProduct { return p.Set(index, PauliX) }
func (p PauliProduct) Y(index int) PauliProduct { return p.Set(index, PauliY) }
func (p PauliProduct) Z(index int) PauliProduct { return p.Set(index, PauliZ) }

// Len returns the number of non-identity sites.
func (p PauliProduct) Len() int { return len(p.s) }

// IsEmpty reports whether p is the identity.
func (p PauliProduct) IsEmpty() bool { return len(p.s) == 0 }

// Indices returns the occupied sites in increasing order.
func (p PauliProduct) Indices() []int { return p.s.indices() }

// All yields (index, op) in increasing index order.
func (p PauliProduct) All() iter.Seq2[int, SinglePauli] {
	return func(yield func(int, SinglePauli) bool) {
		for _, st := range p.s {
			if !yield(st.index, st.op) {
				return
			}
		}
	}
}

// CurrentNumberSpins is the highest index + 1, or 0.
func (p PauliProduct) CurrentNumberSpins() int { return p.s.numberSpins() }

// RemapQubits moves sites through mapping; unmapped sites stay put.
//
// Errors:
//   - ErrProductIndexAlreadyOccupied: mapping sends two sites to one index.
func (p PauliProduct) RemapQubits(mapping map[int]int) (PauliProduct, error) {
	s, err := p.s.remap(mapping)
	if err != nil {
		return PauliProduct{}, err
	}
	return PauliProduct{s: s}, nil
}

// Concatenate joins two products on disjoint sites.
//
// Errors:
//   - ErrProductIndexAlreadyOccupied: both act on a common site.
func (p PauliProduct) Concatenate(o PauliProduct) (PauliProduct, error) {
	st, err := p.s.concat(o.s)
	if err != nil {
		return PauliProduct{}, err
	}
	return PauliProduct{s: st}, nil
}

// Equal reports site-wise equality.
func (p PauliProduct) Equal(o PauliProduct) bool { return p.s.equal(o.s) }

// Compare orders by length, then lexicographically on (index, op).
func (p PauliProduct) Compare(o PauliProduct) int { return p.s.compare(o.s) }

// HermitianConjugate returns (p, 1): Pauli products are self-adjoint.
func (p PauliProduct) HermitianConjugate() (PauliProduct, float64) { return p, 1 }

// IsNaturalHermitian is always true.
func (p PauliProduct) IsNaturalHermitian() bool { return true }

// Mul returns p·o as a product and a phase in {±1, ±i}.
func (p PauliProduct) Mul(o PauliProduct) (PauliProduct, complex128) {
	out := make(sites[SinglePauli], 0, len(p.s)+len(o.s))
	phase := complex(1, 0)
	zip(p.s, o.s, func(i int, a, b SinglePauli) {
		op, ph := a.Mul(b)
		phase *= ph
		if op != PauliI {
			out = append(out, site[SinglePauli]{index: i, op: op})
		}
	})
	return PauliProduct{s: out}, phase
}

// ToPlusMinus expands p in the ladder alphabet.
func (p PauliProduct) ToPlusMinus() []core.Term[PlusMinusProduct] {
	lists, weights := expand(p.s, SinglePauli.ToPlusMinus)
	out := make([]core.Term[PlusMinusProduct], len(lists))
	for n := range lists {
		out[n] = core.Term[PlusMinusProduct]{Key: PlusMinusProduct{s: lists[n]}, Value: calculator.FromComplex128(weights[n])}
	}
	return out
}

// ToDecoherence rewrites p in the decoherence alphabet; every Y becomes iY
// with a factor -i.
func (p PauliProduct) ToDecoherence() (DecoherenceProduct, complex128) {
	out := make(sites[SingleDecoherence], len(p.s))
	phase := complex(1, 0)
	for n, st := range p.s {
		op, ph := st.op.ToDecoherence()
		out[n] = site[SingleDecoherence]{index: st.index, op: op}
		phase *= ph
	}
	return DecoherenceProduct{s: out}, phase
}

// mulPauli is PauliProduct.Mul in the shape core.Multiply expects.
func mulPauli(a, b PauliProduct) ([]core.Term[PauliProduct], error) {
	p, ph := a.Mul(b)
	return []core.Term[PauliProduct]{{Key: p, Value: calculator.FromComplex128(ph)}}, nil
}
