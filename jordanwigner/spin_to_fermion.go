// SPDX-License-Identifier: MIT
//
// File: spin_to_fermion.go
// Role: Spin products and containers mapped onto fermionic modes.
// Invariants:
//   - A product touching spins [0, n) yields keys touching modes [0, n).
//   - Output containers inherit the logger of their input.

package jordanwigner

import (
	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
	"github.com/katalvlaran/qalgebra/spins"
)

// fermionTerm returns the one-entry operator {c…a…: 1}.
func fermionTerm(creators, annihilators []int) *fermions.FermionOperator {
	p, err := fermions.NewFermionProduct(creators, annihilators)
	if err != nil {
		core.Internalf("fermionTerm(%v, %v): %v", creators, annihilators, err)
	}
	o := fermions.NewFermionOperator(core.WithCapacity(1))
	core.MustAdd(o, p, calculator.NewComplex(1, 0))
	return o
}

// parity returns 1 - 2n_q, the image of Z_q.
func parity(q int) *fermions.FermionOperator {
	o := fermions.NewFermionOperator(core.WithCapacity(2))
	core.MustAdd(o, fermions.FermionProduct{}, calculator.NewComplex(1, 0))
	n, err := fermions.NewFermionProduct([]int{q}, []int{q})
	if err != nil {
		core.Internalf("parity(%d): %v", q, err)
	}
	core.MustAdd(o, n, calculator.NewComplex(-2, 0))
	return o
}

// FromPlusMinusProduct returns the fermionic image of p. Sites are visited
// in increasing order; σ⁺_i becomes the parity string on [0, i) followed by
// a_i, σ⁻_i the same string followed by c_i.
func FromPlusMinusProduct(p spins.PlusMinusProduct) *fermions.FermionOperator {
	out := fermionTerm(nil, nil)
	for index, op := range p.All() {
		switch op {
		case spins.PlusMinusPlus, spins.PlusMinusMinus:
			for q := 0; q < index; q++ {
				out = fermions.MulFermion(out, parity(q))
			}
			if op == spins.PlusMinusPlus {
				out = fermions.MulFermion(out, fermionTerm(nil, []int{index}))
			} else {
				out = fermions.MulFermion(out, fermionTerm([]int{index}, nil))
			}
		case spins.PlusMinusZ:
			out = fermions.MulFermion(out, parity(index))
		}
	}
	return out
}

// FromPauliProduct expands p into the PlusMinus alphabet and sums the
// images of the terms.
func FromPauliProduct(p spins.PauliProduct) *fermions.FermionOperator {
	out := fermions.NewFermionOperator()
	for _, t := range p.ToPlusMinus() {
		addScaled(out, FromPlusMinusProduct(t.Key), t.Value)
	}
	return out
}

// FromDecoherenceProduct maps p through its Pauli form; iY carries its
// phase into the coefficients.
func FromDecoherenceProduct(p spins.DecoherenceProduct) *fermions.FermionOperator {
	pp, phase := p.ToPauli()
	out := fermions.NewFermionOperator()
	addScaled(out, FromPauliProduct(pp), calculator.FromComplex128(phase))
	return out
}

// FromQubitOperator returns Σ c·jw(p) over the entries of o.
func FromQubitOperator(o *spins.QubitOperator) *fermions.FermionOperator {
	return fromSpinOperator(o, FromPauliProduct)
}

func FromPlusMinusOperator(o *spins.PlusMinusOperator) *fermions.FermionOperator {
	return fromSpinOperator(o, FromPlusMinusProduct)
}

func FromDecoherenceOperator(o *spins.DecoherenceOperator) *fermions.FermionOperator {
	return fromSpinOperator(o, FromDecoherenceProduct)
}

func fromSpinOperator[K core.Key[K]](o *core.Operator[K], jw func(K) *fermions.FermionOperator) *fermions.FermionOperator {
	log := o.Logger()
	out := fermions.NewFermionOperator(core.WithLogger(log))
	for k, v := range o.All() {
		addScaled(out, jw(k), v)
	}
	log.Trace().Int("in", o.Len()).Int("out", out.Len()).Msg("jordan-wigner spin operator")
	return out
}

// FromQubitHamiltonian returns the fermionic Hamiltonian of h. The image of
// a Hermitian operator holds every non-natural product together with its
// conjugate; only the canonical orientation is kept.
//
// h must hold real values; a complex value is an internal defect (panic).
// Callers holding a general QubitOperator cast it with
// spins.QubitHamiltonianFromOperator first.
func FromQubitHamiltonian(h *spins.QubitHamiltonian) *fermions.FermionHamiltonian {
	full := FromQubitOperator(h)
	canonical, _ := full.Separate(func(p fermions.FermionProduct) bool {
		return !core.ConjugateOrientation(p.Creators(), p.Annihilators())
	})
	out, err := fermions.FermionHamiltonianFromOperator(canonical)
	if err != nil {
		core.Internalf("FromQubitHamiltonian: %v", err)
	}
	return out
}

// FromQubitNoise maps both halves of every noise entry and recombines them
// into fermionic pairs.
func FromQubitNoise(o *spins.QubitLindbladNoiseOperator) *fermions.FermionLindbladNoiseOperator {
	out := fermions.NewFermionLindbladNoiseOperator(core.WithLogger(o.Logger()))
	for k, v := range o.All() {
		left := FromDecoherenceProduct(k.Left)
		right := FromDecoherenceProduct(k.Right)
		if err := core.AddNoiseFromFullOperators(out, left, right, v); err != nil {
			core.Internalf("FromQubitNoise(%s): %v", k, err)
		}
	}
	return out
}
