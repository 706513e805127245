// SPDX-License-Identifier: MIT
//
// File: fermion_to_spin.go
// Role: Fermionic products and containers mapped onto qubits.
// Invariants:
//   - A product touching modes [0, n) yields keys touching spins [0, n).
//   - Output containers inherit the logger of their input.

package jordanwigner

import (
	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
	"github.com/katalvlaran/qalgebra/spins"
)

// qubitTerm returns the one-entry operator {p: re + i·im}.
func qubitTerm(p spins.PauliProduct, re, im float64) *spins.QubitOperator {
	o := spins.NewQubitOperator(core.WithCapacity(1))
	core.MustAdd(o, p, calculator.NewComplex(re, im))
	return o
}

// lowering is σ⁻_s = 0.5 X_s - 0.5i Y_s; a creator maps onto it.
func lowering(s int) *spins.QubitOperator {
	o := qubitTerm(spins.NewPauliProduct().X(s), 0.5, 0)
	core.MustAdd(o, spins.NewPauliProduct().Y(s), calculator.NewComplex(0, -0.5))
	return o
}

// raising is σ⁺_s = 0.5 X_s + 0.5i Y_s; an annihilator maps onto it.
func raising(s int) *spins.QubitOperator {
	o := qubitTerm(spins.NewPauliProduct().X(s), 0.5, 0)
	core.MustAdd(o, spins.NewPauliProduct().Y(s), calculator.NewComplex(0, 0.5))
	return o
}

// ladderString multiplies out by the spin image of one side of a product.
// Parity strings of consecutive operators cancel pairwise, so only every
// other operator (counted from the last) carries Z on [previous, site).
func ladderString(out *spins.QubitOperator, sites []int, single func(int) *spins.QubitOperator) *spins.QubitOperator {
	previous := 0
	for k, s := range sites {
		if k%2 != len(sites)%2 {
			z := spins.NewPauliProduct()
			for i := previous; i < s; i++ {
				z = z.Z(i)
			}
			if !z.IsEmpty() {
				out = spins.MulQubit(out, qubitTerm(z, 1, 0))
			}
		}
		out = spins.MulQubit(out, single(s))
		previous = s
	}
	return out
}

// FromFermionProduct returns the qubit image of p.
//
// Complexity: O(2^(k+l)) terms in the worst case for k creators and l
// annihilators, before cancellation.
func FromFermionProduct(p fermions.FermionProduct) *spins.QubitOperator {
	out := qubitTerm(spins.NewPauliProduct(), 1, 0)
	out = ladderString(out, p.Creators(), lowering)
	return ladderString(out, p.Annihilators(), raising)
}

// FromHermitianFermionProduct returns the qubit image of h + h† (of h alone
// when h is natural). Coefficients of p + p† are real multiples of Pauli
// strings, so only the real part of each term survives, doubled.
func FromHermitianFermionProduct(h fermions.HermitianFermionProduct) *spins.QubitHamiltonian {
	op := FromFermionProduct(h.Product())
	if h.IsNaturalHermitian() {
		out, err := spins.QubitHamiltonianFromOperator(op)
		if err != nil {
			core.Internalf("FromHermitianFermionProduct(%s): %v", h, err)
		}
		return out
	}
	out := spins.NewQubitHamiltonian(core.WithCapacity(op.Len()))
	for k, v := range op.All() {
		core.MustAdd(out, k, calculator.Real(v.Re).ScaleFloat(2))
	}
	return out
}

// FromFermionOperator returns Σ c·jw(p) over the entries of o.
func FromFermionOperator(o *fermions.FermionOperator) *spins.QubitOperator {
	log := o.Logger()
	out := spins.NewQubitOperator(core.WithLogger(log))
	for k, v := range o.All() {
		addScaled(out, FromFermionProduct(k), v)
	}
	log.Trace().Int("in", o.Len()).Int("out", out.Len()).Msg("jordan-wigner fermion operator")
	return out
}

// FromFermionHamiltonian returns the qubit Hamiltonian of h. A natural key
// contributes jw(h)·Re(c). Any other key contributes
// jw(p)·c + jw(p†)·sign·conj(c); since jw(p†)·sign = jw(p)†, each Pauli
// string P with weight a in jw(p) receives 2·Re(a·c).
func FromFermionHamiltonian(h *fermions.FermionHamiltonian) *spins.QubitHamiltonian {
	log := h.Logger()
	out := spins.NewQubitHamiltonian(core.WithLogger(log))
	for k, v := range h.All() {
		if k.IsNaturalHermitian() {
			addScaled(out, FromHermitianFermionProduct(k), calculator.Real(v.Re))
			continue
		}
		for p, a := range FromFermionProduct(k.Product()).All() {
			core.MustAdd(out, p, calculator.Real(a.Mul(v).Re).ScaleFloat(2))
		}
	}
	log.Trace().Int("in", h.Len()).Int("out", out.Len()).Msg("jordan-wigner fermion hamiltonian")
	return out
}

// FromFermionNoise maps both halves of every noise entry and recombines
// them into decoherence pairs.
func FromFermionNoise(o *fermions.FermionLindbladNoiseOperator) *spins.QubitLindbladNoiseOperator {
	out := spins.NewQubitLindbladNoiseOperator(core.WithLogger(o.Logger()))
	for k, v := range o.All() {
		left := spins.QubitToDecoherence(FromFermionProduct(k.Left))
		right := spins.QubitToDecoherence(FromFermionProduct(k.Right))
		if err := core.AddNoiseFromFullOperators(out, left, right, v); err != nil {
			core.Internalf("FromFermionNoise(%s): %v", k, err)
		}
	}
	return out
}

// addScaled adds c·src into out entry by entry.
func addScaled[K core.Key[K]](out, src *core.Operator[K], c calculator.Complex) {
	for k, v := range src.All() {
		core.MustAdd(out, k, v.Mul(c))
	}
}
