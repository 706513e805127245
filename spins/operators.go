// SPDX-License-Identifier: MIT
//
// File: operators.go
// Role: Spin containers as instantiations of the core engine, their
//       products and the shape-based helpers shared by all spin keys.
// AI-HINT (file):
//   - QubitOperator and QubitHamiltonian are the same Go type; pick the
//     constructor for the policy.
//   - Noise operators over spins reject identity halves (core guard).

package spins

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// SpinProduct is the capability set shared by PauliProduct,
// DecoherenceProduct and PlusMinusProduct.
type SpinProduct[K any] interface {
	core.Key[K]
	Len() int
	CurrentNumberSpins() int
	RemapQubits(mapping map[int]int) (K, error)
}

// Container aliases.
type (
	QubitOperator                  = core.Operator[PauliProduct]
	QubitHamiltonian               = core.Operator[PauliProduct]
	DecoherenceOperator            = core.Operator[DecoherenceProduct]
	PlusMinusOperator              = core.Operator[PlusMinusProduct]
	QubitLindbladNoiseOperator     = core.Operator[core.Pair[DecoherenceProduct]]
	PlusMinusLindbladNoiseOperator = core.Operator[core.Pair[PlusMinusProduct]]
)

// NewQubitOperator returns an empty general qubit operator.
func NewQubitOperator(opts ...core.Option) *QubitOperator {
	return core.NewOperator[PauliProduct](opts...)
}

// NewQubitHamiltonian returns an empty Hermitian-constrained qubit operator.
// Every Pauli product is naturally Hermitian, so every value must be real.
func NewQubitHamiltonian(opts ...core.Option) *QubitHamiltonian {
	return core.NewHamiltonian[PauliProduct](opts...)
}

// NewDecoherenceOperator returns an empty decoherence operator.
func NewDecoherenceOperator(opts ...core.Option) *DecoherenceOperator {
	return core.NewOperator[DecoherenceProduct](opts...)
}

// NewPlusMinusOperator returns an empty ladder operator.
func NewPlusMinusOperator(opts ...core.Option) *PlusMinusOperator {
	return core.NewOperator[PlusMinusProduct](opts...)
}

// NewQubitLindbladNoiseOperator returns an empty noise operator keyed by
// decoherence product pairs.
func NewQubitLindbladNoiseOperator(opts ...core.Option) *QubitLindbladNoiseOperator {
	return core.NewNoiseOperator[DecoherenceProduct](nil, opts...)
}

// NewPlusMinusLindbladNoiseOperator returns an empty noise operator keyed
// by ladder product pairs.
func NewPlusMinusLindbladNoiseOperator(opts ...core.Option) *PlusMinusLindbladNoiseOperator {
	return core.NewNoiseOperator[PlusMinusProduct](nil, opts...)
}

// QubitHamiltonianFromOperator casts a general qubit operator to the
// Hermitian kind.
//
// Errors:
//   - ErrNonHermitianOperator: a value has a non-zero imaginary part.
func QubitHamiltonianFromOperator(o *QubitOperator) (*QubitHamiltonian, error) {
	return core.ToHamiltonian(o, nil)
}

// QubitOperatorFromHamiltonian drops the Hermitian policy.
func QubitOperatorFromHamiltonian(h *QubitHamiltonian) *QubitOperator {
	return core.ToOperator(h)
}

// MulQubit returns the general operator l·r. Either operand may be a
// Hamiltonian; the product of two Hamiltonians is not Hermitian in general.
func MulQubit(l, r *QubitOperator) *QubitOperator {
	out := NewQubitOperator(core.WithLogger(l.Logger()))
	if err := core.Multiply(out, l, r, mulPauli); err != nil {
		core.Internalf("MulQubit: %v", err)
	}
	return out
}

// MulQubitComplex returns the general operator o·c; unlike Scale it accepts
// a complex factor for a Hamiltonian operand.
func MulQubitComplex(o *QubitOperator, c calculator.Complex) *QubitOperator {
	out, err := core.ToOperator(o).Scale(c)
	if err != nil {
		core.Internalf("MulQubitComplex: %v", err)
	}
	return out
}

// MulDecoherence returns l·r.
func MulDecoherence(l, r *DecoherenceOperator) *DecoherenceOperator {
	out := NewDecoherenceOperator(core.WithLogger(l.Logger()))
	if err := core.Multiply(out, l, r, mulDecoherence); err != nil {
		core.Internalf("MulDecoherence: %v", err)
	}
	return out
}

// MulPlusMinus returns l·r.
func MulPlusMinus(l, r *PlusMinusOperator) *PlusMinusOperator {
	out := NewPlusMinusOperator(core.WithLogger(l.Logger()))
	if err := core.Multiply(out, l, r, mulPlusMinus); err != nil {
		core.Internalf("MulPlusMinus: %v", err)
	}
	return out
}

// SeparateIntoNTerms splits o into the entries whose key acts on exactly n
// sites and the rest.
func SeparateIntoNTerms[K SpinProduct[K]](o *core.Operator[K], n int) (*core.Operator[K], *core.Operator[K]) {
	return o.Separate(func(k K) bool { return k.Len() == n })
}

// SeparateNoiseIntoNTerms splits a noise operator by the site counts of the
// left and right halves.
func SeparateNoiseIntoNTerms[K SpinProduct[K]](o *core.Operator[core.Pair[K]], left, right int) (*core.Operator[core.Pair[K]], *core.Operator[core.Pair[K]]) {
	return o.Separate(func(p core.Pair[K]) bool { return p.Left.Len() == left && p.Right.Len() == right })
}

// CurrentNumberSpins is the highest site index + 1 over all keys of o.
func CurrentNumberSpins[K SpinProduct[K]](o *core.Operator[K]) int {
	n := 0
	for k := range o.All() {
		n = max(n, k.CurrentNumberSpins())
	}
	return n
}

// RemapQubits moves every key of o through mapping. Keys that collide
// after remapping are summed; o is left unchanged on error.
//
// Errors:
//   - ErrProductIndexAlreadyOccupied: mapping is not injective on a key.
func RemapQubits[K SpinProduct[K]](o *core.Operator[K], mapping map[int]int) (*core.Operator[K], error) {
	out := o.EmptyClone(o.Len())
	for k, v := range o.All() {
		nk, err := k.RemapQubits(mapping)
		if err != nil {
			return nil, fmt.Errorf("RemapQubits(%s): %w", k, err)
		}
		core.MustAdd(out, nk, v)
	}
	return out, nil
}

// RemapNoiseQubits moves both halves of every noise key through mapping.
func RemapNoiseQubits[K SpinProduct[K]](o *core.Operator[core.Pair[K]], mapping map[int]int) (*core.Operator[core.Pair[K]], error) {
	out := o.EmptyClone(o.Len())
	for p, v := range o.All() {
		l, err := p.Left.RemapQubits(mapping)
		if err != nil {
			return nil, fmt.Errorf("RemapNoiseQubits(%s): %w", p, err)
		}
		r, err := p.Right.RemapQubits(mapping)
		if err != nil {
			return nil, fmt.Errorf("RemapNoiseQubits(%s): %w", p, err)
		}
		core.MustAdd(out, core.Pair[K]{Left: l, Right: r}, v)
	}
	return out, nil
}
