// SPDX-License-Identifier: MIT
//
// File: systems.go
// Role: Bounded spin systems and the qubit Lindblad open system.

package spins

import (
	"github.com/katalvlaran/qalgebra/core"
)

// System aliases. A spin system has a single slot: the number of spins.
type (
	QubitSystem              = core.System[PauliProduct]
	DecoherenceSystem        = core.System[DecoherenceProduct]
	PlusMinusSystem          = core.System[PlusMinusProduct]
	QubitLindbladNoiseSystem = core.System[core.Pair[DecoherenceProduct]]
	QubitLindbladOpenSystem  = core.OpenSystem[PauliProduct, DecoherenceProduct]
)

// Shape returns the one-slot shape of a spin key type.
func Shape[K SpinProduct[K]]() core.Shape[K] {
	return core.Shape[K]{
		Usage: func(k K) []int { return []int{k.CurrentNumberSpins()} },
		Slots: []core.Slot{core.SpinSlot},
	}
}

// NoiseShape returns the one-slot shape of spin noise pairs.
func NoiseShape[K SpinProduct[K]]() core.Shape[core.Pair[K]] {
	return core.Shape[core.Pair[K]]{
		Usage: core.PairShape(func(k K) []int { return []int{k.CurrentNumberSpins()} }),
		Slots: []core.Slot{core.SpinSlot},
	}
}

// NewSpinSystem wraps op with a spin bound (core.Unbounded for none).
//
// Errors:
//   - ErrNumberSpinsExceeded: op already acts beyond numberSpins.
func NewSpinSystem[K SpinProduct[K]](op *core.Operator[K], numberSpins int) (*core.System[K], error) {
	return core.NewSystem(op, Shape[K](), numberSpins)
}

// NewQubitSystem wraps a qubit operator or Hamiltonian.
func NewQubitSystem(op *QubitOperator, numberSpins int) (*QubitSystem, error) {
	return NewSpinSystem(op, numberSpins)
}

// NewQubitLindbladNoiseSystem wraps a qubit noise operator.
func NewQubitLindbladNoiseSystem(noise *QubitLindbladNoiseOperator, numberSpins int) (*QubitLindbladNoiseSystem, error) {
	return core.NewSystem(noise, NoiseShape[DecoherenceProduct](), numberSpins)
}

// NewQubitLindbladOpenSystem returns an empty open system with the given
// spin bound on both parts.
func NewQubitLindbladOpenSystem(numberSpins int, opts ...core.Option) *QubitLindbladOpenSystem {
	sys := core.MustNewSystem(NewQubitHamiltonian(opts...), Shape[PauliProduct](), numberSpins)
	noise := core.MustNewSystem(NewQubitLindbladNoiseOperator(opts...), NoiseShape[DecoherenceProduct](), numberSpins)
	open, err := core.GroupOpenSystem(sys, noise)
	if err != nil {
		core.Internalf("NewQubitLindbladOpenSystem: %v", err)
	}
	return open
}

// GroupQubitLindbladOpenSystem couples a Hamiltonian system with a noise
// system. A general system is cast to the Hermitian kind first.
//
// Errors:
//   - ErrNonHermitianOperator: system holds a complex value.
//   - ErrMismatchedNumberSpins: the bounds cannot be reconciled.
func GroupQubitLindbladOpenSystem(system *QubitSystem, noise *QubitLindbladNoiseSystem) (*QubitLindbladOpenSystem, error) {
	if !system.IsHermitian() {
		h, err := QubitHamiltonianFromOperator(system.View())
		if err != nil {
			return nil, err
		}
		if system, err = core.NewSystem(h, system.Shape(), system.Limits()...); err != nil {
			return nil, err
		}
	}
	return core.GroupOpenSystem(system, noise)
}
