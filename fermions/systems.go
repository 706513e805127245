// SPDX-License-Identifier: MIT
//
// File: systems.go
// Role: Bounded fermion systems and the fermionic Lindblad open system.

package fermions

import (
	"github.com/katalvlaran/qalgebra/core"
)

// System aliases. A fermion system has a single slot: the number of modes.
type (
	FermionSystem              = core.System[FermionProduct]
	FermionHamiltonianSystem   = core.System[HermitianFermionProduct]
	FermionLindbladNoiseSystem = core.System[core.Pair[FermionProduct]]
	FermionLindbladOpenSystem  = core.OpenSystem[HermitianFermionProduct, FermionProduct]
)

func modeUsage[K ladderKey[K]](k K) []int { return []int{k.CurrentNumberModes()} }

// Shape returns the one-slot shape of a fermionic key type.
func Shape[K ladderKey[K]]() core.Shape[K] {
	return core.Shape[K]{Usage: modeUsage[K], Slots: []core.Slot{core.ModeSlot}}
}

// NoiseShape returns the one-slot shape of fermionic noise pairs.
func NoiseShape() core.Shape[core.Pair[FermionProduct]] {
	return core.Shape[core.Pair[FermionProduct]]{
		Usage: core.PairShape(modeUsage[FermionProduct]),
		Slots: []core.Slot{core.ModeSlot},
	}
}

// NewFermionSystem wraps op with a mode bound (core.Unbounded for none).
//
// Errors:
//   - ErrNumberModesExceeded: op already uses a mode beyond numberModes.
func NewFermionSystem(op *FermionOperator, numberModes int) (*FermionSystem, error) {
	return core.NewSystem(op, Shape[FermionProduct](), numberModes)
}

// NewFermionHamiltonianSystem wraps a Hamiltonian with a mode bound.
func NewFermionHamiltonianSystem(h *FermionHamiltonian, numberModes int) (*FermionHamiltonianSystem, error) {
	return core.NewSystem(h, Shape[HermitianFermionProduct](), numberModes)
}

// NewFermionLindbladNoiseSystem wraps a noise operator with a mode bound.
func NewFermionLindbladNoiseSystem(noise *FermionLindbladNoiseOperator, numberModes int) (*FermionLindbladNoiseSystem, error) {
	return core.NewSystem(noise, NoiseShape(), numberModes)
}

// NewFermionLindbladOpenSystem returns an empty open system with the given
// mode bound on both parts.
func NewFermionLindbladOpenSystem(numberModes int, opts ...core.Option) *FermionLindbladOpenSystem {
	sys := core.MustNewSystem(NewFermionHamiltonian(opts...), Shape[HermitianFermionProduct](), numberModes)
	noise := core.MustNewSystem(NewFermionLindbladNoiseOperator(opts...), NoiseShape(), numberModes)
	open, err := core.GroupOpenSystem(sys, noise)
	if err != nil {
		core.Internalf("NewFermionLindbladOpenSystem: %v", err)
	}
	return open
}

// GroupFermionLindbladOpenSystem couples a Hamiltonian system with a noise
// system.
//
// Errors:
//   - ErrMismatchedNumberModes: the bounds cannot be reconciled.
func GroupFermionLindbladOpenSystem(system *FermionHamiltonianSystem, noise *FermionLindbladNoiseSystem) (*FermionLindbladOpenSystem, error) {
	return core.GroupOpenSystem(system, noise)
}
