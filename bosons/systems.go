// SPDX-License-Identifier: MIT
//
// File: systems.go
// Role: Bounded boson systems and the bosonic Lindblad open system.

package bosons

import (
	"github.com/katalvlaran/qalgebra/core"
)

// System aliases. A boson system has a single slot: the number of modes.
type (
	BosonSystem              = core.System[BosonProduct]
	BosonHamiltonianSystem   = core.System[HermitianBosonProduct]
	BosonLindbladNoiseSystem = core.System[core.Pair[BosonProduct]]
	BosonLindbladOpenSystem  = core.OpenSystem[HermitianBosonProduct, BosonProduct]
)

func modeUsage[K ladderKey[K]](k K) []int { return []int{k.CurrentNumberModes()} }

// Shape returns the one-slot shape of a bosonic key type.
func Shape[K ladderKey[K]]() core.Shape[K] {
	return core.Shape[K]{Usage: modeUsage[K], Slots: []core.Slot{core.ModeSlot}}
}

// NoiseShape returns the one-slot shape of bosonic noise pairs.
func NoiseShape() core.Shape[core.Pair[BosonProduct]] {
	return core.Shape[core.Pair[BosonProduct]]{
		Usage: core.PairShape(modeUsage[BosonProduct]),
		Slots: []core.Slot{core.ModeSlot},
	}
}

// NewBosonSystem wraps op with a mode bound (core.Unbounded for none).
//
// Errors:
//   - ErrNumberModesExceeded: op already uses a mode beyond numberModes.
func NewBosonSystem(op *BosonOperator, numberModes int) (*BosonSystem, error) {
	return core.NewSystem(op, Shape[BosonProduct](), numberModes)
}

// NewBosonHamiltonianSystem wraps a Hamiltonian with a mode bound.
func NewBosonHamiltonianSystem(h *BosonHamiltonian, numberModes int) (*BosonHamiltonianSystem, error) {
	return core.NewSystem(h, Shape[HermitianBosonProduct](), numberModes)
}

// NewBosonLindbladNoiseSystem wraps a noise operator with a mode bound.
func NewBosonLindbladNoiseSystem(noise *BosonLindbladNoiseOperator, numberModes int) (*BosonLindbladNoiseSystem, error) {
	return core.NewSystem(noise, NoiseShape(), numberModes)
}

// NewBosonLindbladOpenSystem returns an empty open system with the given
// mode bound on both parts.
func NewBosonLindbladOpenSystem(numberModes int, opts ...core.Option) *BosonLindbladOpenSystem {
	sys := core.MustNewSystem(NewBosonHamiltonian(opts...), Shape[HermitianBosonProduct](), numberModes)
	noise := core.MustNewSystem(NewBosonLindbladNoiseOperator(opts...), NoiseShape(), numberModes)
	open, err := core.GroupOpenSystem(sys, noise)
	if err != nil {
		core.Internalf("NewBosonLindbladOpenSystem: %v", err)
	}
	return open
}

// GroupBosonLindbladOpenSystem couples a Hamiltonian system with a noise
// system.
//
// Errors:
//   - ErrMismatchedNumberModes: the bounds cannot be reconciled.
func GroupBosonLindbladOpenSystem(system *BosonHamiltonianSystem, noise *BosonLindbladNoiseSystem) (*BosonLindbladOpenSystem, error) {
	return core.GroupOpenSystem(system, noise)
}
