// SPDX-License-Identifier: MIT
//
// File: systems.go
// Role: Bounded mixed systems and the mixed Lindblad open system.
// Slots:
//   - one slot per subsystem: spins first, then bosons, then fermions;
//   - the layout of the wrapped operator must equal the layout of the bounds.

package mixed

import (
	"github.com/katalvlaran/qalgebra/core"
)

// System aliases.
type (
	MixedSystem              = core.System[MixedProduct]
	MixedHamiltonianSystem   = core.System[HermitianMixedProduct]
	MixedLindbladNoiseSystem = core.System[core.Pair[MixedDecoherenceProduct]]
	MixedLindbladOpenSystem  = core.OpenSystem[HermitianMixedProduct, MixedDecoherenceProduct]
)

// NewMixedSystem wraps op with per-subsystem bounds.
//
// Errors:
//   - ErrMismatchedNumberSubsystems: the layout of op differs from bounds.
//   - ErrNumberSpinsExceeded / ErrNumberModesExceeded: op already uses more
//     than a bound allows.
func NewMixedSystem(op *MixedOperator, bounds Bounds) (*MixedSystem, error) {
	l := bounds.layout()
	if err := l.check(LayoutOf(op)); err != nil {
		return nil, err
	}
	return core.NewSystem(op, Shape[MixedProduct](l), bounds.limits()...)
}

// NewMixedHamiltonianSystem wraps a Hamiltonian with per-subsystem bounds.
func NewMixedHamiltonianSystem(h *MixedHamiltonian, bounds Bounds) (*MixedHamiltonianSystem, error) {
	l := bounds.layout()
	if err := l.check(LayoutOf(h)); err != nil {
		return nil, err
	}
	return core.NewSystem(h, Shape[HermitianMixedProduct](l), bounds.limits()...)
}

// NewMixedLindbladNoiseSystem wraps a noise operator with per-subsystem
// bounds.
func NewMixedLindbladNoiseSystem(noise *MixedLindbladNoiseOperator, bounds Bounds) (*MixedLindbladNoiseSystem, error) {
	l := bounds.layout()
	if err := l.check(LayoutOf(noise)); err != nil {
		return nil, err
	}
	return core.NewSystem(noise, NoiseShape(l), bounds.limits()...)
}

// SystemBounds returns the effective bounds of a mixed system split by kind.
func SystemBounds[K core.Key[K]](s *core.System[K]) Bounds {
	return splitBounds(LayoutOf(s.View()), s.Bounds())
}

// NewMixedLindbladOpenSystem returns an empty open system whose parts both
// carry bounds.
func NewMixedLindbladOpenSystem(bounds Bounds, opts ...core.Option) *MixedLindbladOpenSystem {
	l := bounds.layout()
	sys := core.MustNewSystem(NewMixedHamiltonian(l, opts...), Shape[HermitianMixedProduct](l), bounds.limits()...)
	noise := core.MustNewSystem(NewMixedLindbladNoiseOperator(l, opts...), NoiseShape(l), bounds.limits()...)
	open, err := core.GroupOpenSystem(sys, noise)
	if err != nil {
		core.Internalf("NewMixedLindbladOpenSystem: %v", err)
	}
	return open
}

// GroupMixedLindbladOpenSystem couples a Hamiltonian system with a noise
// system of the same layout.
//
// Errors:
//   - ErrMismatchedNumberSubsystems: the layouts differ.
//   - the slot's Mismatched sentinel when two bounds cannot be reconciled.
func GroupMixedLindbladOpenSystem(system *MixedHamiltonianSystem, noise *MixedLindbladNoiseSystem) (*MixedLindbladOpenSystem, error) {
	if err := LayoutOf(system.View()).check(LayoutOf(noise.View())); err != nil {
		return nil, err
	}
	return core.GroupOpenSystem(system, noise)
}
