// SPDX-License-Identifier: MIT
//
// File: systems.go
// Role: Bounded systems and Lindblad open systems across the transform.
// AI-HINT (file):
//   - Mode j maps to spin j, so a declared bound (or core.Unbounded) is
//     carried over unchanged.

package jordanwigner

import (
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
	"github.com/katalvlaran/qalgebra/spins"
)

// carried wraps a transformed operator with the limits of its source; the
// bound always fits, so a failure is an internal defect.
func carried[K core.Key[K]](op string, s *core.System[K], err error) *core.System[K] {
	if err != nil {
		core.Internalf("%s: %v", op, err)
	}
	return s
}

// FromFermionSystem returns the qubit system of s with the same bound.
func FromFermionSystem(s *fermions.FermionSystem) *spins.QubitSystem {
	out, err := spins.NewQubitSystem(FromFermionOperator(s.View()), s.Limits()[0])
	return carried("FromFermionSystem", out, err)
}

// FromFermionHamiltonianSystem returns a Hermitian qubit system.
func FromFermionHamiltonianSystem(s *fermions.FermionHamiltonianSystem) *spins.QubitSystem {
	out, err := spins.NewQubitSystem(FromFermionHamiltonian(s.View()), s.Limits()[0])
	return carried("FromFermionHamiltonianSystem", out, err)
}

func FromFermionNoiseSystem(s *fermions.FermionLindbladNoiseSystem) *spins.QubitLindbladNoiseSystem {
	out, err := spins.NewQubitLindbladNoiseSystem(FromFermionNoise(s.View()), s.Limits()[0])
	return carried("FromFermionNoiseSystem", out, err)
}

// FromFermionOpenSystem transforms both parts of o and groups them again.
func FromFermionOpenSystem(o *fermions.FermionLindbladOpenSystem) *spins.QubitLindbladOpenSystem {
	system, noise := o.Ungroup()
	out, err := spins.GroupQubitLindbladOpenSystem(FromFermionHamiltonianSystem(system), FromFermionNoiseSystem(noise))
	if err != nil {
		core.Internalf("FromFermionOpenSystem: %v", err)
	}
	return out
}

// FromQubitSystem returns the fermion system of s with the same bound.
func FromQubitSystem(s *spins.QubitSystem) *fermions.FermionSystem {
	out, err := fermions.NewFermionSystem(FromQubitOperator(s.View()), s.Limits()[0])
	return carried("FromQubitSystem", out, err)
}

// FromQubitHamiltonianSystem returns the fermionic Hamiltonian system of s.
// A general system is cast to the Hermitian kind first.
//
// Errors:
//   - ErrNonHermitianOperator: s holds a complex value.
func FromQubitHamiltonianSystem(s *spins.QubitSystem) (*fermions.FermionHamiltonianSystem, error) {
	h := s.View()
	if !h.IsHermitian() {
		var err error
		if h, err = spins.QubitHamiltonianFromOperator(h); err != nil {
			return nil, err
		}
	}
	out, err := fermions.NewFermionHamiltonianSystem(FromQubitHamiltonian(h), s.Limits()[0])
	return carried("FromQubitHamiltonianSystem", out, err), nil
}

func FromQubitNoiseSystem(s *spins.QubitLindbladNoiseSystem) *fermions.FermionLindbladNoiseSystem {
	out, err := fermions.NewFermionLindbladNoiseSystem(FromQubitNoise(s.View()), s.Limits()[0])
	return carried("FromQubitNoiseSystem", out, err)
}

// FromQubitOpenSystem transforms both parts of o and groups them again.
func FromQubitOpenSystem(o *spins.QubitLindbladOpenSystem) *fermions.FermionLindbladOpenSystem {
	system, noise := o.Ungroup()
	h, err := FromQubitHamiltonianSystem(system)
	if err != nil {
		core.Internalf("FromQubitOpenSystem: %v", err)
	}
	out, err := fermions.GroupFermionLindbladOpenSystem(h, FromQubitNoiseSystem(noise))
	if err != nil {
		core.Internalf("FromQubitOpenSystem: %v", err)
	}
	return out
}
