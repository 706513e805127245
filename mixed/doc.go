// SPDX-License-Identifier: MIT

// Package mixed provides products over several spin, boson and fermion
// subsystems at once, and the containers keyed by them.
//
// A MixedProduct is a tuple: one Pauli product per spin subsystem, one
// BosonProduct per boson subsystem and one FermionProduct per fermion
// subsystem. Its Layout is the number of subsystems of each kind:
//
//	p, _ := mixed.ParseMixedProduct("S0X1Y:Bc0a1:Fc0a0:")
//	p.Layout() // (1 spins, 1 bosons, 1 fermions)
//
// Products of two tuples multiply subsystem by subsystem; the boson and
// fermion expansions are combined by cartesian product. Subsystems of
// different kinds commute, and so do fermions of different subsystems.
//
// Every container is created for one Layout and rejects keys of any other
// with core.ErrMismatchedNumberSubsystems. The layout is kept by clones and
// written into payloads.
//
// Containers:
//
//	MixedOperator                  core.Operator[MixedProduct]
//	MixedHamiltonian               core.Operator[HermitianMixedProduct] (Hermitian policy)
//	MixedPlusMinusOperator         core.Operator[MixedPlusMinusProduct]
//	MixedLindbladNoiseOperator     core.Operator[core.Pair[MixedDecoherenceProduct]]
//	MixedSystem, MixedHamiltonianSystem, MixedLindbladNoiseSystem
//	MixedLindbladOpenSystem
//
// System bounds are given per subsystem (Bounds) and stored flat in slot
// order: spins, then bosons, then fermions.
package mixed
