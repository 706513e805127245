// SPDX-License-Identifier: MIT

// Package fermions provides fermionic ladder products and the containers
// keyed by them.
//
// A FermionProduct is c†_{i1}…c†_{ik} c_{j1}…c_{jl} with both sides strictly
// increasing; its text is "c<i>…a<j>…", "I" for the identity:
//
//	p, _ := fermions.ParseFermionProduct("c0c2a1")
//	p.Creators()                      // [0 2]
//	p.String()                        // "c0c2a1"
//
// Fermionic operators anticommute, so reordering indices changes the sign
// of the coefficient. CreateValidPair sorts arbitrary index lists and
// returns the signed value; a repeated index on one side is the zero
// operator and fails with core.ErrIndicesContainDoubles.
//
// A HermitianFermionProduct stands for p + p† and is stored in the
// canonical orientation where creators start at or below annihilators
// (compared pairwise from the lowest index). Keys of FermionHamiltonian are
// HermitianFermionProducts; every other container uses FermionProduct.
//
// Containers:
//
//	FermionOperator                core.Operator[FermionProduct]
//	FermionHamiltonian             core.Operator[HermitianFermionProduct] (Hermitian policy)
//	FermionLindbladNoiseOperator   core.Operator[core.Pair[FermionProduct]]
//	FermionSystem, FermionHamiltonianSystem, FermionLindbladNoiseSystem
//	FermionLindbladOpenSystem
//
// Products of Hamiltonians are general FermionOperators.
package fermions
