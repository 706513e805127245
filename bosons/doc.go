// SPDX-License-Identifier: MIT

// Package bosons provides bosonic ladder products and the containers keyed
// by them.
//
// A BosonProduct is b†_{i1}…b†_{ik} b_{j1}…b_{jl} with both sides sorted;
// indices may repeat. Text form: "c<i>…a<j>…", "I" for the identity:
//
//	p := bosons.NewBosonProduct([]int{2, 0, 0}, []int{1})
//	p.String() // "c0c0c2a1"
//
// Bosonic operators commute across modes, so products only pick up
// contractions: b_i b†_i = b†_i b_i + 1. BosonProduct.Mul returns the
// normal-ordered expansion with integer weights.
//
// A HermitianBosonProduct stands for p + p† and is stored in the canonical
// orientation (creators start at or below annihilators, compared pairwise
// from the lowest index). It keys BosonHamiltonian.
//
// Containers:
//
//	BosonOperator                  core.Operator[BosonProduct]
//	BosonHamiltonian               core.Operator[HermitianBosonProduct] (Hermitian policy)
//	BosonLindbladNoiseOperator     core.Operator[core.Pair[BosonProduct]]
//	BosonSystem, BosonHamiltonianSystem, BosonLindbladNoiseSystem
//	BosonLindbladOpenSystem
package bosons
