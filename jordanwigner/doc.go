// SPDX-License-Identifier: MIT

// Package jordanwigner maps fermionic operators onto spin operators and
// back.
//
// Mode j becomes spin j. A creator at j is the lowering operator
// σ⁻_j = 0.5 X_j - 0.5i Y_j preceded by the parity string Z_0…Z_{j-1}; an
// annihilator is σ⁺_j with the same string. Going back, σ⁺_j becomes
// (1 - 2n_0)…(1 - 2n_{j-1}) a_j, σ⁻_j the same string times c_j, and Z_j
// becomes 1 - 2n_j.
//
//	p, _ := fermions.ParseFermionProduct("c0")
//	jordanwigner.FromFermionProduct(p) // {0X: 0.5, 0Y: -0.5i}
//
// Every transform is total: results of valid inputs are always valid, and
// an unrepresentable intermediate is an internal defect (panic). Modes and
// spins touched are the same on both sides, so bounded systems keep their
// bound.
//
// Directions:
//
//	fermions.FermionProduct         -> spins.QubitOperator
//	fermions.HermitianFermionProduct-> spins.QubitHamiltonian
//	fermions.FermionOperator        -> spins.QubitOperator
//	fermions.FermionHamiltonian     -> spins.QubitHamiltonian
//	fermions.FermionLindbladNoise…  -> spins.QubitLindbladNoiseOperator
//	spins.PauliProduct, PlusMinusProduct, DecoherenceProduct -> fermions.FermionOperator
//	spins.QubitOperator, PlusMinusOperator, DecoherenceOperator -> fermions.FermionOperator
//	spins.QubitHamiltonian          -> fermions.FermionHamiltonian
//	spins.QubitLindbladNoise…       -> fermions.FermionLindbladNoiseOperator
//
// plus the bounded systems and the Lindblad open systems of both sides.
package jordanwigner
