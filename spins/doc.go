// SPDX-License-Identifier: MIT

// Package spins provides the spin-like index products of qalgebra and the
// containers keyed by them.
//
// Alphabets (single-site operators):
//
//	SinglePauli        I, X, Y, Z       complex phases, self-adjoint
//	SingleDecoherence  I, X, iY, Z      real phases; iY is anti-Hermitian
//	SinglePlusMinus    I, +, -, Z       products return term lists
//
// Products are sparse, sorted (index, op) lists without identity sites:
//
//	p, _ := spins.ParsePauliProduct("0X1Y")   // X_0 Y_1
//	p.String()                                // "0X1Y"
//	spins.NewPauliProduct().X(0).Z(3)         // "0X3Z"
//
// The empty product is the identity; its text is "I". Products order by
// length first, then lexicographically on (index, op).
//
// Containers:
//
//	QubitOperator / QubitHamiltonian          core.Operator[PauliProduct]
//	DecoherenceOperator                       core.Operator[DecoherenceProduct]
//	PlusMinusOperator                         core.Operator[PlusMinusProduct]
//	QubitLindbladNoiseOperator                core.Operator[core.Pair[DecoherenceProduct]]
//	PlusMinusLindbladNoiseOperator            core.Operator[core.Pair[PlusMinusProduct]]
//	QubitSystem, QubitLindbladNoiseSystem     bounded wrappers (one spin slot)
//	QubitLindbladOpenSystem                   Hamiltonian system + noise system
//
// QubitHamiltonian is the same Go type as QubitOperator; the Hermitian
// policy is a property of the value (NewQubitHamiltonian, IsHermitian).
//
// Conversions between the three alphabets exist at site, product and
// container level; they are exact linear rewrites:
//
//	X = + + -      Y = -i(+) + i(-)      iY = + - -
//	+ = (X + iY)/2      - = (X - iY)/2
package spins
