// SPDX-License-Identifier: MIT

// Package qalgebra is an in-memory algebra of quantum-mechanical operator
// sums: the Hamiltonians and Lindblad noise operators that simulation
// software consumes.
//
// What is inside?
//
//	calculator/     Float and Complex coefficients, numeric or symbolic
//	core/           the generic sparse Operator[K], Hermitian policy,
//	                bounded System and OpenSystem, payload codecs
//	spins/          Pauli, decoherence and plus-minus products and operators
//	bosons/         bosonic ladder products, normal ordering
//	fermions/       fermionic ladder products with anticommutation signs
//	mixed/          tuples of spin, boson and fermion subsystems
//	jordanwigner/   fermions to qubits and back
//	cli/            the qalgebra command (cmd/qalgebra)
//
// Every product type is a canonical, comparable key with a text form
// ("0X1Z", "c0c2a1", "S0X:Bc1a1:Fc0a0:"). Operators map keys to
// coefficients, keep insertion order and drop entries that reach zero.
// Hamiltonian containers accept only Hermitian keys and reject imaginary
// coefficients on naturally Hermitian ones.
//
// Quick example:
//
//	x, _ := spins.ParsePauliProduct("0X")
//	y, _ := spins.ParsePauliProduct("0Y")
//	p, phase := x.Mul(y) // 0Z, i
//
// Containers serialize to JSON, YAML and MessagePack through core.Payload,
// a versioned wire format shared by every type.
//
//	go install github.com/katalvlaran/qalgebra/cmd/qalgebra@latest
package qalgebra
