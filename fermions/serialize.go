// SPDX-License-Identifier: MIT
//
// File: serialize.go
// Role: Type names and payload wrappers of the fermionic containers.

package fermions

import (
	"github.com/katalvlaran/qalgebra/core"
)

// Serialized type names.
const (
	TypeFermionProduct               = "FermionProduct"
	TypeHermitianFermionProduct      = "HermitianFermionProduct"
	TypeFermionOperator              = "FermionOperator"
	TypeFermionHamiltonian           = "FermionHamiltonian"
	TypeFermionLindbladNoiseOperator = "FermionLindbladNoiseOperator"
	TypeFermionLindbladOpenSystem    = "FermionLindbladOpenSystem"
)

// Key codecs.
var (
	ProductCodec   = core.SingleKey(ParseFermionProduct)
	HermitianCodec = core.SingleKey(ParseHermitianFermionProduct)
	ProductPairs   = core.PairKey(ParseFermionProduct)
)

func EncodeFermionOperator(o *FermionOperator) core.Payload {
	return core.EncodeOperator(o, TypeFermionOperator, ProductCodec)
}

func DecodeFermionOperator(p core.Payload, opts ...core.Option) (*FermionOperator, error) {
	return core.DecodeOperator(p, TypeFermionOperator, ProductCodec, NewFermionOperator(opts...))
}

func EncodeFermionHamiltonian(h *FermionHamiltonian) core.Payload {
	return core.EncodeOperator(h, TypeFermionHamiltonian, HermitianCodec)
}

// DecodeFermionHamiltonian reads a Hamiltonian payload. Keys in conjugate
// orientation fail with ErrCreatorsAnnihilatorsMinimumIndex, complex
// values on natural keys with ErrNonHermitianOperator.
func DecodeFermionHamiltonian(p core.Payload, opts ...core.Option) (*FermionHamiltonian, error) {
	return core.DecodeOperator(p, TypeFermionHamiltonian, HermitianCodec, NewFermionHamiltonian(opts...))
}

func EncodeFermionLindbladNoiseOperator(o *FermionLindbladNoiseOperator) core.Payload {
	return core.EncodeOperator(o, TypeFermionLindbladNoiseOperator, ProductPairs)
}

func DecodeFermionLindbladNoiseOperator(p core.Payload, opts ...core.Option) (*FermionLindbladNoiseOperator, error) {
	return core.DecodeOperator(p, TypeFermionLindbladNoiseOperator, ProductPairs, NewFermionLindbladNoiseOperator(opts...))
}

// EncodeFermionSystem writes a bounded general operator.
func EncodeFermionSystem(s *FermionSystem) core.SystemPayload {
	return core.EncodeSystem(s, TypeFermionOperator, ProductCodec)
}

func DecodeFermionSystem(p core.SystemPayload, opts ...core.Option) (*FermionSystem, error) {
	proto := core.MustNewSystem(NewFermionOperator(opts...), Shape[FermionProduct](), core.Unbounded)
	return core.DecodeSystem(p, TypeFermionOperator, ProductCodec, proto)
}

// EncodeFermionHamiltonianSystem writes a bounded Hamiltonian.
func EncodeFermionHamiltonianSystem(s *FermionHamiltonianSystem) core.SystemPayload {
	return core.EncodeSystem(s, TypeFermionHamiltonian, HermitianCodec)
}

func DecodeFermionHamiltonianSystem(p core.SystemPayload, opts ...core.Option) (*FermionHamiltonianSystem, error) {
	proto := core.MustNewSystem(NewFermionHamiltonian(opts...), Shape[HermitianFermionProduct](), core.Unbounded)
	return core.DecodeSystem(p, TypeFermionHamiltonian, HermitianCodec, proto)
}

// EncodeFermionLindbladOpenSystem writes o with nested FermionHamiltonian
// and FermionLindbladNoiseOperator parts.
func EncodeFermionLindbladOpenSystem(o *FermionLindbladOpenSystem) core.OpenSystemPayload {
	return core.EncodeOpenSystem(o, TypeFermionLindbladOpenSystem, TypeFermionHamiltonian, TypeFermionLindbladNoiseOperator,
		HermitianCodec, ProductPairs)
}

func DecodeFermionLindbladOpenSystem(p core.OpenSystemPayload, opts ...core.Option) (*FermionLindbladOpenSystem, error) {
	return core.DecodeOpenSystem(p, TypeFermionLindbladOpenSystem, TypeFermionHamiltonian, TypeFermionLindbladNoiseOperator,
		HermitianCodec, ProductPairs, NewFermionLindbladOpenSystem(core.Unbounded, opts...))
}
