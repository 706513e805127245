// SPDX-License-Identifier: MIT
//
// File: serialize.go
// Role: Type names and payload wrappers of the bosonic containers.

package bosons

import (
	"github.com/katalvlaran/qalgebra/core"
)

// Serialized type names.
const (
	TypeBosonProduct               = "BosonProduct"
	TypeHermitianBosonProduct      = "HermitianBosonProduct"
	TypeBosonOperator              = "BosonOperator"
	TypeBosonHamiltonian           = "BosonHamiltonian"
	TypeBosonLindbladNoiseOperator = "BosonLindbladNoiseOperator"
	TypeBosonLindbladOpenSystem    = "BosonLindbladOpenSystem"
)

// Key codecs.
var (
	ProductCodec   = core.SingleKey(ParseBosonProduct)
	HermitianCodec = core.SingleKey(ParseHermitianBosonProduct)
	ProductPairs   = core.PairKey(ParseBosonProduct)
)

func EncodeBosonOperator(o *BosonOperator) core.Payload {
	return core.EncodeOperator(o, TypeBosonOperator, ProductCodec)
}

func DecodeBosonOperator(p core.Payload, opts ...core.Option) (*BosonOperator, error) {
	return core.DecodeOperator(p, TypeBosonOperator, ProductCodec, NewBosonOperator(opts...))
}

func EncodeBosonHamiltonian(h *BosonHamiltonian) core.Payload {
	return core.EncodeOperator(h, TypeBosonHamiltonian, HermitianCodec)
}

// DecodeBosonHamiltonian reads a Hamiltonian payload. Keys in conjugate
// orientation fail with ErrCreatorsAnnihilatorsMinimumIndex, complex
// values on natural keys with ErrNonHermitianOperator.
func DecodeBosonHamiltonian(p core.Payload, opts ...core.Option) (*BosonHamiltonian, error) {
	return core.DecodeOperator(p, TypeBosonHamiltonian, HermitianCodec, NewBosonHamiltonian(opts...))
}

func EncodeBosonLindbladNoiseOperator(o *BosonLindbladNoiseOperator) core.Payload {
	return core.EncodeOperator(o, TypeBosonLindbladNoiseOperator, ProductPairs)
}

func DecodeBosonLindbladNoiseOperator(p core.Payload, opts ...core.Option) (*BosonLindbladNoiseOperator, error) {
	return core.DecodeOperator(p, TypeBosonLindbladNoiseOperator, ProductPairs, NewBosonLindbladNoiseOperator(opts...))
}

// EncodeBosonSystem writes a bounded general operator.
func EncodeBosonSystem(s *BosonSystem) core.SystemPayload {
	return core.EncodeSystem(s, TypeBosonOperator, ProductCodec)
}

func DecodeBosonSystem(p core.SystemPayload, opts ...core.Option) (*BosonSystem, error) {
	proto := core.MustNewSystem(NewBosonOperator(opts...), Shape[BosonProduct](), core.Unbounded)
	return core.DecodeSystem(p, TypeBosonOperator, ProductCodec, proto)
}

// EncodeBosonHamiltonianSystem writes a bounded Hamiltonian.
func EncodeBosonHamiltonianSystem(s *BosonHamiltonianSystem) core.SystemPayload {
	return core.EncodeSystem(s, TypeBosonHamiltonian, HermitianCodec)
}

func DecodeBosonHamiltonianSystem(p core.SystemPayload, opts ...core.Option) (*BosonHamiltonianSystem, error) {
	proto := core.MustNewSystem(NewBosonHamiltonian(opts...), Shape[HermitianBosonProduct](), core.Unbounded)
	return core.DecodeSystem(p, TypeBosonHamiltonian, HermitianCodec, proto)
}

// EncodeBosonLindbladOpenSystem writes o with nested BosonHamiltonian
// and BosonLindbladNoiseOperator parts.
func EncodeBosonLindbladOpenSystem(o *BosonLindbladOpenSystem) core.OpenSystemPayload {
	return core.EncodeOpenSystem(o, TypeBosonLindbladOpenSystem, TypeBosonHamiltonian, TypeBosonLindbladNoiseOperator,
		HermitianCodec, ProductPairs)
}

func DecodeBosonLindbladOpenSystem(p core.OpenSystemPayload, opts ...core.Option) (*BosonLindbladOpenSystem, error) {
	return core.DecodeOpenSystem(p, TypeBosonLindbladOpenSystem, TypeBosonHamiltonian, TypeBosonLindbladNoiseOperator,
		HermitianCodec, ProductPairs, NewBosonLindbladOpenSystem(core.Unbounded, opts...))
}
