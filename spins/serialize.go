// SPDX-License-Identifier: MIT
//
// File: serialize.go
// Role: Type names and payload wrappers of the spin containers.

package spins

import (
	"github.com/katalvlaran/qalgebra/core"
)

// Serialized type names.
const (
	TypePauliProduct                   = "PauliProduct"
	TypeDecoherenceProduct             = "DecoherenceProduct"
	TypePlusMinusProduct               = "PlusMinusProduct"
	TypeQubitOperator                  = "QubitOperator"
	TypeQubitHamiltonian               = "QubitHamiltonian"
	TypeDecoherenceOperator            = "DecoherenceOperator"
	TypePlusMinusOperator              = "PlusMinusOperator"
	TypeQubitLindbladNoiseOperator     = "QubitLindbladNoiseOperator"
	TypePlusMinusLindbladNoiseOperator = "PlusMinusLindbladNoiseOperator"
	TypeQubitLindbladOpenSystem        = "QubitLindbladOpenSystem"
)

// Key codecs.
var (
	PauliCodec       = core.SingleKey(ParsePauliProduct)
	DecoherenceCodec = core.SingleKey(ParseDecoherenceProduct)
	PlusMinusCodec   = core.SingleKey(ParsePlusMinusProduct)
	DecoherencePairs = core.PairKey(ParseDecoherenceProduct)
	PlusMinusPairs   = core.PairKey(ParsePlusMinusProduct)
)

// qubitTypeName picks the name by the Hermitian policy of o.
func qubitTypeName(o *QubitOperator) string {
	if o.IsHermitian() {
		return TypeQubitHamiltonian
	}
	return TypeQubitOperator
}

// EncodeQubitOperator writes o as QubitOperator or QubitHamiltonian.
func EncodeQubitOperator(o *QubitOperator) core.Payload {
	return core.EncodeOperator(o, qubitTypeName(o), PauliCodec)
}

// DecodeQubitOperator reads a QubitOperator payload.
func DecodeQubitOperator(p core.Payload, opts ...core.Option) (*QubitOperator, error) {
	return core.DecodeOperator(p, TypeQubitOperator, PauliCodec, NewQubitOperator(opts...))
}

// DecodeQubitHamiltonian reads a QubitHamiltonian payload; complex values
// fail with ErrNonHermitianOperator.
func DecodeQubitHamiltonian(p core.Payload, opts ...core.Option) (*QubitHamiltonian, error) {
	return core.DecodeOperator(p, TypeQubitHamiltonian, PauliCodec, NewQubitHamiltonian(opts...))
}

func EncodeDecoherenceOperator(o *DecoherenceOperator) core.Payload {
	return core.EncodeOperator(o, TypeDecoherenceOperator, DecoherenceCodec)
}

func DecodeDecoherenceOperator(p core.Payload, opts ...core.Option) (*DecoherenceOperator, error) {
	return core.DecodeOperator(p, TypeDecoherenceOperator, DecoherenceCodec, NewDecoherenceOperator(opts...))
}

func EncodePlusMinusOperator(o *PlusMinusOperator) core.Payload {
	return core.EncodeOperator(o, TypePlusMinusOperator, PlusMinusCodec)
}

func DecodePlusMinusOperator(p core.Payload, opts ...core.Option) (*PlusMinusOperator, error) {
	return core.DecodeOperator(p, TypePlusMinusOperator, PlusMinusCodec, NewPlusMinusOperator(opts...))
}

func EncodeQubitLindbladNoiseOperator(o *QubitLindbladNoiseOperator) core.Payload {
	return core.EncodeOperator(o, TypeQubitLindbladNoiseOperator, DecoherencePairs)
}

// DecodeQubitLindbladNoiseOperator reads a noise payload; identity halves
// fail with ErrInvalidLindbladTerms.
func DecodeQubitLindbladNoiseOperator(p core.Payload, opts ...core.Option) (*QubitLindbladNoiseOperator, error) {
	return core.DecodeOperator(p, TypeQubitLindbladNoiseOperator, DecoherencePairs, NewQubitLindbladNoiseOperator(opts...))
}

func EncodePlusMinusLindbladNoiseOperator(o *PlusMinusLindbladNoiseOperator) core.Payload {
	return core.EncodeOperator(o, TypePlusMinusLindbladNoiseOperator, PlusMinusPairs)
}

func DecodePlusMinusLindbladNoiseOperator(p core.Payload, opts ...core.Option) (*PlusMinusLindbladNoiseOperator, error) {
	return core.DecodeOperator(p, TypePlusMinusLindbladNoiseOperator, PlusMinusPairs, NewPlusMinusLindbladNoiseOperator(opts...))
}

// EncodeQubitSystem writes a bounded qubit operator or Hamiltonian.
func EncodeQubitSystem(s *QubitSystem) core.SystemPayload {
	return core.EncodeSystem(s, qubitTypeName(s.View()), PauliCodec)
}

// DecodeQubitSystem reads a bounded system; hermitian selects the
// QubitHamiltonian type name and policy.
func DecodeQubitSystem(p core.SystemPayload, hermitian bool) (*QubitSystem, error) {
	proto := core.MustNewSystem(NewQubitOperator(), Shape[PauliProduct](), core.Unbounded)
	name := TypeQubitOperator
	if hermitian {
		proto = core.MustNewSystem(NewQubitHamiltonian(), Shape[PauliProduct](), core.Unbounded)
		name = TypeQubitHamiltonian
	}
	return core.DecodeSystem(p, name, PauliCodec, proto)
}

// EncodeQubitLindbladOpenSystem writes o with nested QubitHamiltonian and
// QubitLindbladNoiseOperator parts.
func EncodeQubitLindbladOpenSystem(o *QubitLindbladOpenSystem) core.OpenSystemPayload {
	return core.EncodeOpenSystem(o, TypeQubitLindbladOpenSystem, TypeQubitHamiltonian, TypeQubitLindbladNoiseOperator, PauliCodec, DecoherencePairs)
}

// DecodeQubitLindbladOpenSystem reads an open system payload. All three
// metadata blocks are checked before any entry is built.
func DecodeQubitLindbladOpenSystem(p core.OpenSystemPayload, opts ...core.Option) (*QubitLindbladOpenSystem, error) {
	return core.DecodeOpenSystem(p, TypeQubitLindbladOpenSystem, TypeQubitHamiltonian, TypeQubitLindbladNoiseOperator,
		PauliCodec, DecoherencePairs, NewQubitLindbladOpenSystem(core.Unbounded, opts...))
}
