// SPDX-License-Identifier: MIT
//
// File: serialize.go
// Role: Type names and payload wrappers of the mixed containers.
// Layout:
//   - payloads carry "subsystems": [spins, bosons, fermions];
//   - payloads without it take the layout of their first key, or the empty
//     layout when they have no items.

package mixed

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/core"
)

// Serialized type names.
const (
	TypeMixedProduct               = "MixedProduct"
	TypeHermitianMixedProduct      = "HermitianMixedProduct"
	TypeMixedDecoherenceProduct    = "MixedDecoherenceProduct"
	TypeMixedPlusMinusProduct      = "MixedPlusMinusProduct"
	TypeMixedOperator              = "MixedOperator"
	TypeMixedHamiltonian           = "MixedHamiltonian"
	TypeMixedPlusMinusOperator     = "MixedPlusMinusOperator"
	TypeMixedLindbladNoiseOperator = "MixedLindbladNoiseOperator"
	TypeMixedLindbladOpenSystem    = "MixedLindbladOpenSystem"
)

// Key codecs.
var (
	ProductCodec     = core.SingleKey(ParseMixedProduct)
	HermitianCodec   = core.SingleKey(ParseHermitianMixedProduct)
	PlusMinusCodec   = core.SingleKey(ParseMixedPlusMinusProduct)
	DecoherencePairs = core.PairKey(ParseMixedDecoherenceProduct)
)

// payloadLayout resolves the layout of p; of reads it from a parsed key.
func payloadLayout[K any](p core.Payload, kc core.KeyCodec[K], of func(K) Layout) (Layout, error) {
	switch {
	case len(p.Subsystems) == 3:
		return layoutFrom(p.Subsystems), nil
	case len(p.Subsystems) != 0:
		return Layout{}, fmt.Errorf("subsystems %v: %w", p.Subsystems, core.ErrMismatchedNumberSubsystems)
	case len(p.Items) == 0:
		return Layout{}, nil
	case len(p.Items[0].Keys) != kc.Arity:
		return Layout{}, fmt.Errorf("item 0: %d keys, want %d: %w", len(p.Items[0].Keys), kc.Arity, core.ErrFromStringFailed)
	}
	k, err := kc.Parse(p.Items[0].Keys)
	if err != nil {
		return Layout{}, fmt.Errorf("item 0: %w", err)
	}
	return of(k), nil
}

func keyLayout[K layoutKey[K]](k K) Layout { return k.Layout() }

func pairLayout(p core.Pair[MixedDecoherenceProduct]) Layout { return p.Left.Layout() }

func EncodeMixedOperator(o *MixedOperator) core.Payload {
	return core.EncodeOperator(o, TypeMixedOperator, ProductCodec)
}

// DecodeMixedOperator reads a MixedOperator payload. Keys of another layout
// than the payload's fail with ErrMismatchedNumberSubsystems.
func DecodeMixedOperator(p core.Payload, opts ...core.Option) (*MixedOperator, error) {
	l, err := payloadLayout(p, ProductCodec, keyLayout[MixedProduct])
	if err != nil {
		return nil, err
	}
	return core.DecodeOperator(p, TypeMixedOperator, ProductCodec, NewMixedOperator(l, opts...))
}

func EncodeMixedHamiltonian(h *MixedHamiltonian) core.Payload {
	return core.EncodeOperator(h, TypeMixedHamiltonian, HermitianCodec)
}

func DecodeMixedHamiltonian(p core.Payload, opts ...core.Option) (*MixedHamiltonian, error) {
	l, err := payloadLayout(p, HermitianCodec, keyLayout[HermitianMixedProduct])
	if err != nil {
		return nil, err
	}
	return core.DecodeOperator(p, TypeMixedHamiltonian, HermitianCodec, NewMixedHamiltonian(l, opts...))
}

func EncodeMixedPlusMinusOperator(o *MixedPlusMinusOperator) core.Payload {
	return core.EncodeOperator(o, TypeMixedPlusMinusOperator, PlusMinusCodec)
}

func DecodeMixedPlusMinusOperator(p core.Payload, opts ...core.Option) (*MixedPlusMinusOperator, error) {
	l, err := payloadLayout(p, PlusMinusCodec, keyLayout[MixedPlusMinusProduct])
	if err != nil {
		return nil, err
	}
	return core.DecodeOperator(p, TypeMixedPlusMinusOperator, PlusMinusCodec, NewMixedPlusMinusOperator(l, opts...))
}

func EncodeMixedLindbladNoiseOperator(o *MixedLindbladNoiseOperator) core.Payload {
	return core.EncodeOperator(o, TypeMixedLindbladNoiseOperator, DecoherencePairs)
}

func DecodeMixedLindbladNoiseOperator(p core.Payload, opts ...core.Option) (*MixedLindbladNoiseOperator, error) {
	l, err := payloadLayout(p, DecoherencePairs, pairLayout)
	if err != nil {
		return nil, err
	}
	return core.DecodeOperator(p, TypeMixedLindbladNoiseOperator, DecoherencePairs, NewMixedLindbladNoiseOperator(l, opts...))
}

// EncodeMixedSystem writes a bounded general operator; bounds are flat in
// slot order.
func EncodeMixedSystem(s *MixedSystem) core.SystemPayload {
	return core.EncodeSystem(s, TypeMixedOperator, ProductCodec)
}

func DecodeMixedSystem(p core.SystemPayload, opts ...core.Option) (*MixedSystem, error) {
	l, err := payloadLayout(p.Operator, ProductCodec, keyLayout[MixedProduct])
	if err != nil {
		return nil, err
	}
	proto := core.MustNewSystem(NewMixedOperator(l, opts...), Shape[MixedProduct](l), Unbounded(l).limits()...)
	return core.DecodeSystem(p, TypeMixedOperator, ProductCodec, proto)
}

func EncodeMixedHamiltonianSystem(s *MixedHamiltonianSystem) core.SystemPayload {
	return core.EncodeSystem(s, TypeMixedHamiltonian, HermitianCodec)
}

func DecodeMixedHamiltonianSystem(p core.SystemPayload, opts ...core.Option) (*MixedHamiltonianSystem, error) {
	l, err := payloadLayout(p.Operator, HermitianCodec, keyLayout[HermitianMixedProduct])
	if err != nil {
		return nil, err
	}
	proto := core.MustNewSystem(NewMixedHamiltonian(l, opts...), Shape[HermitianMixedProduct](l), Unbounded(l).limits()...)
	return core.DecodeSystem(p, TypeMixedHamiltonian, HermitianCodec, proto)
}

// EncodeMixedLindbladOpenSystem writes o with nested MixedHamiltonian and
// MixedLindbladNoiseOperator parts.
func EncodeMixedLindbladOpenSystem(o *MixedLindbladOpenSystem) core.OpenSystemPayload {
	return core.EncodeOpenSystem(o, TypeMixedLindbladOpenSystem, TypeMixedHamiltonian, TypeMixedLindbladNoiseOperator,
		HermitianCodec, DecoherencePairs)
}

// DecodeMixedLindbladOpenSystem takes the layout from the system part, or
// from the noise part when the system part has none.
func DecodeMixedLindbladOpenSystem(p core.OpenSystemPayload, opts ...core.Option) (*MixedLindbladOpenSystem, error) {
	l, err := payloadLayout(p.System.Operator, HermitianCodec, keyLayout[HermitianMixedProduct])
	if err != nil {
		return nil, err
	}
	if l == (Layout{}) {
		if l, err = payloadLayout(p.Noise.Operator, DecoherencePairs, pairLayout); err != nil {
			return nil, err
		}
	}
	return core.DecodeOpenSystem(p, TypeMixedLindbladOpenSystem, TypeMixedHamiltonian, TypeMixedLindbladNoiseOperator,
		HermitianCodec, DecoherencePairs, NewMixedLindbladOpenSystem(Unbounded(l), opts...))
}
