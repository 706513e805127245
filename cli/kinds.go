// SPDX-License-Identifier: MIT
//
// File: kinds.go
// Role: Per-type operations on operator payloads, keyed by type_name.
// AI-HINT (file):
//   - Every entry decodes with the run logger, so rejected items and
//     multiplication traces reach stderr under --verbose.
//   - A nil operation means the type does not support it.

package cli

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/qalgebra/bosons"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
	"github.com/katalvlaran/qalgebra/jordanwigner"
	"github.com/katalvlaran/qalgebra/mixed"
	"github.com/katalvlaran/qalgebra/spins"
)

// operatorKind lists what the CLI can do with one payload type.
type operatorKind struct {
	truncate     func(p core.Payload, threshold float64) (core.Payload, error)
	stats        func(p core.Payload) (core.Stats, error)
	multiply     func(a, b core.Payload) (core.Payload, error)
	jordanWigner func(p core.Payload) (core.Payload, error)
}

type decoder[K core.Key[K]] func(core.Payload) (*core.Operator[K], error)

type encoder[K core.Key[K]] func(*core.Operator[K]) core.Payload

// bind fixes the logger of a package decoder.
func bind[K core.Key[K]](decode func(core.Payload, ...core.Option) (*core.Operator[K], error), log zerolog.Logger) decoder[K] {
	return func(p core.Payload) (*core.Operator[K], error) { return decode(p, core.WithLogger(log)) }
}

// total lifts a product that cannot fail.
func total[K core.Key[K], R core.Key[R]](mul func(l, r *core.Operator[K]) *core.Operator[R]) func(l, r *core.Operator[K]) (*core.Operator[R], error) {
	return func(l, r *core.Operator[K]) (*core.Operator[R], error) { return mul(l, r), nil }
}

// basic returns the operations every operator type supports.
func basic[K core.Key[K]](dec decoder[K], enc encoder[K]) operatorKind {
	return operatorKind{
		truncate: func(p core.Payload, threshold float64) (core.Payload, error) {
			o, err := dec(p)
			if err != nil {
				return core.Payload{}, err
			}
			return enc(o.Truncate(threshold)), nil
		},
		stats: func(p core.Payload) (core.Stats, error) {
			o, err := dec(p)
			if err != nil {
				return core.Stats{}, err
			}
			return o.Stats(), nil
		},
	}
}

func withMultiply[K core.Key[K], R core.Key[R]](k operatorKind, dec decoder[K], mul func(l, r *core.Operator[K]) (*core.Operator[R], error), enc encoder[R]) operatorKind {
	k.multiply = func(a, b core.Payload) (core.Payload, error) {
		l, err := dec(a)
		if err != nil {
			return core.Payload{}, err
		}
		r, err := dec(b)
		if err != nil {
			return core.Payload{}, err
		}
		out, err := mul(l, r)
		if err != nil {
			return core.Payload{}, err
		}
		return enc(out), nil
	}
	return k
}

func withJordanWigner[K core.Key[K], R core.Key[R]](k operatorKind, dec decoder[K], jw func(*core.Operator[K]) *core.Operator[R], enc encoder[R]) operatorKind {
	k.jordanWigner = func(p core.Payload) (core.Payload, error) {
		o, err := dec(p)
		if err != nil {
			return core.Payload{}, err
		}
		return enc(jw(o)), nil
	}
	return k
}

// operatorKinds builds the registry for one run.
func operatorKinds(log zerolog.Logger) map[string]operatorKind {
	qubit := bind(spins.DecodeQubitOperator, log)
	qubitH := bind(spins.DecodeQubitHamiltonian, log)
	deco := bind(spins.DecodeDecoherenceOperator, log)
	plusMinus := bind(spins.DecodePlusMinusOperator, log)
	qubitNoise := bind(spins.DecodeQubitLindbladNoiseOperator, log)
	plusMinusNoise := bind(spins.DecodePlusMinusLindbladNoiseOperator, log)
	fermion := bind(fermions.DecodeFermionOperator, log)
	fermionH := bind(fermions.DecodeFermionHamiltonian, log)
	fermionNoise := bind(fermions.DecodeFermionLindbladNoiseOperator, log)
	boson := bind(bosons.DecodeBosonOperator, log)
	bosonH := bind(bosons.DecodeBosonHamiltonian, log)
	bosonNoise := bind(bosons.DecodeBosonLindbladNoiseOperator, log)
	mix := bind(mixed.DecodeMixedOperator, log)
	mixH := bind(mixed.DecodeMixedHamiltonian, log)
	mixPlusMinus := bind(mixed.DecodeMixedPlusMinusOperator, log)
	mixNoise := bind(mixed.DecodeMixedLindbladNoiseOperator, log)

	return map[string]operatorKind{
		spins.TypeQubitOperator: withJordanWigner(
			withMultiply(basic(qubit, spins.EncodeQubitOperator), qubit, total(spins.MulQubit), spins.EncodeQubitOperator),
			qubit, jordanwigner.FromQubitOperator, fermions.EncodeFermionOperator),
		spins.TypeQubitHamiltonian: withJordanWigner(
			withMultiply(basic(qubitH, spins.EncodeQubitOperator), qubitH, total(spins.MulQubit), spins.EncodeQubitOperator),
			qubitH, jordanwigner.FromQubitHamiltonian, fermions.EncodeFermionHamiltonian),
		spins.TypeDecoherenceOperator: withJordanWigner(
			withMultiply(basic(deco, spins.EncodeDecoherenceOperator), deco, total(spins.MulDecoherence), spins.EncodeDecoherenceOperator),
			deco, jordanwigner.FromDecoherenceOperator, fermions.EncodeFermionOperator),
		spins.TypePlusMinusOperator: withJordanWigner(
			withMultiply(basic(plusMinus, spins.EncodePlusMinusOperator), plusMinus, total(spins.MulPlusMinus), spins.EncodePlusMinusOperator),
			plusMinus, jordanwigner.FromPlusMinusOperator, fermions.EncodeFermionOperator),
		spins.TypeQubitLindbladNoiseOperator: withJordanWigner(
			basic(qubitNoise, spins.EncodeQubitLindbladNoiseOperator),
			qubitNoise, jordanwigner.FromQubitNoise, fermions.EncodeFermionLindbladNoiseOperator),
		spins.TypePlusMinusLindbladNoiseOperator: basic(plusMinusNoise, spins.EncodePlusMinusLindbladNoiseOperator),

		fermions.TypeFermionOperator: withJordanWigner(
			withMultiply(basic(fermion, fermions.EncodeFermionOperator), fermion, total(fermions.MulFermion), fermions.EncodeFermionOperator),
			fermion, jordanwigner.FromFermionOperator, spins.EncodeQubitOperator),
		fermions.TypeFermionHamiltonian: withJordanWigner(
			withMultiply(basic(fermionH, fermions.EncodeFermionHamiltonian), fermionH, total(fermions.MulFermionHamiltonian), fermions.EncodeFermionOperator),
			fermionH, jordanwigner.FromFermionHamiltonian, spins.EncodeQubitOperator),
		fermions.TypeFermionLindbladNoiseOperator: withJordanWigner(
			basic(fermionNoise, fermions.EncodeFermionLindbladNoiseOperator),
			fermionNoise, jordanwigner.FromFermionNoise, spins.EncodeQubitLindbladNoiseOperator),

		bosons.TypeBosonOperator: withMultiply(basic(boson, bosons.EncodeBosonOperator), boson, total(bosons.MulBoson), bosons.EncodeBosonOperator),
		bosons.TypeBosonHamiltonian: withMultiply(basic(bosonH, bosons.EncodeBosonHamiltonian), bosonH,
			total(bosons.MulBosonHamiltonian), bosons.EncodeBosonOperator),
		bosons.TypeBosonLindbladNoiseOperator: basic(bosonNoise, bosons.EncodeBosonLindbladNoiseOperator),

		mixed.TypeMixedOperator:              withMultiply(basic(mix, mixed.EncodeMixedOperator), mix, mixed.MulMixed, mixed.EncodeMixedOperator),
		mixed.TypeMixedHamiltonian:           withMultiply(basic(mixH, mixed.EncodeMixedHamiltonian), mixH, mixed.MulMixedHamiltonian, mixed.EncodeMixedOperator),
		mixed.TypeMixedPlusMinusOperator:     basic(mixPlusMinus, mixed.EncodeMixedPlusMinusOperator),
		mixed.TypeMixedLindbladNoiseOperator: basic(mixNoise, mixed.EncodeMixedLindbladNoiseOperator),
	}
}
