// SPDX-License-Identifier: MIT
//
// File: convert.go
// Role: Container-level rewrites between the Pauli, decoherence and ladder
//       alphabets.
// Policy:
//   - Results are general containers and never share storage with inputs.
//   - A Hamiltonian input is converted entry by entry, like an operator.

package spins

import (
	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// QubitToPlusMinus rewrites a qubit operator or Hamiltonian with ladder
// products.
func QubitToPlusMinus(o *QubitOperator) *PlusMinusOperator {
	return core.Convert(o, PauliProduct.ToPlusMinus, core.WithLogger(o.Logger()))
}

// PlusMinusToQubit rewrites a ladder operator with Pauli products.
func PlusMinusToQubit(o *PlusMinusOperator) *QubitOperator {
	return core.Convert(o, PlusMinusProduct.ToPauli, core.WithLogger(o.Logger()))
}

// PlusMinusToDecoherence rewrites a ladder operator in the decoherence
// alphabet.
func PlusMinusToDecoherence(o *PlusMinusOperator) *DecoherenceOperator {
	return core.Convert(o, PlusMinusProduct.ToDecoherence, core.WithLogger(o.Logger()))
}

// DecoherenceToPlusMinus rewrites a decoherence operator with ladder products.
func DecoherenceToPlusMinus(o *DecoherenceOperator) *PlusMinusOperator {
	return core.Convert(o, DecoherenceProduct.ToPlusMinus, core.WithLogger(o.Logger()))
}

// QubitToDecoherence rewrites every Y as iY with a factor -i.
func QubitToDecoherence(o *QubitOperator) *DecoherenceOperator {
	return core.Convert(o, pauliToDecoherenceTerms, core.WithLogger(o.Logger()))
}

// DecoherenceToQubit rewrites every iY as Y with a factor i.
func DecoherenceToQubit(o *DecoherenceOperator) *QubitOperator {
	return core.Convert(o, decoherenceToPauliTerms, core.WithLogger(o.Logger()))
}

// QubitNoiseToPlusMinus rewrites both halves of every noise key in the
// ladder alphabet; the right weight enters conjugated.
func QubitNoiseToPlusMinus(o *QubitLindbladNoiseOperator) *PlusMinusLindbladNoiseOperator {
	out := NewPlusMinusLindbladNoiseOperator(core.WithLogger(o.Logger()))
	core.ConvertNoise(out, o, DecoherenceProduct.ToPlusMinus)
	return out
}

// PlusMinusNoiseToQubit rewrites both halves of every noise key in the
// decoherence alphabet.
func PlusMinusNoiseToQubit(o *PlusMinusLindbladNoiseOperator) *QubitLindbladNoiseOperator {
	out := NewQubitLindbladNoiseOperator(core.WithLogger(o.Logger()))
	core.ConvertNoise(out, o, PlusMinusProduct.ToDecoherence)
	return out
}

func pauliToDecoherenceTerms(p PauliProduct) []core.Term[DecoherenceProduct] {
	d, ph := p.ToDecoherence()
	return []core.Term[DecoherenceProduct]{{Key: d, Value: calculator.FromComplex128(ph)}}
}

func decoherenceToPauliTerms(d DecoherenceProduct) []core.Term[PauliProduct] {
	p, ph := d.ToPauli()
	return []core.Term[PauliProduct]{{Key: p, Value: calculator.FromComplex128(ph)}}
}
