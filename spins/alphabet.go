// SPDX-License-Identifier: MIT
//
// File: alphabet.go
// Role: Single-site spin operators, their product tables and the
//       single-site rewrites between alphabets.
// AI-HINT (file):
//   - The zero value of every alphabet is its identity; site lists rely on
//     that to treat "absent" and "identity" alike.

package spins

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/core"
)

// Weighted is one term of a single-site rewrite: an operator and its weight.
type Weighted[A any] struct {
	Op     A
	Weight complex128
}

// SinglePauli is a single-site Pauli matrix.
type SinglePauli uint8

// Pauli matrices.
const (
	PauliI SinglePauli = iota
	PauliX
	PauliY
	PauliZ
)

var pauliText = [...]string{"I", "X", "Y", "Z"}

// String returns "I", "X", "Y" or "Z".
func (a SinglePauli) String() string { return pauliText[a] }

// ParseSinglePauli reads one Pauli letter.
func ParseSinglePauli(s string) (SinglePauli, error) {
	for i, t := range pauliText {
		if s == t {
			return SinglePauli(i), nil
		}
	}
	return PauliI, fmt.Errorf("ParseSinglePauli(%q): %w", s, core.ErrIncorrectPauliEntry)
}

// Mul returns a·b as (op, phase).
//
//	XY = iZ   YZ = iX   ZX = iY
//	YX = -iZ  ZY = -iX  XZ = -iY
//	AA = I
func (a SinglePauli) Mul(b SinglePauli) (SinglePauli, complex128) {
	switch {
	case a == PauliI:
		return b, 1
	case b == PauliI:
		return a, 1
	case a == b:
		return PauliI, 1
	}
	// a, b distinct non-identity: the third matrix with ±i by cyclic order
	c := PauliX + PauliY + PauliZ - a - b
	if (a == PauliX && b == PauliY) || (a == PauliY && b == PauliZ) || (a == PauliZ && b == PauliX) {
		return c, 1i
	}
	return c, -1i
}

// ToPlusMinus rewrites a in the ladder alphabet.
func (a SinglePauli) ToPlusMinus() []Weighted[SinglePlusMinus] {
	switch a {
	case PauliX:
		return []Weighted[SinglePlusMinus]{{PlusMinusPlus, 1}, {PlusMinusMinus, 1}}
	case PauliY:
		return []Weighted[SinglePlusMinus]{{PlusMinusPlus, -1i}, {PlusMinusMinus, 1i}}
	case PauliZ:
		return []Weighted[SinglePlusMinus]{{PlusMinusZ, 1}}
	default:
		return []Weighted[SinglePlusMinus]{{PlusMinusI, 1}}
	}
}

// ToDecoherence rewrites a in the decoherence alphabet: Y = -i·(iY).
func (a SinglePauli) ToDecoherence() (SingleDecoherence, complex128) {
	switch a {
	case PauliX:
		return DecoherenceX, 1
	case PauliY:
		return DecoherenceIY, -1i
	case PauliZ:
		return DecoherenceZ, 1
	default:
		return DecoherenceI, 1
	}
}

// SingleDecoherence is a single-site operator of the decoherence alphabet,
// where iY = i·Y keeps every product phase real.
type SingleDecoherence uint8

// Decoherence operators.
const (
	DecoherenceI SingleDecoherence = iota
	DecoherenceX
	DecoherenceIY
	DecoherenceZ
)

var decoherenceText = [...]string{"I", "X", "iY", "Z"}

// String returns "I", "X", "iY" or "Z".
func (a SingleDecoherence) String() string { return decoherenceText[a] }

// ParseSingleDecoherence reads one decoherence symbol.
func ParseSingleDecoherence(s string) (SingleDecoherence, error) {
	for i, t := range decoherenceText {
		if s == t {
			return SingleDecoherence(i), nil
		}
	}
	return DecoherenceI, fmt.Errorf("ParseSingleDecoherence(%q): %w", s, core.ErrIncorrectPauliEntry)
}

// decoherenceTable[a][b] is a·b for the non-identity, distinct entries.
var decoherenceTable = map[[2]SingleDecoherence]struct {
	op    SingleDecoherence
	phase float64
}{
	{DecoherenceX, DecoherenceIY}: {DecoherenceZ, -1},
	{DecoherenceX, DecoherenceZ}:  {DecoherenceIY, -1},
	{DecoherenceIY, DecoherenceX}: {DecoherenceZ, 1},
	{DecoherenceIY, DecoherenceZ}: {DecoherenceX, -1},
	{DecoherenceZ, DecoherenceX}:  {DecoherenceIY, 1},
	{DecoherenceZ, DecoherenceIY}: {DecoherenceX, 1},
}

// Mul returns a·b as (op, phase); the phase is always ±1.
func (a SingleDecoherence) Mul(b SingleDecoherence) (SingleDecoherence, float64) {
	switch {
	case a == DecoherenceI:
		return b, 1
	case b == DecoherenceI:
		return a, 1
	case a == b && a == DecoherenceIY:
		return DecoherenceI, -1
	case a == b:
		return DecoherenceI, 1
	}
	r := decoherenceTable[[2]SingleDecoherence{a, b}]
	return r.op, r.phase
}

// ToPlusMinus rewrites a in the ladder alphabet: iY = (+) - (-).
func (a SingleDecoherence) ToPlusMinus() []Weighted[SinglePlusMinus] {
	switch a {
	case DecoherenceX:
		return []Weighted[SinglePlusMinus]{{PlusMinusPlus, 1}, {PlusMinusMinus, 1}}
	case DecoherenceIY:
		return []Weighted[SinglePlusMinus]{{PlusMinusPlus, 1}, {PlusMinusMinus, -1}}
	case DecoherenceZ:
		return []Weighted[SinglePlusMinus]{{PlusMinusZ, 1}}
	default:
		return []Weighted[SinglePlusMinus]{{PlusMinusI, 1}}
	}
}

// ToPauli rewrites a as a Pauli matrix: iY = i·Y.
func (a SingleDecoherence) ToPauli() (SinglePauli, complex128) {
	switch a {
	case DecoherenceX:
		return PauliX, 1
	case DecoherenceIY:
		return PauliY, 1i
	case DecoherenceZ:
		return PauliZ, 1
	default:
		return PauliI, 1
	}
}

// SinglePlusMinus is a single-site operator of the ladder alphabet
// σ+ = (X + iY)/2, σ- = (X - iY)/2.
type SinglePlusMinus uint8

// Ladder operators.
const (
	PlusMinusI SinglePlusMinus = iota
	PlusMinusPlus
	PlusMinusMinus
	PlusMinusZ
)

var plusMinusText = [...]string{"I", "+", "-", "Z"}

// String returns "I", "+", "-" or "Z".
func (a SinglePlusMinus) String() string { return plusMinusText[a] }

// ParseSinglePlusMinus reads one ladder symbol.
func ParseSinglePlusMinus(s string) (SinglePlusMinus, error) {
	for i, t := range plusMinusText {
		if s == t {
			return SinglePlusMinus(i), nil
		}
	}
	return PlusMinusI, fmt.Errorf("ParseSinglePlusMinus(%q): %w", s, core.ErrIncorrectPauliEntry)
}

// Conjugate swaps + and -.
func (a SinglePlusMinus) Conjugate() SinglePlusMinus {
	switch a {
	case PlusMinusPlus:
		return PlusMinusMinus
	case PlusMinusMinus:
		return PlusMinusPlus
	default:
		return a
	}
}

// Mul returns a·b as a list of weighted operators; ++ and -- vanish.
func (a SinglePlusMinus) Mul(b SinglePlusMinus) []Weighted[SinglePlusMinus] {
	switch {
	case a == PlusMinusI:
		return []Weighted[SinglePlusMinus]{{b, 1}}
	case b == PlusMinusI:
		return []Weighted[SinglePlusMinus]{{a, 1}}
	}
	switch [2]SinglePlusMinus{a, b} {
	case [2]SinglePlusMinus{PlusMinusPlus, PlusMinusMinus}:
		return []Weighted[SinglePlusMinus]{{PlusMinusZ, 0.5}, {PlusMinusI, 0.5}}
	case [2]SinglePlusMinus{PlusMinusMinus, PlusMinusPlus}:
		return []Weighted[SinglePlusMinus]{{PlusMinusZ, -0.5}, {PlusMinusI, 0.5}}
	case [2]SinglePlusMinus{PlusMinusPlus, PlusMinusZ}:
		return []Weighted[SinglePlusMinus]{{PlusMinusPlus, -1}}
	case [2]SinglePlusMinus{PlusMinusMinus, PlusMinusZ}:
		return []Weighted[SinglePlusMinus]{{PlusMinusMinus, 1}}
	case [2]SinglePlusMinus{PlusMinusZ, PlusMinusPlus}:
		return []Weighted[SinglePlusMinus]{{PlusMinusPlus, 1}}
	case [2]SinglePlusMinus{PlusMinusZ, PlusMinusMinus}:
		return []Weighted[SinglePlusMinus]{{PlusMinusMinus, -1}}
	case [2]SinglePlusMinus{PlusMinusZ, PlusMinusZ}:
		return []Weighted[SinglePlusMinus]{{PlusMinusI, 1}}
	}
	return nil
}

// ToPauli rewrites a with Pauli matrices.
func (a SinglePlusMinus) ToPauli() []Weighted[SinglePauli] {
	switch a {
	case PlusMinusPlus:
		return []Weighted[SinglePauli]{{PauliX, 0.5}, {PauliY, 0.5i}}
	case PlusMinusMinus:
		return []Weighted[SinglePauli]{{PauliX, 0.5}, {PauliY, -0.5i}}
	case PlusMinusZ:
		return []Weighted[SinglePauli]{{PauliZ, 1}}
	default:
		return []Weighted[SinglePauli]{{PauliI, 1}}
	}
}

// ToDecoherence rewrites a in the decoherence alphabet with real weights.
func (a SinglePlusMinus) ToDecoherence() []Weighted[SingleDecoherence] {
	switch a {
	case PlusMinusPlus:
		return []Weighted[SingleDecoherence]{{DecoherenceX, 0.5}, {DecoherenceIY, 0.5}}
	case PlusMinusMinus:
		return []Weighted[SingleDecoherence]{{DecoherenceX, 0.5}, {DecoherenceIY, -0.5}}
	case PlusMinusZ:
		return []Weighted[SingleDecoherence]{{DecoherenceZ, 1}}
	default:
		return []Weighted[SingleDecoherence]{{DecoherenceI, 1}}
	}
}
