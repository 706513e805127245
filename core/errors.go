// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by every qalgebra package.
// This file defines ONLY package-level sentinels. Callers match them with
// errors.Is; context is attached with fmt.Errorf("Op(%s): %w", key, ErrX).
// Panics are reserved for internal defects in the multiplication and
// transform machinery (see Internalf).

package core

import (
	"errors"
	"fmt"
)

// Taxonomy (errors.Is groups):
//
//	structural validation : ErrFromStringFailed, ErrIncorrectPauliEntry,
//	                        ErrProductIndexAlreadyOccupied, ErrIndicesNotNormalOrdered,
//	                        ErrIndicesContainDoubles, ErrIncorrectlyOrderedIndices,
//	                        ErrCreatorsAnnihilatorsMinimumIndex, ErrInvalidLindbladTerms
//	hermiticity violation : ErrNonHermitianOperator
//	arity mismatch        : ErrMismatchedNumberSubsystems
//	bound exceeded        : ErrNumberSpinsExceeded, ErrNumberModesExceeded,
//	                        ErrMismatchedNumberSpins, ErrMismatchedNumberModes
//	version incompatible  : ErrVersionMismatch
//	type mismatch         : ErrTypeMismatch

var (
	// ErrFromStringFailed signals malformed product text: unknown ladder
	// letter, non-integer index, missing index or repeated spin index.
	ErrFromStringFailed = errors.New("qalgebra: parsing from string failed")

	// ErrIncorrectPauliEntry signals an unknown single-site spin symbol.
	ErrIncorrectPauliEntry = errors.New("qalgebra: incorrect single-site operator entry")

	// ErrProductIndexAlreadyOccupied is returned by Concatenate when both
	// operands act on the same site.
	ErrProductIndexAlreadyOccupied = errors.New("qalgebra: index already occupied")

	// ErrIndicesNotNormalOrdered signals a creator written after an annihilator.
	ErrIndicesNotNormalOrdered = errors.New("qalgebra: indices are not normal ordered")

	// ErrIndicesContainDoubles signals a repeated fermionic index on one side.
	ErrIndicesContainDoubles = errors.New("qalgebra: indices contain doubles")

	// ErrIncorrectlyOrderedIndices signals a side that is not strictly increasing.
	ErrIncorrectlyOrderedIndices = errors.New("qalgebra: indices are not strictly increasing")

	// ErrCreatorsAnnihilatorsMinimumIndex signals a Hermitian product whose
	// creators do not start at or below its annihilators.
	ErrCreatorsAnnihilatorsMinimumIndex = errors.New("qalgebra: minimum creator index exceeds minimum annihilator index")

	// ErrNonHermitianOperator signals a naturally Hermitian key paired with a
	// value whose imaginary part is non-zero, or a complex scaling of a
	// Hermitian-constrained container.
	ErrNonHermitianOperator = errors.New("qalgebra: operator is not hermitian")

	// ErrMismatchedNumberSubsystems signals mixed operands of different arity.
	ErrMismatchedNumberSubsystems = errors.New("qalgebra: mismatched number of subsystems")

	// ErrNumberSpinsExceeded signals a key that uses a spin beyond the declared bound.
	ErrNumberSpinsExceeded = errors.New("qalgebra: number of spins exceeded")

	// ErrNumberModesExceeded signals a key that uses a mode beyond the declared bound.
	ErrNumberModesExceeded = errors.New("qalgebra: number of modes exceeded")

	// ErrMismatchedNumberSpins signals two bounded spin systems with different bounds.
	ErrMismatchedNumberSpins = errors.New("qalgebra: mismatched number of spins")

	// ErrMismatchedNumberModes signals two bounded mode systems with different bounds.
	ErrMismatchedNumberModes = errors.New("qalgebra: mismatched number of modes")

	// ErrInvalidLindbladTerms signals a noise key with an identity half.
	ErrInvalidLindbladTerms = errors.New("qalgebra: identity is not a valid Lindblad operator")

	// ErrVersionMismatch signals a payload whose minimum version is not
	// supported by this library.
	ErrVersionMismatch = errors.New("qalgebra: serialisation version mismatch")

	// ErrTypeMismatch signals a payload whose type name differs from the target.
	ErrTypeMismatch = errors.New("qalgebra: serialisation type mismatch")

	// ErrUnknownCodec is returned by CodecByName for an unregistered name.
	ErrUnknownCodec = errors.New("qalgebra: unknown codec")
)

// internalPrefix tags panics raised by Internalf.
const internalPrefix = "qalgebra: internal: "

// Internalf panics with a formatted internal-defect message. It is used when
// the algebra produces a key or value that cannot be represented; such a
// state is a bug in this library, never a user error.
func Internalf(format string, args ...interface{}) {
	panic(internalPrefix + fmt.Sprintf(format, args...))
}

// keyErrorf attaches an operation tag and the key text to a sentinel.
func keyErrorf(op, key string, err error) error {
	return fmt.Errorf("%s(%s): %w", op, key, err)
}
