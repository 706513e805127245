// SPDX-License-Identifier: MIT
// Package calculator: sentinel errors.

package calculator

import "errors"

var (
	// ErrDivisionByZero is returned by Div when the divisor is numeric zero.
	ErrDivisionByZero = errors.New("calculator: division by zero")

	// ErrNotNumeric signals that a numeric value was required but the
	// operand is symbolic.
	ErrNotNumeric = errors.New("calculator: value is symbolic")

	// ErrBadValue is returned by the decoders for wire values that are
	// neither numbers nor strings.
	ErrBadValue = errors.New("calculator: unsupported wire value")
)
