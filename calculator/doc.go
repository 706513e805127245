// SPDX-License-Identifier: MIT

// Package calculator provides the coefficient values that weight every
// operator term in qalgebra.
//
// Two types are exported:
//
//   - Float: a real value that is either numeric (float64) or symbolic
//     (an expression string such as "theta" or "(2 * theta)").
//   - Complex: a pair of Floats {Re, Im}.
//
// Symbolic values are immutable text. Arithmetic on them builds a new
// parenthesised expression; numeric identities (x+0, x*1, x*0) are folded
// so that purely numeric code never produces expression text.
//
// Zero semantics:
//
//	Float{}            is numeric 0 (the zero value is ready to use)
//	NewSymbol("0")     is symbolic and therefore NOT zero
//	Complex.IsZero()   requires both parts to be numeric 0
//
// Wire form: a numeric Float encodes as a number and a symbolic one as a
// string in JSON, YAML and MessagePack.
package calculator
