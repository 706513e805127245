// SPDX-License-Identifier: MIT

// Package calculator - Float: numeric-or-symbolic real scalar.
//
// Purpose:
//   - Carry either a float64 or an expression string behind one value type.
//   - Keep numeric arithmetic exact to float64 and never allocate text for it.
//   - Fold numeric identities when one operand is symbolic.
//
// Complexity quicksheet:
//   - numeric ops: O(1); symbolic ops: O(len(a)+len(b)) for the new text.

package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Float is a real coefficient that is either numeric or symbolic.
// The zero value is numeric 0.
type Float struct {
	num  float64
	expr string // non-empty iff symbolic
}

// NewFloat returns a numeric Float.
func NewFloat(v float64) Float { return Float{num: v} }

// NewSymbol returns a symbolic Float holding expr verbatim.
// An empty (or blank) expression yields numeric 0.
func NewSymbol(expr string) Float {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Float{}
	}
	return Float{expr: expr}
}

// ParseFloat returns a numeric Float when s is a valid float literal and a
// symbolic Float otherwise.
func ParseFloat(s string) Float {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return Float{num: v}
	}
	return NewSymbol(s)
}

// IsFloat reports whether f is numeric.
func (f Float) IsFloat() bool { return f.expr == "" }

// Float64 returns the numeric value and true, or (0, false) when symbolic.
func (f Float) Float64() (float64, bool) {
	if f.expr != "" {
		return 0, false
	}
	return f.num, true
}

// IsZero reports whether f is numeric zero. Symbolic values are never zero.
func (f Float) IsZero() bool { return f.expr == "" && f.num == 0 }

// Abs returns |f| and true for numeric values; (0, false) otherwise.
func (f Float) Abs() (float64, bool) {
	if f.expr != "" {
		return 0, false
	}
	return math.Abs(f.num), true
}

// Equal reports exact equality: same numeric value, or identical expression text.
func (f Float) Equal(g Float) bool {
	if f.expr != "" || g.expr != "" {
		return f.expr == g.expr
	}
	return f.num == g.num
}

// Add returns f + g.
func (f Float) Add(g Float) Float {
	if f.expr == "" && g.expr == "" {
		return Float{num: f.num + g.num}
	}
	if f.IsZero() {
		return g
	}
	if g.IsZero() {
		return f
	}
	return Float{expr: "(" + f.String() + " + " + g.String() + ")"}
}

// Sub returns f - g.
func (f Float) Sub(g Float) Float {
	if f.expr == "" && g.expr == "" {
		return Float{num: f.num - g.num}
	}
	if g.IsZero() {
		return f
	}
	if f.IsZero() {
		return g.Neg()
	}
	if f.expr == g.expr {
		return Float{}
	}
	return Float{expr: "(" + f.String() + " - " + g.String() + ")"}
}

// Mul returns f * g.
func (f Float) Mul(g Float) Float {
	if f.expr == "" && g.expr == "" {
		return Float{num: f.num * g.num}
	}
	// numeric 0 annihilates, numeric 1 is neutral
	if f.IsZero() || g.IsZero() {
		return Float{}
	}
	if f.expr == "" && f.num == 1 {
		return g
	}
	if g.expr == "" && g.num == 1 {
		return f
	}
	if f.expr == "" && f.num == -1 {
		return g.Neg()
	}
	if g.expr == "" && g.num == -1 {
		return f.Neg()
	}
	return Float{expr: "(" + f.String() + " * " + g.String() + ")"}
}

// Div returns f / g. A numeric zero divisor fails with ErrDivisionByZero.
func (f Float) Div(g Float) (Float, error) {
	if g.IsZero() {
		return Float{}, ErrDivisionByZero
	}
	if f.expr == "" && g.expr == "" {
		return Float{num: f.num / g.num}, nil
	}
	if f.IsZero() {
		return Float{}, nil
	}
	if g.expr == "" && g.num == 1 {
		return f, nil
	}
	return Float{expr: "(" + f.String() + " / " + g.String() + ")"}, nil
}

// Neg returns -f.
func (f Float) Neg() Float {
	if f.expr == "" {
		return Float{num: -f.num}
	}
	// -(-x) folds back to x
	if strings.HasPrefix(f.expr, "(-") && strings.HasSuffix(f.expr, ")") && balanced(f.expr[2:len(f.expr)-1]) {
		return Float{expr: f.expr[2 : len(f.expr)-1]}
	}
	return Float{expr: "(-" + f.expr + ")"}
}

// String renders numeric values in shortest round-trip form and symbolic
// values verbatim.
func (f Float) String() string {
	if f.expr != "" {
		return f.expr
	}
	if f.num == 0 {
		return "0" // also for -0
	}
	return strconv.FormatFloat(f.num, 'g', -1, 64)
}

// balanced reports whether s has matching parentheses at every prefix.
func balanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
