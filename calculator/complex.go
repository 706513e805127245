// SPDX-License-Identifier: MIT

// Package calculator - Complex: a pair of Floats.
//
// AI-Hints:
//   - Complex{} is numeric zero; use it as the "absent" value of containers.
//   - Prefer Scale over Mul(Real(x)) for real factors; it skips two products.

package calculator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Complex is a complex coefficient with numeric-or-symbolic parts.
type Complex struct {
	Re Float `json:"re" yaml:"re" msgpack:"re"`
	Im Float `json:"im" yaml:"im" msgpack:"im"`
}

// Common constants.
var (
	// Zero is numeric 0 + 0i.
	Zero = Complex{}
	// One is numeric 1 + 0i.
	One = Complex{Re: NewFloat(1)}
	// I is the imaginary unit.
	I = Complex{Im: NewFloat(1)}
)

// NewComplex returns a numeric complex value re + i*im.
func NewComplex(re, im float64) Complex {
	return Complex{Re: NewFloat(re), Im: NewFloat(im)}
}

// Real lifts a Float to a Complex with zero imaginary part.
func Real(f Float) Complex { return Complex{Re: f} }

// FromComplex128 converts a native complex number.
func FromComplex128(c complex128) Complex {
	return NewComplex(real(c), imag(c))
}

// IsZero reports whether both parts are numeric zero.
func (c Complex) IsZero() bool { return c.Re.IsZero() && c.Im.IsZero() }

// IsNumeric reports whether both parts are numeric.
func (c Complex) IsNumeric() bool { return c.Re.IsFloat() && c.Im.IsFloat() }

// IsReal reports whether the imaginary part is numeric zero.
func (c Complex) IsReal() bool { return c.Im.IsZero() }

// Equal reports exact equality of both parts.
func (c Complex) Equal(d Complex) bool { return c.Re.Equal(d.Re) && c.Im.Equal(d.Im) }

// IsClose reports whether two numeric values agree within tol (absolute or
// relative). Symbolic values are close only when exactly equal.
func (c Complex) IsClose(d Complex, tol float64) bool {
	a, okA := c.Complex128()
	b, okB := d.Complex128()
	if !okA || !okB {
		return c.Equal(d)
	}
	return scalar.EqualWithinAbsOrRel(real(a), real(b), tol, tol) &&
		scalar.EqualWithinAbsOrRel(imag(a), imag(b), tol, tol)
}

// Complex128 returns the native value and true when both parts are numeric.
func (c Complex) Complex128() (complex128, bool) {
	re, okR := c.Re.Float64()
	im, okI := c.Im.Float64()
	if !okR || !okI {
		return 0, false
	}
	return complex(re, im), true
}

// Norm returns |c| and true for numeric values.
func (c Complex) Norm() (float64, bool) {
	v, ok := c.Complex128()
	if !ok {
		return 0, false
	}
	return math.Hypot(real(v), imag(v)), true
}

// Add returns c + d.
func (c Complex) Add(d Complex) Complex {
	return Complex{Re: c.Re.Add(d.Re), Im: c.Im.Add(d.Im)}
}

// Sub returns c - d.
func (c Complex) Sub(d Complex) Complex {
	return Complex{Re: c.Re.Sub(d.Re), Im: c.Im.Sub(d.Im)}
}

// Mul returns c * d.
func (c Complex) Mul(d Complex) Complex {
	// (a + bi)(x + yi) = (ax - by) + (ay + bx)i
	return Complex{
		Re: c.Re.Mul(d.Re).Sub(c.Im.Mul(d.Im)),
		Im: c.Re.Mul(d.Im).Add(c.Im.Mul(d.Re)),
	}
}

// Scale returns c * f for a real factor f.
func (c Complex) Scale(f Float) Complex {
	return Complex{Re: c.Re.Mul(f), Im: c.Im.Mul(f)}
}

// ScaleFloat is Scale with a numeric factor.
func (c Complex) ScaleFloat(v float64) Complex { return c.Scale(NewFloat(v)) }

// Neg returns -c.
func (c Complex) Neg() Complex { return Complex{Re: c.Re.Neg(), Im: c.Im.Neg()} }

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex { return Complex{Re: c.Re, Im: c.Im.Neg()} }

// String renders "(re + i * im)".
func (c Complex) String() string {
	return fmt.Sprintf("(%s + i * %s)", c.Re, c.Im)
}
