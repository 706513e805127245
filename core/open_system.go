// SPDX-License-Identifier: MIT
//
// File: open_system.go
// Role: OpenSystem[S, N]: a Hamiltonian system and a Lindblad noise system
//       that share their per-slot bounds.

package core

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qalgebra/calculator"
)

// OpenSystem couples a Hermitian-constrained system with a noise system.
type OpenSystem[S Key[S], N Key[N]] struct {
	system *System[S]
	noise  *System[Pair[N]]
}

// GroupOpenSystem reconciles the limits of system and noise slot by slot:
//   - equal limits are kept;
//   - one side unset: it takes the other's limit when its usage fits;
//   - otherwise the slot's Mismatched sentinel is returned.
//
// Both arguments are owned by the result.
func GroupOpenSystem[S Key[S], N Key[N]](system *System[S], noise *System[Pair[N]]) (*OpenSystem[S, N], error) {
	if len(system.limits) != len(noise.limits) {
		return nil, ErrMismatchedNumberSubsystems
	}
	sysBounds, noiseBounds := system.Bounds(), noise.Bounds()
	for j := range system.limits {
		ls, ln := system.limits[j], noise.limits[j]
		switch {
		case ls == ln:
		case ls != Unbounded && ln == Unbounded:
			if ls < noiseBounds[j] {
				return nil, system.shape.Slots[j].Mismatched
			}
			noise.limits[j] = ls
		case ls == Unbounded && ln != Unbounded:
			if ln < sysBounds[j] {
				return nil, system.shape.Slots[j].Mismatched
			}
			system.limits[j] = ln
		default:
			return nil, system.shape.Slots[j].Mismatched
		}
	}

	return &OpenSystem[S, N]{system: system, noise: noise}, nil
}

// System returns the Hamiltonian part.
func (o *OpenSystem[S, N]) System() *System[S] { return o.system }

// Noise returns the noise part.
func (o *OpenSystem[S, N]) Noise() *System[Pair[N]] { return o.noise }

// Ungroup returns both parts.
func (o *OpenSystem[S, N]) Ungroup() (*System[S], *System[Pair[N]]) { return o.system, o.noise }

// Bounds returns the slot-wise maximum of both parts.
func (o *OpenSystem[S, N]) Bounds() []int {
	a, b := o.system.Bounds(), o.noise.Bounds()
	for i := range a {
		a[i] = max(a[i], b[i])
	}
	return a
}

// Clone returns a deep copy.
func (o *OpenSystem[S, N]) Clone() *OpenSystem[S, N] {
	return &OpenSystem[S, N]{system: o.system.Clone(), noise: o.noise.Clone()}
}

// EmptyClone keeps the limits of both parts.
func (o *OpenSystem[S, N]) EmptyClone() *OpenSystem[S, N] {
	return &OpenSystem[S, N]{system: o.system.EmptyClone(0), noise: o.noise.EmptyClone(0)}
}

// IsEmpty reports whether both parts are empty.
func (o *OpenSystem[S, N]) IsEmpty() bool { return o.system.IsEmpty() && o.noise.IsEmpty() }

// Neg negates both parts.
func (o *OpenSystem[S, N]) Neg() *OpenSystem[S, N] {
	return &OpenSystem[S, N]{system: o.system.Neg(), noise: o.noise.Neg()}
}

// Add adds part-wise and regroups.
func (o *OpenSystem[S, N]) Add(other *OpenSystem[S, N]) (*OpenSystem[S, N], error) {
	sys, err := o.system.Add(other.system)
	if err != nil {
		return nil, err
	}
	noise, err := o.noise.Add(other.noise)
	if err != nil {
		return nil, err
	}
	return GroupOpenSystem(sys, noise)
}

// Sub subtracts part-wise and regroups.
func (o *OpenSystem[S, N]) Sub(other *OpenSystem[S, N]) (*OpenSystem[S, N], error) {
	return o.Add(other.Neg())
}

// ScaleReal scales both parts by f.
func (o *OpenSystem[S, N]) ScaleReal(f calculator.Float) *OpenSystem[S, N] {
	return &OpenSystem[S, N]{system: o.system.ScaleReal(f), noise: o.noise.ScaleReal(f)}
}

// Truncate truncates both parts.
func (o *OpenSystem[S, N]) Truncate(threshold float64) *OpenSystem[S, N] {
	return &OpenSystem[S, N]{system: o.system.Truncate(threshold), noise: o.noise.Truncate(threshold)}
}

// Equal compares both parts.
func (o *OpenSystem[S, N]) Equal(other *OpenSystem[S, N]) bool {
	return o.system.Equal(other.system) && o.noise.Equal(other.noise)
}

// Format renders "name(bounds){System: {...} Noise: {...}}".
func (o *OpenSystem[S, N]) Format(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(%v){\nSystem: {\n", name, o.Bounds())
	for k, v := range o.system.All() {
		fmt.Fprintf(&b, "%s: %s,\n", k, v)
	}
	b.WriteString("}\nNoise: {\n")
	for k, v := range o.noise.All() {
		fmt.Fprintf(&b, "(%s, %s): %s,\n", k.Left, k.Right, v)
	}
	b.WriteString("}\n}")
	return b.String()
}
