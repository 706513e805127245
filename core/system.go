// SPDX-License-Identifier: MIT
//
// File: system.go
// Role: System[K]: an Operator plus optional per-slot index bounds.
// Slots:
//   - A slot is one subsystem: the single spin or mode register of a plain
//     system, or one spin/boson/fermion subsystem of a mixed system.
//   - Each slot carries its own sentinels (spins vs modes).
// Atomicity:
//   - Bound checks run before the wrapped Operator is touched.
// AI-HINT (file):
//   - Limits hold Unbounded (-1) for "grows with content"; Bounds() resolves
//     those to the current usage.
//   - Noise systems are System[Pair[K]] with PairShape(usage).

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/qalgebra/calculator"
)

const (
	panicShapeSlots = "core: NewSystem: limits and shape slots differ in length"
)

// Slot names the sentinels used for one bounded subsystem.
type Slot struct {
	Exceeded   error // key uses an index beyond the bound
	Mismatched error // two bounded parts disagree
}

// Predefined slots.
var (
	SpinSlot = Slot{Exceeded: ErrNumberSpinsExceeded, Mismatched: ErrMismatchedNumberSpins}
	ModeSlot = Slot{Exceeded: ErrNumberModesExceeded, Mismatched: ErrMismatchedNumberModes}
)

// Shape describes how keys of type K use bounded slots.
type Shape[K Key[K]] struct {
	// Usage returns, per slot, the number of sites/modes k touches
	// (highest index + 1, or 0).
	Usage func(K) []int
	Slots []Slot
}

// System is an Operator with an optional declared bound per slot.
type System[K Key[K]] struct {
	op     *Operator[K]
	shape  Shape[K]
	limits []int
}

// NewSystem wraps op with the given per-slot limits (Unbounded for none).
// op is owned by the returned System.
//
// Errors:
//   - the slot's Exceeded sentinel when op already uses more than a limit.
//
// Panics if len(limits) != len(shape.Slots).
func NewSystem[K Key[K]](op *Operator[K], shape Shape[K], limits ...int) (*System[K], error) {
	if len(limits) != len(shape.Slots) {
		panic(panicShapeSlots)
	}
	s := &System[K]{op: op, shape: shape, limits: append([]int(nil), limits...)}
	for i := range op.keys {
		if err := s.check(op.keys[i]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// MustNewSystem is NewSystem for an empty or known-valid operator.
func MustNewSystem[K Key[K]](op *Operator[K], shape Shape[K], limits ...int) *System[K] {
	s, err := NewSystem(op, shape, limits...)
	if err != nil {
		Internalf("system: %v", err)
	}
	return s
}

// Operator returns a copy of the wrapped operator.
func (s *System[K]) Operator() *Operator[K] { return s.op.Clone() }

// View returns the wrapped operator for read-only use. Mutating it bypasses
// the bound checks.
func (s *System[K]) View() *Operator[K] { return s.op }

// Shape returns the slot description of s.
func (s *System[K]) Shape() Shape[K] { return s.shape }

// Limits returns the declared per-slot limits (Unbounded where unset).
func (s *System[K]) Limits() []int { return append([]int(nil), s.limits...) }

// CurrentBounds returns the per-slot usage of the stored keys.
func (s *System[K]) CurrentBounds() []int {
	out := make([]int, len(s.shape.Slots))
	for i := range s.op.keys {
		for j, u := range s.shape.Usage(s.op.keys[i]) {
			out[j] = max(out[j], u)
		}
	}
	return out
}

// Bounds returns the declared limit of each slot, or its current usage when
// the limit is unset.
func (s *System[K]) Bounds() []int {
	out := s.CurrentBounds()
	for j, l := range s.limits {
		if l != Unbounded {
			out[j] = l
		}
	}
	return out
}

// Bound is Bounds()[slot].
func (s *System[K]) Bound(slot int) int { return s.Bounds()[slot] }

// Get, Contains, Len, IsEmpty, Keys, Values, All, IsHermitian and Remove
// forward to the wrapped operator.
func (s *System[K]) Get(k K) calculator.Complex { return s.op.Get(k) }
func (s *System[K]) Contains(k K) bool { return s.op.Contains(k) }
func (s *System[K]) Len() int { return s.op.Len() }
func (s *System[K]) IsEmpty() bool { return s.op.IsEmpty() }
func (s *System[K]) Keys() []K { return s.op.Keys() }
func (s *System[K]) Values() []calculator.Complex { return s.op.Values() }
func (s *System[K]) IsHermitian() bool { return s.op.IsHermitian() }
func (s *System[K]) Remove(k K) (calculator.Complex, bool) { return s.op.Remove(k) }
func (s *System[K]) All() iter.Seq2[K, calculator.Complex] { return s.op.All() }

// Set checks the bounds, then delegates to Operator.Set.
func (s *System[K]) Set(k K, v calculator.Complex) (calculator.Complex, bool, error) {
	if err := s.check(k); err != nil {
		return calculator.Zero, false, err
	}
	return s.op.Set(k, v)
}

// AddOperatorProduct checks the bounds, then delegates.
func (s *System[K]) AddOperatorProduct(k K, v calculator.Complex) error {
	if err := s.check(k); err != nil {
		return err
	}
	return s.op.AddOperatorProduct(k, v)
}

// Clone returns a deep copy.
func (s *System[K]) Clone() *System[K] {
	return &System[K]{op: s.op.Clone(), shape: s.shape, limits: s.Limits()}
}

// EmptyClone keeps the limits and drops the entries.
func (s *System[K]) EmptyClone(capacity int) *System[K] {
	return &System[K]{op: s.op.EmptyClone(capacity), shape: s.shape, limits: s.Limits()}
}

// Neg returns -s with the same limits.
func (s *System[K]) Neg() *System[K] {
	return &System[K]{op: s.op.Neg(), shape: s.shape, limits: s.Limits()}
}

// Add folds other into a copy of s under the limits of s.
func (s *System[K]) Add(other *System[K]) (*System[K], error) {
	out := s.Clone()
	for i := range other.op.keys {
		if err := out.AddOperatorProduct(other.op.keys[i], other.op.vals[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Sub folds -other into a copy of s under the limits of s.
func (s *System[K]) Sub(other *System[K]) (*System[K], error) {
	return s.Add(other.Neg())
}

// Scale multiplies every value by c (see Operator.Scale).
func (s *System[K]) Scale(c calculator.Complex) (*System[K], error) {
	op, err := s.op.Scale(c)
	if err != nil {
		return nil, err
	}
	return &System[K]{op: op, shape: s.shape, limits: s.Limits()}, nil
}

// ScaleReal multiplies every value by f.
func (s *System[K]) ScaleReal(f calculator.Float) *System[K] {
	return &System[K]{op: s.op.ScaleReal(f), shape: s.shape, limits: s.Limits()}
}

// Truncate returns a copy without small entries (see Operator.Truncate).
func (s *System[K]) Truncate(threshold float64) *System[K] {
	return &System[K]{op: s.op.Truncate(threshold), shape: s.shape, limits: s.Limits()}
}

// Separate partitions s by pred; both halves keep the limits.
func (s *System[K]) Separate(pred func(K) bool) (*System[K], *System[K]) {
	m, r := s.op.Separate(pred)
	return &System[K]{op: m, shape: s.shape, limits: s.Limits()},
		&System[K]{op: r, shape: s.shape, limits: s.Limits()}
}

// Equal compares limits and entries.
func (s *System[K]) Equal(other *System[K]) bool {
	if len(s.limits) != len(other.limits) {
		return false
	}
	for i := range s.limits {
		if s.limits[i] != other.limits[i] {
			return false
		}
	}
	return s.op.Equal(other.op)
}

// Format renders "name(bounds){...}".
func (s *System[K]) Format(name string) string {
	return s.op.Format(fmt.Sprintf("%s(%v)", name, s.Bounds()))
}

// MaxBounds returns the slot-wise maximum of the effective bounds of a and
// b. It is the bound of a product of two systems.
func MaxBounds[A Key[A], B Key[B]](a *System[A], b *System[B]) []int {
	x, y := a.Bounds(), b.Bounds()
	out := make([]int, len(x))
	for i := range x {
		out[i] = max(x[i], y[i])
	}
	return out
}

// check validates k against every bounded slot.
func (s *System[K]) check(k K) error {
	for j, u := range s.shape.Usage(k) {
		if s.limits[j] != Unbounded && u > s.limits[j] {
			s.op.log.Debug().Str("key", k.String()).Int("slot", j).Int("limit", s.limits[j]).Msg("bound exceeded")
			return keyErrorf("Set", k.String(), s.shape.Slots[j].Exceeded)
		}
	}
	return nil
}
