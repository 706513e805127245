// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning, truncation and partitioning of Operator instances.
// Determinism:
//   - Every derived container lists its entries in the source order.
// AI-HINT (file):
//   - Clone/EmptyClone carry the Hermitian marker, key guard, subsystem
//     layout and logger.
//   - Truncate never drops a symbolic entry: its magnitude is unknown.

package core

import "github.com/katalvlaran/qalgebra/calculator"

// EmptyClone returns a container of the same kind (Hermitian marker, key
// guard, logger) with no entries and room for capacity of them.
// Complexity: O(capacity).
func (o *Operator[K]) EmptyClone(capacity int) *Operator[K] {
	if capacity < 0 {
		capacity = 0
	}
	out := newOperator[K](o.hermitian, Options{capacity: capacity, logger: o.log, subsystems: o.layout})
	out.guard = o.guard

	return out
}

// Clone returns a deep copy of o.
// Complexity: O(n).
func (o *Operator[K]) Clone() *Operator[K] {
	out := o.EmptyClone(len(o.keys))
	out.keys = append(out.keys, o.keys...)
	out.vals = append(out.vals, o.vals...)
	for i := range out.keys {
		out.index[out.keys[i].String()] = i
	}

	return out
}

// Truncate returns a copy of o without small entries.
//
// Implementation:
//   - Symbolic entries are kept unchanged.
//   - Numeric entries have each part with |part| < threshold set to zero and
//     are kept iff the norm of the result is >= threshold.
//
// Complexity: O(n).
func (o *Operator[K]) Truncate(threshold float64) *Operator[K] {
	out := o.EmptyClone(len(o.keys))
	for i := range o.keys {
		v, keep := truncateValue(o.vals[i], threshold)
		if keep {
			out.insert(o.keys[i], v)
		}
	}

	return out
}

// Separate partitions o into (matching, remainder) by a predicate on the
// key. Both results keep the kind and order of o.
// Complexity: O(n).
func (o *Operator[K]) Separate(pred func(K) bool) (*Operator[K], *Operator[K]) {
	match := o.EmptyClone(0)
	rest := o.EmptyClone(0)
	for i := range o.keys {
		if pred(o.keys[i]) {
			match.insert(o.keys[i], o.vals[i])
		} else {
			rest.insert(o.keys[i], o.vals[i])
		}
	}

	return match, rest
}

// Equal reports whether o and other hold the same entries with exactly
// equal values. Order and kind are ignored.
func (o *Operator[K]) Equal(other *Operator[K]) bool {
	if len(o.keys) != len(other.keys) {
		return false
	}
	for i := range o.keys {
		j, ok := other.index[o.keys[i].String()]
		if !ok || !o.vals[i].Equal(other.vals[j]) {
			return false
		}
	}

	return true
}

// IsClose is Equal with a numeric tolerance on the values.
func (o *Operator[K]) IsClose(other *Operator[K], tol float64) bool {
	if len(o.keys) != len(other.keys) {
		return false
	}
	for i := range o.keys {
		j, ok := other.index[o.keys[i].String()]
		if !ok || !o.vals[i].IsClose(other.vals[j], tol) {
			return false
		}
	}

	return true
}

// insert appends an entry that is known to be new, valid and non-zero.
func (o *Operator[K]) insert(k K, v calculator.Complex) {
	o.index[k.String()] = len(o.keys)
	o.keys = append(o.keys, k)
	o.vals = append(o.vals, v)
}

// truncateValue applies the threshold rule to one coefficient.
func truncateValue(v calculator.Complex, threshold float64) (calculator.Complex, bool) {
	if !v.IsNumeric() {
		return v, true
	}
	if a, _ := v.Re.Abs(); a < threshold {
		v.Re = calculator.Float{}
	}
	if a, _ := v.Im.Abs(); a < threshold {
		v.Im = calculator.Float{}
	}
	n, _ := v.Norm()
	if v.IsZero() || n < threshold {
		return calculator.Zero, false
	}

	return v, true
}
