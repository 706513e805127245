// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Operator[K] storage and CRUD.
// Determinism:
//   - Keys/Values/All iterate in insertion order; Remove preserves the order
//     of the remaining entries.
// Atomicity:
//   - Set/AddOperatorProduct validate before touching storage; a failing
//     call leaves the receiver unchanged.
// AI-HINT (file):
//   - The map identity of a key is its canonical String(); never store two
//     keys with the same text.
//   - Hermitian policy lives in validate(); every mutation path calls it.

package core

import (
	"iter"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qalgebra/calculator"
)

// Operator is an insertion-ordered sparse sum Σ v_k·K_k.
//
// A Hermitian-constrained Operator (NewHamiltonian) represents
// Σ (v_k·K_k + conj(v_k)·K_k†) for non-natural keys and v_k·K_k for natural
// keys, which therefore must carry real values.
type Operator[K Key[K]] struct {
	keys      []K
	vals      []calculator.Complex
	index     map[string]int // key text -> position in keys/vals
	hermitian bool
	guard     func(K) error // optional structural check (e.g. mixed arity)
	layout    []int         // subsystem counts of mixed containers, nil otherwise
	log       zerolog.Logger
}

// NewOperator returns an empty general container.
// Complexity: O(capacity).
func NewOperator[K Key[K]](opts ...Option) *Operator[K] {
	return newOperator[K](false, gatherOptions(opts...))
}

// NewHamiltonian returns an empty Hermitian-constrained container.
// Complexity: O(capacity).
func NewHamiltonian[K Key[K]](opts ...Option) *Operator[K] {
	return newOperator[K](true, gatherOptions(opts...))
}

func newOperator[K Key[K]](hermitian bool, o Options) *Operator[K] {
	return &Operator[K]{
		keys:      make([]K, 0, o.capacity),
		vals:      make([]calculator.Complex, 0, o.capacity),
		index:     make(map[string]int, o.capacity),
		hermitian: hermitian,
		layout:    o.subsystems,
		log:       o.logger,
	}
}

// Subsystems returns the subsystem counts set with WithSubsystems, or nil.
func (o *Operator[K]) Subsystems() []int { return append([]int(nil), o.layout...) }

// WithKeyGuard installs a structural check run on every key before it is
// stored. Clones inherit the guard. Returns o for chaining.
func (o *Operator[K]) WithKeyGuard(fn func(K) error) *Operator[K] {
	o.guard = fn
	return o
}

// IsHermitian reports whether o enforces the Hermitian policy.
func (o *Operator[K]) IsHermitian() bool { return o.hermitian }

// Len returns the number of stored (non-zero) entries.
func (o *Operator[K]) Len() int { return len(o.keys) }

// IsEmpty reports whether o has no entries.
func (o *Operator[K]) IsEmpty() bool { return len(o.keys) == 0 }

// Logger returns the logger configured for o.
func (o *Operator[K]) Logger() zerolog.Logger { return o.log }

// Get returns the coefficient of k, or numeric zero when k is absent.
// Complexity: O(len(k.String())).
func (o *Operator[K]) Get(k K) calculator.Complex {
	if i, ok := o.index[k.String()]; ok {
		return o.vals[i]
	}
	return calculator.Zero
}

// Contains reports whether k has a stored entry.
func (o *Operator[K]) Contains(k K) bool {
	_, ok := o.index[k.String()]
	return ok
}

// Set overwrites the coefficient of k.
//
// Implementation:
//   - Stage 1: validate (key guard, then Hermitian policy for non-zero v).
//   - Stage 2: zero v removes any entry; otherwise insert or overwrite in place.
//
// Returns:
//   - the previous value and whether k was present.
//
// Errors:
//   - ErrNonHermitianOperator: Hermitian container, natural key, Im(v) != 0.
//   - any error of the installed key guard.
func (o *Operator[K]) Set(k K, v calculator.Complex) (calculator.Complex, bool, error) {
	if err := o.validate(k, v); err != nil {
		return calculator.Zero, false, err
	}
	if v.IsZero() {
		prev, ok := o.Remove(k)
		return prev, ok, nil
	}
	text := k.String()
	if i, ok := o.index[text]; ok {
		prev := o.vals[i]
		o.vals[i] = v
		return prev, true, nil
	}
	o.index[text] = len(o.keys)
	o.keys = append(o.keys, k)
	o.vals = append(o.vals, v)
	return calculator.Zero, false, nil
}

// AddOperatorProduct adds v to the coefficient of k. The Hermitian policy
// checks the resulting total, so partial updates that cancel to a real
// value succeed.
func (o *Operator[K]) AddOperatorProduct(k K, v calculator.Complex) error {
	_, _, err := o.Set(k, o.Get(k).Add(v))
	return err
}

// Remove deletes k and returns its former value. Order of the remaining
// entries is preserved.
// Complexity: O(n) for the shift.
func (o *Operator[K]) Remove(k K) (calculator.Complex, bool) {
	text := k.String()
	i, ok := o.index[text]
	if !ok {
		return calculator.Zero, false
	}
	prev := o.vals[i]
	delete(o.index, text)
	copy(o.keys[i:], o.keys[i+1:])
	copy(o.vals[i:], o.vals[i+1:])
	var zeroK K
	o.keys[len(o.keys)-1] = zeroK
	o.keys = o.keys[:len(o.keys)-1]
	o.vals = o.vals[:len(o.vals)-1]
	for j := i; j < len(o.keys); j++ {
		o.index[o.keys[j].String()] = j
	}
	return prev, true
}

// Keys returns the stored keys in insertion order (a copy).
func (o *Operator[K]) Keys() []K {
	out := make([]K, len(o.keys))
	copy(out, o.keys)
	return out
}

// Values returns the stored values in insertion order (a copy).
func (o *Operator[K]) Values() []calculator.Complex {
	out := make([]calculator.Complex, len(o.vals))
	copy(out, o.vals)
	return out
}

// All iterates entries in insertion order. Mutating o during iteration is
// not supported.
func (o *Operator[K]) All() iter.Seq2[K, calculator.Complex] {
	return func(yield func(K, calculator.Complex) bool) {
		for i := range o.keys {
			if !yield(o.keys[i], o.vals[i]) {
				return
			}
		}
	}
}

// Format renders "name{\nkey: value,\n...}" in insertion order.
func (o *Operator[K]) Format(name string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("{\n")
	for i := range o.keys {
		b.WriteString(o.keys[i].String())
		b.WriteString(": ")
		b.WriteString(o.vals[i].String())
		b.WriteString(",\n")
	}
	b.WriteString("}")
	return b.String()
}

// validate runs the key guard and, for non-zero values on a Hermitian
// container, the natural-key policy.
func (o *Operator[K]) validate(k K, v calculator.Complex) error {
	if o.guard != nil {
		if err := o.guard(k); err != nil {
			o.log.Debug().Str("key", k.String()).Err(err).Msg("key rejected")
			return keyErrorf("Set", k.String(), err)
		}
	}
	if o.hermitian && !v.IsZero() && k.IsNaturalHermitian() && !v.Im.IsZero() {
		o.log.Debug().Str("key", k.String()).Str("value", v.String()).Msg("non-hermitian value rejected")
		return keyErrorf("Set", k.String(), ErrNonHermitianOperator)
	}
	return nil
}
