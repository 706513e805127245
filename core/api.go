// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries over containers.
// Policy:
//   - No mutation and no hidden state here.
// AI-HINT (file):
//   - Stats() is one O(n) pass; use it for diagnostics and CLI reports.

package core

// Stats is a read-only snapshot of an Operator.
type Stats struct {
	Len         int     // stored entries
	Hermitian   bool    // Hermitian-constrained container
	NaturalKeys int     // entries whose key is naturally Hermitian
	IdentityKey bool    // the identity product is present
	Symbolic    int     // entries with a symbolic part
	MaxNorm     float64 // largest norm among numeric entries, 0 if none
}

// Stats produces a deterministic summary of o.
//
// Implementation:
//   - Stage 1: copy the container flags.
//   - Stage 2: scan entries once, classifying keys and values.
//
// Complexity:
//   - Time O(n), Space O(1).
//
// AI-Hints:
//   - MaxNorm ignores symbolic entries; check Symbolic before comparing it
//     with a truncation threshold.
func (o *Operator[K]) Stats() Stats {
	st := Stats{Len: len(o.keys), Hermitian: o.hermitian}
	for i := range o.keys {
		if o.keys[i].IsNaturalHermitian() {
			st.NaturalKeys++
		}
		if o.keys[i].IsEmpty() {
			st.IdentityKey = true
		}
		n, ok := o.vals[i].Norm()
		if !ok {
			st.Symbolic++
			continue
		}
		st.MaxNorm = max(st.MaxNorm, n)
	}

	return st
}
