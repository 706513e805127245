// Package core provides the generic sparse operator engine shared by every
// particle kind in qalgebra, together with the error taxonomy, the key
// capability contract and the versioned wire format.
//
// An operator is a finite sum Σ v_k · K_k of index products K_k weighted by
// coefficients v_k (calculator.Complex). The engine stores that sum as an
// insertion-ordered map and enforces three invariants:
//
//   - Sparsity: no stored entry holds an algebraic zero; Set(k, 0) removes k.
//   - Hermiticity (Hamiltonians only): a naturally Hermitian key holds a
//     value with zero imaginary part. The guard checks the resulting value
//     of every mutation and rejects it atomically.
//   - Lindblad pairs (noise operators only): neither half of a key pair is
//     the identity product.
//
// Types:
//
//	Operator[K]             general or Hermitian-constrained container (NewOperator / NewHamiltonian)
//	Operator[Pair[K]]       Lindblad noise container (NewNoiseOperator)
//	System[K]               Operator plus optional per-slot index bounds
//	OpenSystem[S, N]        a Hamiltonian system and a noise system sharing bounds
//	Payload / Codec         versioned wire format, JSON / YAML / MsgPack
//
// Keys:
//
//	Any product type satisfying Key[K] can index a container:
//	  String()               canonical text, also the identity of the key
//	  HermitianConjugate()   (adjoint, real phase)
//	  IsNaturalHermitian()   adjoint equals self with phase +1
//	  IsEmpty()              multiplicative identity
//
// Concurrency:
//
//	Containers carry no locks. Mutators touch only their receiver; arithmetic
//	returns fresh values. Use Clone to hand independent copies to goroutines.
//
// Configuration (Option):
//
//	WithCapacity(n)   pre-size the entry storage
//	WithLogger(l)     zerolog logger for rejected mutations (default: zerolog.Nop())
//
// Wire format:
//
//	{"items": [[key, re, im], ...], "serialisation_meta": {"type_name", "min_version", "version"}}
//
// Noise payloads carry [left, right, re, im]. Payloads are checked with
// CheckMeta before a single entry is built. Codecs JSON, YAML and MsgPack
// encode the same payload.
package core
