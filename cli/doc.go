// SPDX-License-Identifier: MIT

// Package cli implements the qalgebra command tree.
//
// Every command reads payload files (JSON, YAML or MessagePack by
// extension) and writes its result to stdout in --format: text, or one of
// the three encodings. Diagnostics go to stderr through a zerolog console
// logger; --verbose lowers its level to debug.
//
//	qalgebra parse fermion c2c0a1
//	qalgebra multiply a.json b.json --format json
//	qalgebra truncate h.yaml --threshold 1e-6
//	qalgebra jordan-wigner fermions.json
//	qalgebra convert h.json --to msgpack -o h.msgpack
//	qalgebra stats h.json
//
// An optional YAML file given with --config supplies the default
// threshold, output format and log level; flags override it.
package cli
