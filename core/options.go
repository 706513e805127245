// SPDX-License-Identifier: MIT

// Package core: functional configuration for containers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options never change algebraic behaviour; they only size storage and
//     route diagnostics.
//   - Clones inherit the logger of their source.

package core

import "github.com/rs/zerolog"

// DefaultCapacity is the number of entries pre-allocated by constructors.
const DefaultCapacity = 0

const (
	panicCapacityInvalid   = "core: WithCapacity: capacity must be non-negative"
	panicSubsystemsInvalid = "core: WithSubsystems: counts must be non-negative"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	capacity   int            // >= 0; DefaultCapacity
	logger     zerolog.Logger // zerolog.Nop() unless WithLogger
	subsystems []int          // nil unless WithSubsystems
}

// WithCapacity pre-allocates storage for n entries. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}
	return func(o *Options) { o.capacity = n }
}

// WithLogger routes rejected mutations and multiplication traces to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithSubsystems records the subsystem counts of a container whose keys are
// tuples of sub-products. The counts travel with clones and payloads.
// Panics on a negative count.
func WithSubsystems(counts ...int) Option {
	for _, c := range counts {
		if c < 0 {
			panic(panicSubsystemsInvalid)
		}
	}
	counts = append([]int(nil), counts...)
	return func(o *Options) { o.subsystems = counts }
}

// defaultOptions returns the single source of default configuration.
func defaultOptions() Options {
	return Options{capacity: DefaultCapacity, logger: zerolog.Nop()}
}

// gatherOptions applies opts left-to-right over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
