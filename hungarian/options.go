// SPDX-License-Identifier: MIT

// Package hungarian: functional configuration for the cooperative solvers.
//
// The options only change scheduling (how often the solver checks ctx and
// yields), never the result: SolveContext with any options returns exactly
// what Solve returns for the same matrix.

package hungarian

import "runtime"

// DefaultChunkSize is the number of inner-loop steps (column relaxations)
// executed between two cancellation checks / yields.
const DefaultChunkSize = 4096

const (
	panicChunkSizeInvalid = "hungarian: WithChunkSize: size must be > 0"
	panicYieldNil         = "hungarian: WithYield: fn must be non-nil"
)

// Option mutates solver options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective cooperative-scheduling configuration.
type Options struct {
	chunkSize int    // > 0; DefaultChunkSize
	yield     func() // called at every budget boundary; runtime.Gosched by default
}

// WithChunkSize sets the step budget between suspension points.
// Smaller values make cancellation more prompt at the price of more yields.
func WithChunkSize(size int) Option {
	if size <= 0 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *Options) { o.chunkSize = size }
}

// WithYield replaces the suspension hook (default runtime.Gosched).
// The hook runs on the solving goroutine after the ctx check succeeds.
func WithYield(fn func()) Option {
	if fn == nil {
		panic(panicYieldNil)
	}

	return func(o *Options) { o.yield = fn }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		chunkSize: DefaultChunkSize,
		yield:     runtime.Gosched,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
