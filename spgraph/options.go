// SPDX-License-Identifier: MIT

package spgraph

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/capnet/progress"
)

// RecommendedMaxCapacitors is the largest input for which exhaustive
// graph enumeration stays interactive.
const RecommendedMaxCapacitors = 6

// DefaultProgressEvery is the default cadence in templates.
const DefaultProgressEvery = 10

// Option configures GenerateTopologies and Solve.
// Constructors panic on meaningless input; algorithms never panic.
type Option func(*Options)

// Options holds the tunables of an SP-graph search.
type Options struct {
	// Ctx is polled at every progress checkpoint.
	Ctx context.Context

	// Progress receives (templates processed, templates total, best error).
	Progress progress.Func

	// ProgressEvery is the reporting cadence in templates.
	ProgressEvery int

	// MaxResults bounds the ranked output; 0 keeps every reducible network.
	MaxResults int

	// TolerancePct flags solutions whose relative error is within it.
	TolerancePct float64

	// Isomorphism filters duplicate topologies.
	Isomorphism Isomorphism

	// Logger receives debug traces; never nil after DefaultOptions.
	Logger *slog.Logger
}

// DefaultOptions returns a background context, no progress callback, a
// cadence of DefaultProgressEvery templates, unlimited results, a 5%
// tolerance, PermutationIsomorphism, and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		ProgressEvery: DefaultProgressEvery,
		TolerancePct:  5,
		Isomorphism:   PermutationIsomorphism{},
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithProgress registers the progress callback.
func WithProgress(fn progress.Func) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithProgressEvery sets the cadence in templates. Panics if every < 1.
func WithProgressEvery(every int) Option {
	if every < 1 {
		panic(fmt.Sprintf("spgraph: WithProgressEvery(%d): must be >= 1", every))
	}
	return func(o *Options) { o.ProgressEvery = every }
}

// WithMaxResults bounds the ranked output; 0 means unlimited.
// Panics if limit < 0.
func WithMaxResults(limit int) Option {
	if limit < 0 {
		panic(fmt.Sprintf("spgraph: WithMaxResults(%d): must be >= 0", limit))
	}
	return func(o *Options) { o.MaxResults = limit }
}

// WithTolerance sets the within-tolerance threshold in percent.
// Panics on negative or non-finite pct.
func WithTolerance(pct float64) Option {
	if pct < 0 || math.IsNaN(pct) || math.IsInf(pct, 0) {
		panic(fmt.Sprintf("spgraph: WithTolerance(%g): must be finite and >= 0", pct))
	}
	return func(o *Options) { o.TolerancePct = pct }
}

// WithIsomorphism swaps the isomorphism strategy. Panics on nil.
func WithIsomorphism(iso Isomorphism) Option {
	if iso == nil {
		panic("spgraph: WithIsomorphism(nil)")
	}
	return func(o *Options) { o.Isomorphism = iso }
}

// WithLogger routes debug traces to l; nil keeps the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
