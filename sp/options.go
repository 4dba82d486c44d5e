// SPDX-License-Identifier: MIT

package sp

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/capnet/progress"
)

// Option configures Enumerate and Solve.
// Constructors panic on meaningless input; Solve itself never panics.
type Option func(*Options)

// Options holds the tunables of an SP enumeration.
type Options struct {
	// Partition selects the split policy (default Contiguous).
	Partition PartitionMode

	// Ctx is polled at every progress checkpoint.
	Ctx context.Context

	// Progress receives (trees processed, trees planned, best error).
	Progress progress.Func

	// ProgressEvery is the reporting cadence in trees.
	ProgressEvery int

	// MaxResults bounds the ranked output; 0 keeps every tree.
	MaxResults int

	// TolerancePct flags solutions whose relative error is within it.
	TolerancePct float64
}

// DefaultOptions returns Contiguous splits, a background context, no
// progress callback, reports every progress.DefaultEvery trees, unlimited
// results, and a 5% tolerance.
func DefaultOptions() Options {
	return Options{
		Partition:     Contiguous,
		Ctx:           context.Background(),
		ProgressEvery: progress.DefaultEvery,
		TolerancePct:  5,
	}
}

// WithPartition selects the split policy.
func WithPartition(m PartitionMode) Option {
	if m != Contiguous && m != Subsets {
		panic(fmt.Sprintf("sp: WithPartition(%d): unknown mode", int(m)))
	}
	return func(o *Options) { o.Partition = m }
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

// WithProgressEvery sets the reporting cadence. Panics if every < 1.
func WithProgressEvery(every int) Option {
	if every < 1 {
		panic(fmt.Sprintf("sp: WithProgressEvery(%d): must be >= 1", every))
	}
	return func(o *Options) { o.ProgressEvery = every }
}

// WithMaxResults bounds the ranked output; 0 means unlimited.
// Panics if limit < 0.
func WithMaxResults(limit int) Option {
	if limit < 0 {
		panic(fmt.Sprintf("sp: WithMaxResults(%d): must be >= 0", limit))
	}
	return func(o *Options) { o.MaxResults = limit }
}

// WithTolerance sets the within-tolerance threshold in percent.
// Panics on negative or non-finite pct.
func WithTolerance(pct float64) Option {
	if pct < 0 || math.IsNaN(pct) || math.IsInf(pct, 0) {
		panic(fmt.Sprintf("sp: WithTolerance(%g): must be finite and >= 0", pct))
	}
	return func(o *Options) { o.TolerancePct = pct }
}
