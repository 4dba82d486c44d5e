// SPDX-License-Identifier: MIT

package heuristic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/capnet/progress"
)

// Sentinel errors for invalid Options. Search returns them wrapped.
var (
	// ErrBadIterations is returned when Options.Iterations < 1.
	ErrBadIterations = errors.New("heuristic: iterations must be >= 1")

	// ErrBadInternalNodes is returned when Options.MaxInternalNodes < 0.
	ErrBadInternalNodes = errors.New("heuristic: max internal nodes must be >= 0")

	// ErrBadMaxResults is returned when Options.MaxResults < 0.
	ErrBadMaxResults = errors.New("heuristic: max results must be >= 0")

	// ErrBadTolerance is returned for a negative or non-finite TolerancePct.
	ErrBadTolerance = errors.New("heuristic: tolerance must be finite and >= 0")

	// ErrBadProgressEvery is returned when Options.ProgressEvery < 0.
	ErrBadProgressEvery = errors.New("heuristic: progress cadence must be >= 0")
)

// Defaults used by DefaultOptions.
const (
	DefaultIterations       = 2000
	DefaultMaxInternalNodes = 3
	DefaultMaxResults       = 10
	DefaultTolerancePct     = 5
)

// Options configures Search.
//
// Zero-value hints:
//   - Seed == 0 selects a fixed default seed, never a time-based one.
//   - MaxResults == 0 keeps every distinct network.
//   - ProgressEvery == 0 uses progress.DefaultEvery.
//   - Ctx == nil means context.Background().
//   - Logger == nil discards debug traces.
type Options struct {
	Iterations       int   // random networks to evaluate
	MaxInternalNodes int   // k is drawn uniformly from [0, MaxInternalNodes]
	Seed             int64 // the single random stream of the run

	MaxResults   int
	TolerancePct float64

	Progress      progress.Func
	ProgressEvery int
	Ctx           context.Context

	Logger *slog.Logger
}

// DefaultOptions returns DefaultIterations iterations over up to
// DefaultMaxInternalNodes internal nodes, seed 0, the best
// DefaultMaxResults networks and a 5% tolerance.
func DefaultOptions() Options {
	return Options{
		Iterations:       DefaultIterations,
		MaxInternalNodes: DefaultMaxInternalNodes,
		MaxResults:       DefaultMaxResults,
		TolerancePct:     DefaultTolerancePct,
		ProgressEvery:    progress.DefaultEvery,
		Ctx:              context.Background(),
	}
}

// validateOptions checks opts without looking at the capacitors.
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch {
	case opts.Iterations < 1:
		return fmt.Errorf("Search: Iterations=%d: %w", opts.Iterations, ErrBadIterations)
	case opts.MaxInternalNodes < 0:
		return fmt.Errorf("Search: MaxInternalNodes=%d: %w", opts.MaxInternalNodes, ErrBadInternalNodes)
	case opts.MaxResults < 0:
		return fmt.Errorf("Search: MaxResults=%d: %w", opts.MaxResults, ErrBadMaxResults)
	case opts.TolerancePct < 0 || math.IsNaN(opts.TolerancePct) || math.IsInf(opts.TolerancePct, 0):
		return fmt.Errorf("Search: TolerancePct=%g: %w", opts.TolerancePct, ErrBadTolerance)
	case opts.ProgressEvery < 0:
		return fmt.Errorf("Search: ProgressEvery=%d: %w", opts.ProgressEvery, ErrBadProgressEvery)
	}

	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}
