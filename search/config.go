// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/capnet/heuristic"
	"github.com/katalvlaran/capnet/metrics"
	"github.com/katalvlaran/capnet/network"
	"github.com/katalvlaran/capnet/progress"
	"github.com/katalvlaran/capnet/sp"
)

// Sentinel errors for an invalid Config.
var (
	// ErrUnknownMethod is returned for a Method outside the defined set or
	// an unrecognised method name.
	ErrUnknownMethod = errors.New("search: unknown method")

	// ErrBadTarget is returned for a negative or non-finite target. It is the
	// engines' own sentinel, so errors.Is matches either way.
	ErrBadTarget = metrics.ErrBadTarget

	// ErrBadTolerance is returned for a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("search: tolerance must be finite and >= 0")

	// ErrBadMaxResults is returned when MaxResults < 0.
	ErrBadMaxResults = errors.New("search: max results must be >= 0")

	// ErrBadPartition is returned for an undefined sp.PartitionMode.
	ErrBadPartition = errors.New("search: unknown partition mode")

	// ErrBadProgressEvery is returned when ProgressEvery < 0.
	ErrBadProgressEvery = errors.New("search: progress cadence must be >= 0")
)

// Method selects the search engine.
type Method int

const (
	// MethodSP enumerates series-parallel expression trees (package sp).
	MethodSP Method = iota
	// MethodSPGraph enumerates SP-reducible multigraphs (package spgraph).
	MethodSPGraph
	// MethodHeuristic samples random networks (package heuristic).
	MethodHeuristic
)

var methodNames = map[Method]string{
	MethodSP:        "sp",
	MethodSPGraph:   "spgraph",
	MethodHeuristic: "heuristic",
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps "sp", "spgraph" or "heuristic" to its Method.
func ParseMethod(name string) (Method, error) {
	m, ok := lo.FindKey(methodNames, name)
	if !ok {
		return 0, fmt.Errorf("ParseMethod: %q: %w", name, ErrUnknownMethod)
	}

	return m, nil
}

// Config describes one search request.
type Config struct {
	Target       float64 // farads
	TolerancePct float64
	Capacitors   []network.Capacitor
	MaxResults   int // 0 keeps everything
	Method       Method

	// Heuristic parameters.
	Iterations       int
	MaxInternalNodes int
	Seed             int64

	// SP parameter.
	Partition sp.PartitionMode

	// WarnAbove is the estimated number of exhaustive candidates above
	// which Preflight warns; 0 selects DefaultWarnAbove.
	WarnAbove uint64

	Progress      progress.Func
	ProgressEvery int // 0 selects the engine default
	Ctx           context.Context
	Logger        *slog.Logger
}

// DefaultConfig returns a Config for MethodSP with a 5% tolerance, the
// best 10 results, and the heuristic defaults filled in. Target and
// Capacitors are left for the caller.
func DefaultConfig() Config {
	h := heuristic.DefaultOptions()

	return Config{
		TolerancePct:     h.TolerancePct,
		MaxResults:       h.MaxResults,
		Method:           MethodSP,
		Iterations:       h.Iterations,
		MaxInternalNodes: h.MaxInternalNodes,
		Partition:        sp.Contiguous,
		Ctx:              context.Background(),
	}
}

// Validate rejects a Config that no engine could run.
//
// Errors:
//   - network.ErrNoCapacitors, network.ErrNonPositiveValue,
//     network.ErrNonFiniteValue.
//   - ErrUnknownMethod, ErrBadTarget, ErrBadTolerance, ErrBadMaxResults,
//     ErrBadPartition, ErrBadProgressEvery.
//   - heuristic.ErrBadIterations and heuristic.ErrBadInternalNodes for
//     MethodHeuristic.
//   - sp.ErrTooManyCapacitors for MethodSP.
func Validate(cfg Config) error {
	if err := network.ValidateCapacitors(cfg.Capacitors); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if _, ok := methodNames[cfg.Method]; !ok {
		return fmt.Errorf("Validate: %v: %w", cfg.Method, ErrUnknownMethod)
	}
	if err := metrics.ValidateTarget(cfg.Target); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if !finiteNonNegative(cfg.TolerancePct) {
		return fmt.Errorf("Validate: tolerance %g: %w", cfg.TolerancePct, ErrBadTolerance)
	}
	if cfg.MaxResults < 0 {
		return fmt.Errorf("Validate: max results %d: %w", cfg.MaxResults, ErrBadMaxResults)
	}
	switch cfg.Method {
	case MethodSP:
		if cfg.Partition != sp.Contiguous && cfg.Partition != sp.Subsets {
			return fmt.Errorf("Validate: partition %d: %w", int(cfg.Partition), ErrBadPartition)
		}
		if len(cfg.Capacitors) > sp.MaxCapacitors {
			return fmt.Errorf("Validate: %d capacitors: %w", len(cfg.Capacitors), sp.ErrTooManyCapacitors)
		}
	case MethodHeuristic:
		if cfg.Iterations < 1 {
			return fmt.Errorf("Validate: iterations %d: %w", cfg.Iterations, heuristic.ErrBadIterations)
		}
		if cfg.MaxInternalNodes < 0 {
			return fmt.Errorf("Validate: internal nodes %d: %w", cfg.MaxInternalNodes, heuristic.ErrBadInternalNodes)
		}
	}
	if cfg.ProgressEvery < 0 {
		return fmt.Errorf("Validate: progress cadence %d: %w", cfg.ProgressEvery, ErrBadProgressEvery)
	}

	return nil
}

func finiteNonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
