// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/capnet/heuristic"
	"github.com/katalvlaran/capnet/metrics"
	"github.com/katalvlaran/capnet/sp"
	"github.com/katalvlaran/capnet/spgraph"
)

// Result is the ranked output of Run plus the method that produced it and
// the pre-flight advisory, if any.
type Result struct {
	metrics.Result
	Method  Method
	Warning *ComplexityWarning
}

// Run validates cfg, attaches Preflight's advisory, and dispatches to the
// selected engine. A warning never stops the run.
//
// Errors: those of Validate; engine errors are wrapped unchanged.
func Run(cfg Config) (Result, error) {
	if err := Validate(cfg); err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	out := Result{Method: cfg.Method, Warning: Preflight(cfg)}
	if out.Warning != nil && cfg.Logger != nil {
		cfg.Logger.Warn("search: complexity", "method", cfg.Method, "warning", out.Warning.Error())
	}

	var (
		res metrics.Result
		err error
	)
	switch cfg.Method {
	case MethodSP:
		res, err = sp.Solve(cfg.Capacitors, cfg.Target, spOptions(cfg)...)
	case MethodSPGraph:
		res, err = spgraph.Solve(cfg.Capacitors, cfg.Target, spgraphOptions(cfg)...)
	case MethodHeuristic:
		res, err = heuristic.Search(cfg.Capacitors, cfg.Target, heuristicOptions(cfg))
	}
	if err != nil {
		return Result{}, fmt.Errorf("Run: %s: %w", cfg.Method, err)
	}
	out.Result = res

	return out, nil
}

func spOptions(cfg Config) []sp.Option {
	opts := []sp.Option{
		sp.WithPartition(cfg.Partition),
		sp.WithContext(cfg.Ctx),
		sp.WithProgress(cfg.Progress),
		sp.WithMaxResults(cfg.MaxResults),
		sp.WithTolerance(cfg.TolerancePct),
	}
	if cfg.ProgressEvery > 0 {
		opts = append(opts, sp.WithProgressEvery(cfg.ProgressEvery))
	}

	return opts
}

func spgraphOptions(cfg Config) []spgraph.Option {
	opts := []spgraph.Option{
		spgraph.WithContext(cfg.Ctx),
		spgraph.WithProgress(cfg.Progress),
		spgraph.WithMaxResults(cfg.MaxResults),
		spgraph.WithTolerance(cfg.TolerancePct),
		spgraph.WithLogger(cfg.Logger),
	}
	if cfg.ProgressEvery > 0 {
		opts = append(opts, spgraph.WithProgressEvery(cfg.ProgressEvery))
	}

	return opts
}

func heuristicOptions(cfg Config) heuristic.Options {
	o := heuristic.DefaultOptions()
	o.Iterations = cfg.Iterations
	o.MaxInternalNodes = cfg.MaxInternalNodes
	o.Seed = cfg.Seed
	o.MaxResults = cfg.MaxResults
	o.TolerancePct = cfg.TolerancePct
	o.Progress = cfg.Progress
	if cfg.ProgressEvery > 0 {
		o.ProgressEvery = cfg.ProgressEvery
	}
	if cfg.Ctx != nil {
		o.Ctx = cfg.Ctx
	}
	o.Logger = cfg.Logger

	return o
}
