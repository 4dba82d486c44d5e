// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/capnet/sp"
	"github.com/katalvlaran/capnet/spgraph"
)

// DefaultWarnAbove is the exhaustive candidate count above which
// Preflight warns when Config.WarnAbove is zero.
const DefaultWarnAbove uint64 = 1_000_000

// ComplexityWarning is the advisory returned by Preflight. It implements
// error so callers may log it or abort, but Run never fails because of it.
type ComplexityWarning struct {
	Method     Method
	Capacitors int

	// Limit is the recommended maximum capacitor count, or 0 when the
	// warning is driven by Estimate alone.
	Limit int

	// Estimate is the number of candidates the exhaustive method would
	// visit; 0 when unknown.
	Estimate uint64
}

// Error implements error.
func (w *ComplexityWarning) Error() string {
	if w.Limit > 0 {
		return fmt.Sprintf("search: %s with %d capacitors exceeds the recommended %d",
			w.Method, w.Capacitors, w.Limit)
	}

	return fmt.Sprintf("search: %s with %d capacitors visits about %d candidates",
		w.Method, w.Capacitors, w.Estimate)
}

// Preflight estimates the cost of cfg without running it and returns a
// warning when an exhaustive method is likely to be slow, or nil.
// MethodHeuristic never warns: its cost is bounded by Iterations.
func Preflight(cfg Config) *ComplexityWarning {
	n := len(cfg.Capacitors)
	limit := cfg.WarnAbove
	if limit == 0 {
		limit = DefaultWarnAbove
	}

	switch cfg.Method {
	case MethodSP:
		if est := sp.Count(n, cfg.Partition); est > limit {
			return &ComplexityWarning{Method: cfg.Method, Capacitors: n, Estimate: est}
		}
	case MethodSPGraph:
		if n > spgraph.RecommendedMaxCapacitors {
			return &ComplexityWarning{Method: cfg.Method, Capacitors: n, Limit: spgraph.RecommendedMaxCapacitors}
		}
	}

	return nil
}
