// SPDX-License-Identifier: MIT

// Package metrics scores candidate networks against a target capacitance and
// ranks them deterministically.
//
// Every search in capnet funnels its candidates through NewSolution and a
// Collector, so all methods share one error definition, one tolerance rule,
// and one ordering: ascending absolute error, ties broken by generation
// order. Ranking never depends on map iteration or pointer identity.
package metrics

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// RelativeErrorUndefined is the relative error reported when the target is
// not positive. Such solutions never count as within tolerance.
var RelativeErrorUndefined = math.Inf(1)

// ErrBadTarget is returned for a negative or non-finite target.
var ErrBadTarget = errors.New("metrics: target must be finite and >= 0")

// ValidateTarget rejects targets the error metrics cannot order: NaN,
// ±Inf and negative values.
func ValidateTarget(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) || target < 0 {
		return fmt.Errorf("target %g: %w", target, ErrBadTarget)
	}

	return nil
}

// Topology describes a candidate network for rendering and deduplication.
// sp trees and network descriptors both satisfy it.
type Topology interface {
	// Family names the descriptor kind ("sp", "graph").
	Family() string
	// String is a canonical, human-readable rendering.
	String() string
}

// Solution is one scored candidate. It is immutable once produced.
type Solution struct {
	Topology        Topology
	Ceq             float64 // equivalent capacitance, farads
	AbsoluteError   float64 // |Ceq - target|
	RelativeError   float64 // AbsoluteError / target, or RelativeErrorUndefined
	WithinTolerance bool
	Disconnected    bool // no A–B path; Ceq is 0
	Order           int  // generation index, the ranking tie-breaker
}

// ComputeError returns the absolute and relative error of ceq against target.
// A target <= 0 yields RelativeErrorUndefined for the relative part; the
// absolute error is always |ceq - target|.
func ComputeError(ceq, target float64) (abs, rel float64) {
	abs = math.Abs(ceq - target)
	if target <= 0 {
		return abs, RelativeErrorUndefined
	}

	return abs, abs / target
}

// WithinTolerance reports whether rel, expressed as a percentage, is within
// pct. Undefined or non-finite relative errors are never within tolerance.
func WithinTolerance(rel, pct float64) bool {
	if math.IsNaN(rel) || math.IsInf(rel, 0) {
		return false
	}

	return rel*100 <= pct
}

// NewSolution scores topology t with equivalent capacitance ceq.
func NewSolution(t Topology, ceq, target, tolerancePct float64, order int) Solution {
	abs, rel := ComputeError(ceq, target)

	return Solution{
		Topology:        t,
		Ceq:             ceq,
		AbsoluteError:   abs,
		RelativeError:   rel,
		WithinTolerance: WithinTolerance(rel, tolerancePct),
		Order:           order,
	}
}

// Less is the ranking order: smaller absolute error first, then smaller
// Order.
func Less(a, b Solution) bool {
	if a.AbsoluteError != b.AbsoluteError {
		return a.AbsoluteError < b.AbsoluteError
	}

	return a.Order < b.Order
}

// Rank sorts sols in place by Less and returns it. Ranking an already ranked
// slice leaves it unchanged.
// Complexity: O(n log n).
func Rank(sols []Solution) []Solution {
	sort.SliceStable(sols, func(i, j int) bool { return Less(sols[i], sols[j]) })

	return sols
}

// Truncate returns the first limit entries of sols; limit <= 0 keeps all.
func Truncate(sols []Solution, limit int) []Solution {
	if limit <= 0 || len(sols) <= limit {
		return sols
	}

	return sols[:limit]
}
