// SPDX-License-Identifier: MIT

package laplacian

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/capnet/network"
)

// Sentinel errors for structurally invalid requests.
var (
	// ErrNilGraph is returned when a nil network is passed.
	ErrNilGraph = errors.New("laplacian: network is nil")

	// ErrTerminalOutOfRange is returned when a terminal index is outside the node arena.
	ErrTerminalOutOfRange = errors.New("laplacian: terminal out of range")

	// ErrSameTerminal is returned when both terminals name the same node.
	ErrSameTerminal = errors.New("laplacian: terminals must differ")
)

// PivotRatioThreshold is the smallest acceptable min/max LU pivot ratio
// before the solver switches to the least-squares path.
const PivotRatioThreshold = 1e-13

// residualTol bounds the relative residual of an accepted solution.
const residualTol = 1e-9

// Strategy identifies which linear solve produced the node voltages.
type Strategy int

const (
	// StrategyNone means no solve was needed (no internal nodes, or disconnected).
	StrategyNone Strategy = iota
	// StrategyLU is the primary pivoted LU solve.
	StrategyLU
	// StrategyLeastSquares is the SVD minimum-norm fallback.
	StrategyLeastSquares
	// StrategyPseudoInverse is the Jacobi eigen fallback.
	StrategyPseudoInverse
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyLU:
		return "lu"
	case StrategyLeastSquares:
		return "least-squares"
	case StrategyPseudoInverse:
		return "pseudo-inverse"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Result is the outcome of one Solve.
type Result struct {
	// Ceq is the equivalent capacitance in farads, finite and >= 0.
	Ceq float64

	// Disconnected is true when no path joins the terminals; Ceq is then 0.
	Disconnected bool

	// Floating lists nodes outside the terminals' component, ascending.
	Floating []int

	// Fallback is true when the primary LU solve was rejected.
	Fallback bool

	// Strategy names the solve that produced Voltages.
	Strategy Strategy

	// Voltages holds the potential of every node (A = 1, B = 0). Floating
	// nodes and every node of a disconnected network read 0.
	Voltages []float64
}

// Solve returns the equivalent capacitance of g between terminals a and b.
//
// Errors:
//   - ErrNilGraph, ErrTerminalOutOfRange, ErrSameTerminal.
//
// Determinism:
//   - Internal nodes are numbered in ascending index order; edges are
//     stamped in edge-index order.
func Solve(g *network.Network, a, b int) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.NodeCount()
	if a < 0 || a >= n || b < 0 || b >= n {
		return Result{}, fmt.Errorf("Solve: terminals (%d,%d) with %d nodes: %w", a, b, n, ErrTerminalOutOfRange)
	}
	if a == b {
		return Result{}, fmt.Errorf("Solve: terminal %d: %w", a, ErrSameTerminal)
	}

	res := Result{Voltages: make([]float64, n)}
	reach := g.Reachable(a)
	if !reach[b] {
		res.Disconnected = true
		res.Floating = floating(g.Reachable(a, b))

		return res, nil
	}
	res.Floating = floating(reach)
	res.Voltages[a] = 1

	s, err := newSystem(g, a, b, reach)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	if s.size > 0 {
		x, strategy := s.solve()
		res.Strategy = strategy
		res.Fallback = strategy != StrategyLU
		for v, row := range s.index {
			if row >= 0 {
				res.Voltages[v] = x[row]
			}
		}
	}

	edges := g.Edges()
	var ceq float64
	for _, id := range g.Incident(a) {
		ceq += edges[id].Value * (1 - res.Voltages[edges[id].Other(a)])
	}
	res.Ceq = clamp(ceq)

	return res, nil
}

// Ceq is Solve between network.TerminalA and network.TerminalB, reporting
// only the capacitance.
func Ceq(g *network.Network) (float64, error) {
	r, err := Solve(g, network.TerminalA, network.TerminalB)
	if err != nil {
		return 0, err
	}

	return r.Ceq, nil
}

// floating lists the nodes not marked in reach.
func floating(reach []bool) []int {
	var out []int
	for v, ok := range reach {
		if !ok {
			out = append(out, v)
		}
	}

	return out
}

// clamp maps NaN, ±Inf and negative round-off to a finite non-negative value.
func clamp(c float64) float64 {
	if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
		return 0
	}

	return c
}
