// SPDX-License-Identifier: MIT

package laplacian

import (
	"math"

	"github.com/katalvlaran/capnet/matrix"
	"github.com/katalvlaran/capnet/network"
)

// system is the reduced nodal equation L·V = rhs over active internal nodes.
type system struct {
	size  int
	index []int // node → row, or -1 for terminals and floating nodes
	lap   *matrix.Dense
	rhs   []float64
}

// newSystem stamps every edge of the A–B component. Weights are divided by
// the largest capacitance so the matrix entries are O(1) whatever the unit.
func newSystem(g *network.Network, a, b int, active []bool) (*system, error) {
	n := g.NodeCount()
	s := &system{index: make([]int, n)}
	for v := 0; v < n; v++ {
		s.index[v] = -1
		if v != a && v != b && active[v] {
			s.index[v] = s.size
			s.size++
		}
	}
	if s.size == 0 {
		return s, nil
	}

	edges := g.Edges()
	var scale float64
	for _, e := range edges {
		if e.Value > scale {
			scale = e.Value
		}
	}
	if scale <= 0 || math.IsInf(scale, 0) {
		scale = 1
	}

	data := make([]float64, s.size*s.size)
	stamp := func(i, j int, w float64) { data[i*s.size+j] += w }
	s.rhs = make([]float64, s.size)
	var (
		w      float64
		ru, rv int
	)
	for _, e := range edges {
		if !active[e.From] {
			continue
		}
		w = e.Value / scale
		ru, rv = s.index[e.From], s.index[e.To]
		if ru >= 0 {
			stamp(ru, ru, w)
		}
		if rv >= 0 {
			stamp(rv, rv, w)
		}
		switch {
		case ru >= 0 && rv >= 0:
			stamp(ru, rv, -w)
			stamp(rv, ru, -w)
		case ru >= 0 && e.To == a:
			s.rhs[ru] += w
		case rv >= 0 && e.From == a:
			s.rhs[rv] += w
		}
	}

	lap, err := matrix.NewDenseFrom(s.size, s.size, data)
	if err != nil {
		return nil, err
	}
	s.lap = lap

	return s, nil
}

// solve runs LU first and walks the fallback chain when LU is rejected.
// It always returns a vector of length size.
func (s *system) solve() ([]float64, Strategy) {
	if f, err := matrix.Factorize(s.lap); err == nil && f.PivotRatio() >= PivotRatioThreshold {
		if x, err := f.Solve(s.rhs); err == nil && s.accept(x) {
			return x, StrategyLU
		}
	}
	if x, err := matrix.LeastSquares(s.lap, s.rhs, matrix.DefaultRCond); err == nil && finite(x) {
		return x, StrategyLeastSquares
	}
	if x, err := matrix.SymmetricPseudoSolve(s.lap, s.rhs, matrix.DefaultRCond); err == nil && finite(x) {
		return x, StrategyPseudoInverse
	}

	return make([]float64, s.size), StrategyPseudoInverse
}

// accept checks ‖L·x − rhs‖∞ ≤ residualTol · (‖L‖∞·‖x‖∞ + ‖rhs‖∞).
func (s *system) accept(x []float64) bool {
	if !finite(x) {
		return false
	}
	lx, err := matrix.MatVec(s.lap, x)
	if err != nil {
		return false
	}

	var resid, xNorm, bNorm, lNorm, row float64
	for i := 0; i < s.size; i++ {
		resid = math.Max(resid, math.Abs(lx[i]-s.rhs[i]))
		xNorm = math.Max(xNorm, math.Abs(x[i]))
		bNorm = math.Max(bNorm, math.Abs(s.rhs[i]))
		row = 0
		for _, v := range s.lap.RawRow(i) {
			row += math.Abs(v)
		}
		lNorm = math.Max(lNorm, row)
	}

	return resid <= residualTol*(lNorm*xNorm+bNorm)
}

func finite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
