// SPDX-License-Identifier: MIT

package metrics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/capnet/metrics"
)

type label string

func (l label) Family() string { return "test" }
func (l label) String() string { return string(l) }

func TestComputeError(t *testing.T) {
	abs, rel := metrics.ComputeError(0.9, 1.0)
	assert.InDelta(t, 0.1, abs, 1e-15)
	assert.InDelta(t, 0.1, rel, 1e-15)

	abs, rel = metrics.ComputeError(2e-12, 0)
	assert.Equal(t, 2e-12, abs)
	assert.True(t, math.IsInf(rel, 1))
	assert.Equal(t, metrics.RelativeErrorUndefined, rel)

	_, rel = metrics.ComputeError(1, -3)
	assert.True(t, math.IsInf(rel, 1))
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, metrics.WithinTolerance(0.05, 5))
	assert.True(t, metrics.WithinTolerance(0, 0))
	assert.False(t, metrics.WithinTolerance(0.0501, 5))
	assert.False(t, metrics.WithinTolerance(metrics.RelativeErrorUndefined, 100))
	assert.False(t, metrics.WithinTolerance(math.NaN(), 100))
}

func TestValidateTarget(t *testing.T) {
	require.NoError(t, metrics.ValidateTarget(0))
	require.NoError(t, metrics.ValidateTarget(1e-12))
	for _, bad := range []float64{-1e-12, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, metrics.ValidateTarget(bad), metrics.ErrBadTarget, "target %g", bad)
	}
}

func TestNewSolution_ZeroTarget(t *testing.T) {
	s := metrics.NewSolution(label("x"), 1e-12, 0, 100, 3)
	assert.Equal(t, 1e-12, s.AbsoluteError)
	assert.True(t, math.IsInf(s.RelativeError, 1))
	assert.False(t, s.WithinTolerance)
	assert.Equal(t, 3, s.Order)
}

func TestRank_OrderAndIdempotence(t *testing.T) {
	sols := []metrics.Solution{
		metrics.NewSolution(label("c"), 3, 1.5, 5, 1),
		metrics.NewSolution(label("b"), 2.0/3.0, 1.5, 5, 0),
		metrics.NewSolution(label("d"), 0, 1.5, 5, 2),
		metrics.NewSolution(label("e"), 3, 1.5, 5, 3),
	}
	ranked := metrics.Rank(sols)
	order := []string{}
	for _, s := range ranked {
		order = append(order, s.Topology.String())
	}
	assert.Equal(t, []string{"b", "c", "d", "e"}, order)

	again := metrics.Rank(append([]metrics.Solution(nil), ranked...))
	assert.Equal(t, ranked, again)
}

func TestTruncate(t *testing.T) {
	sols := make([]metrics.Solution, 5)
	assert.Len(t, metrics.Truncate(sols, 2), 2)
	assert.Len(t, metrics.Truncate(sols, 0), 5)
	assert.Len(t, metrics.Truncate(sols, 9), 5)
}

type CollectorSuite struct {
	suite.Suite
}

func (s *CollectorSuite) TestBoundedKeepsBest() {
	c := metrics.NewCollector(2)
	s.True(c.Add(metrics.NewSolution(label("a"), 5, 1, 0, 0)))
	s.True(c.Add(metrics.NewSolution(label("b"), 2, 1, 0, 1)))
	s.True(c.Add(metrics.NewSolution(label("c"), 1.5, 1, 0, 2)))
	s.False(c.Add(metrics.NewSolution(label("d"), 9, 1, 0, 3)))
	// Same error as the worst kept but later: rejected.
	s.False(c.Add(metrics.NewSolution(label("e"), 2, 1, 0, 4)))

	sols := c.Solutions()
	s.Require().Len(sols, 2)
	s.Equal("c", sols[0].Topology.String())
	s.Equal("b", sols[1].Topology.String())
	s.Equal(0.5, c.BestError())
	s.Equal(5, c.Offered())
}

func (s *CollectorSuite) TestUnboundedMatchesRank() {
	c := metrics.NewCollector(0)
	values := []float64{4, 1, 3, 1, 2}
	var all []metrics.Solution
	for i, v := range values {
		sol := metrics.NewSolution(label("x"), v, 2, 0, i)
		all = append(all, sol)
		c.Add(sol)
	}
	s.Equal(metrics.Rank(all), c.Solutions())
}

func (s *CollectorSuite) TestUniqueDropsRepeats() {
	c := metrics.NewCollector(3).Unique()
	s.True(c.Add(metrics.NewSolution(label("same"), 1, 1, 0, 0)))
	s.False(c.Add(metrics.NewSolution(label("same"), 1, 1, 0, 1)))
	s.True(c.Add(metrics.NewSolution(label("other"), 1, 1, 0, 2)))
	s.Equal(2, c.Len())
}

func (s *CollectorSuite) TestEmpty() {
	c := metrics.NewCollector(1)
	s.True(math.IsInf(c.BestError(), 1))
	s.Empty(c.Solutions())
}

func TestCollectorSuite(t *testing.T) {
	suite.Run(t, new(CollectorSuite))
}

func TestResult_Helpers(t *testing.T) {
	r := metrics.Result{Solutions: []metrics.Solution{
		metrics.NewSolution(label("a"), 1.0, 1.0, 1, 0),
		metrics.NewSolution(label("b"), 1.5, 1.0, 1, 1),
	}}
	best, ok := r.Best()
	require.True(t, ok)
	assert.Equal(t, "a", best.Topology.String())
	assert.Len(t, r.WithinTolerance(), 1)
	assert.Equal(t, []float64{1.0, 1.5}, r.Values())

	_, ok = metrics.Result{}.Best()
	assert.False(t, ok)
}
