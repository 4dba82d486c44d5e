// SPDX-License-Identifier: MIT

package laplacian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/capnet/matrix"
	"github.com/katalvlaran/capnet/network"
)

func TestSystem_SingularFallsBackToLeastSquares(t *testing.T) {
	lap, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, lap.Set(0, 0, 1))
	require.NoError(t, lap.Set(0, 1, -1))
	require.NoError(t, lap.Set(1, 0, -1))
	require.NoError(t, lap.Set(1, 1, 1))

	s := &system{size: 2, lap: lap, rhs: []float64{1, -1}}
	x, strategy := s.solve()
	assert.Equal(t, StrategyLeastSquares, strategy)
	assert.InDelta(t, 0.5, x[0], 1e-10)
	assert.InDelta(t, -0.5, x[1], 1e-10)
}

func TestSystem_IllConditionedRejectsLU(t *testing.T) {
	lap, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, lap.Set(0, 0, 1))
	require.NoError(t, lap.Set(1, 1, 1e-15))

	s := &system{size: 2, lap: lap, rhs: []float64{1, 0}}
	x, strategy := s.solve()
	assert.NotEqual(t, StrategyLU, strategy)
	assert.InDelta(t, 1.0, x[0], 1e-10)
}

func TestNewSystem_StampsReducedLaplacian(t *testing.T) {
	// A -2pF- 2 -1pF- B, plus 2 -1pF- 3 -2pF- B.
	g := network.New(2)
	for _, e := range []struct {
		from, to int
		v        float64
	}{{0, 2, 2}, {2, 1, 1}, {2, 3, 1}, {3, 1, 2}} {
		_, err := g.AddEdge(e.from, e.to, e.v*1e-12, network.NoCapacitor)
		require.NoError(t, err)
	}

	s, err := newSystem(g, network.TerminalA, network.TerminalB, g.Reachable(network.TerminalA))
	require.NoError(t, err)
	require.Equal(t, 2, s.size)
	assert.Equal(t, []int{-1, -1, 0, 1}, s.index)

	want := [][]float64{{2, -0.5}, {-0.5, 1.5}}
	for i, row := range want {
		assert.InDeltaSlice(t, row, s.lap.RawRow(i), 1e-12, "row %d", i)
	}
	assert.InDeltaSlice(t, []float64{1, 0}, s.rhs, 1e-12)
}

func TestNewSystem_NoInternalNodes(t *testing.T) {
	g := network.New(0)
	_, err := g.AddEdge(network.TerminalA, network.TerminalB, 1e-12, 0)
	require.NoError(t, err)

	s, err := newSystem(g, network.TerminalA, network.TerminalB, g.Reachable(network.TerminalA))
	require.NoError(t, err)
	assert.Zero(t, s.size)
	assert.Nil(t, s.lap)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-1e-30))
	assert.Equal(t, 2.0, clamp(2))
}
