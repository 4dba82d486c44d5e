// SPDX-License-Identifier: MIT

package laplacian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/capnet/laplacian"
	"github.com/katalvlaran/capnet/network"
)

const pF = 1e-12

// build creates a network with the given internal node count and edges
// given as {from, to, value} triples.
func build(t *testing.T, internal int, edges ...[3]float64) *network.Network {
	t.Helper()
	g := network.New(internal)
	for i, e := range edges {
		_, err := g.AddEdge(int(e[0]), int(e[1]), e[2], i)
		require.NoError(t, err)
	}

	return g
}

func TestSolve_Parallel(t *testing.T) {
	g := build(t, 0, [3]float64{0, 1, 1 * pF}, [3]float64{0, 1, 2 * pF})
	r, err := laplacian.Solve(g, network.TerminalA, network.TerminalB)
	require.NoError(t, err)
	assert.InDelta(t, 3*pF, r.Ceq, 1e-9*pF)
	assert.Equal(t, laplacian.StrategyNone, r.Strategy)
	assert.False(t, r.Disconnected)
}

func TestSolve_Series(t *testing.T) {
	g := build(t, 1, [3]float64{0, 2, 3 * pF}, [3]float64{2, 1, 6 * pF})
	r, err := laplacian.Solve(g, network.TerminalA, network.TerminalB)
	require.NoError(t, err)
	assert.InDelta(t, 2*pF, r.Ceq, 1e-9*pF)
	assert.Equal(t, laplacian.StrategyLU, r.Strategy)
	assert.False(t, r.Fallback)
	// Capacitive divider: V = C1/(C1+C2).
	assert.InDelta(t, 1.0/3.0, r.Voltages[2], 1e-12)
}

func TestSolve_Bridge(t *testing.T) {
	g := build(t, 2,
		[3]float64{0, 2, 1},
		[3]float64{0, 3, 2},
		[3]float64{2, 1, 2},
		[3]float64{3, 1, 1},
		[3]float64{2, 3, 5},
	)
	c, err := laplacian.Ceq(g)
	require.NoError(t, err)
	assert.InDelta(t, 19.0/13.0, c, 1e-12)
}

func TestSolve_BalancedBridgeCarriesNoCharge(t *testing.T) {
	g := build(t, 2,
		[3]float64{0, 2, 1},
		[3]float64{2, 1, 2},
		[3]float64{0, 3, 1},
		[3]float64{3, 1, 2},
		[3]float64{2, 3, 7},
	)
	r, err := laplacian.Solve(g, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, r.Ceq, 1e-12)
	assert.InDelta(t, r.Voltages[2], r.Voltages[3], 1e-12)
}

func TestSolve_DisconnectedIsExactlyZero(t *testing.T) {
	g := build(t, 1, [3]float64{0, 2, 1 * pF})
	r, err := laplacian.Solve(g, 0, 1)
	require.NoError(t, err)
	assert.True(t, r.Disconnected)
	assert.Equal(t, 0.0, r.Ceq)
	assert.Empty(t, r.Floating)
}

func TestSolve_FloatingNodesExcluded(t *testing.T) {
	g := build(t, 2,
		[3]float64{0, 1, 1},
		[3]float64{2, 3, 5},
	)
	r, err := laplacian.Solve(g, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.Ceq, 1e-15)
	assert.Equal(t, []int{2, 3}, r.Floating)
	assert.Equal(t, laplacian.StrategyNone, r.Strategy)
}

func TestSolve_DeadEndBranch(t *testing.T) {
	// A dangling capacitor off A charges to V_A and carries no current.
	g := build(t, 1,
		[3]float64{0, 1, 1},
		[3]float64{0, 2, 3},
	)
	r, err := laplacian.Solve(g, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.Ceq, 1e-12)
	assert.InDelta(t, 1.0, r.Voltages[2], 1e-12)
}

func TestSolve_ScaleInvariant(t *testing.T) {
	unit := build(t, 2,
		[3]float64{0, 2, 1},
		[3]float64{0, 3, 2},
		[3]float64{2, 1, 2},
		[3]float64{3, 1, 1},
		[3]float64{2, 3, 5},
	)
	pico := build(t, 2,
		[3]float64{0, 2, 1 * pF},
		[3]float64{0, 3, 2 * pF},
		[3]float64{2, 1, 2 * pF},
		[3]float64{3, 1, 1 * pF},
		[3]float64{2, 3, 5 * pF},
	)
	cu, err := laplacian.Ceq(unit)
	require.NoError(t, err)
	cp, err := laplacian.Ceq(pico)
	require.NoError(t, err)
	assert.InEpsilon(t, cu*pF, cp, 1e-12)
}

func TestSolve_SwappedTerminals(t *testing.T) {
	g := build(t, 1, [3]float64{0, 2, 3}, [3]float64{2, 1, 6}, [3]float64{0, 1, 1})
	ab, err := laplacian.Solve(g, 0, 1)
	require.NoError(t, err)
	ba, err := laplacian.Solve(g, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, ab.Ceq, ba.Ceq, 1e-12)
	assert.InDelta(t, 3.0, ab.Ceq, 1e-12)
}

func TestSolve_Errors(t *testing.T) {
	_, err := laplacian.Solve(nil, 0, 1)
	require.ErrorIs(t, err, laplacian.ErrNilGraph)

	g := network.New(0)
	_, err = laplacian.Solve(g, 0, 2)
	require.ErrorIs(t, err, laplacian.ErrTerminalOutOfRange)
	_, err = laplacian.Solve(g, 1, 1)
	require.ErrorIs(t, err, laplacian.ErrSameTerminal)
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "lu", laplacian.StrategyLU.String())
	assert.Equal(t, "least-squares", laplacian.StrategyLeastSquares.String())
	assert.Equal(t, "Strategy(9)", laplacian.Strategy(9).String())
}
