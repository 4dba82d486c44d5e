// SPDX-License-Identifier: MIT

package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/capnet/network"
)

func TestSpanningTree_PathFirst(t *testing.T) {
	rng := rngFromSeed(7)
	for trial := 0; trial < 50; trial++ {
		k := trial % 5
		edges := spanningTree(rng, k)
		require.Len(t, edges, k+1)

		// The leading edges walk from A to B.
		require.Equal(t, network.TerminalA, edges[0][0])
		pathEnd := 0
		for edges[pathEnd][1] != network.TerminalB {
			require.Equal(t, edges[pathEnd][1], edges[pathEnd+1][0])
			pathEnd++
		}

		g := network.New(k)
		for _, e := range edges {
			_, err := g.AddEdge(e[0], e[1], 1, network.NoCapacitor)
			require.NoError(t, err)
		}
		assert.True(t, g.IsConnected(), "k=%d edges=%v", k, edges)
	}
}

func TestRandomNetwork_UsesEveryCapacitorOnce(t *testing.T) {
	caps := network.Capacitors(1, 2, 3, 4, 5)
	rng := rngFromSeed(3)
	for trial := 0; trial < 50; trial++ {
		g, err := randomNetwork(rng, caps, 4)
		require.NoError(t, err)
		require.Equal(t, len(caps), g.EdgeCount())
		used := map[int]bool{}
		for _, e := range g.Edges() {
			assert.False(t, used[e.Capacitor])
			used[e.Capacitor] = true
			assert.Equal(t, caps[e.Capacitor].Value, e.Value)
		}
	}
}

func TestOtherNode_NeverSame(t *testing.T) {
	rng := rngFromSeed(0)
	for i := 0; i < 200; i++ {
		n := 2 + i%4
		u := i % n
		v := otherNode(rng, n, u)
		assert.NotEqual(t, u, v)
		assert.True(t, v >= 0 && v < n)
	}
}
