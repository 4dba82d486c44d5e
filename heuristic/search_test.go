// SPDX-License-Identifier: MIT

package heuristic_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/capnet/heuristic"
	"github.com/katalvlaran/capnet/metrics"
	"github.com/katalvlaran/capnet/network"
	"github.com/katalvlaran/capnet/progress"
)

const pF = 1e-12

func opts(mutate func(*heuristic.Options)) heuristic.Options {
	o := heuristic.DefaultOptions()
	o.Iterations = 300
	if mutate != nil {
		mutate(&o)
	}

	return o
}

func TestSearch_Deterministic(t *testing.T) {
	caps := network.Capacitors(3*pF, 2*pF, 3*pF, 1*pF)
	o := opts(func(o *heuristic.Options) { o.Seed = 42 })

	first, err := heuristic.Search(caps, 1*pF, o)
	require.NoError(t, err)
	second, err := heuristic.Search(caps, 1*pF, o)
	require.NoError(t, err)

	require.NotEmpty(t, first.Solutions)
	assert.Equal(t, first, second)
	for i := range first.Solutions {
		assert.Equal(t, math.Float64bits(first.Solutions[i].Ceq), math.Float64bits(second.Solutions[i].Ceq))
	}
}

func TestSearch_ZeroSeedIsFixed(t *testing.T) {
	caps := network.Capacitors(1*pF, 2*pF, 3*pF)
	zero, err := heuristic.Search(caps, 1*pF, opts(nil))
	require.NoError(t, err)
	one, err := heuristic.Search(caps, 1*pF, opts(func(o *heuristic.Options) { o.Seed = 1 }))
	require.NoError(t, err)
	assert.Equal(t, zero.Solutions, one.Solutions)
}

func TestSearch_RankedBoundedAndComplete(t *testing.T) {
	caps := network.Capacitors(1*pF, 2.2*pF, 4.7*pF, 10*pF)
	res, err := heuristic.Search(caps, 3*pF, opts(func(o *heuristic.Options) { o.MaxResults = 7 }))
	require.NoError(t, err)
	require.Len(t, res.Solutions, 7)
	assert.Equal(t, 300, res.Processed)
	assert.Equal(t, 300, res.Total)

	assert.Equal(t, res.Solutions, metrics.Rank(append([]metrics.Solution(nil), res.Solutions...)))
	seen := map[string]bool{}
	for _, s := range res.Solutions {
		d, ok := s.Topology.(network.Descriptor)
		require.True(t, ok)
		assert.Len(t, d.Edges, len(caps))
		assert.Equal(t, network.FamilyGraph, s.Topology.Family())
		assert.False(t, seen[d.String()], "duplicate %s", d)
		seen[d.String()] = true
		assert.False(t, math.IsNaN(s.Ceq))
		assert.GreaterOrEqual(t, s.Ceq, 0.0)
	}
}

func TestSearch_NoInternalNodesIsParallel(t *testing.T) {
	caps := network.Capacitors(1*pF, 2*pF, 3*pF)
	res, err := heuristic.Search(caps, 6*pF, opts(func(o *heuristic.Options) {
		o.MaxInternalNodes = 0
		o.MaxResults = 0
	}))
	require.NoError(t, err)
	require.NotEmpty(t, res.Solutions)
	assert.LessOrEqual(t, len(res.Solutions), 6)
	for _, s := range res.Solutions {
		assert.InEpsilon(t, 6*pF, s.Ceq, 1e-9)
		assert.True(t, s.WithinTolerance)
		assert.False(t, s.Disconnected)
	}
}

func TestSearch_DisconnectedStillEvaluated(t *testing.T) {
	caps := network.Capacitors(1 * pF)
	res, err := heuristic.Search(caps, 1*pF, opts(func(o *heuristic.Options) {
		o.Iterations = 200
		o.MaxInternalNodes = 2
		o.MaxResults = 0
	}))
	require.NoError(t, err)

	best, ok := res.Best()
	require.True(t, ok)
	assert.InEpsilon(t, 1*pF, best.Ceq, 1e-9)
	assert.False(t, best.Disconnected)

	var cut []metrics.Solution
	for _, s := range res.Solutions {
		if s.Disconnected {
			cut = append(cut, s)
		}
	}
	require.NotEmpty(t, cut)
	for _, s := range cut {
		assert.Equal(t, 0.0, s.Ceq)
		assert.InEpsilon(t, 1*pF, s.AbsoluteError, 1e-12)
	}
}

func TestSearch_Cancellation(t *testing.T) {
	calls := 0
	res, err := heuristic.Search(network.Capacitors(1*pF, 2*pF), 1*pF, opts(func(o *heuristic.Options) {
		o.ProgressEvery = 10
		o.Progress = func(r progress.Report) bool {
			calls++
			assert.Equal(t, 300, r.Total)
			return r.Processed < 30
		}
	}))
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.Equal(t, 30, res.Processed)
	assert.Equal(t, 3, calls)
}

func TestSearch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := heuristic.Search(network.Capacitors(1*pF, 2*pF), 1*pF, opts(func(o *heuristic.Options) {
		o.Ctx = ctx
		o.ProgressEvery = 1
	}))
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.Equal(t, 1, res.Processed)
}

func TestSearch_InvalidInput(t *testing.T) {
	caps := network.Capacitors(1 * pF)
	_, err := heuristic.Search(nil, 1, opts(nil))
	assert.ErrorIs(t, err, network.ErrNoCapacitors)
	_, err = heuristic.Search(network.Capacitors(0), 1, opts(nil))
	assert.ErrorIs(t, err, network.ErrNonPositiveValue)
	_, err = heuristic.Search(caps, math.NaN(), opts(nil))
	assert.ErrorIs(t, err, metrics.ErrBadTarget)
	_, err = heuristic.Search(caps, -1, opts(nil))
	assert.ErrorIs(t, err, metrics.ErrBadTarget)

	cases := []struct {
		name   string
		mutate func(*heuristic.Options)
		want   error
	}{
		{"iterations", func(o *heuristic.Options) { o.Iterations = 0 }, heuristic.ErrBadIterations},
		{"internal", func(o *heuristic.Options) { o.MaxInternalNodes = -1 }, heuristic.ErrBadInternalNodes},
		{"results", func(o *heuristic.Options) { o.MaxResults = -2 }, heuristic.ErrBadMaxResults},
		{"tolerance", func(o *heuristic.Options) { o.TolerancePct = math.Inf(1) }, heuristic.ErrBadTolerance},
		{"cadence", func(o *heuristic.Options) { o.ProgressEvery = -1 }, heuristic.ErrBadProgressEvery},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := heuristic.Search(caps, 1, opts(tc.mutate))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
