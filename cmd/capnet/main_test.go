// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/capnet/network"
	"github.com/katalvlaran/capnet/progress"
	"github.com/katalvlaran/capnet/search"
)

func TestParseCapacitors(t *testing.T) {
	caps, err := parseCapacitors(" 3, 2.2,,4.7 ")
	require.NoError(t, err)
	require.Len(t, caps, 3)
	assert.Equal(t, "C2", caps[1].ID)
	assert.InEpsilon(t, 2.2e-12, caps[1].Value, 1e-12)

	_, err = parseCapacitors("")
	assert.ErrorIs(t, err, errEmptyCaps)
	_, err = parseCapacitors("1,x")
	assert.Error(t, err)
	_, err = parseCapacitors("1,-2")
	assert.ErrorIs(t, err, network.ErrNonPositiveValue)
}

func twoCapResult(t *testing.T, target float64) (search.Config, search.Result) {
	t.Helper()
	cfg := search.DefaultConfig()
	cfg.Capacitors = network.Capacitors(1e-12, 2e-12)
	cfg.Target = target
	res, err := search.Run(cfg)
	require.NoError(t, err)

	return cfg, res
}

func TestWriteTable(t *testing.T) {
	_, res := twoCapResult(t, 1.5e-12)
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "(C1+C2)")
	assert.Contains(t, out, "(C1||C2)")
	assert.Contains(t, out, "0.6667")
	assert.Contains(t, out, "55.556%")
}

func TestWriteJSON(t *testing.T) {
	cfg, res := twoCapResult(t, 0)
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, runID(cfg), res.Method.String(), cfg, res))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "sp", got.Method)
	require.Len(t, got.Solutions, 2)
	assert.Equal(t, "(C1+C2)", got.Solutions[0].Topology)
	assert.Equal(t, "sp", got.Solutions[0].Family)
	assert.Nil(t, got.Solutions[0].RelativeError)
	assert.InDelta(t, 2.0/3.0, got.Solutions[0].CeqPF, 1e-9)
}

func TestRunIDStable(t *testing.T) {
	cfg, _ := twoCapResult(t, 1e-12)
	a, b := runID(cfg), runID(cfg)
	assert.Equal(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)

	cfg.Seed = 9
	assert.NotEqual(t, a, runID(cfg))
}

func TestConvergence(t *testing.T) {
	var c convergence
	c.add(progress.Report{Processed: 0, BestError: 1})
	c.add(progress.Report{Processed: 10, BestError: progress.NoBest})
	assert.Zero(t, c.count())
	assert.ErrorIs(t, c.save(filepath.Join(t.TempDir(), "empty.png"), "x"), errNoTrace)

	c.add(progress.Report{Processed: 10, BestError: 2e-12})
	c.add(progress.Report{Processed: 20, BestError: 1e-12})
	require.Equal(t, 2, c.count())
	assert.InDelta(t, 1.0, c.points[1].Y, 1e-12)

	path := filepath.Join(t.TempDir(), "conv.png")
	require.NoError(t, c.save(path, "test"))
	assert.FileExists(t, path)
}

func TestEvaluateShape(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Capacitors = network.Capacitors(1e-12, 2e-12, 3e-12, 4e-12, 5e-12)
	cfg.Target = 2e-12
	res, err := evaluateShape("bridge", cfg)
	require.NoError(t, err)
	require.Len(t, res.Solutions, 1)
	assert.InEpsilon(t, 155.0/74.0*1e-12, res.Solutions[0].Ceq, 1e-9)
	assert.True(t, res.Solutions[0].WithinTolerance)

	_, err = evaluateShape("star", cfg)
	assert.Error(t, err)
	_, err = evaluateShape("complete", cfg)
	assert.Error(t, err)
}
