// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/capnet/builder"
	"github.com/katalvlaran/capnet/laplacian"
	"github.com/katalvlaran/capnet/metrics"
	"github.com/katalvlaran/capnet/network"
	"github.com/katalvlaran/capnet/search"
)

// evaluateShape lays cfg.Capacitors out as the named builder shape and
// scores that single network instead of searching.
func evaluateShape(name string, cfg search.Config) (search.Result, error) {
	cons, err := builder.ByName(name)
	if err != nil {
		return search.Result{}, err
	}
	g, err := builder.Build(cfg.Capacitors, cons)
	if err != nil {
		return search.Result{}, err
	}
	res, err := laplacian.Solve(g, network.TerminalA, network.TerminalB)
	if err != nil {
		return search.Result{}, fmt.Errorf("evaluate %s: %w", name, err)
	}
	s := metrics.NewSolution(g.Describe(cfg.Capacitors), res.Ceq, cfg.Target, cfg.TolerancePct, 0)
	s.Disconnected = res.Disconnected

	return search.Result{
		Result: metrics.Result{Solutions: []metrics.Solution{s}, Processed: 1, Total: 1},
		Method: cfg.Method,
	}, nil
}
