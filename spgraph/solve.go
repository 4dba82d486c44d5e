// SPDX-License-Identifier: MIT

package spgraph

import (
	"fmt"

	"github.com/katalvlaran/capnet/metrics"
	"github.com/katalvlaran/capnet/network"
	"github.com/katalvlaran/capnet/progress"
)

// Solve searches every SP-reducible network built from all of caps.
//
// Implementation:
//   - Stage 1: GenerateTopologies(len(caps)).
//   - Stage 2: For each template, for each distinct assignment, reduce the
//     instantiated network; reducible ones become Solutions numbered in
//     generation order.
//   - Stage 3: Rank and truncate to MaxResults.
//
// Progress is reported per template with Total = number of templates.
// Cancellation stops after the current template and returns the partial
// ranking with Cancelled set.
//
// Errors:
//   - network.ErrNoCapacitors, network.ErrNonPositiveValue,
//     network.ErrNonFiniteValue for invalid input.
//   - metrics.ErrBadTarget for a negative or non-finite target.
func Solve(caps []network.Capacitor, target float64, opts ...Option) (metrics.Result, error) {
	if err := network.ValidateCapacitors(caps); err != nil {
		return metrics.Result{}, fmt.Errorf("Solve: %w", err)
	}
	if err := metrics.ValidateTarget(target); err != nil {
		return metrics.Result{}, fmt.Errorf("Solve: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	templates := GenerateTopologies(len(caps), WithIsomorphism(o.Isomorphism), WithLogger(o.Logger))
	total := len(templates)
	col := metrics.NewCollector(o.MaxResults)
	tk := progress.NewTicker(o.Ctx, o.Progress, o.ProgressEvery)

	var processed, order, tried int
	for _, t := range templates {
		for _, assignment := range AssignCapacitors(t, caps) {
			tried++
			g, err := t.Network(caps, assignment)
			if err != nil {
				continue
			}
			ceq, ok := IsSPReducible(g, network.TerminalA, network.TerminalB)
			if !ok {
				continue
			}
			col.Add(metrics.NewSolution(g.Describe(caps), ceq, target, o.TolerancePct, order))
			order++
		}
		processed++
		if !tk.Step(progress.Report{Processed: processed, Total: total, BestError: col.BestError()}) {
			break
		}
	}
	tk.Finish(progress.Report{Processed: processed, Total: total, BestError: col.BestError()})
	o.Logger.Debug("spgraph: solve finished",
		"templates", processed, "assignments", tried, "reducible", order, "cancelled", tk.Cancelled())

	return metrics.Result{
		Solutions: col.Solutions(),
		Processed: processed,
		Total:     total,
		Cancelled: tk.Cancelled(),
	}, nil
}
