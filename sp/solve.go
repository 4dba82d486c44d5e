// SPDX-License-Identifier: MIT

package sp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/capnet/metrics"
	"github.com/katalvlaran/capnet/network"
	"github.com/katalvlaran/capnet/progress"
)

// ErrTooManyCapacitors is returned by Solve for inputs above MaxCapacitors.
var ErrTooManyCapacitors = errors.New("sp: too many capacitors")

// Solve enumerates every SP tree over caps, scores each against target,
// and returns the ranked best MaxResults.
//
// Errors:
//   - network.ErrNoCapacitors, network.ErrNonPositiveValue,
//     network.ErrNonFiniteValue for invalid input.
//   - metrics.ErrBadTarget for a negative or non-finite target.
//   - ErrTooManyCapacitors above MaxCapacitors.
//
// Cancellation through the progress callback or Ctx stops at the next
// checkpoint; the partial ranking is returned with Cancelled set and a nil
// error.
func Solve(caps []network.Capacitor, target float64, opts ...Option) (metrics.Result, error) {
	if err := network.ValidateCapacitors(caps); err != nil {
		return metrics.Result{}, fmt.Errorf("Solve: %w", err)
	}
	if err := metrics.ValidateTarget(target); err != nil {
		return metrics.Result{}, fmt.Errorf("Solve: %w", err)
	}
	if len(caps) > MaxCapacitors {
		return metrics.Result{}, fmt.Errorf("Solve: %d capacitors: %w", len(caps), ErrTooManyCapacitors)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	total := 0
	if c := Count(len(caps), o.Partition); c <= math.MaxInt32 {
		total = int(c)
	}
	col := metrics.NewCollector(o.MaxResults)
	tk := progress.NewTicker(o.Ctx, o.Progress, o.ProgressEvery)
	processed := 0
	for tree, ceq := range Enumerate(caps, WithPartition(o.Partition)) {
		col.Add(metrics.NewSolution(tree, ceq, target, o.TolerancePct, processed))
		processed++
		if !tk.Step(progress.Report{Processed: processed, Total: total, BestError: col.BestError()}) {
			break
		}
	}
	tk.Finish(progress.Report{Processed: processed, Total: total, BestError: col.BestError()})

	return metrics.Result{
		Solutions: col.Solutions(),
		Processed: processed,
		Total:     total,
		Cancelled: tk.Cancelled(),
	}, nil
}
