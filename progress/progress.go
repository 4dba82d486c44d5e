// SPDX-License-Identifier: MIT

// Package progress defines the progress-reporting and cancellation protocol
// shared by every search in capnet.
//
// A search reports (processed, total, best error) through a Func at a fixed
// cadence; the callback returns false to request cancellation. The report
// point is also where a context, if any, is polled. Searches stop at the
// next checkpoint and return their partial, ranked results.
package progress

import (
	"context"
	"math"
)

// DefaultEvery is the default reporting cadence in work units.
const DefaultEvery = 100

// Report is one progress snapshot.
type Report struct {
	Processed int     // work units done so far
	Total     int     // total work units, or 0 if unknown
	BestError float64 // best absolute error seen so far (+Inf if none)
}

// Fraction returns Processed/Total in [0, 1], or 0 if Total is unknown.
func (r Report) Fraction() float64 {
	if r.Total <= 0 {
		return 0
	}
	f := float64(r.Processed) / float64(r.Total)
	if f > 1 {
		return 1
	}

	return f
}

// NoBest is the BestError reported before any candidate was evaluated.
var NoBest = math.Inf(1)

// Func receives progress reports. Returning false cancels the search.
type Func func(Report) bool

// Ticker counts work units and fires its Func every Every units.
// The zero value is not usable; construct with NewTicker.
type Ticker struct {
	fn        Func
	ctx       context.Context
	every     int
	count     int
	cancelled bool
	reported  bool // last Step fired a report
}

// NewTicker returns a Ticker firing fn every `every` units.
// A nil ctx means context.Background; every <= 0 means DefaultEvery.
// fn may be nil, in which case only ctx is polled.
func NewTicker(ctx context.Context, fn Func, every int) *Ticker {
	if ctx == nil {
		ctx = context.Background()
	}
	if every <= 0 {
		every = DefaultEvery
	}

	return &Ticker{fn: fn, ctx: ctx, every: every}
}

// Step records one processed unit. At every cadence boundary it polls the
// context and invokes the callback with r. It returns false once the search
// must stop; the decision is sticky.
func (t *Ticker) Step(r Report) bool {
	if t.cancelled {
		return false
	}
	t.count++
	t.reported = false
	if t.count%t.every != 0 {
		return true
	}

	return t.fire(r)
}

// Finish delivers a final report unless the last Step already reported or
// the run was cancelled.
func (t *Ticker) Finish(r Report) {
	if t.cancelled || t.reported || t.fn == nil {
		return
	}
	t.reported = true
	t.fn(r)
}

// Cancelled reports whether the callback or the context stopped the run.
func (t *Ticker) Cancelled() bool { return t.cancelled }

// Count returns the number of Step calls accepted so far.
func (t *Ticker) Count() int { return t.count }

func (t *Ticker) fire(r Report) bool {
	t.reported = true
	select {
	case <-t.ctx.Done():
		t.cancelled = true
		return false
	default:
	}
	if t.fn != nil && !t.fn(r) {
		t.cancelled = true
		return false
	}

	return true
}
