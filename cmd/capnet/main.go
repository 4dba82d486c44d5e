// SPDX-License-Identifier: MIT

// Command capnet searches for capacitor networks that approximate a target
// equivalent capacitance.
//
// Values are given in picofarads:
//
//	capnet -caps 3,2,3,1 -target 1 -method spgraph
//	capnet -caps 1,2.2,4.7,10 -target 3.3 -method heuristic -iter 5000 -seed 7 -plot conv.png
//	capnet -caps 1,2,3,4,5 -target 2 -shape bridge
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/capnet/builder"
	"github.com/katalvlaran/capnet/progress"
	"github.com/katalvlaran/capnet/search"
	"github.com/katalvlaran/capnet/sp"
)

func main() {
	var (
		capsFlag  = flag.String("caps", "", "comma-separated capacitor values in pF")
		target    = flag.Float64("target", 0, "target capacitance in pF")
		method    = flag.String("method", "sp", "search method: sp, spgraph or heuristic")
		tolerance = flag.Float64("tol", 5, "tolerance in percent")
		maxRes    = flag.Int("max", 10, "number of results to keep (0 = all)")
		iter      = flag.Int("iter", 2000, "heuristic iterations")
		internal  = flag.Int("internal", 3, "heuristic max internal nodes")
		seed      = flag.Int64("seed", 0, "heuristic seed (0 = fixed default)")
		subsets   = flag.Bool("subsets", false, "sp: split into arbitrary subsets instead of prefix/suffix")
		every     = flag.Int("every", 0, "progress cadence in work units (0 = engine default)")
		timeout   = flag.Duration("timeout", 0, "abort the search after this long (0 = never)")
		asJSON    = flag.Bool("json", false, "write results as JSON")
		plotPath  = flag.String("plot", "", "write a best-error convergence plot (PNG) to this file")
		shape     = flag.String("shape", "", "evaluate one fixed shape instead of searching: "+strings.Join(builder.Shapes(), ", "))
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	caps, err := parseCapacitors(*capsFlag)
	if err != nil {
		logger.Error("invalid -caps", "err", err)
		os.Exit(2)
	}
	m, err := search.ParseMethod(*method)
	if err != nil {
		logger.Error("invalid -method", "err", err)
		os.Exit(2)
	}

	cfg := search.DefaultConfig()
	cfg.Capacitors = caps
	cfg.Target = *target * picofarad
	cfg.Method = m
	cfg.TolerancePct = *tolerance
	cfg.MaxResults = *maxRes
	cfg.Iterations = *iter
	cfg.MaxInternalNodes = *internal
	cfg.Seed = *seed
	cfg.ProgressEvery = *every
	cfg.Ctx = ctx
	cfg.Logger = logger
	if *subsets {
		cfg.Partition = sp.Subsets
	}

	id := runID(cfg)
	log := logger.With("run", id, "method", m)

	var trace convergence
	sometimes := rate.Sometimes{Interval: time.Second}
	cfg.Progress = func(r progress.Report) bool {
		trace.add(r)
		sometimes.Do(func() {
			log.Info("progress", "processed", r.Processed, "total", r.Total,
				"best_error_pF", r.BestError/picofarad)
		})
		return true
	}

	label := m.String()
	var res search.Result
	if *shape != "" {
		label = "shape:" + *shape
		if res, err = evaluateShape(*shape, cfg); err != nil {
			log.Error("evaluate shape", "shape", *shape, "err", err)
			os.Exit(2)
		}
	} else {
		start := time.Now()
		if res, err = search.Run(cfg); err != nil {
			log.Error("search failed", "err", err)
			os.Exit(1)
		}
		log.Info("search done", "processed", res.Processed, "total", res.Total,
			"kept", len(res.Solutions), "cancelled", res.Cancelled, "elapsed", time.Since(start))
	}

	if *asJSON {
		err = writeJSON(os.Stdout, id, label, cfg, res)
	} else {
		err = writeTable(os.Stdout, res)
	}
	if err != nil {
		log.Error("write results", "err", err)
		os.Exit(1)
	}

	if *plotPath != "" && *shape == "" {
		if err := trace.save(*plotPath, fmt.Sprintf("capnet %s (%s)", m, id)); err != nil {
			log.Error("write plot", "path", *plotPath, "err", err)
			os.Exit(1)
		}
		log.Info("plot written", "path", *plotPath, "points", trace.count())
	}
}

// runID derives a stable identifier from the request, so repeated runs of
// the same search share an ID.
func runID(cfg search.Config) string {
	key := fmt.Sprintf("capnet:%s:%g:%g:%d:%d:%d:%d:%s",
		cfg.Method, cfg.Target, cfg.TolerancePct, cfg.MaxResults,
		cfg.Iterations, cfg.MaxInternalNodes, cfg.Seed, cfg.Partition)
	for _, c := range cfg.Capacitors {
		key += fmt.Sprintf(":%g", c.Value)
	}

	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}
