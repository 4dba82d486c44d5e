// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/katalvlaran/capnet/network"
	"github.com/katalvlaran/capnet/search"
)

const picofarad = 1e-12

var errEmptyCaps = errors.New("no capacitor values given")

// parseCapacitors reads "3,2.2,4.7" (picofarads) into named capacitors.
func parseCapacitors(s string) ([]network.Capacitor, error) {
	fields := lo.Filter(strings.Split(s, ","), func(f string, _ int) bool {
		return strings.TrimSpace(f) != ""
	})
	if len(fields) == 0 {
		return nil, errEmptyCaps
	}
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		values[i] = v * picofarad
	}
	caps := network.Capacitors(values...)
	if err := network.ValidateCapacitors(caps); err != nil {
		return nil, err
	}

	return caps, nil
}

// writeTable renders res as aligned columns, best first.
func writeTable(w io.Writer, res search.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tC_eq (pF)\tabs err (pF)\trel err\tok\ttopology")
	for i, s := range res.Solutions {
		ok := ""
		if s.WithinTolerance {
			ok = "yes"
		}
		topo := s.Topology.String()
		if s.Disconnected {
			topo += " [disconnected]"
		}
		fmt.Fprintf(tw, "%d\t%.4g\t%.4g\t%s\t%s\t%s\n",
			i+1, s.Ceq/picofarad, s.AbsoluteError/picofarad, percent(s.RelativeError), ok, topo)
	}
	if res.Cancelled {
		fmt.Fprintf(tw, "\t(cancelled after %d of %d)\n", res.Processed, res.Total)
	}
	if res.Warning != nil {
		fmt.Fprintf(tw, "\t(warning: %v)\n", res.Warning)
	}

	return tw.Flush()
}

func percent(rel float64) string {
	if math.IsInf(rel, 0) {
		return "n/a"
	}

	return strconv.FormatFloat(rel*100, 'f', 3, 64) + "%"
}

type jsonSolution struct {
	Rank            int      `json:"rank"`
	Family          string   `json:"family"`
	Topology        string   `json:"topology"`
	CeqPF           float64  `json:"ceq_pf"`
	AbsoluteErrorPF float64  `json:"absolute_error_pf"`
	RelativeError   *float64 `json:"relative_error"` // null when the target is 0
	WithinTolerance bool     `json:"within_tolerance"`
	Disconnected    bool     `json:"disconnected,omitempty"`
}

type jsonReport struct {
	RunID     string         `json:"run_id"`
	Method    string         `json:"method"`
	TargetPF  float64        `json:"target_pf"`
	Tolerance float64        `json:"tolerance_pct"`
	Processed int            `json:"processed"`
	Total     int            `json:"total"`
	Cancelled bool           `json:"cancelled"`
	Warning   string         `json:"warning,omitempty"`
	Solutions []jsonSolution `json:"solutions"`
}

// writeJSON encodes res with values converted to picofarads. method labels
// the engine or the evaluated shape.
func writeJSON(w io.Writer, id, method string, cfg search.Config, res search.Result) error {
	out := jsonReport{
		RunID:     id,
		Method:    method,
		TargetPF:  cfg.Target / picofarad,
		Tolerance: cfg.TolerancePct,
		Processed: res.Processed,
		Total:     res.Total,
		Cancelled: res.Cancelled,
		Solutions: make([]jsonSolution, len(res.Solutions)),
	}
	if res.Warning != nil {
		out.Warning = res.Warning.Error()
	}
	for i, s := range res.Solutions {
		js := jsonSolution{
			Rank:            i + 1,
			Family:          s.Topology.Family(),
			Topology:        s.Topology.String(),
			CeqPF:           s.Ceq / picofarad,
			AbsoluteErrorPF: s.AbsoluteError / picofarad,
			WithinTolerance: s.WithinTolerance,
			Disconnected:    s.Disconnected,
		}
		if !math.IsInf(s.RelativeError, 0) {
			rel := s.RelativeError
			js.RelativeError = &rel
		}
		out.Solutions[i] = js
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
