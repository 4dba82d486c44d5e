// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/capnet/progress"
)

var errNoTrace = errors.New("no progress reports recorded")

// convergence records best absolute error against work processed.
type convergence struct {
	points plotter.XYs
}

func (c *convergence) add(r progress.Report) {
	if r.Processed == 0 || r.BestError == progress.NoBest {
		return
	}
	c.points = append(c.points, plotter.XY{X: float64(r.Processed), Y: r.BestError / picofarad})
}

func (c *convergence) count() int { return len(c.points) }

// save writes the trace as a PNG line chart; the format follows the file
// extension.
func (c *convergence) save(path, title string) error {
	if len(c.points) == 0 {
		return errNoTrace
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "processed"
	p.Y.Label.Text = "best |C_eq - target| (pF)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(c.points)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
