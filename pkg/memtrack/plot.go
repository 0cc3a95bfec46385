// 19 Mar 2026

package memtrack

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot writes the memory history as a line plot. The image format
// comes from the filename suffix, anything gonum/plot knows about
// (.png, .pdf, .svg).
func (tr *Tracker) Plot(fname string) error {
	if len(tr.points) == 0 {
		return errors.New("no memory history to plot")
	}
	p := plot.New()
	p.Title.Text = "memory use"
	p.X.Label.Text = "seconds"
	p.Y.Label.Text = "heap / MB"

	xys := make(plotter.XYs, len(tr.points))
	for i, pt := range tr.points {
		xys[i].X = pt.When.Sub(tr.start).Seconds()
		xys[i].Y = pt.HeapMB
	}
	line, pts, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	p.Add(line, pts)
	return p.Save(6*vg.Inch, 4*vg.Inch, fname)
}
