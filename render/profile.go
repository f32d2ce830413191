package render

import (
	"errors"
	"fmt"

	"github.com/hazmath/bushfire"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// Series labels one model's flux profile.
type Series struct {
	Label string
	Model *bushfire.Model
}

// FluxProfile charts radiant heat flux against separation distance for the
// labeled models, sampled at n evenly spaced distances over [dmin, dmax].
// Callers save the returned plot with its Save or WriterTo methods.
//
// Every sampled distance must be admissible for every model; the first
// inadmissible one fails the whole chart.
func FluxProfile(series []Series, dmin, dmax float64, n int) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, errors.New("flux profile needs at least one series")
	}
	if n < 2 || dmin >= dmax {
		return nil, fmt.Errorf("bad sampling: %d points over [%g, %g] m", n, dmin, dmax)
	}
	grid := floats.Span(make([]float64, n), dmin, dmax)
	p := plot.New()
	p.Title.Text = "Radiant heat flux"
	p.X.Label.Text = "separation distance (m)"
	p.Y.Label.Text = "radiant heat flux (kW/m²)"
	p.Add(plotter.NewGrid())
	var args []interface{}
	for _, s := range series {
		fluxes, err := s.Model.RadiantHeatFluxes(grid)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		xys := make(plotter.XYs, n)
		for i := range xys {
			xys[i].X = grid[i]
			xys[i].Y = fluxes[i]
		}
		args = append(args, s.Label, xys)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return nil, err
	}
	return p, nil
}
