package commands

import (
	"errors"
	"fmt"

	"github.com/aish1496/world-map-explorer/internal/charts"
	"github.com/aish1496/world-map-explorer/internal/colorscale"
)

type LegendCmd struct {
	Indicator string `arg:"" name:"indicator" help:"Indicator id or 1-based position." required:"true"`
	Output    string `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,json,yaml"`
}

func (l *LegendCmd) Run(ctx *Context) error {
	ds, err := ctx.Load()
	if err != nil {
		return err
	}
	ind, err := resolveIndicator(ds, l.Indicator)
	if err != nil {
		return err
	}

	var steps []colorscale.LegendStep
	r, rangeErr := colorscale.ComputeRange(ds.Scalars(), ind.ID)
	switch {
	case errors.Is(rangeErr, colorscale.ErrEmptyRange):
		ctx.Logger.Warn("indicator has no values", "indicator", ind.ID)
	case rangeErr != nil:
		return rangeErr
	default:
		steps, err = ctx.Scale.BuildLegend(r.Min, r.Max, ctx.Steps)
		if err != nil {
			return err
		}
	}

	if l.Output == OutputGraph {
		_, err := fmt.Fprintln(ctx.Stdout, charts.Legend(legendTitle(ind), steps))
		return err
	}
	return writeStructured(ctx.Stdout, l.Output, formatLegend(ind, r, steps, rangeErr))
}
