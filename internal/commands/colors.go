package commands

import (
	"fmt"
	"strings"

	"github.com/aish1496/world-map-explorer/internal/charts"
	"github.com/aish1496/world-map-explorer/internal/dataset"
	"github.com/charmbracelet/lipgloss"
)

type ColorsCmd struct {
	Indicator string `arg:"" name:"indicator" help:"Indicator id or 1-based position." required:"true"`
	Output    string `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,json,yaml"`
	Width     int    `name:"width" short:"w" help:"Map width in cells. Defaults to the terminal width."`
}

func (c *ColorsCmd) Run(ctx *Context) error {
	ds, err := ctx.Load()
	if err != nil {
		return err
	}
	ind, err := resolveIndicator(ds, c.Indicator)
	if err != nil {
		return err
	}

	colors, r, rangeErr := ctx.Scale.Colors(ds.Scalars(), ind.ID)
	if rangeErr != nil {
		ctx.Logger.Warn("indicator has no values, using the neutral color", "indicator", ind.ID)
	}

	if c.Output != OutputGraph {
		return writeStructured(ctx.Stdout, c.Output, formatColors(ds, ind, colors, r, rangeErr))
	}

	width := c.Width
	if width <= 0 {
		width = terminalWidth() - ChartWidthPadding
	}

	var s strings.Builder
	if regions := charts.Regions(ds, colors); len(regions) > 0 {
		s.WriteString(charts.Map(regions, "", width))
		s.WriteString("\n\n")
	}
	nameWidth := 0
	for _, e := range ds.Entities {
		nameWidth = max(nameWidth, len(e.Name))
	}
	for _, e := range ds.Entities {
		col := colors[e.ID]
		fmt.Fprintf(&s, "%s %-5s %-*s %16s  %s\n",
			charts.Swatch(col).Render("  "),
			e.ID,
			nameWidth, e.Name,
			dataset.FormatValue(e.Value(ind.ID), ind.Unit),
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(col.String()))
	}
	_, err = fmt.Fprint(ctx.Stdout, s.String())
	return err
}
