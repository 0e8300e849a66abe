package commands

import (
	"fmt"
	"strings"

	"github.com/aish1496/world-map-explorer/internal/prometheus"
	"github.com/charmbracelet/lipgloss"
)

type IndicatorsCmd struct {
	Output string `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,json,yaml"`
}

func (i *IndicatorsCmd) Run(ctx *Context) error {
	ds := ctx.Base

	if i.Output != OutputGraph {
		return writeStructured(ctx.Stdout, i.Output, ds.Indicators)
	}

	nameStyle := lipgloss.NewStyle().Bold(true)
	var s strings.Builder
	for n, ind := range ds.Indicators {
		fmt.Fprintf(&s, "%d. %s %s (%s) [%s]\n", n+1, ind.Symbol, nameStyle.Render(ind.Name), ind.Unit, ind.ID)
		if ind.Query != "" {
			for _, line := range strings.Split(prometheus.FormatQuery(ind.Query), "\n") {
				s.WriteString("     ")
				s.WriteString(MutedStyle.Render(line))
				s.WriteString("\n")
			}
		}
	}
	_, err := fmt.Fprint(ctx.Stdout, s.String())
	return err
}
