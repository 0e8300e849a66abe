package commands

import (
	"fmt"

	"github.com/aish1496/world-map-explorer/internal/prometheus"
)

type FormatQueryCmd struct {
	Query string `arg:"" name:"query" help:"Query to format." required:"true"`
}

func (f *FormatQueryCmd) Run(ctx *Context) error {
	if err := prometheus.ValidateQuery(f.Query); err != nil {
		return err
	}
	_, err := fmt.Fprintln(ctx.Stdout, prometheus.FormatQuery(f.Query))
	return err
}
