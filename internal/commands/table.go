package commands

import (
	"github.com/aish1496/world-map-explorer/internal/tables"
	tea "github.com/charmbracelet/bubbletea"
)

type TableCmd struct {
	Indicator string `arg:"" name:"indicator" help:"Indicator id or 1-based position." required:"true"`
}

func (t *TableCmd) Run(ctx *Context) error {
	ds, err := ctx.Load()
	if err != nil {
		return err
	}
	ind, err := resolveIndicator(ds, t.Indicator)
	if err != nil {
		return err
	}

	model, err := tables.New(ds, ind.ID, ctx.Scale)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model).Run()
	return err
}
