package commands

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// ExploreCmd is the Kong command for the interactive explorer.
type ExploreCmd struct {
	Indicator string `arg:"" optional:"" name:"indicator" help:"Indicator to start with (id or 1-based position)."`
}

// Run starts the interactive explorer.
func (e *ExploreCmd) Run(ctx *Context) error {
	// the TUI owns the terminal, so only a log file may receive logs
	log := ctx.Logger
	if !ctx.LogToFile {
		log = slog.New(slog.DiscardHandler)
	}

	load := ctx.Load
	if ctx.Source != nil && !ctx.LogToFile {
		src := *ctx.Source
		src.Logger = log
		quiet := *ctx
		quiet.Source = &src
		load = quiet.Load
	}

	model := NewTUIModel(load, ctx.Scale, ctx.Steps, log)
	if e.Indicator != "" {
		ind, err := resolveIndicator(ctx.Base, e.Indicator)
		if err != nil {
			return err
		}
		for i, id := range ctx.Base.IndicatorIDs() {
			if id == ind.ID {
				model.indicator = i
			}
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
