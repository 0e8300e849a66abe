package main

import (
	"github.com/aish1496/world-map-explorer/internal/commands"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("worldmap"),
		kong.Description("Terminal world map that colors countries by development indicators."),
		kong.UsageOnError(),
	)

	runCtx, closeFn, err := cli.NewContext()
	ctx.FatalIfErrorf(err)
	err = ctx.Run(runCtx)
	_ = closeFn()
	ctx.FatalIfErrorf(err)
}
