package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/aish1496/world-map-explorer/internal/dataset"
	"github.com/aish1496/world-map-explorer/internal/logger"
	"github.com/aish1496/world-map-explorer/internal/prometheus"
)

// Context carries what every command needs once flags are parsed.
type Context struct {
	Stdout    io.Writer
	Timeout   time.Duration
	Logger    *slog.Logger
	LogToFile bool
	Base      dataset.Dataset
	Source    *prometheus.Source
	Scale     colorscale.Scale
	Steps     int
}

// Load returns the dataset commands work on: the base dataset, with
// indicator values from Prometheus when a source is configured.
func (c *Context) Load() (dataset.Dataset, error) {
	if c.Source == nil {
		return c.Base, nil
	}
	return c.Source.Load(c.Base)
}

// CLI is the kong command tree.
type CLI struct {
	Dataset       string        `help:"YAML dataset file. Defaults to the built-in dataset." short:"d" env:"WORLDMAP_DATASET" type:"existingfile"`
	PrometheusURL string        `help:"URL of a Prometheus endpoint to load indicator values from." short:"p" env:"WORLDMAP_PROMETHEUS_URL" name:"prometheus-url"`
	EntityLabel   string        `help:"Sample label naming the country." default:"country" name:"entity-label"`
	Timeout       time.Duration `help:"Timeout for Prometheus queries." default:"60s"`
	HistoryRange  time.Duration `help:"Range of the history query." default:"72h" name:"history-range"`
	HistoryStep   time.Duration `help:"Step of the history query." default:"1h" name:"history-step"`
	Hue           int           `help:"Hue of the color ramp, in degrees." default:"220"`
	Steps         int           `help:"Number of legend steps." default:"5"`
	LogFile       string        `help:"Write logs to this file." env:"WORLDMAP_LOG_FILE" name:"log-file"`
	Verbose       bool          `help:"Enable debug logging." short:"v"`

	Explore     ExploreCmd     `cmd:"" default:"1" help:"Explore the map interactively."`
	Legend      LegendCmd      `cmd:"" help:"Print the legend of an indicator."`
	Colors      ColorsCmd      `cmd:"" help:"Print every country's color for an indicator."`
	Indicators  IndicatorsCmd  `cmd:"" help:"List indicators."`
	Table       TableCmd       `cmd:"" help:"Browse an indicator as a filterable table."`
	FormatQuery FormatQueryCmd `cmd:"" help:"Format query."`
}

// NewContext validates global flags, sets up logging and reads the base
// dataset. The returned close func must be called on exit.
func (c *CLI) NewContext() (*Context, func() error, error) {
	if c.Steps < colorscale.MinLegendSteps {
		return nil, nil, &colorscale.InvalidStepCountError{Steps: c.Steps}
	}

	log, closeLog, err := logger.Open(c.LogFile, c.Verbose)
	if err != nil {
		return nil, nil, err
	}
	toFile := c.LogFile != ""
	if !toFile {
		log = logger.New(os.Stderr, c.Verbose)
	}

	base := dataset.Default()
	if c.Dataset != "" {
		base, err = dataset.Load(c.Dataset)
		if err != nil {
			_ = closeLog()
			return nil, nil, err
		}
	}
	log.Debug("dataset loaded", "path", c.Dataset, "indicators", len(base.Indicators), "entities", len(base.Entities))

	ctx := &Context{
		Stdout:    os.Stdout,
		Timeout:   c.Timeout,
		Logger:    log,
		LogToFile: toFile,
		Base:      base,
		Scale:     colorscale.NewScale(c.Hue),
		Steps:     c.Steps,
	}

	if c.PrometheusURL != "" {
		for _, ind := range base.Indicators {
			if ind.Query == "" {
				continue
			}
			if err := prometheus.ValidateQuery(ind.Query); err != nil {
				_ = closeLog()
				return nil, nil, fmt.Errorf("indicator %q: %w", ind.ID, err)
			}
		}
		client, err := prometheus.NewClient(c.PrometheusURL)
		if err != nil {
			_ = closeLog()
			return nil, nil, err
		}
		ctx.Source = &prometheus.Source{
			Client:       client,
			EntityLabel:  c.EntityLabel,
			Timeout:      c.Timeout,
			HistoryRange: c.HistoryRange,
			HistoryStep:  c.HistoryStep,
			Logger:       log,
		}
	}

	return ctx, closeLog, nil
}

// resolveIndicator accepts an indicator id, or its 1-based position.
func resolveIndicator(ds dataset.Dataset, ref string) (dataset.Indicator, error) {
	if ind, ok := ds.Indicator(ref); ok {
		return ind, nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(ds.Indicators) {
		return ds.Indicators[n-1], nil
	}
	return dataset.Indicator{}, fmt.Errorf("unknown indicator %q (have %v)", ref, ds.IndicatorIDs())
}
