package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/aish1496/world-map-explorer/internal/dataset"
	"github.com/aish1496/world-map-explorer/internal/tables"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
)

// Loader produces the dataset the explorer shows. It runs off the UI goroutine.
type Loader func() (dataset.Dataset, error)

// TUIModel is the main Bubble Tea model for the interactive explorer.
type TUIModel struct {
	load   Loader
	scale  colorscale.Scale
	steps  int
	logger *slog.Logger

	// Data
	ds           dataset.Dataset
	state        TUIState
	err          error
	loadDuration time.Duration

	// Derived from ds and the selected indicator
	indicator  int
	colors     map[string]colorscale.Color
	valueRange colorscale.Range
	rangeErr   error
	legend     []colorscale.LegendStep

	// Selection
	cursor   int    // hovered entity index
	selected string // pinned entity id, "" when nothing is pinned

	// Table view
	viewMode    ViewMode
	table       teatable.Model
	filterInput textinput.Model

	// UI state
	width                int
	height               int
	spinner              spinner.Model
	showShortcutsOverlay bool
}

// NewTUIModel creates a new explorer model. Nothing is shown until load completes.
func NewTUIModel(load Loader, scale colorscale.Scale, steps int, logger *slog.Logger) TUIModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fi := textinput.New()
	fi.Placeholder = "filter countries..."
	fi.Prompt = "/ "

	return TUIModel{
		load:        load,
		scale:       scale,
		steps:       steps,
		logger:      logger,
		state:       StateLoading,
		viewMode:    ViewMap,
		filterInput: fi,
		spinner:     NewLoadingSpinner(),
	}
}

func (m TUIModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadDataset(),
		m.spinner.Tick,
	)
}

func (m TUIModel) loadDataset() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		start := time.Now()
		ds, err := load()
		return datasetLoadedMsg{ds: ds, err: err, duration: time.Since(start)}
	}
}

// currentIndicator returns the selected indicator.
func (m TUIModel) currentIndicator() dataset.Indicator {
	if m.indicator < 0 || m.indicator >= len(m.ds.Indicators) {
		return dataset.Indicator{}
	}
	return m.ds.Indicators[m.indicator]
}

// hovered returns the entity under the cursor.
func (m TUIModel) hovered() (dataset.Entity, bool) {
	if m.cursor < 0 || m.cursor >= len(m.ds.Entities) {
		return dataset.Entity{}, false
	}
	return m.ds.Entities[m.cursor], true
}

// pinned returns the entity whose details are shown.
func (m TUIModel) pinned() (dataset.Entity, bool) {
	if m.selected == "" {
		return dataset.Entity{}, false
	}
	return m.ds.Entity(m.selected)
}

// recompute rebuilds everything derived from the dataset and indicator.
// Ranges are recomputed on every change rather than cached per indicator.
func (m TUIModel) recompute() TUIModel {
	ind := m.currentIndicator()
	m.colors, m.valueRange, m.rangeErr = m.scale.Colors(m.ds.Scalars(), ind.ID)
	m.legend = nil
	if m.rangeErr != nil {
		m.logger.Warn("indicator has no values", "indicator", ind.ID, "error", m.rangeErr)
	} else {
		legend, err := m.scale.BuildLegend(m.valueRange.Min, m.valueRange.Max, m.steps)
		if err != nil {
			m.logger.Error("building legend", "indicator", ind.ID, "error", err)
		}
		m.legend = legend
	}

	table, err := tables.IndicatorTable(m.ds, ind.ID, m.scale)
	if err != nil {
		m.logger.Error("building table", "indicator", ind.ID, "error", err)
		return m
	}
	m.table = table.
		Filtered(true).
		Focused(m.viewMode == ViewTable).
		WithFilterInput(m.filterInput)
	return m.syncTable()
}

// highlightedID returns the country under the table highlight. Row positions
// count visible rows only, so they differ from cursor once a filter is set.
func (m TUIModel) highlightedID() (string, bool) {
	rows := m.table.GetVisibleRows()
	i := m.table.GetHighlightedRowIndex()
	if i < 0 || i >= len(rows) {
		return "", false
	}
	return tables.EntityID(rows[i])
}

// syncTable moves the table highlight onto the hovered country. In the table
// view a country hidden by the filter gives way to the first visible row.
func (m TUIModel) syncTable() TUIModel {
	rows := m.table.GetVisibleRows()
	if len(rows) == 0 {
		return m
	}
	if e, ok := m.hovered(); ok {
		for i, row := range rows {
			if id, _ := tables.EntityID(row); id == e.ID {
				m.table = m.table.WithHighlightedRow(i)
				return m
			}
		}
	}
	if m.viewMode != ViewTable {
		return m
	}
	m.table = m.table.WithHighlightedRow(0)
	return m.syncCursor()
}

// syncCursor points the cursor at the highlighted table row.
func (m TUIModel) syncCursor() TUIModel {
	id, ok := m.highlightedID()
	if !ok {
		return m
	}
	for i, e := range m.ds.Entities {
		if e.ID == id {
			m.cursor = i
			break
		}
	}
	return m
}

// formatDuration formats a duration with appropriate precision.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
