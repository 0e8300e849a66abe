package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/aish1496/world-map-explorer/internal/charts"
	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/aish1496/world-map-explorer/internal/dataset"
	"github.com/aish1496/world-map-explorer/internal/tables"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var paneStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1)

func (m TUIModel) renderMapPane(width int) string {
	ind := m.currentIndicator()
	hoveredID := ""
	if e, ok := m.hovered(); ok {
		hoveredID = e.ID
	}

	var s strings.Builder
	s.WriteString(charts.Map(charts.Regions(m.ds, m.colors), hoveredID, width))
	s.WriteString("\n\n")
	s.WriteString(m.renderTooltip())
	s.WriteString("\n\n")
	s.WriteString(charts.Legend(legendTitle(ind), m.legend))

	return paneStyle.Width(width + 2).Render(s.String())
}

func (m TUIModel) renderTablePane() string {
	var s strings.Builder
	s.WriteString(m.table.View())
	if m.filterInput.Focused() || m.filterInput.Value() != "" {
		s.WriteString("\n")
		s.WriteString(m.filterInput.View())
	}
	return paneStyle.BorderForeground(lipgloss.Color("205")).Render(s.String())
}

// renderTooltip describes the hovered country's value for the current indicator.
func (m TUIModel) renderTooltip() string {
	e, ok := m.hovered()
	if !ok {
		return MutedStyle.Render("no countries")
	}
	ind := m.currentIndicator()
	c := m.colors[e.ID]
	swatch := charts.Swatch(c).Render("  ")
	name := lipgloss.NewStyle().Bold(true).Render(e.Name)
	return fmt.Sprintf("%s %s  %s %s", swatch, name, ind.Symbol, dataset.FormatValue(e.Value(ind.ID), ind.Unit))
}

func (m TUIModel) renderDetailsPane(width int) string {
	e, ok := m.pinned()
	if !ok {
		placeholder := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("245")).
			Padding(2, 0).
			Render("Select a country on the map\nto explore detailed statistics")
		return paneStyle.Render(placeholder)
	}

	var s strings.Builder
	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Render(e.Name))
	s.WriteString("\n\n")
	s.WriteString(tables.MetricsTable(m.ds, e).View())

	if len(e.History) > 0 {
		title := "Trend"
		if ind, ok := m.ds.Indicator(m.ds.HistoryIndicator); ok {
			title = ind.Name + " Trend"
		}
		s.WriteString("\n\n")
		s.WriteString(MutedStyle.Bold(true).Render(title))
		s.WriteString("\n")
		if charts.HasTimes(e.History) {
			s.WriteString(charts.HistoryTimeseries(e.ID, e.History, width))
		} else {
			s.WriteString(charts.HistoryBarchart(e.History, width))
		}
	}
	return paneStyle.Width(width + 2).Render(s.String())
}

// paneWidths splits the terminal between the map and the details pane.
func (m TUIModel) paneWidths() (mapWidth, detailsWidth int, sideBySide bool) {
	total := m.getChartWidth()
	if m.getTerminalWidth() < SideBySideMinWidth {
		return max(total, MinMapWidth), max(total, MinDetailsWidth), false
	}
	mapWidth = max(total*2/3, MinMapWidth)
	detailsWidth = max(total-mapWidth-ChartWidthPadding, MinDetailsWidth)
	return mapWidth, detailsWidth, true
}

func (m TUIModel) getChartWidth() int {
	return m.getTerminalWidth() - ChartWidthPadding
}

func (m TUIModel) getTerminalWidth() int {
	if m.width > 0 {
		return m.width
	}
	return terminalWidth()
}

func (m TUIModel) getTerminalHeight() int {
	if m.height > 0 {
		return m.height
	}
	return DefaultTerminalHeight
}

// terminalWidth reports stdout's width, falling back to DefaultTerminalWidth.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

func legendTitle(ind dataset.Indicator) string {
	if ind.Unit == "" {
		return ind.Name
	}
	return fmt.Sprintf("%s (%s)", ind.Name, ind.Unit)
}

func valueOf(v float64) colorscale.Value {
	return colorscale.Some(v)
}
