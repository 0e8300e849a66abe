package charts

import (
	"strings"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/charmbracelet/lipgloss"
)

var (
	legendTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	legendLabelStyle = lipgloss.NewStyle().Foreground(LabelColor)
	legendEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// NoDataText is shown in place of a legend when the indicator has no values.
const NoDataText = "no data for this indicator"

// Legend renders steps as a row of swatches with their rounded values below.
func Legend(title string, steps []colorscale.LegendStep) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(legendTitleStyle.Render(title))
		b.WriteString("\n")
	}
	if len(steps) == 0 {
		b.WriteString(legendEmptyStyle.Render(NoDataText))
		return b.String()
	}

	columns := make([]string, 0, len(steps))
	for _, step := range steps {
		swatch := Swatch(step.Color).Render(strings.Repeat(" ", LegendSwatchWidth))
		label := legendLabelStyle.
			Width(LegendSwatchWidth + 1).
			Render(truncate(step.Label(), LegendSwatchWidth))
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, swatch+" ", label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	return b.String()
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:max(width, 0)]
}
