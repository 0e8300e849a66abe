package charts

import (
	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/charmbracelet/lipgloss"
)

// SeriesPalette is Paul Tol's qualitative color palette, designed for colorblind accessibility.
// See: https://personal.sron.nl/~pault/
var SeriesPalette = []string{
	"#4477AA", // Blue
	"#EE6677", // Rose
	"#228833", // Green
	"#CCBB44", // Olive/Yellow
	"#66CCEE", // Cyan
	"#AA3377", // Purple
	"#BBBBBB", // Grey
	"#EE8866", // Orange
	"#44BB99", // Teal
	"#FFAABB", // Pink
}

// AxisColor is the color used for chart axes.
var AxisColor = lipgloss.Color("#64748b") // Slate

// LabelColor is the color used for chart labels.
var LabelColor = lipgloss.Color("#64748b")

// HistoryBarColor fills the history bar chart.
var HistoryBarColor = lipgloss.Color("#3b82f6")

var (
	darkText  = lipgloss.Color("#1f2937")
	lightText = lipgloss.Color("#f8fafc")
)

// SeriesColor returns the color for a given series index, cycling through the palette.
func SeriesColor(index int) lipgloss.Color {
	return lipgloss.Color(SeriesPalette[index%len(SeriesPalette)])
}

// SeriesStyle returns a lipgloss style with the foreground color for the given series index.
func SeriesStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeriesColor(index))
}

// ContrastText picks a readable text color to put on top of c.
func ContrastText(c colorscale.Color) lipgloss.Color {
	l, _, _ := c.Colorful().Lab()
	if l > 0.6 {
		return darkText
	}
	return lightText
}

// Swatch returns a style painting the background with c.
func Swatch(c colorscale.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(ContrastText(c))
}
