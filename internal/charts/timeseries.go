package charts

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/aish1496/world-map-explorer/internal/dataset"
	"github.com/charmbracelet/lipgloss"
)

var axisStyle = lipgloss.NewStyle().Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().Foreground(LabelColor)

// HasTimes reports whether every point carries a timestamp, i.e. the history
// can be drawn on a time axis.
func HasTimes(points []dataset.Point) bool {
	if len(points) == 0 {
		return false
	}
	for _, p := range points {
		if p.Time.IsZero() {
			return false
		}
	}
	return true
}

// HistoryTimeseries renders time-stamped history as a braille line chart.
func HistoryTimeseries(name string, points []dataset.Point, width int) string {
	if !HasTimes(points) {
		return ""
	}
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		minY = math.Min(minY, p.Value)
		maxY = math.Max(maxY, p.Value)
	}
	if minY == maxY {
		minY, maxY = minY-1, maxY+1
	}

	height := max(width/ChartHeightRatio, MinChartHeight)

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = timeserieslinechart.HourTimeLabelFormatter()
	lc.SetYRange(minY, maxY)     // set expected Y values (values can be less or greater than what is displayed)
	lc.SetViewYRange(minY, maxY) // setting display Y values will fail unless set expected Y values first
	lc.SetStyle(lipgloss.NewStyle().Foreground(HistoryBarColor))
	lc.SetLineStyle(runes.ThinLineStyle)

	lc.SetDataSetStyle(name, SeriesStyle(0))
	for _, p := range points {
		lc.PushDataSet(name, timeserieslinechart.TimePoint{Time: p.Time, Value: p.Value})
	}
	lc.DrawBrailleAll()

	return lc.View()
}
