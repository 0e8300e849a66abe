package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/aish1496/world-map-explorer/internal/dataset"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// HistoryBarchart renders an entity's history as horizontal bars, one per point.
func HistoryBarchart(points []dataset.Point, width int) string {
	if len(points) == 0 {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(HistoryBarColor)

	barData := make([]barchart.BarData, 0, len(points))
	for _, p := range points {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%s)", pointLabel(p), humanize.CommafWithDigits(p.Value, 2)),
			Values: []barchart.BarValue{
				{Name: pointLabel(p), Value: p.Value, Style: style},
			},
		})
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}

func pointLabel(p dataset.Point) string {
	if p.Label != "" {
		return p.Label
	}
	if !p.Time.IsZero() {
		return p.Time.Format("Jan 02 15:04")
	}
	return "?"
}
