package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for history chart height.
	MinChartHeight = 8

	// MinMapRows is the floor for the rendered map height.
	MinMapRows = 6

	// LegendSwatchWidth is the width of one legend entry in cells.
	LegendSwatchWidth = 8
)
