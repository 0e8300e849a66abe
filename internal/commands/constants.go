package commands

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// DefaultTerminalHeight is the fallback terminal height when detection fails.
	DefaultTerminalHeight = 24

	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6

	// MinMapWidth is the narrowest the map pane is drawn.
	MinMapWidth = 24

	// MinDetailsWidth is the narrowest the details pane is drawn.
	MinDetailsWidth = 30

	// SideBySideMinWidth is the terminal width below which the details pane
	// is stacked under the map instead of beside it.
	SideBySideMinWidth = 100
)
