package charts

import (
	"strings"
	"testing"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/charmbracelet/lipgloss"
)

func TestSeriesPaletteHasAtLeast10Colors(t *testing.T) {
	if len(SeriesPalette) < 10 {
		t.Errorf("SeriesPalette should have at least 10 colors, got %d", len(SeriesPalette))
	}
}

func TestSeriesColorCycles(t *testing.T) {
	paletteLen := len(SeriesPalette)

	// First cycle
	for i := 0; i < paletteLen; i++ {
		color := SeriesColor(i)
		if string(color) != SeriesPalette[i] {
			t.Errorf("SeriesColor(%d) = %s, want %s", i, color, SeriesPalette[i])
		}
	}

	// Second cycle (should wrap around)
	for i := 0; i < paletteLen; i++ {
		color := SeriesColor(i + paletteLen)
		if string(color) != SeriesPalette[i] {
			t.Errorf("SeriesColor(%d) = %s, want %s (cycling)", i+paletteLen, color, SeriesPalette[i])
		}
	}
}

func TestNoColorIsBlack(t *testing.T) {
	blackVariants := []string{
		"#000000",
		"#000",
		"0",
		"black",
	}

	for i, color := range SeriesPalette {
		colorLower := strings.ToLower(color)
		for _, black := range blackVariants {
			if colorLower == black {
				t.Errorf("SeriesPalette[%d] is black (%s), which would be invisible on dark backgrounds", i, color)
			}
		}
	}
}

func TestSeriesStyleReturnsValidStyle(t *testing.T) {
	style := SeriesStyle(0)
	// Verify that SeriesStyle returns a valid style
	// We check that GetForeground returns the expected color
	fg := style.GetForeground()
	expected := SeriesColor(0)
	if fg != expected {
		t.Errorf("SeriesStyle(0).GetForeground() = %v, want %v", fg, expected)
	}
}

func TestAxisAndLabelColorsAreDefined(t *testing.T) {
	if AxisColor == "" {
		t.Error("AxisColor should be defined")
	}
	if LabelColor == "" {
		t.Error("LabelColor should be defined")
	}
}

func TestContrastText(t *testing.T) {
	tests := []struct {
		name  string
		color colorscale.Color
		want  lipgloss.Color
	}{
		{"neutral is light", colorscale.Neutral, darkText},
		{"low end is light", colorscale.ColorForValue(colorscale.Some(0), 0, 1), darkText},
		{"high end is dark", colorscale.ColorForValue(colorscale.Some(1), 0, 1), lightText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastText(tt.color); got != tt.want {
				t.Errorf("ContrastText(%s) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestSwatchBackground(t *testing.T) {
	c := colorscale.Color{Hue: 220, Saturation: 50, Lightness: 50}
	bg := Swatch(c).GetBackground()
	if bg != lipgloss.Color(c.Hex()) {
		t.Errorf("Swatch(%s).GetBackground() = %v, want %v", c, bg, c.Hex())
	}
}
