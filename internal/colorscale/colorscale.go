// Package colorscale maps indicator values onto a single-hue color ramp and
// builds the discrete legend shown next to a choropleth.
//
// Everything here is a pure function of its arguments, so it is safe to call
// from any number of goroutines.
package colorscale

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultHue is the hue, in degrees, used by the package-level functions.
	DefaultHue = 220

	// DefaultLegendSteps is the number of legend entries when the caller has no preference.
	DefaultLegendSteps = 5

	// MinLegendSteps is the smallest legend that still shows both ends of the range.
	MinLegendSteps = 2
)

// Neutral is the color for absent values. Its hex form is #e5e5e5.
var Neutral = Color{Hue: 0, Saturation: 0, Lightness: 90}

const neutralHex = "#e5e5e5"

// Color is an HSL color with integer percentages, matching what a CSS
// hsl() expression would carry.
type Color struct {
	Hue        int
	Saturation int
	Lightness  int
}

func (c Color) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

// Colorful converts c to an RGB color.
func (c Color) Colorful() colorful.Color {
	return colorful.Hsl(float64(c.Hue), float64(c.Saturation)/100, float64(c.Lightness)/100).Clamped()
}

// Hex returns c as #rrggbb, which is what lipgloss and most renderers expect.
// Neutral maps to #e5e5e5 exactly rather than the rounded HSL conversion.
func (c Color) Hex() string {
	if c == Neutral {
		return neutralHex
	}
	return c.Colorful().Hex()
}

// Value is an indicator value that may be absent.
type Value struct {
	Float64 float64
	Valid   bool
}

// Absent is the zero Value.
var Absent = Value{}

// Some wraps a present value. NaN and infinities are treated as absent.
func Some(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Absent
	}
	return Value{Float64: v, Valid: true}
}

// FromPtr converts an optional float, as decoded from YAML or JSON, to a Value.
func FromPtr(v *float64) Value {
	if v == nil {
		return Absent
	}
	return Some(*v)
}

// Values holds one entity's values keyed by indicator id.
type Values map[string]Value

// Dataset holds entities keyed by their identity (for example a country code).
type Dataset map[string]Values

// Range is the observed [Min, Max] of an indicator.
type Range struct {
	Min float64
	Max float64
}

// Degenerate reports whether the range has zero width.
func (r Range) Degenerate() bool {
	return r.Max == r.Min
}

// Normalize rescales v into [0, 1]. A degenerate range always yields 0.
func (r Range) Normalize(v float64) float64 {
	if r.Degenerate() {
		return 0
	}
	n := (v - r.Min) / (r.Max - r.Min)
	switch {
	case math.IsNaN(n):
		return 0
	case n < 0:
		return 0
	case n > 1:
		return 1
	}
	return n
}

// ComputeRange scans ds for the defined values of indicator. Absent values are
// skipped. It returns an *EmptyRangeError if nothing is defined.
func ComputeRange(ds Dataset, indicator string) (Range, error) {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	found := false
	for _, values := range ds {
		v, ok := values[indicator]
		if !ok || !v.Valid {
			continue
		}
		found = true
		if v.Float64 < r.Min {
			r.Min = v.Float64
		}
		if v.Float64 > r.Max {
			r.Max = v.Float64
		}
	}
	if !found {
		return Range{}, &EmptyRangeError{Indicator: indicator}
	}
	return r, nil
}

// ColorForValue colors v relative to [min, max] using DefaultHue.
func ColorForValue(v Value, min, max float64) Color {
	return Scale{Hue: DefaultHue}.ColorForValue(v, min, max)
}

// BuildLegend samples [min, max] at steps evenly spaced points using DefaultHue.
func BuildLegend(min, max float64, steps int) ([]LegendStep, error) {
	return Scale{Hue: DefaultHue}.BuildLegend(min, max, steps)
}

// LegendStep is one labelled swatch of a legend.
type LegendStep struct {
	Value float64
	Color Color
}

// Label is the value rounded to the nearest integer.
func (s LegendStep) Label() string {
	return fmt.Sprintf("%.0f", s.Value)
}

// Scale is a single-hue ramp. Low values are pale and unsaturated, high values
// dark and saturated.
type Scale struct {
	Hue int
}

// NewScale returns a Scale for hue, normalized into [0, 360).
func NewScale(hue int) Scale {
	hue %= 360
	if hue < 0 {
		hue += 360
	}
	return Scale{Hue: hue}
}

// ColorAt returns the ramp color at normalized position n in [0, 1].
func (s Scale) ColorAt(n float64) Color {
	if math.IsNaN(n) || n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	return Color{
		Hue:        s.Hue,
		Saturation: int(math.Round(n * 100)),
		Lightness:  int(math.Round(70 - n*40)),
	}
}

// ColorForValue colors v relative to [min, max]. Absent values get Neutral.
func (s Scale) ColorForValue(v Value, min, max float64) Color {
	if !v.Valid {
		return Neutral
	}
	return s.ColorAt(Range{Min: min, Max: max}.Normalize(v.Float64))
}

// BuildLegend samples [min, max] at steps evenly spaced points, ascending.
func (s Scale) BuildLegend(min, max float64, steps int) ([]LegendStep, error) {
	if steps < MinLegendSteps {
		return nil, &InvalidStepCountError{Steps: steps}
	}
	legend := make([]LegendStep, steps)
	for i := range legend {
		v := min + (max-min)*(float64(i)/float64(steps-1))
		if i == steps-1 {
			v = max
		}
		legend[i] = LegendStep{Value: v, Color: s.ColorForValue(Some(v), min, max)}
	}
	return legend, nil
}

// Colors maps every entity in ds to its color for indicator. When no entity
// has a value the range error is returned together with an all-Neutral map,
// so callers can still draw something.
func (s Scale) Colors(ds Dataset, indicator string) (map[string]Color, Range, error) {
	colors := make(map[string]Color, len(ds))
	r, err := ComputeRange(ds, indicator)
	if err != nil {
		for id := range ds {
			colors[id] = Neutral
		}
		return colors, Range{}, err
	}
	for id, values := range ds {
		colors[id] = s.ColorForValue(values[indicator], r.Min, r.Max)
	}
	return colors, r, nil
}
