package charts

import (
	"math"
	"strings"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/aish1496/world-map-explorer/internal/dataset"
	"github.com/charmbracelet/lipgloss"
)

// Region is one colored tile of the map.
type Region struct {
	ID    string
	Tile  dataset.Tile
	Color colorscale.Color
}

var mapBackground = lipgloss.NewStyle().Background(lipgloss.Color("#f1f5f9"))

// Map renders regions as a choropleth of colored rectangles, width cells wide.
// Tiles are scaled from their bounding box, so the map fills the width no
// matter where in the 500x300 space the regions sit. Later regions overwrite
// earlier ones where they overlap. The selected region's label is bracketed.
func Map(regions []Region, selected string, width int) string {
	if len(regions) == 0 || width <= 0 {
		return ""
	}

	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, r := range regions {
		minX = min(minX, r.Tile.X)
		minY = min(minY, r.Tile.Y)
		maxX = max(maxX, r.Tile.X+r.Tile.W)
		maxY = max(maxY, r.Tile.Y+r.Tile.H)
	}
	spanX := max(maxX-minX, 1)
	spanY := max(maxY-minY, 1)

	// terminal cells are about twice as tall as they are wide
	height := max(int(math.Round(float64(width)*float64(spanY)/float64(spanX)/2)), MinMapRows)

	owner := make([][]int, height)
	for y := range owner {
		owner[y] = make([]int, width)
		for x := range owner[y] {
			owner[y][x] = -1
		}
	}

	scaleX := func(v int) int { return int(math.Round(float64(v-minX) * float64(width) / float64(spanX))) }
	scaleY := func(v int) int { return int(math.Round(float64(v-minY) * float64(height) / float64(spanY))) }

	type mapLabel struct {
		text   string
		region int
	}
	labels := make(map[[2]int]mapLabel, len(regions))
	for i, r := range regions {
		x0, x1 := scaleX(r.Tile.X), scaleX(r.Tile.X+r.Tile.W)
		y0, y1 := scaleY(r.Tile.Y), scaleY(r.Tile.Y+r.Tile.H)
		x1 = min(max(x1, x0+1), width)
		y1 = min(max(y1, y0+1), height)
		x0 = min(x0, width-1)
		y0 = min(y0, height-1)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				owner[y][x] = i
			}
		}

		label := r.ID
		if r.ID == selected {
			label = "[" + label + "]"
		}
		label = truncate(label, x1-x0)
		lx := x0 + (x1-x0-len(label))/2
		if label != "" {
			labels[[2]int{(y0 + y1 - 1) / 2, lx}] = mapLabel{text: label, region: i}
		}
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		x := 0
		for x < width {
			o := owner[y][x]
			if label, ok := labels[[2]int{y, x}]; ok && owns(owner[y], x, len(label.text), label.region) {
				style := Swatch(regions[o].Color)
				if regions[o].ID == selected {
					style = style.Bold(true).Underline(true)
				}
				b.WriteString(style.Render(label.text))
				x += len(label.text)
				continue
			}
			run := x
			for run < width && owner[y][run] == o {
				if _, ok := labels[[2]int{y, run}]; ok && run != x {
					break
				}
				run++
			}
			fill := strings.Repeat(" ", run-x)
			if o < 0 {
				b.WriteString(mapBackground.Render(fill))
			} else {
				b.WriteString(Swatch(regions[o].Color).Render(fill))
			}
			x = run
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func owns(row []int, from, n, region int) bool {
	if from+n > len(row) {
		return false
	}
	for _, o := range row[from : from+n] {
		if o != region {
			return false
		}
	}
	return true
}

// Regions pairs every entity that has a tile with its color.
func Regions(ds dataset.Dataset, colors map[string]colorscale.Color) []Region {
	regions := make([]Region, 0, len(ds.Entities))
	for _, e := range ds.Entities {
		if e.Tile == nil {
			continue
		}
		c, ok := colors[e.ID]
		if !ok {
			c = colorscale.Neutral
		}
		regions = append(regions, Region{ID: e.ID, Tile: *e.Tile, Color: c})
	}
	return regions
}
