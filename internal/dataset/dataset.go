// Package dataset holds the countries, indicators and history the explorer
// shows, read from YAML or from the embedded default.
package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalidDataset is wrapped by every decoding and validation error.
var ErrInvalidDataset = errors.New("invalid dataset")

// Indicator is a named numeric dimension of every entity.
type Indicator struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Unit   string `yaml:"unit" json:"unit"`
	Symbol string `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	// Query is a PromQL expression returning one sample per entity.
	Query string `yaml:"query,omitempty" json:"query,omitempty"`
}

// Tiles are given in a MapWidth x MapHeight coordinate space.
const (
	MapWidth  = 500
	MapHeight = 300
)

// Tile is an entity's rectangle in map space.
type Tile struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Point is one entry of an entity's history. Label is used for bar charts,
// Time when the history came from a time series.
type Point struct {
	Label string    `yaml:"label,omitempty" json:"label,omitempty"`
	Time  time.Time `yaml:"time,omitempty" json:"time,omitempty"`
	Value float64   `yaml:"value" json:"value"`
}

// Entity is a country, or anything else keyed by a stable id.
type Entity struct {
	ID      string              `yaml:"id"`
	Name    string              `yaml:"name"`
	Tile    *Tile               `yaml:"tile,omitempty"`
	Values  map[string]*float64 `yaml:"values"`
	History []Point             `yaml:"history,omitempty"`
}

// Value returns the entity's value for indicator, absent if unset.
func (e Entity) Value(indicator string) colorscale.Value {
	return colorscale.FromPtr(e.Values[indicator])
}

// Dataset is the static input of the explorer. It is not modified after load.
type Dataset struct {
	Title            string      `yaml:"title"`
	HistoryIndicator string      `yaml:"historyIndicator"`
	Indicators       []Indicator `yaml:"indicators"`
	Entities         []Entity    `yaml:"entities"`
}

// Default returns the built-in five-country dataset.
func Default() Dataset {
	ds, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded dataset: %v", err))
	}
	return ds
}

// Load reads and validates a YAML dataset file.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading dataset: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.UnmarshalStrict(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Validate checks ids are present and unique, values are non-negative and
// tiles fit the map.
func (d Dataset) Validate() error {
	if len(d.Indicators) == 0 {
		return fmt.Errorf("%w: no indicators", ErrInvalidDataset)
	}
	indicators := make(map[string]bool, len(d.Indicators))
	for i, ind := range d.Indicators {
		if ind.ID == "" {
			return fmt.Errorf("%w: indicator %d has no id", ErrInvalidDataset, i)
		}
		if indicators[ind.ID] {
			return fmt.Errorf("%w: duplicate indicator %q", ErrInvalidDataset, ind.ID)
		}
		indicators[ind.ID] = true
	}
	if d.HistoryIndicator != "" && !indicators[d.HistoryIndicator] {
		return fmt.Errorf("%w: unknown history indicator %q", ErrInvalidDataset, d.HistoryIndicator)
	}

	entities := make(map[string]bool, len(d.Entities))
	for i, e := range d.Entities {
		if e.ID == "" {
			return fmt.Errorf("%w: entity %d has no id", ErrInvalidDataset, i)
		}
		if entities[e.ID] {
			return fmt.Errorf("%w: duplicate entity %q", ErrInvalidDataset, e.ID)
		}
		entities[e.ID] = true
		if t := e.Tile; t != nil {
			if t.W <= 0 || t.H <= 0 || t.X < 0 || t.Y < 0 || t.X+t.W > MapWidth || t.Y+t.H > MapHeight {
				return fmt.Errorf("%w: entity %q tile %+v outside the %dx%d map", ErrInvalidDataset, e.ID, *t, MapWidth, MapHeight)
			}
		}
		for id, v := range e.Values {
			if !indicators[id] {
				return fmt.Errorf("%w: entity %q has value for unknown indicator %q", ErrInvalidDataset, e.ID, id)
			}
			if v != nil && (*v < 0 || math.IsNaN(*v)) {
				return fmt.Errorf("%w: entity %q indicator %q: negative or NaN value %v", ErrInvalidDataset, e.ID, id, *v)
			}
		}
	}
	return nil
}

// Indicator looks up an indicator by id.
func (d Dataset) Indicator(id string) (Indicator, bool) {
	for _, ind := range d.Indicators {
		if ind.ID == id {
			return ind, true
		}
	}
	return Indicator{}, false
}

// Entity looks up an entity by id.
func (d Dataset) Entity(id string) (Entity, bool) {
	for _, e := range d.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

// IndicatorIDs returns indicator ids in file order.
func (d Dataset) IndicatorIDs() []string {
	ids := make([]string, 0, len(d.Indicators))
	for _, ind := range d.Indicators {
		ids = append(ids, ind.ID)
	}
	return ids
}

// EntityIDs returns entity ids in file order.
func (d Dataset) EntityIDs() []string {
	ids := make([]string, 0, len(d.Entities))
	for _, e := range d.Entities {
		ids = append(ids, e.ID)
	}
	return ids
}

// Scalars projects the dataset onto the shape colorscale works with.
func (d Dataset) Scalars() colorscale.Dataset {
	out := make(colorscale.Dataset, len(d.Entities))
	for _, e := range d.Entities {
		values := make(colorscale.Values, len(e.Values))
		for id, v := range e.Values {
			values[id] = colorscale.FromPtr(v)
		}
		out[e.ID] = values
	}
	return out
}

// FormatValue renders v with thousands separators and its unit.
func FormatValue(v colorscale.Value, unit string) string {
	if !v.Valid {
		return "n/a"
	}
	s := humanize.CommafWithDigits(v.Float64, 3)
	if unit == "" {
		return s
	}
	if unit == "%" {
		return s + unit
	}
	return s + " " + unit
}
