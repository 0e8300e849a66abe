package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/stretchr/testify/require"
)

func TestDataset_Default(t *testing.T) {
	t.Parallel()

	ds := Default()
	require.Equal(t, "Global Indicators Explorer", ds.Title)
	require.Equal(t, []string{"population", "gdp", "lifeExpectancy", "internetAccess"}, ds.IndicatorIDs())
	require.Equal(t, []string{"USA", "CAN", "MEX", "BRA", "RUS"}, ds.EntityIDs())

	usa, ok := ds.Entity("USA")
	require.True(t, ok)
	require.Equal(t, "United States", usa.Name)
	require.Equal(t, colorscale.Some(63544), usa.Value("gdp"))
	require.Len(t, usa.History, 3)
	require.NotNil(t, usa.Tile)

	gdp, ok := ds.Indicator("gdp")
	require.True(t, ok)
	require.Equal(t, "USD", gdp.Unit)

	_, ok = ds.Indicator("co2")
	require.False(t, ok)
	_, ok = ds.Entity("FRA")
	require.False(t, ok)
}

func TestDataset_DefaultRanges(t *testing.T) {
	t.Parallel()

	ds := Default()
	r, err := colorscale.ComputeRange(ds.Scalars(), "gdp")
	require.NoError(t, err)
	require.Equal(t, colorscale.Range{Min: 6797, Max: 63544}, r)

	r, err = colorscale.ComputeRange(ds.Scalars(), "population")
	require.NoError(t, err)
	require.Equal(t, colorscale.Range{Min: 38.25, Max: 331.9}, r)
}

func TestDataset_Parse(t *testing.T) {
	t.Parallel()

	t.Run("null and missing values are absent", func(t *testing.T) {
		t.Parallel()

		ds, err := Parse([]byte(`
indicators:
  - {id: pop, name: Population, unit: million}
  - {id: gdp, name: GDP, unit: USD}
entities:
  - id: A
    name: Alpha
    values: {pop: 10, gdp: null}
  - id: B
    name: Beta
    values: {pop: 20}
`))
		require.NoError(t, err)

		scalars := ds.Scalars()
		require.Equal(t, colorscale.Some(10), scalars["A"]["pop"])
		require.Equal(t, colorscale.Absent, scalars["A"]["gdp"])
		require.Equal(t, colorscale.Absent, scalars["B"]["gdp"])

		_, err = colorscale.ComputeRange(scalars, "gdp")
		require.ErrorIs(t, err, colorscale.ErrEmptyRange)
	})

	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no indicators",
			yaml: `entities: [{id: A, name: A}]`,
		},
		{
			name: "duplicate indicator",
			yaml: `indicators: [{id: pop}, {id: pop}]`,
		},
		{
			name: "indicator without id",
			yaml: `indicators: [{name: Population}]`,
		},
		{
			name: "duplicate entity",
			yaml: `
indicators: [{id: pop}]
entities: [{id: A}, {id: A}]`,
		},
		{
			name: "entity without id",
			yaml: `
indicators: [{id: pop}]
entities: [{name: Alpha}]`,
		},
		{
			name: "unknown history indicator",
			yaml: `
historyIndicator: gdp
indicators: [{id: pop}]`,
		},
		{
			name: "value for unknown indicator",
			yaml: `
indicators: [{id: pop}]
entities: [{id: A, values: {gdp: 1}}]`,
		},
		{
			name: "negative value",
			yaml: `
indicators: [{id: pop}]
entities: [{id: A, values: {pop: -1}}]`,
		},
		{
			name: "tile outside the map",
			yaml: `
indicators: [{id: pop}]
entities: [{id: A, tile: {x: 450, y: 0, w: 60, h: 10}}]`,
		},
		{
			name: "empty tile",
			yaml: `
indicators: [{id: pop}]
entities: [{id: A, tile: {x: 10, y: 10, w: 0, h: 10}}]`,
		},
		{
			name: "unknown field",
			yaml: `
indicators: [{id: pop, colour: red}]`,
		},
		{
			name: "malformed",
			yaml: `indicators: [`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidDataset)
		})
	}
}

func TestDataset_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ds.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
title: Tiny
indicators: [{id: pop, name: Population, unit: million}]
entities: [{id: A, name: Alpha, values: {pop: 1}}]
`), 0o644))

		ds, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "Tiny", ds.Title)
		require.Equal(t, []string{"A"}, ds.EntityIDs())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDataset_FormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    colorscale.Value
		unit string
		want string
	}{
		{"thousands", colorscale.Some(63544), "USD", "63,544 USD"},
		{"decimal", colorscale.Some(331.9), "million", "331.9 million"},
		{"whole decimal", colorscale.Some(75.0), "years", "75 years"},
		{"percent", colorscale.Some(89.4), "%", "89.4%"},
		{"no unit", colorscale.Some(1234567.5), "", "1,234,567.5"},
		{"absent", colorscale.Absent, "USD", "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, FormatValue(tt.v, tt.unit))
		})
	}
}
