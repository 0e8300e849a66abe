package tables

import (
	"strings"
	"testing"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/aish1496/world-map-explorer/internal/dataset"
	tea "github.com/charmbracelet/bubbletea"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew(t *testing.T) {
	scale := colorscale.NewScale(colorscale.DefaultHue)

	t.Run("default dataset lists every country", func(t *testing.T) {
		m, err := New(dataset.Default(), "gdp", scale)
		if err != nil {
			t.Fatalf("New() returned error: %v", err)
		}

		view := m.View()
		for _, want := range []string{"United States", "Canada", "Mexico", "Brazil", "Russia", "63,544 USD"} {
			if !strings.Contains(view, want) {
				t.Errorf("View() does not contain %q", want)
			}
		}
	})

	t.Run("extremes get the ramp ends", func(t *testing.T) {
		m, err := New(dataset.Default(), "gdp", scale)
		if err != nil {
			t.Fatalf("New() returned error: %v", err)
		}

		view := m.View()
		if !strings.Contains(view, "hsl(220, 100%, 30%)") {
			t.Errorf("View() does not contain the high-end color")
		}
		if !strings.Contains(view, "hsl(220, 0%, 70%)") {
			t.Errorf("View() does not contain the low-end color")
		}
	})

	t.Run("unknown indicator", func(t *testing.T) {
		_, err := New(dataset.Default(), "co2", scale)
		if err == nil {
			t.Fatal("New() error = nil, want error")
		}
	})

	t.Run("indicator without values renders neutral", func(t *testing.T) {
		ds := dataset.Dataset{
			Indicators: []dataset.Indicator{{ID: "pop", Name: "Population"}},
			Entities:   []dataset.Entity{{ID: "A", Name: "Alpha"}},
		}
		m, err := New(ds, "pop", scale)
		if err != nil {
			t.Fatalf("New() returned error: %v", err)
		}
		view := m.View()
		if !strings.Contains(view, "n/a") {
			t.Errorf("View() does not show the absent value")
		}
		if !strings.Contains(view, colorscale.Neutral.String()) {
			t.Errorf("View() does not show the neutral color")
		}
	})
}

func TestModelInit(t *testing.T) {
	m, err := New(dataset.Default(), "population", colorscale.NewScale(colorscale.DefaultHue))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	cmd := m.Init()
	if cmd != nil {
		t.Error("Init() should return nil")
	}
}

func TestModelFilter(t *testing.T) {
	m, err := New(dataset.Default(), "population", colorscale.NewScale(colorscale.DefaultHue))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	var model tea.Model = m
	for _, k := range []string{"/", "C", "a", "n"} {
		model, _ = model.Update(keys(k))
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := model.View()
	if !strings.Contains(view, "Canada") {
		t.Errorf("filtered View() does not contain Canada")
	}
	if strings.Contains(view, "Brazil") {
		t.Errorf("filtered View() still contains Brazil")
	}
}

func TestModelQuit(t *testing.T) {
	m, err := New(dataset.Default(), "population", colorscale.NewScale(colorscale.DefaultHue))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	for _, key := range []tea.KeyMsg{keys("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("Update(%s) returned nil cmd", key)
		}
	}
}

func TestMetricsTable(t *testing.T) {
	ds := dataset.Default()
	usa, _ := ds.Entity("USA")

	view := MetricsTable(ds, usa).View()
	for _, want := range []string{"Population", "331.9 million", "GDP per capita", "63,544 USD", "76.1 years", "89.4%"} {
		if !strings.Contains(view, want) {
			t.Errorf("MetricsTable().View() does not contain %q", want)
		}
	}
}

func TestEntityID(t *testing.T) {
	tbl, err := IndicatorTable(dataset.Default(), "population", colorscale.NewScale(colorscale.DefaultHue))
	if err != nil {
		t.Fatalf("IndicatorTable() returned error: %v", err)
	}

	rows := tbl.GetVisibleRows()
	if len(rows) == 0 {
		t.Fatal("IndicatorTable() has no rows")
	}
	id, ok := EntityID(rows[0])
	if !ok || id != "USA" {
		t.Errorf("EntityID(first row) = %q, %v, want USA, true", id, ok)
	}
}
