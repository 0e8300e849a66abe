package tables

import (
	"fmt"
	"strings"

	"github.com/aish1496/world-map-explorer/internal/charts"
	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/aish1496/world-map-explorer/internal/dataset"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	teatable "github.com/evertras/bubble-table/table"
)

const (
	columnKeyCode  = "code"
	columnKeyName  = "name"
	columnKeyValue = "value"
	columnKeyColor = "color"
	columnKeyUnit  = "unit"

	// PageSize is the number of rows shown per page.
	PageSize = 10
)

// Model is a filterable table of every entity's value for one indicator.
type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
}

// New builds the table for indicator. Colors come from scale over the
// indicator's observed range; an indicator without values renders neutral.
func New(ds dataset.Dataset, indicator string, scale colorscale.Scale) (Model, error) {
	t, err := IndicatorTable(ds, indicator, scale)
	if err != nil {
		return Model{}, err
	}
	return Model{
		table:           t.Filtered(true).Focused(true).WithFooterVisibility(true),
		filterTextInput: textinput.New(),
	}, nil
}

// IndicatorTable lists every entity with its formatted value and color swatch.
func IndicatorTable(ds dataset.Dataset, indicator string, scale colorscale.Scale) (teatable.Model, error) {
	ind, ok := ds.Indicator(indicator)
	if !ok {
		return teatable.Model{}, fmt.Errorf("unknown indicator %q", indicator)
	}
	colors, _, _ := scale.Colors(ds.Scalars(), indicator)

	longestName := len("Country")
	longestValue := len("Value")
	rows := make([]teatable.Row, 0, len(ds.Entities))
	for _, e := range ds.Entities {
		value := dataset.FormatValue(e.Value(indicator), ind.Unit)
		longestName = max(longestName, len(e.Name))
		longestValue = max(longestValue, len(value))

		c := colors[e.ID]
		rows = append(rows, teatable.NewRow(teatable.RowData{
			columnKeyCode:  e.ID,
			columnKeyName:  e.Name,
			columnKeyValue: value,
			columnKeyColor: teatable.NewStyledCell(c.String(), charts.Swatch(c)),
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn(columnKeyCode, "Code", 6).WithFiltered(true),
		teatable.NewColumn(columnKeyName, "Country", longestName+1).WithFiltered(true),
		teatable.NewColumn(columnKeyValue, "Value", longestValue+1),
		teatable.NewColumn(columnKeyColor, "Color", len("hsl(220, 100%, 30%)")+1),
	}

	return teatable.
		New(columns).
		WithRows(rows).
		WithPageSize(PageSize).
		WithBaseStyle(lipgloss.NewStyle()), nil
}

// EntityID returns the country code of a row built by IndicatorTable.
func EntityID(row teatable.Row) (string, bool) {
	id, ok := row.Data[columnKeyCode].(string)
	return id, ok
}

// MetricsTable lists every indicator's value for one entity.
func MetricsTable(ds dataset.Dataset, entity dataset.Entity) teatable.Model {
	longestName := len("Indicator")
	longestValue := len("Value")
	rows := make([]teatable.Row, 0, len(ds.Indicators))
	for _, ind := range ds.Indicators {
		name := strings.TrimSpace(ind.Symbol + " " + ind.Name)
		value := dataset.FormatValue(entity.Value(ind.ID), ind.Unit)
		longestName = max(longestName, lipgloss.Width(name))
		longestValue = max(longestValue, len(value))
		rows = append(rows, teatable.NewRow(teatable.RowData{
			columnKeyName:  name,
			columnKeyValue: value,
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn(columnKeyName, "Indicator", longestName+1),
		teatable.NewColumn(columnKeyValue, "Value", longestValue+1),
	}
	return teatable.
		New(columns).
		WithRows(rows).
		Focused(false).
		WithBaseStyle(lipgloss.NewStyle())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" || msg.String() == "esc" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		// others component
		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
