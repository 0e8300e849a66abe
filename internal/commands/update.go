package commands

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case datasetLoadedMsg:
		return m.handleDatasetLoaded(msg)

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m TUIModel) handleDatasetLoaded(msg datasetLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadDuration = msg.duration
	if msg.err != nil {
		m.logger.Error("loading dataset", "error", msg.err, "duration", msg.duration)
		m.state = StateError
		m.err = msg.err
		return m, nil
	}
	m.logger.Info("dataset ready", "indicators", len(msg.ds.Indicators), "entities", len(msg.ds.Entities), "duration", msg.duration)

	m.state = StateReady
	m.err = nil
	m.ds = msg.ds
	m.indicator = min(m.indicator, max(len(m.ds.Indicators)-1, 0))
	m.cursor = min(m.cursor, max(len(m.ds.Entities)-1, 0))
	if _, ok := m.ds.Entity(m.selected); !ok {
		m.selected = ""
	}
	return m.recompute(), nil
}

func (m TUIModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Handle shortcuts overlay - dismiss on any key except quit keys
	if m.showShortcutsOverlay {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		m.showShortcutsOverlay = false
		return m, nil
	}

	switch m.state {
	case StateLoading:
		// Only allow quit during loading
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case StateError:
		return m.handleErrorKey(msg)
	}

	if m.filterInput.Focused() {
		return m.handleFilterKey(msg)
	}
	return m.handleNormalModeKey(msg)
}

func (m TUIModel) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		return m.reload()
	case "?":
		m.showShortcutsOverlay = true
	}
	return m, nil
}

func (m TUIModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filterInput.Blur()
	default:
		m.filterInput, _ = m.filterInput.Update(msg)
	}
	m.table = m.table.WithFilterInput(m.filterInput)
	return m.syncTable(), nil
}

func (m TUIModel) handleNormalModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "tab":
		return m.switchIndicator(m.indicator + 1)
	case "shift+tab":
		return m.switchIndicator(m.indicator - 1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		if n > len(m.ds.Indicators) {
			return m, nil
		}
		return m.switchIndicator(n - 1)
	case "j", "down", "l", "right":
		if m.viewMode == ViewTable {
			return m.moveTableCursor(msg)
		}
		return m.moveCursor(1)
	case "k", "up", "h", "left":
		if m.viewMode == ViewTable {
			return m.moveTableCursor(msg)
		}
		return m.moveCursor(-1)
	case "enter", " ":
		if m.viewMode == ViewTable {
			if id, ok := m.highlightedID(); ok {
				m.selected = id
				m = m.syncCursor()
			}
			return m, nil
		}
		if e, ok := m.hovered(); ok {
			m.selected = e.ID
		}
		return m, nil
	case "esc":
		m.selected = ""
		return m, nil
	case "t":
		return m.toggleView()
	case "/":
		if m.viewMode != ViewTable {
			return m, nil
		}
		m.filterInput.Focus()
		return m, nil
	case "r":
		return m.reload()
	case "?":
		m.showShortcutsOverlay = true
		return m, nil
	}
	return m, nil
}

// switchIndicator selects indicator i, wrapping around at both ends.
func (m TUIModel) switchIndicator(i int) (tea.Model, tea.Cmd) {
	n := len(m.ds.Indicators)
	if n == 0 {
		return m, nil
	}
	i = ((i % n) + n) % n
	if i == m.indicator {
		return m, nil
	}
	m.indicator = i
	m.logger.Debug("indicator selected", "indicator", m.currentIndicator().ID)
	return m.recompute(), nil
}

func (m TUIModel) moveCursor(delta int) (tea.Model, tea.Cmd) {
	n := len(m.ds.Entities)
	if n == 0 {
		return m, nil
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	return m.syncTable(), nil
}

// moveTableCursor lets the table move its highlight over the visible rows
// and follows it with the cursor.
func (m TUIModel) moveTableCursor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m.syncCursor(), cmd
}

func (m TUIModel) toggleView() (tea.Model, tea.Cmd) {
	if m.viewMode == ViewMap {
		m.viewMode = ViewTable
	} else {
		m.viewMode = ViewMap
		m.filterInput.Blur()
	}
	m.table = m.table.Focused(m.viewMode == ViewTable)
	return m.syncTable(), nil
}

func (m TUIModel) reload() (tea.Model, tea.Cmd) {
	m.state = StateLoading
	return m, tea.Batch(m.loadDataset(), m.spinner.Tick)
}
