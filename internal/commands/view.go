package commands

import (
	"fmt"
	"strings"

	"github.com/aish1496/world-map-explorer/internal/dataset"
	"github.com/charmbracelet/lipgloss"
)

func (m TUIModel) View() string {
	// Show shortcuts overlay if active
	if m.showShortcutsOverlay {
		overlay := renderShortcutsOverlay()
		return lipgloss.Place(
			m.getTerminalWidth(),
			m.getTerminalHeight(),
			lipgloss.Center,
			lipgloss.Center,
			overlay,
		)
	}

	var s strings.Builder

	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	switch m.state {
	case StateLoading:
		s.WriteString(m.renderLoadingState())
	case StateError:
		s.WriteString(m.renderErrorState())
	case StateReady:
		s.WriteString(m.renderBody())
	}
	s.WriteString("\n")

	s.WriteString(m.renderResultsStatusBar())
	s.WriteString("\n")

	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m TUIModel) renderStatusBar() string {
	title := m.ds.Title
	if title == "" {
		title = "Indicators Explorer"
	}

	tabStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	activeStyle := tabStyle.Background(lipgloss.Color("63")).Foreground(lipgloss.Color("231"))

	tabs := make([]string, 0, len(m.ds.Indicators))
	for i, ind := range m.ds.Indicators {
		style := tabStyle
		if i == m.indicator {
			style = activeStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf(" %d %s ", i+1, strings.TrimSpace(ind.Symbol+" "+ind.Name))))
	}

	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.getTerminalWidth()).
		Padding(0, 1)

	text := TitleStyle.Render(title)
	if len(tabs) > 0 {
		text += "  " + strings.Join(tabs, " ")
	}
	return statusStyle.Render(text)
}

func (m TUIModel) renderLoadingState() string {
	loadingStyle := lipgloss.NewStyle().Padding(2, 4)
	return loadingStyle.Render(fmt.Sprintf("%s Loading indicators...", m.spinner.View()))
}

func (m TUIModel) renderErrorState() string {
	errorStyle := lipgloss.NewStyle().Padding(1, 2)
	return errorStyle.Render(ErrorStyle.Render("Error: ") + m.err.Error() + "\n\n" + MutedStyle.Render("r: retry | q: quit"))
}

func (m TUIModel) renderBody() string {
	mapWidth, detailsWidth, sideBySide := m.paneWidths()

	var main string
	switch m.viewMode {
	case ViewTable:
		main = m.renderTablePane()
	default:
		main = m.renderMapPane(mapWidth)
	}
	details := m.renderDetailsPane(detailsWidth)

	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, main, " ", details)
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, details)
}

func (m TUIModel) renderResultsStatusBar() string {
	statusStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)

	var parts []string
	if m.loadDuration != 0 {
		parts = append(parts, "Loaded in "+formatDuration(m.loadDuration))
	}
	if m.state == StateReady {
		ind := m.currentIndicator()
		parts = append(parts, fmt.Sprintf("%d countries", len(m.ds.Entities)))
		if m.rangeErr != nil {
			parts = append(parts, WarningStyle.Render("no values for "+ind.Name))
		} else {
			parts = append(parts, fmt.Sprintf("range %s – %s",
				dataset.FormatValue(valueOf(m.valueRange.Min), ind.Unit),
				dataset.FormatValue(valueOf(m.valueRange.Max), ind.Unit)))
		}
		parts = append(parts, "view: "+m.viewMode.String())
	}
	return statusStyle.Render(" " + strings.Join(parts, " | "))
}

func (m TUIModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.getTerminalWidth()).
		Padding(0, 1)

	var helpText string
	switch {
	case m.filterInput.Focused():
		helpText = "enter/esc: done filtering | ctrl+c: quit"
	case m.viewMode == ViewTable:
		helpText = "tab: indicator | j/k: move | enter: details | /: filter | t: map | ?: shortcuts | q: quit"
	default:
		helpText = "tab: indicator | j/k: move | enter: details | esc: clear | t: table | ?: shortcuts | q: quit"
	}

	return helpStyle.Render(helpText)
}

func renderShortcutsOverlay() string {
	accentColor := lipgloss.Color("205")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginBottom(1)

	categoryStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("252"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	var content strings.Builder

	content.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	sections := []struct {
		name      string
		shortcuts []struct{ key, desc string }
	}{
		{"Global", []struct{ key, desc string }{
			{"Tab", "Next indicator"},
			{"S-Tab", "Previous indicator"},
			{"1-9", "Switch to indicator directly"},
			{"r", "Reload data"},
			{"q", "Quit"},
			{"Ctrl+C", "Force quit"},
		}},
		{"Countries", []struct{ key, desc string }{
			{"j/k", "Move selection"},
			{"Enter", "Show details"},
			{"Esc", "Clear details"},
		}},
		{"Table", []struct{ key, desc string }{
			{"t", "Toggle map/table"},
			{"/", "Filter countries"},
		}},
	}
	for _, section := range sections {
		content.WriteString(categoryStyle.Render(section.name))
		content.WriteString("\n")
		for _, s := range section.shortcuts {
			content.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", s.key)), descStyle.Render(s.desc)))
		}
	}

	content.WriteString("\n")
	content.WriteString(descStyle.Render("Press any key to close"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 2)

	return boxStyle.Render(content.String())
}
