package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("themed • explorer")
	mode := mutedStyle.Render(fmt.Sprintf("override compose: %s", m.composeLabel()))

	list := paneStyle.Width(listWidth).Render(m.renderList())
	detail := paneStyle.Render(sectionStyle.Render(m.detailTitle()) + "\n" + m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, detail)

	return lipgloss.JoinVertical(lipgloss.Left, title, mode, body, m.help.View(m.keys))
}

func (m Model) renderList() string {
	if len(m.names) == 0 {
		return mutedStyle.Render("(none)")
	}
	lines := make([]string, len(m.names))
	for i, name := range m.names {
		if i == m.cursor {
			lines[i] = selectedStyle.Render("› " + name)
			continue
		}
		lines[i] = "  " + name
	}
	return strings.Join(lines, "\n")
}

func (m Model) detailTitle() string {
	name := m.Selected()
	if name == "" {
		return "Theme"
	}
	if w, ok := m.catalog.Wrapper(name); ok {
		return fmt.Sprintf("%s → %s", name, w.DisplayName())
	}
	return name
}

func (m Model) composeLabel() string {
	if m.replace {
		return "replace"
	}
	return "wrapper default"
}
