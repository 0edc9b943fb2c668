package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/malonaz/urlreader/cli/tui/styles"
)

// recalculateLayout hands the space left by the navigation bar and help line to the views.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	bodyHeight := m.height - styles.NavHeight - styles.HelpHeight
	m.home.setSize(m.width, bodyHeight)
	m.chat.setSize(m.width, bodyHeight)
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body, help string
	switch m.route {
	case RouteChat:
		body = m.chat.view(m.spinner.View())
		help = m.locale.T("help.chat")
		if m.chat.focused == FocusList {
			help = m.locale.T("help.list")
			if m.chat.state.List.PendingDelete != "" {
				help = m.locale.T("help.confirm")
			}
		}
	default:
		body = m.home.view(m.spinner.View())
		help = m.locale.T("help.home")
	}

	width := m.width
	if width == 0 {
		width = styles.DefaultWidth
	}

	var b strings.Builder
	b.WriteString(m.renderNav())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(styles.Truncate(help, width)))
	return m.alert.Render(b.String())
}

func (m *Model) renderNav() string {
	item := func(route Route, label string) string {
		if route == m.route {
			return styles.NavActiveItemStyle.Render(label)
		}
		return styles.NavItemStyle.Render(label)
	}

	left := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.AppTitleStyle.Render(m.locale.T("app.title")),
		item(RouteHome, "F1 "+m.locale.T("nav.home")),
		item(RouteChat, "F2 "+m.locale.T("nav.chat")),
	)
	right := styles.LocaleStyle.Render("ctrl+l " + m.locale.T("button.switchLang"))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + styles.NavStyle.Render(strings.Repeat(" ", gap)) + right
}
