package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Always update the alert model with every message
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	switch msg.(type) {
	case spinner.TickMsg, cursor.BlinkMsg, tea.MouseMsg:
	default:
		log.Debug("update", "msg_type", fmt.Sprintf("%T", msg), "route", m.route)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyMapApp.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keyMapApp.Home):
			cmds = append(cmds, m.navigate(RouteHome))
		case key.Matches(msg, keyMapApp.Chat):
			cmds = append(cmds, m.navigate(RouteChat))
		case key.Matches(msg, keyMapApp.ToggleLocale):
			m.toggleLocale()
		default:
			cmds = append(cmds, m.updateActive(msg))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case alertMsg:
		cmds = append(cmds, m.alert.NewAlertCmd(msg.level, msg.text))

	// Results are applied whatever the active route.
	case parseDoneMsg:
		cmds = append(cmds, m.home.update(msg))
	case conversationsMsg, historyMsg, chatDoneMsg, deleteDoneMsg, SelectConversationMsg, DeleteConversationMsg:
		cmds = append(cmds, m.chat.update(msg))

	default:
		cmds = append(cmds, m.updateActive(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	switch m.route {
	case RouteChat:
		return m.chat.update(msg)
	default:
		return m.home.update(msg)
	}
}
