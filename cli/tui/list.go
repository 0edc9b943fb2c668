package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/malonaz/urlreader/cli/tui/styles"
	"github.com/malonaz/urlreader/internal/i18n"
	"github.com/malonaz/urlreader/internal/session"
)

// updateList handles a key press while the conversation list has focus.
// Opening and deleting rows are reported as SelectConversationMsg and DeleteConversationMsg.
func updateList(list *session.ConversationList, msg tea.KeyMsg) tea.Cmd {
	km := keyMapList
	if list.PendingDelete != "" {
		switch {
		case key.Matches(msg, km.Confirm):
			if id, ok := list.ConfirmDelete(); ok {
				return emit(DeleteConversationMsg{ConversationID: id})
			}
		case key.Matches(msg, km.Cancel):
			list.CancelDelete()
		}
		return nil
	}

	switch {
	case key.Matches(msg, km.Up):
		list.Up()
	case key.Matches(msg, km.Down):
		list.Down()
	case key.Matches(msg, km.Select):
		if id, ok := list.Select(); ok {
			return emit(SelectConversationMsg{ConversationID: id})
		}
	case key.Matches(msg, km.Delete):
		list.RequestDelete()
	}
	return nil
}

// renderList renders the conversation list into a box of the given outer size.
func renderList(list *session.ConversationList, locale i18n.Locale, spinner string, width, height int, focused bool) string {
	style := styles.ListStyle
	if focused {
		style = styles.ListFocusedStyle
	}
	innerWidth := width - style.GetHorizontalFrameSize()
	innerHeight := height - style.GetVerticalFrameSize()
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}

	lines := []string{styles.ListTitleStyle.Render(styles.Truncate(locale.T("chat.history"), innerWidth))}
	switch {
	case list.Loading:
		lines = append(lines, spinner)
	case len(list.IDs) == 0:
		lines = append(lines, styles.DimTextStyle.Render(styles.Truncate(locale.T("chat.noConversations"), innerWidth)))
	default:
		lines = append(lines, renderRows(list, innerWidth, innerHeight-1, focused)...)
	}

	if list.PendingDelete != "" {
		lines = append(lines, "",
			styles.ConfirmStyle.Render(styles.Truncate(locale.T("chat.deleteConfirm"), innerWidth)),
			styles.DimTextStyle.Render(styles.Truncate(locale.T("help.confirm"), innerWidth)),
		)
	}

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	return style.Width(innerWidth + style.GetHorizontalPadding()).Height(innerHeight).Render(strings.Join(lines, "\n"))
}

// renderRows renders the rows that fit in height, keeping the cursor visible.
func renderRows(list *session.ConversationList, width, height int, focused bool) []string {
	if height < 1 {
		return nil
	}
	start := 0
	if list.Cursor >= height {
		start = list.Cursor - height + 1
	}
	end := start + height
	if end > len(list.IDs) {
		end = len(list.IDs)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		id := list.IDs[i]
		marker := "  "
		if focused && i == list.Cursor {
			marker = styles.ListCursorStyle.Render("> ")
		}
		text := styles.Truncate(id, width-2)
		switch {
		case id == list.PendingDelete:
			text = styles.ConfirmStyle.Render(text)
		case id == list.Selected:
			text = styles.ListSelectedItemStyle.Render(text)
		default:
			text = styles.ListItemStyle.Render(text)
		}
		rows = append(rows, marker+text)
	}
	return rows
}
