package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.dalton.dog/bubbleup"
	"golang.design/x/clipboard"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/internal/session"
)

func parseCmd(ctx context.Context, backend session.Backend, url string) tea.Cmd {
	return func() tea.Msg {
		response, err := backend.ParseURL(ctx, url)
		return parseDoneMsg{url: url, response: response, err: err}
	}
}

func listConversationsCmd(ctx context.Context, backend session.Backend) tea.Cmd {
	return func() tea.Msg {
		response, err := backend.GetConversations(ctx)
		return conversationsMsg{response: response, err: err}
	}
}

func historyCmd(ctx context.Context, backend session.Backend, conversationID string) tea.Cmd {
	return func() tea.Msg {
		response, err := backend.GetHistory(ctx, conversationID)
		return historyMsg{conversationID: conversationID, response: response, err: err}
	}
}

func sendCmd(ctx context.Context, backend session.Backend, request *api.ChatRequest) tea.Cmd {
	return func() tea.Msg {
		response, err := backend.ChatWithPage(ctx, request)
		return chatDoneMsg{request: request, response: response, err: err}
	}
}

func deleteCmd(ctx context.Context, backend session.Backend, conversationID string) tea.Cmd {
	return func() tea.Msg {
		response, err := backend.DeleteConversation(ctx, conversationID)
		return deleteDoneMsg{conversationID: conversationID, response: response, err: err}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func alertCmd(level, text string) tea.Cmd {
	return emit(alertMsg{level: level, text: text})
}

func infoAlertCmd(text string) tea.Cmd {
	return alertCmd(bubbleup.InfoKey, text)
}

func errorAlertCmd(text string) tea.Cmd {
	return alertCmd(bubbleup.ErrorKey, text)
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// writeClipboard copies text to the system clipboard. Swapped in tests.
var writeClipboard = func(text string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return errors.Wrap(clipboardErr, "initializing clipboard")
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
