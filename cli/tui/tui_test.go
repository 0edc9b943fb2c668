package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/internal/backendtest"
	"github.com/malonaz/urlreader/internal/configuration"
	"github.com/malonaz/urlreader/internal/i18n"
	"github.com/malonaz/urlreader/internal/session"
)

func newTestModel(t *testing.T) (*Model, *backendtest.Backend) {
	t.Helper()
	backend := backendtest.New()
	t.Cleanup(backend.Close)
	client, err := api.NewClient(api.Config{BaseURL: backend.BaseURL()})
	require.NoError(t, err)

	t.Setenv(configuration.EnvLanguage, "en")
	config, err := configuration.Default()
	require.NoError(t, err)

	previousHistoryPath := historyPath
	historyPath = ""
	t.Cleanup(func() { historyPath = previousHistoryPath })

	m, err := New(context.Background(), config, client)
	require.NoError(t, err)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, backend
}

// run executes cmd and returns the messages produced by backend calls and widgets.
// Timer driven messages such as cursor blinks are dropped.
func run(cmd tea.Cmd) []tea.Msg {
	results := make(chan tea.Msg, 64)
	var wg sync.WaitGroup
	var start func(tea.Cmd)
	start = func(cmd tea.Cmd) {
		if cmd == nil {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := cmd()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, cmd := range batch {
					start(cmd)
				}
				return
			}
			results <- msg
		}()
	}
	start(cmd)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
	}

	var msgs []tea.Msg
	for {
		select {
		case msg := <-results:
			switch msg.(type) {
			case parseDoneMsg, conversationsMsg, historyMsg, chatDoneMsg, deleteDoneMsg,
				SelectConversationMsg, DeleteConversationMsg, alertMsg:
				msgs = append(msgs, msg)
			}
		default:
			return msgs
		}
	}
}

// send feeds each msg to the model in turn. Every message an input triggers is
// handled before the next input, so the model settles between key presses.
func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		queue := []tea.Msg{msg}
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			_, cmd := m.Update(next)
			queue = append(queue, run(cmd)...)
		}
	}
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

var (
	enter      = tea.KeyMsg{Type: tea.KeyEnter}
	tab        = tea.KeyMsg{Type: tea.KeyTab}
	down       = tea.KeyMsg{Type: tea.KeyDown}
	toHome     = tea.KeyMsg{Type: tea.KeyF1}
	toChat     = tea.KeyMsg{Type: tea.KeyF2}
	newChat    = tea.KeyMsg{Type: tea.KeyCtrlN}
	nextModel  = tea.KeyMsg{Type: tea.KeyCtrlT}
	nextLocale = tea.KeyMsg{Type: tea.KeyCtrlL}
	copyReply  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w"), Alt: true}
)

func TestHomeParse(t *testing.T) {
	m, backend := newTestModel(t)
	backend.AddPage("https://example.com", backendtest.Page{Title: "Example title", Content: "Example summary"})

	send(m, runes("https://example.com"), enter)
	require.Equal(t, session.HomeResult, m.home.state.State)
	require.Equal(t, "Example title", m.home.state.Result.Title)
	require.Equal(t, 1, backend.Requests("parse"))
	require.Contains(t, m.View(), "summary")
}

func TestHomeEmptyURLIsIgnored(t *testing.T) {
	m, backend := newTestModel(t)

	send(m, runes("   "), enter)
	require.Equal(t, session.HomeIdle, m.home.state.State)
	require.Zero(t, backend.TotalRequests())
}

func TestHomeParseFailure(t *testing.T) {
	m, backend := newTestModel(t)
	backend.Fail("parse", 200, "cannot fetch page")

	send(m, runes("https://example.com"), enter)
	require.Equal(t, session.HomeError, m.home.state.State)
	require.Contains(t, m.View(), "Parse failed: cannot fetch page")
}

func TestOpeningChatFetchesConversations(t *testing.T) {
	m, backend := newTestModel(t)
	backend.AddConversation("https://a.example")
	backend.AddConversation("https://b.example")

	send(m, toChat)
	require.Equal(t, RouteChat, m.Route())
	require.Equal(t, []string{"conv-1", "conv-2"}, m.chat.state.List.IDs)
	require.False(t, m.chat.state.List.Loading)

	send(m, toHome, toChat)
	require.Equal(t, 2, backend.Requests("conversations"))
}

func TestChatFirstSend(t *testing.T) {
	m, backend := newTestModel(t)

	send(m, toChat)
	require.Equal(t, FocusURL, m.chat.focused)
	send(m, runes("https://example.com"), enter, runes("hello"), enter)

	state := m.chat.state
	require.Equal(t, "conv-1", state.ConversationID)
	require.Equal(t, []api.Message{
		{Role: api.RoleUser, Content: "hello"},
		{Role: api.RoleAssistant, Content: "**azure_openai** says: HELLO"},
	}, state.Messages)
	require.Empty(t, m.chat.textarea.Value())
	require.Equal(t, []string{"conv-1"}, state.List.IDs)
	require.False(t, state.URLEditable())
	require.Equal(t, 2, backend.Requests("conversations"))
}

func TestChatSendFailureKeepsDraft(t *testing.T) {
	m, backend := newTestModel(t)
	backend.Fail("chat", 500, "model unavailable")

	send(m, toChat, runes("https://example.com"), enter, runes("hello"), enter)
	require.Equal(t, "hello", m.chat.textarea.Value())
	require.Empty(t, m.chat.state.Messages)
	require.Contains(t, m.View(), "model unavailable")
}

func TestChatSelectAndDeleteFromList(t *testing.T) {
	m, backend := newTestModel(t)
	backend.AddConversation("https://a.example")
	id := backend.AddConversation("https://b.example",
		api.Message{Role: api.RoleUser, Content: "question"},
		api.Message{Role: api.RoleAssistant, Content: "answer"},
	)

	send(m, toChat, tab, tab)
	require.Equal(t, FocusList, m.chat.focused)

	send(m, down, enter)
	require.Equal(t, id, m.chat.state.ConversationID)
	require.Len(t, m.chat.state.Messages, 2)
	require.Equal(t, 1, backend.Requests("history"))

	send(m, runes("d"))
	require.Equal(t, id, m.chat.state.List.PendingDelete)
	send(m, enter)
	require.Equal(t, 1, backend.Requests("history"))
	require.Zero(t, backend.Requests("delete"))

	send(m, runes("y"))
	require.Equal(t, 1, backend.Requests("delete"))
	require.Empty(t, m.chat.state.ConversationID)
	require.Empty(t, m.chat.state.Messages)
	require.Equal(t, []string{"conv-1"}, m.chat.state.List.IDs)
}

func TestChatDeleteCanBeCancelled(t *testing.T) {
	m, backend := newTestModel(t)
	backend.AddConversation("https://a.example")

	send(m, toChat, tab, tab, runes("x"), runes("n"))
	require.Empty(t, m.chat.state.List.PendingDelete)
	require.Zero(t, backend.Requests("delete"))
}

func TestChatNewChatIssuesNoRequest(t *testing.T) {
	m, backend := newTestModel(t)
	send(m, toChat, runes("https://example.com"), enter, runes("hello"), enter)
	requests := backend.TotalRequests()

	send(m, newChat)
	require.Equal(t, requests, backend.TotalRequests())
	require.Empty(t, m.chat.state.ConversationID)
	require.Empty(t, m.chat.state.Messages)
	require.True(t, m.chat.state.URLEditable())
	require.Equal(t, FocusURL, m.chat.focused)
	require.Empty(t, m.chat.urlInput.Value())
}

func TestChatToggleModel(t *testing.T) {
	m, _ := newTestModel(t)

	send(m, toChat, nextModel, runes("https://example.com"), enter, runes("hi"), enter)
	require.Equal(t, api.ModelDeepseek, m.chat.state.Model)
	reply, ok := m.chat.state.LastAssistantMessage()
	require.True(t, ok)
	require.Equal(t, "**deepseek** says: HI", reply)
}

func TestChatCopyLastReply(t *testing.T) {
	m, _ := newTestModel(t)
	var copied string
	previousWriteClipboard := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = previousWriteClipboard })

	send(m, toChat, copyReply)
	require.Empty(t, copied)

	send(m, runes("https://example.com"), enter, runes("hi"), enter, copyReply)
	require.Equal(t, "**azure_openai** says: HI", copied)
}

func TestChatInputHistory(t *testing.T) {
	m, _ := newTestModel(t)
	previous := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p"), Alt: true}

	send(m, toChat, runes("https://example.com"), enter, runes("first"), enter, previous)
	require.Equal(t, "first", m.chat.textarea.Value())
	require.Equal(t, "first", m.chat.state.Draft)
}

func TestChatScrollsToNewestMessage(t *testing.T) {
	m, backend := newTestModel(t)
	var messages []api.Message
	for i := range 30 {
		messages = append(messages,
			api.Message{Role: api.RoleUser, Content: fmt.Sprintf("question %d", i)},
			api.Message{Role: api.RoleAssistant, Content: fmt.Sprintf("answer %d", i)},
		)
	}
	id := backend.AddConversation("https://example.com", messages...)

	send(m, toChat, SelectConversationMsg{ConversationID: id})
	require.Len(t, m.chat.state.Messages, 60)
	require.Greater(t, m.chat.viewport.TotalLineCount(), m.chat.viewport.Height)
	require.True(t, m.chat.viewport.AtBottom())

	send(m, tea.KeyMsg{Type: tea.KeyPgUp})
	require.False(t, m.chat.viewport.AtBottom())

	send(m, enter, runes("one more"), enter)
	require.Len(t, m.chat.state.Messages, 62)
	require.True(t, m.chat.viewport.AtBottom())
}

func TestChatReselectClearsDrafts(t *testing.T) {
	m, backend := newTestModel(t)
	id := backend.AddConversation("https://example.com", api.Message{Role: api.RoleUser, Content: "question"})

	send(m, toChat, SelectConversationMsg{ConversationID: id}, enter, runes("unsent"))
	require.Equal(t, "unsent", m.chat.textarea.Value())

	send(m, SelectConversationMsg{ConversationID: id})
	require.Empty(t, m.chat.textarea.Value())
	require.Empty(t, m.chat.state.Draft)
	require.Equal(t, id, m.chat.state.ConversationID)
	require.Equal(t, 1, backend.Requests("history"))
}

func TestChatDeleteIgnoredWhileSending(t *testing.T) {
	m, backend := newTestModel(t)
	id := backend.AddConversation("https://example.com", api.Message{Role: api.RoleUser, Content: "question"})

	send(m, toChat, SelectConversationMsg{ConversationID: id}, enter, runes("more"))
	_, pending := m.Update(enter)
	require.True(t, m.chat.state.Loading)

	send(m, DeleteConversationMsg{ConversationID: id})
	require.Zero(t, backend.Requests("delete"))

	for _, msg := range run(pending) {
		send(m, msg)
	}
	require.False(t, m.chat.state.Loading)
	require.Equal(t, id, m.chat.state.ConversationID)
	require.Len(t, m.chat.state.Messages, 3)
	require.Equal(t, []string{id}, m.chat.state.List.IDs)
}

func TestToggleLocale(t *testing.T) {
	m, _ := newTestModel(t)
	require.Contains(t, m.View(), "URL Reader")

	send(m, nextLocale)
	require.Equal(t, i18n.Chinese, m.Locale())
	require.Contains(t, m.View(), "网页阅读器")

	send(m, toChat)
	require.Contains(t, m.View(), "历史对话")
}

func TestStaleHistoryIsDropped(t *testing.T) {
	m, backend := newTestModel(t)
	first := backend.AddConversation("https://a.example", api.Message{Role: api.RoleUser, Content: "a"})
	second := backend.AddConversation("https://b.example", api.Message{Role: api.RoleUser, Content: "b"})

	send(m, toChat, SelectConversationMsg{ConversationID: second})
	send(m, historyMsg{
		conversationID: first,
		response:       &api.HistoryResponse{Success: true, ConversationID: first, Messages: []api.Message{{Role: api.RoleUser, Content: "a"}}},
	})
	require.Equal(t, second, m.chat.state.ConversationID)
	require.Equal(t, "b", m.chat.state.Messages[0].Content)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
	require.Empty(t, m.View())
}
