package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/cli/tui/styles"
	"github.com/malonaz/urlreader/internal/history"
	"github.com/malonaz/urlreader/internal/i18n"
	"github.com/malonaz/urlreader/internal/markdown"
	"github.com/malonaz/urlreader/internal/session"
)

// FocusedComponent is the part of the chat view receiving key presses.
type FocusedComponent int

const (
	FocusDraft FocusedComponent = iota
	FocusURL
	FocusList
)

// chatView talks about a web page and manages the conversations held by the backend.
type chatView struct {
	ctx     context.Context
	backend session.Backend
	locale  i18n.Locale

	state *session.Chat

	// UI components
	urlInput textinput.Model
	textarea textarea.Model
	viewport viewport.Model
	renderer *markdown.Renderer

	focused FocusedComponent
	// renderedVersion is the session.Chat.HistoryVersion currently in the viewport.
	renderedVersion int

	// Input history
	history           *history.History
	historyNavigating bool

	width  int
	height int
}

func newChatView(ctx context.Context, backend session.Backend, locale i18n.Locale, model api.Model, historyPath string) (*chatView, error) {
	renderer, err := markdown.NewRenderer(styles.DefaultWidth)
	if err != nil {
		return nil, err
	}

	urlInput := textinput.New()
	urlInput.Prompt = ""
	urlInput.CharLimit = 0

	ta := textarea.New()
	ta.CharLimit = 0
	ta.SetWidth(styles.DefaultWidth)
	ta.SetHeight(styles.MinTextareaHeight)
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")

	v := &chatView{
		ctx:             ctx,
		backend:         backend,
		state:           session.NewChat(model),
		urlInput:        urlInput,
		textarea:        ta,
		viewport:        viewport.New(styles.DefaultWidth, styles.MinViewportHeight),
		renderer:        renderer,
		history:         history.New(historyPath),
		renderedVersion: -1,
	}
	v.setLocale(locale)
	return v, nil
}

func (v *chatView) setLocale(locale i18n.Locale) {
	v.locale = locale
	v.urlInput.Placeholder = locale.T("input.url")
	v.textarea.Placeholder = locale.T("chat.input")
	v.renderedVersion = -1
	v.refreshMessages()
}

// mount fetches the conversation list, as done every time the view is opened.
func (v *chatView) mount() tea.Cmd {
	v.state.BeginListConversations()
	return tea.Batch(listConversationsCmd(v.ctx, v.backend), v.focus(v.defaultFocus()))
}

func (v *chatView) defaultFocus() FocusedComponent {
	if v.state.URLEditable() && v.state.URL == "" {
		return FocusURL
	}
	return FocusDraft
}

// focus moves the keyboard to the given component.
func (v *chatView) focus(component FocusedComponent) tea.Cmd {
	v.focused = component
	v.urlInput.Blur()
	v.textarea.Blur()
	switch component {
	case FocusURL:
		return v.urlInput.Focus()
	case FocusDraft:
		return v.textarea.Focus()
	}
	return nil
}

// cycleFocus moves focus to the next component, skipping the URL input when it is locked.
func (v *chatView) cycleFocus() tea.Cmd {
	next := v.focused
	for range 3 {
		switch next {
		case FocusURL:
			next = FocusDraft
		case FocusDraft:
			next = FocusList
		case FocusList:
			next = FocusURL
		}
		if next != FocusURL || v.state.URLEditable() {
			break
		}
	}
	return v.focus(next)
}

// syncInputs copies the drafts held by the state into the input components.
func (v *chatView) syncInputs() {
	if v.urlInput.Value() != v.state.URL {
		v.urlInput.SetValue(v.state.URL)
	}
	if v.textarea.Value() != v.state.Draft {
		v.textarea.SetValue(v.state.Draft)
	}
	v.adjustTextareaHeight()
}

func (v *chatView) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case conversationsMsg:
		v.state.ApplyConversations(msg.response, msg.err)

	case historyMsg:
		v.state.ApplyHistory(msg.conversationID, msg.response, msg.err)

	case chatDoneMsg:
		if v.state.ApplySend(msg.request, msg.response, msg.err) {
			v.syncInputs()
			v.state.BeginListConversations()
			cmds = append(cmds, listConversationsCmd(v.ctx, v.backend))
		}
		if v.focused != FocusList {
			cmds = append(cmds, v.focus(FocusDraft))
		}

	case deleteDoneMsg:
		v.state.ApplyDelete(msg.conversationID, msg.response, msg.err)
		if msg.err == nil && msg.response.Failure() == "" {
			cmds = append(cmds, infoAlertCmd(v.locale.T("chat.deleted")))
		}
		v.state.BeginListConversations()
		cmds = append(cmds, listConversationsCmd(v.ctx, v.backend))

	case SelectConversationMsg:
		if v.state.Select(msg.ConversationID) {
			cmds = append(cmds, historyCmd(v.ctx, v.backend, msg.ConversationID))
		}
		v.syncInputs()

	case DeleteConversationMsg:
		// A reply in flight would re-adopt the deleted conversation.
		if v.state.Loading {
			break
		}
		v.state.Err = ""
		cmds = append(cmds, deleteCmd(v.ctx, v.backend, msg.ConversationID))

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		cmds = append(cmds, v.handleKey(msg))

	default:
		cmds = append(cmds, v.updateInputs(msg))
	}

	v.refreshMessages()
	return tea.Batch(cmds...)
}

func (v *chatView) handleKey(msg tea.KeyMsg) tea.Cmd {
	km := keyMapChat
	switch {
	case key.Matches(msg, km.CycleFocus):
		return v.cycleFocus()

	case key.Matches(msg, km.NewChat):
		if v.state.Loading {
			return nil
		}
		v.state.StartNewChat()
		v.syncInputs()
		return v.focus(FocusURL)

	case key.Matches(msg, km.ToggleModel):
		v.state.ToggleModel()
		return nil

	case key.Matches(msg, km.Copy):
		reply, ok := v.state.LastAssistantMessage()
		if !ok {
			return nil
		}
		if err := writeClipboard(reply); err != nil {
			return errorAlertCmd(v.locale.T("chat.copyFailed", err.Error()))
		}
		return infoAlertCmd(v.locale.T("chat.copied"))

	case key.Matches(msg, km.ScrollUp):
		v.viewport.LineUp(v.viewport.Height / 2)
		return nil

	case key.Matches(msg, km.ScrollDown):
		v.viewport.LineDown(v.viewport.Height / 2)
		return nil
	}

	switch v.focused {
	case FocusList:
		return updateList(&v.state.List, msg)

	case FocusURL:
		if key.Matches(msg, km.Send) {
			return v.focus(FocusDraft)
		}
		if !v.state.URLEditable() {
			return nil
		}
		return v.updateInputs(msg)

	case FocusDraft:
		switch {
		case key.Matches(msg, km.Send):
			return v.send()

		case key.Matches(msg, km.PreviousHistoryEntry):
			if !v.state.DraftEditable() {
				return nil
			}
			if entry, ok := v.history.Previous(v.textarea.Value()); ok {
				v.setDraft(entry)
				v.historyNavigating = true
			}
			return nil

		case key.Matches(msg, km.NextHistoryEntry):
			if !v.state.DraftEditable() {
				return nil
			}
			if entry, ok := v.history.Next(); ok {
				v.setDraft(entry)
				v.historyNavigating = true
			}
			return nil
		}

		if !v.state.DraftEditable() {
			return nil
		}
		if v.historyNavigating {
			switch msg.Type {
			case tea.KeyRunes, tea.KeyBackspace, tea.KeyDelete:
				v.history.Reset()
				v.historyNavigating = false
			}
		}
		return v.updateInputs(msg)
	}
	return nil
}

// updateInputs forwards msg to the focused input and copies its value into the state.
func (v *chatView) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch v.focused {
	case FocusURL:
		v.urlInput, cmd = v.urlInput.Update(msg)
		if v.state.URLEditable() {
			v.state.URL = strings.TrimSpace(v.urlInput.Value())
		}
	case FocusDraft:
		v.textarea, cmd = v.textarea.Update(msg)
		v.state.Draft = v.textarea.Value()
		v.adjustTextareaHeight()
	}
	return cmd
}

func (v *chatView) setDraft(draft string) {
	v.textarea.SetValue(draft)
	v.state.Draft = draft
	v.adjustTextareaHeight()
}

func (v *chatView) send() tea.Cmd {
	v.state.Draft = v.textarea.Value()
	request, ok := v.state.PrepareSend()
	if !ok {
		return nil
	}
	v.history.Add(request.Message)
	v.historyNavigating = false
	v.textarea.Blur()
	v.urlInput.Blur()
	return sendCmd(v.ctx, v.backend, request)
}

// adjustTextareaHeight resizes the textarea based on content line count.
func (v *chatView) adjustTextareaHeight() {
	lineCount := strings.Count(v.textarea.Value(), "\n") + 1
	newHeight := min(max(lineCount, styles.MinTextareaHeight), styles.MaxTextareaHeight)
	if v.textarea.Height() != newHeight {
		v.textarea.SetHeight(newHeight)
		v.recalculateLayout()
	}
}

func (v *chatView) setSize(width, height int) {
	v.width = width
	v.height = height
	v.recalculateLayout()
}

// recalculateLayout adjusts viewport and input dimensions based on current state.
func (v *chatView) recalculateLayout() {
	if v.width == 0 || v.height == 0 {
		return
	}
	listWidth := v.listWidth()
	mainWidth := v.width - listWidth

	inputFrame := styles.InputStyle.GetHorizontalFrameSize()
	v.urlInput.Width = mainWidth - inputFrame - 1
	v.textarea.SetWidth(mainWidth - inputFrame)

	viewportHeight := v.height -
		(1 + styles.InputStyle.GetVerticalFrameSize()) -
		(v.textarea.Height() + styles.InputStyle.GetVerticalFrameSize()) -
		styles.StatusHeight
	if viewportHeight < styles.MinViewportHeight {
		viewportHeight = styles.MinViewportHeight
	}
	atBottom := v.viewport.AtBottom()
	v.viewport.Width = mainWidth
	v.viewport.Height = viewportHeight
	if atBottom {
		v.viewport.GotoBottom()
	}

	if v.renderer.Width() != mainWidth-styles.MessageHorizontalFrameSize() {
		v.renderer.SetWidth(mainWidth - styles.MessageHorizontalFrameSize())
		v.renderedVersion = -1
	}
	v.refreshMessages()
}

func (v *chatView) listWidth() int {
	width := styles.ListWidth
	if v.width/3 < width {
		width = max(v.width/3, styles.ListMinWidth)
	}
	return width
}

// refreshMessages re-renders the messages when the history changed and scrolls to the newest.
func (v *chatView) refreshMessages() {
	if v.renderedVersion == v.state.HistoryVersion {
		return
	}
	v.renderedVersion = v.state.HistoryVersion
	v.viewport.SetContent(v.renderMessages())
	v.viewport.GotoBottom()
}

func (v *chatView) renderMessages() string {
	if len(v.state.Messages) == 0 {
		return styles.DimTextStyle.Render(v.locale.T("chat.noMessages"))
	}

	var b strings.Builder
	for i, message := range v.state.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		switch message.Role {
		case api.RoleUser:
			width := v.viewport.Width - styles.UserMessageStyle.GetHorizontalFrameSize()
			b.WriteString(styles.UserMessageStyle.Width(max(width, 1)).Render(message.Content))
		case api.RoleAssistant:
			b.WriteString(styles.AIMessageStyle.Render(v.renderer.Render(message.Content)))
		default:
			b.WriteString(styles.SystemStyle.Render(message.Content))
		}
	}
	return b.String()
}

func (v *chatView) view(spinner string) string {
	listHeight := max(v.height, 3)
	list := renderList(&v.state.List, v.locale, spinner, v.listWidth(), listHeight, v.focused == FocusList)

	var b strings.Builder
	urlStyle := styles.Input(v.focused == FocusURL, v.state.URLEditable())
	b.WriteString(urlStyle.Render(v.urlInput.View()))
	b.WriteString("\n")
	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	b.WriteString(v.renderStatus(spinner))
	b.WriteString("\n")
	draftStyle := styles.Input(v.focused == FocusDraft, v.state.DraftEditable())
	b.WriteString(draftStyle.Render(v.textarea.View()))

	return lipgloss.JoinHorizontal(lipgloss.Top, list, b.String())
}

func (v *chatView) renderStatus(spinner string) string {
	status := styles.ModelStyle.Render(v.locale.T("chat.model") + ": " + v.locale.T("model."+string(v.state.Model)))
	switch {
	case v.state.Loading:
		status += "  " + spinner + " " + styles.DimTextStyle.Render(v.locale.T("chat.sending"))
	case v.state.Err != "":
		status += "  " + styles.ErrorStyle.Render(v.locale.T("chat.error", v.state.Err))
	}
	return status
}
