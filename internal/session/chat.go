package session

import (
	"strings"

	"github.com/malonaz/urlreader/api"
)

// Chat holds the state of the chat view.
type Chat struct {
	// Drafts.
	URL   string
	Draft string
	Model api.Model

	// Active conversation, "" when none.
	ConversationID string
	Messages       []api.Message
	// HistoryVersion increments whenever Messages changes. Views scroll to the newest entry
	// when it moves.
	HistoryVersion int

	List ConversationList

	// Loading is true while a send is in flight.
	Loading bool
	// NewChat keeps the URL field editable until the next successful send.
	NewChat bool
	Err     string
}

// NewChat instantiates and returns a new Chat using the given model.
func NewChat(model api.Model) *Chat {
	if !model.Valid() {
		model = api.ModelAzureOpenAI
	}
	return &Chat{Model: model}
}

// URLEditable reports whether the URL field accepts input.
func (c *Chat) URLEditable() bool {
	return !c.Loading && (c.ConversationID == "" || c.NewChat)
}

// DraftEditable reports whether the message field accepts input.
func (c *Chat) DraftEditable() bool {
	return !c.Loading && (c.URL != "" || c.ConversationID != "")
}

// CanSend reports whether PrepareSend would produce a request.
func (c *Chat) CanSend() bool {
	return c.DraftEditable() && strings.TrimSpace(c.Draft) != ""
}

// BeginListConversations marks the conversation list as loading.
func (c *Chat) BeginListConversations() {
	c.List.Loading = true
}

// ApplyConversations applies the outcome of a conversation list fetch.
func (c *Chat) ApplyConversations(response *api.ConversationsResponse, err error) {
	c.List.Loading = false
	switch {
	case err != nil:
		c.Err = err.Error()
	case response.Failure() != "":
		c.Err = response.Failure()
	default:
		c.List.SetIDs(response.ConversationIDs)
	}
	c.List.Selected = c.ConversationID
}

// Select makes id the active conversation and clears the drafts and the error.
// It returns true when the caller must fetch the history and hand it to ApplyHistory,
// which is not the case when id is already active. Nothing changes while a send is in flight.
func (c *Chat) Select(id string) bool {
	if c.Loading || id == "" {
		return false
	}
	c.URL = ""
	c.Draft = ""
	c.Err = ""
	if id == c.ConversationID {
		return false
	}
	c.ConversationID = id
	c.List.Selected = id
	return true
}

// ApplyHistory replaces the messages with the history fetched for id.
// Results for a conversation that is no longer active are dropped.
func (c *Chat) ApplyHistory(id string, response *api.HistoryResponse, err error) {
	if id != c.ConversationID {
		return
	}
	switch {
	case err != nil:
		c.Err = err.Error()
	case response.Failure() != "":
		c.Err = response.Failure()
	default:
		c.setMessages(append([]api.Message{}, response.Messages...))
	}
}

// StartNewChat clears the active conversation locally and lets the user enter a URL.
// Server-side state is left alone.
func (c *Chat) StartNewChat() {
	c.ConversationID = ""
	c.List.Selected = ""
	c.setMessages(nil)
	c.URL = ""
	c.Draft = ""
	c.Err = ""
	c.NewChat = true
}

// PrepareSend builds the request for the current draft and marks the send as in flight.
func (c *Chat) PrepareSend() (*api.ChatRequest, bool) {
	if !c.CanSend() {
		return nil, false
	}
	c.Loading = true
	c.Err = ""
	return &api.ChatRequest{
		URL:            c.URL,
		Message:        c.Draft,
		Model:          c.Model,
		ConversationID: c.ConversationID,
	}, true
}

// ApplySend applies the outcome of a send. It returns true when the conversation list
// must be refreshed.
func (c *Chat) ApplySend(request *api.ChatRequest, response *api.ChatResponse, err error) bool {
	c.Loading = false
	switch {
	case err != nil:
		c.Err = err.Error()
		return false
	case response.Failure() != "":
		c.Err = response.Failure()
		return false
	}

	c.ConversationID = response.ConversationID
	c.List.Selected = response.ConversationID
	c.setMessages(append(c.Messages,
		api.Message{Role: api.RoleUser, Content: request.Message},
		api.Message{Role: api.RoleAssistant, Content: response.Response},
	))
	c.Draft = ""
	c.NewChat = false
	return true
}

// ApplyDelete applies the outcome of deleting id. The conversation list is refreshed
// regardless of the outcome.
func (c *Chat) ApplyDelete(id string, response *api.DeleteResponse, err error) {
	switch {
	case err != nil:
		c.Err = err.Error()
		return
	case response.Failure() != "":
		c.Err = response.Failure()
		return
	}
	if id == c.ConversationID {
		c.ConversationID = ""
		c.List.Selected = ""
		c.setMessages(nil)
	}
}

// ToggleModel switches to the next model.
func (c *Chat) ToggleModel() {
	if c.Loading {
		return
	}
	c.Model = c.Model.Next()
}

// LastAssistantMessage returns the newest assistant reply.
func (c *Chat) LastAssistantMessage() (string, bool) {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == api.RoleAssistant {
			return c.Messages[i].Content, true
		}
	}
	return "", false
}

func (c *Chat) setMessages(messages []api.Message) {
	c.Messages = messages
	c.HistoryVersion++
}
