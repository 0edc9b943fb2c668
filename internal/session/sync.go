package session

import (
	"context"

	"github.com/malonaz/urlreader/api"
)

// Backend is the set of calls the views make. *api.Client implements it.
type Backend interface {
	ParseURL(ctx context.Context, url string) (*api.ParseResponse, error)
	ChatWithPage(ctx context.Context, request *api.ChatRequest) (*api.ChatResponse, error)
	GetHistory(ctx context.Context, conversationID string) (*api.HistoryResponse, error)
	GetConversations(ctx context.Context) (*api.ConversationsResponse, error)
	DeleteConversation(ctx context.Context, conversationID string) (*api.DeleteResponse, error)
}

var _ Backend = (*api.Client)(nil)

// Parse submits the URL and applies the result.
func (h *Home) Parse(ctx context.Context, backend Backend) {
	url, ok := h.Submit()
	if !ok {
		return
	}
	h.ApplyParse(backend.ParseURL(ctx, url))
}

// Refresh fetches the conversation list.
func (c *Chat) Refresh(ctx context.Context, backend Backend) {
	c.BeginListConversations()
	c.ApplyConversations(backend.GetConversations(ctx))
}

// Open selects a conversation and fetches its history.
func (c *Chat) Open(ctx context.Context, backend Backend, id string) {
	if !c.Select(id) {
		return
	}
	response, err := backend.GetHistory(ctx, id)
	c.ApplyHistory(id, response, err)
}

// Send sends the draft and refreshes the list on success.
func (c *Chat) Send(ctx context.Context, backend Backend) {
	request, ok := c.PrepareSend()
	if !ok {
		return
	}
	response, err := backend.ChatWithPage(ctx, request)
	if c.ApplySend(request, response, err) {
		c.Refresh(ctx, backend)
	}
}

// Delete deletes a conversation and refreshes the list.
func (c *Chat) Delete(ctx context.Context, backend Backend, id string) {
	response, err := backend.DeleteConversation(ctx, id)
	c.ApplyDelete(id, response, err)
	c.Refresh(ctx, backend)
}
