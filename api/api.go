package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// ParseURL fetches and summarizes the page at the given URL.
func (c *Client) ParseURL(ctx context.Context, pageURL string) (*ParseResponse, error) {
	response := &ParseResponse{}
	if err := c.do(ctx, http.MethodPost, "parse", &ParseRequest{URL: pageURL}, response); err != nil {
		return nil, err
	}
	return response, nil
}

// ChatWithPage sends one chat turn. The first turn of a conversation carries a URL and no
// conversation id; the backend assigns the id in its response.
func (c *Client) ChatWithPage(ctx context.Context, request *ChatRequest) (*ChatResponse, error) {
	if request == nil {
		return nil, errors.New("nil chat request")
	}
	response := &ChatResponse{}
	if err := c.do(ctx, http.MethodPost, "chat", request, response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetHistory returns every message of a conversation.
func (c *Client) GetHistory(ctx context.Context, conversationID string) (*HistoryResponse, error) {
	if conversationID == "" {
		return nil, errors.New("conversation id is required")
	}
	response := &HistoryResponse{}
	if err := c.do(ctx, http.MethodGet, "history/"+url.PathEscape(conversationID), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetConversations lists the ids of all conversations held by the backend.
func (c *Client) GetConversations(ctx context.Context) (*ConversationsResponse, error) {
	response := &ConversationsResponse{}
	if err := c.do(ctx, http.MethodGet, "conversations", nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

// DeleteConversation deletes a conversation and its history.
func (c *Client) DeleteConversation(ctx context.Context, conversationID string) (*DeleteResponse, error) {
	if conversationID == "" {
		return nil, errors.New("conversation id is required")
	}
	response := &DeleteResponse{}
	if err := c.do(ctx, http.MethodDelete, "history/"+url.PathEscape(conversationID), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}
