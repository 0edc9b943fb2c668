// Package backendtest runs an in-memory stand-in for the URL reader backend.
// It serves the same five endpoints and keeps conversations in a map so client code can be
// exercised end to end without the real scraper or language models.
package backendtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/malonaz/urlreader/api"
)

// Page is the canned content returned for a URL.
type Page struct {
	Title   string
	Content string
}

type conversation struct {
	url      string
	messages []api.Message
}

// Backend is a fake backend. Its zero value is not usable; use New.
type Backend struct {
	*httptest.Server

	mu            sync.Mutex
	pages         map[string]Page
	conversations map[string]*conversation
	order         []string
	nextID        int
	requests      map[string]int
	failures      map[string]failure
}

type failure struct {
	status  int
	message string
}

// New starts a fake backend. The caller must Close it.
func New() *Backend {
	b := &Backend{
		pages:         map[string]Page{},
		conversations: map[string]*conversation{},
		requests:      map[string]int{},
		failures:      map[string]failure{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/parse", b.count("parse", b.handleParse))
	mux.HandleFunc("POST /api/chat", b.count("chat", b.handleChat))
	mux.HandleFunc("GET /api/history/{id}", b.count("history", b.handleHistory))
	mux.HandleFunc("DELETE /api/history/{id}", b.count("delete", b.handleDelete))
	mux.HandleFunc("GET /api/conversations", b.count("conversations", b.handleConversations))
	b.Server = httptest.NewServer(mux)
	return b
}

// BaseURL returns the API base URL of the backend.
func (b *Backend) BaseURL() string {
	return b.URL + "/api"
}

// AddPage registers canned content for a URL.
func (b *Backend) AddPage(url string, page Page) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pages[url] = page
}

// AddConversation seeds a conversation and returns its id.
func (b *Backend) AddConversation(url string, messages ...api.Message) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.createLocked(url, messages)
}

// Fail makes the named endpoint answer with the given status and error text.
// Endpoint names are parse, chat, history, delete and conversations.
// A 200 status produces an application-level failure (success:false).
func (b *Backend) Fail(endpoint string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[endpoint] = failure{status: status, message: message}
}

// Recover clears a failure installed by Fail.
func (b *Backend) Recover(endpoint string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, endpoint)
}

// Requests returns how many times the named endpoint was called.
func (b *Backend) Requests(endpoint string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[endpoint]
}

// TotalRequests returns how many calls the backend served.
func (b *Backend) TotalRequests() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := 0
	for _, count := range b.requests {
		total += count
	}
	return total
}

// Messages returns the stored messages of a conversation.
func (b *Backend) Messages(id string) []api.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.conversations[id]
	if !ok {
		return nil
	}
	return append([]api.Message(nil), c.messages...)
}

func (b *Backend) count(endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests[endpoint]++
		f, failing := b.failures[endpoint]
		b.mu.Unlock()
		if failing {
			writeJSON(w, f.status, map[string]any{"success": false, "error": f.message})
			return
		}
		handler(w, r)
	}
}

func (b *Backend) createLocked(url string, messages []api.Message) string {
	b.nextID++
	id := fmt.Sprintf("conv-%d", b.nextID)
	b.conversations[id] = &conversation{url: url, messages: append([]api.Message(nil), messages...)}
	b.order = append(b.order, id)
	return id
}

func (b *Backend) page(url string) Page {
	if page, ok := b.pages[url]; ok {
		return page
	}
	return Page{Title: "Page " + url, Content: "Content of " + url}
}

func (b *Backend) handleParse(w http.ResponseWriter, r *http.Request) {
	request := &api.ParseRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil || request.URL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request"})
		return
	}
	b.mu.Lock()
	page := b.page(request.URL)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, &api.ParseResponse{Success: true, Title: page.Title, Content: page.Content, URL: request.URL})
}

func (b *Backend) handleChat(w http.ResponseWriter, r *http.Request) {
	request := &api.ChatRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil || request.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request"})
		return
	}
	if request.ConversationID == "" && request.URL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "url is required on the first turn"})
		return
	}
	model := request.Model
	if model == "" {
		model = api.ModelAzureOpenAI
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	id := request.ConversationID
	if id == "" {
		id = b.createLocked(request.URL, nil)
	}
	c, ok := b.conversations[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "conversation not found"})
		return
	}
	reply := fmt.Sprintf("**%s** says: %s", model, strings.ToUpper(request.Message))
	c.messages = append(c.messages,
		api.Message{Role: api.RoleUser, Content: request.Message},
		api.Message{Role: api.RoleAssistant, Content: reply},
	)
	writeJSON(w, http.StatusOK, &api.ChatResponse{Success: true, ConversationID: id, Response: reply, Model: string(model)})
}

func (b *Backend) handleHistory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.conversations[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "conversation not found"})
		return
	}
	writeJSON(w, http.StatusOK, &api.HistoryResponse{Success: true, ConversationID: id, Messages: c.messages})
}

func (b *Backend) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.conversations[id]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "conversation not found"})
		return
	}
	delete(b.conversations, id)
	for i, existing := range b.order {
		if existing == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	writeJSON(w, http.StatusOK, &api.DeleteResponse{Success: true, ConversationID: id})
}

func (b *Backend) handleConversations(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, &api.ConversationsResponse{Success: true, ConversationIDs: append([]string{}, b.order...)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
