package api

// Role of a message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Model names the backend-side language model that answers a chat turn.
type Model string

const (
	ModelAzureOpenAI Model = "azure_openai"
	ModelDeepseek    Model = "deepseek"
)

// Models lists the selectable models, default first.
var Models = []Model{ModelAzureOpenAI, ModelDeepseek}

// Next returns the model that follows m in Models.
func (m Model) Next() Model {
	for i, model := range Models {
		if model == m {
			return Models[(i+1)%len(Models)]
		}
	}
	return Models[0]
}

// Valid reports whether m is a known model.
func (m Model) Valid() bool {
	for _, model := range Models {
		if model == m {
			return true
		}
	}
	return false
}

// Message is a single conversation turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	URL string `json:"url"`
}

// ParseResponse is the body returned by POST /parse.
type ParseResponse struct {
	Success bool   `json:"success"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ChatRequest is the body of POST /chat.
// ConversationID is empty on the first turn of a conversation.
type ChatRequest struct {
	URL            string `json:"url"`
	Message        string `json:"message"`
	Model          Model  `json:"model,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Success        bool   `json:"success"`
	ConversationID string `json:"conversation_id,omitempty"`
	Response       string `json:"response,omitempty"`
	Model          string `json:"model,omitempty"`
	Error          string `json:"error,omitempty"`
}

// HistoryResponse is the body returned by GET /history/{id}.
type HistoryResponse struct {
	Success        bool      `json:"success"`
	ConversationID string    `json:"conversation_id,omitempty"`
	Messages       []Message `json:"messages,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// ConversationsResponse is the body returned by GET /conversations.
type ConversationsResponse struct {
	Success         bool     `json:"success"`
	ConversationIDs []string `json:"conversation_ids,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// DeleteResponse is the body returned by DELETE /history/{id}.
type DeleteResponse struct {
	Success        bool   `json:"success"`
	ConversationID string `json:"conversation_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Failure returns the application-level error, or "" on success.
func (r *ParseResponse) Failure() string { return failure(r.Success, r.Error) }

// Failure returns the application-level error, or "" on success.
func (r *ChatResponse) Failure() string { return failure(r.Success, r.Error) }

// Failure returns the application-level error, or "" on success.
func (r *HistoryResponse) Failure() string { return failure(r.Success, r.Error) }

// Failure returns the application-level error, or "" on success.
func (r *ConversationsResponse) Failure() string { return failure(r.Success, r.Error) }

// Failure returns the application-level error, or "" on success.
func (r *DeleteResponse) Failure() string { return failure(r.Success, r.Error) }

// failure keeps a failed response distinguishable from a successful one even when the
// backend omits the error text.
func failure(success bool, errorText string) string {
	if success {
		return ""
	}
	if errorText == "" {
		return "request failed"
	}
	return errorText
}
