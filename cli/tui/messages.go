package tui

import (
	"github.com/malonaz/urlreader/api"
)

// Results of backend calls. Each carries what it was issued for so late results land on the
// state they target.
type (
	parseDoneMsg struct {
		url      string
		response *api.ParseResponse
		err      error
	}

	conversationsMsg struct {
		response *api.ConversationsResponse
		err      error
	}

	historyMsg struct {
		conversationID string
		response       *api.HistoryResponse
		err            error
	}

	chatDoneMsg struct {
		request  *api.ChatRequest
		response *api.ChatResponse
		err      error
	}

	deleteDoneMsg struct {
		conversationID string
		response       *api.DeleteResponse
		err            error
	}
)

// SelectConversationMsg is emitted by the conversation list when a row is opened.
type SelectConversationMsg struct {
	ConversationID string
}

// DeleteConversationMsg is emitted by the conversation list once a delete is confirmed.
type DeleteConversationMsg struct {
	ConversationID string
}

// alertMsg asks the app shell to show a toast.
type alertMsg struct {
	level string
	text  string
}
