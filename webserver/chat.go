package webserver

import (
	"net/http"
	"net/url"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/internal/i18n"
	"github.com/malonaz/urlreader/internal/session"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	locale := s.locale(w, r)
	chat := session.NewChat(s.model(r.URL.Query().Get("model")))
	if conversationID := r.URL.Query().Get("conversation_id"); conversationID != "" {
		chat.Open(r.Context(), s.backend, conversationID)
	}
	chat.Refresh(r.Context(), s.backend)
	s.renderChat(w, r, locale, chat)
}

func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	locale := s.locale(w, r)

	chat := session.NewChat(s.model(r.FormValue("model")))
	chat.ConversationID = r.FormValue("conversation_id")
	chat.NewChat = chat.ConversationID == ""
	if chat.URLEditable() {
		chat.URL = r.FormValue("url")
	}
	chat.Draft = r.FormValue("message")

	request, ok := chat.PrepareSend()
	if !ok {
		http.Redirect(w, r, chatURL(chat.ConversationID, chat.Model), http.StatusSeeOther)
		return
	}
	response, err := s.backend.ChatWithPage(r.Context(), request)
	if chat.ApplySend(request, response, err) {
		http.Redirect(w, r, chatURL(chat.ConversationID, chat.Model), http.StatusSeeOther)
		return
	}

	// Render in place so the drafts survive.
	s.loadChat(r, chat)
	s.renderChat(w, r, locale, chat)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	locale := s.locale(w, r)
	conversationID := r.FormValue("conversation_id")
	if conversationID == "" {
		http.Error(w, "Conversation id cannot be empty", http.StatusBadRequest)
		return
	}

	chat := session.NewChat(s.model(r.FormValue("model")))
	chat.ConversationID = r.FormValue("active_conversation_id")
	response, err := s.backend.DeleteConversation(r.Context(), conversationID)
	chat.ApplyDelete(conversationID, response, err)
	if chat.Err == "" {
		http.Redirect(w, r, chatURL(chat.ConversationID, chat.Model), http.StatusSeeOther)
		return
	}

	s.loadChat(r, chat)
	s.renderChat(w, r, locale, chat)
}

// loadChat fetches the list and the active history without clearing an error already shown.
func (s *Server) loadChat(r *http.Request, chat *session.Chat) {
	errorText := chat.Err
	chat.Refresh(r.Context(), s.backend)
	if chat.ConversationID != "" {
		response, err := s.backend.GetHistory(r.Context(), chat.ConversationID)
		chat.ApplyHistory(chat.ConversationID, response, err)
	}
	if errorText != "" {
		chat.Err = errorText
	}
}

func (s *Server) renderChat(w http.ResponseWriter, r *http.Request, locale i18n.Locale, chat *session.Chat) {
	data := &PageData{
		Page:          pageChat,
		Title:         locale.T("nav.chat"),
		Locale:        locale,
		SwitchLangURL: switchLangURL(r, locale),
		Chat: &ChatViewModel{
			Chat:   chat,
			Models: api.Models,
		},
	}
	if chat.Err != "" {
		data.Error = locale.T("chat.error", chat.Err)
	}
	s.render(w, data)
}

func (s *Server) model(value string) api.Model {
	if model := api.Model(value); model.Valid() {
		return model
	}
	return s.defaultModel
}

func chatURL(conversationID string, model api.Model) string {
	query := url.Values{}
	if conversationID != "" {
		query.Set("conversation_id", conversationID)
	}
	query.Set("model", string(model))
	return "/chat?" + query.Encode()
}
