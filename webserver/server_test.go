package webserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/internal/backendtest"
	"github.com/malonaz/urlreader/internal/i18n"
)

type testServer struct {
	*httptest.Server
	backend *backendtest.Backend
	client  *http.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	backend := backendtest.New()
	t.Cleanup(backend.Close)
	client, err := api.NewClient(api.Config{BaseURL: backend.BaseURL()})
	require.NoError(t, err)

	server, err := New(client, i18n.English, api.ModelAzureOpenAI)
	require.NoError(t, err)
	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)

	return &testServer{
		Server:  httpServer,
		backend: backend,
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
	}
}

func (s *testServer) get(t *testing.T, path string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()
	request, err := http.NewRequest(http.MethodGet, s.URL+path, nil)
	require.NoError(t, err)
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	return s.do(t, request)
}

func (s *testServer) post(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	request, err := http.NewRequest(http.MethodPost, s.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(t, request)
}

func (s *testServer) do(t *testing.T, request *http.Request) (*http.Response, string) {
	t.Helper()
	response, err := s.client.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response, string(body)
}

func TestHomePage(t *testing.T) {
	s := newTestServer(t)

	response, body := s.get(t, "/")
	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Contains(t, body, `name="url"`)
	require.Contains(t, body, "URL Reader")
}

func TestParse(t *testing.T) {
	s := newTestServer(t)
	s.backend.AddPage("https://example.com", backendtest.Page{Title: "Example", Content: "A **bold** summary"})

	response, body := s.post(t, "/", url.Values{"url": {"https://example.com"}})
	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Contains(t, body, "<strong>bold</strong>")
	require.Contains(t, body, `value="https://example.com"`)
}

func TestParseFailure(t *testing.T) {
	s := newTestServer(t)
	s.backend.Fail("parse", http.StatusOK, "cannot fetch page")

	_, body := s.post(t, "/", url.Values{"url": {"https://example.com"}})
	require.Contains(t, body, "Parse failed: cannot fetch page")
}

func TestChatPageListsConversations(t *testing.T) {
	s := newTestServer(t)
	s.backend.AddConversation("https://a.example")
	id := s.backend.AddConversation("https://b.example",
		api.Message{Role: api.RoleUser, Content: "<question>"},
		api.Message{Role: api.RoleAssistant, Content: "an **answer**"},
	)

	_, body := s.get(t, "/chat")
	require.Contains(t, body, "conv-1")
	require.Contains(t, body, "conv-2")
	require.Contains(t, body, "No messages yet")

	_, body = s.get(t, "/chat?conversation_id="+id)
	require.Contains(t, body, "&lt;question&gt;")
	require.Contains(t, body, "an <strong>answer</strong>")
	require.Contains(t, body, `class="selected"`)
	require.Contains(t, body, " readonly")
}

func TestChatPageEmpty(t *testing.T) {
	s := newTestServer(t)

	_, body := s.get(t, "/chat")
	require.Contains(t, body, "No conversations yet")
	require.NotContains(t, body, " readonly")
}

func TestSendRedirectsToConversation(t *testing.T) {
	s := newTestServer(t)

	response, _ := s.post(t, "/chat", url.Values{
		"url":     {"https://example.com"},
		"message": {"hello"},
		"model":   {"deepseek"},
	})
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	require.Equal(t, "/chat?conversation_id=conv-1&model=deepseek", response.Header.Get("Location"))
	require.Len(t, s.backend.Messages("conv-1"), 2)

	response, _ = s.post(t, "/chat", url.Values{
		"conversation_id": {"conv-1"},
		"url":             {"https://ignored.example"},
		"message":         {"again"},
	})
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	require.Len(t, s.backend.Messages("conv-1"), 4)
}

func TestSendFailureKeepsDraft(t *testing.T) {
	s := newTestServer(t)
	s.backend.Fail("chat", http.StatusInternalServerError, "model unavailable")

	response, body := s.post(t, "/chat", url.Values{
		"url":     {"https://example.com"},
		"message": {"my draft"},
	})
	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Contains(t, body, "model unavailable")
	require.Contains(t, body, ">my draft</textarea>")
}

func TestSendWithoutMessageIssuesNoRequest(t *testing.T) {
	s := newTestServer(t)

	response, _ := s.post(t, "/chat", url.Values{"url": {"https://example.com"}})
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	require.Zero(t, s.backend.Requests("chat"))
}

func TestDelete(t *testing.T) {
	s := newTestServer(t)
	first := s.backend.AddConversation("https://a.example")
	second := s.backend.AddConversation("https://b.example")

	response, _ := s.post(t, "/chat/delete", url.Values{
		"conversation_id":        {first},
		"active_conversation_id": {second},
	})
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	require.Equal(t, "/chat?conversation_id="+second+"&model=azure_openai", response.Header.Get("Location"))

	response, _ = s.post(t, "/chat/delete", url.Values{
		"conversation_id":        {second},
		"active_conversation_id": {second},
	})
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	require.Equal(t, "/chat?model=azure_openai", response.Header.Get("Location"))
	require.Equal(t, 2, s.backend.Requests("delete"))
}

func TestDeleteFailure(t *testing.T) {
	s := newTestServer(t)

	response, body := s.post(t, "/chat/delete", url.Values{"conversation_id": {"conv-404"}})
	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Contains(t, body, "conversation not found")
}

func TestLanguageSwitch(t *testing.T) {
	s := newTestServer(t)

	response, body := s.get(t, "/chat?lang=zh")
	require.Contains(t, body, "网页阅读器")
	require.Contains(t, body, "lang=en")

	var cookie *http.Cookie
	for _, c := range response.Cookies() {
		if c.Name == localeCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.Equal(t, "zh", cookie.Value)

	_, body = s.get(t, "/", cookie)
	require.Contains(t, body, "网页阅读器")

	_, body = s.get(t, "/?lang=fr", cookie)
	require.Contains(t, body, "网页阅读器")
}

func TestUnknownPathRedirectsHome(t *testing.T) {
	s := newTestServer(t)

	response, _ := s.get(t, "/nowhere")
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	require.Equal(t, "/", response.Header.Get("Location"))
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)
	s.post(t, "/", url.Values{"url": {"https://example.com"}})

	response, body := s.get(t, "/metrics")
	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Contains(t, body, `urlreader_backend_requests_total{code="200",endpoint="POST parse"}`)
}
