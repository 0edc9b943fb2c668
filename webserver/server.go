// Package webserver serves the browser rendition of the client: the Home page that summarizes
// a web page and the Chat page, rendered on the server from the backend's responses.
package webserver

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/app"
	"github.com/malonaz/urlreader/internal/cli"
	"github.com/malonaz/urlreader/internal/debug"
	"github.com/malonaz/urlreader/internal/i18n"
	"github.com/malonaz/urlreader/internal/markdown"
	"github.com/malonaz/urlreader/internal/session"
)

//go:embed templates
var templatesFS embed.FS

const (
	pageHome = "home"
	pageChat = "chat"

	shutdownTimeout = 5 * time.Second
)

// PageData is handed to the base template.
type PageData struct {
	Page          string
	Title         string
	Locale        i18n.Locale
	SwitchLangURL string
	Error         string

	// Home
	URL    string
	Result *api.ParseResponse

	// Chat
	Chat *ChatViewModel
}

// ChatViewModel is the Chat page state.
type ChatViewModel struct {
	*session.Chat
	Models []api.Model
}

// NewServeCmd instantiates and returns the serve command.
func NewServeCmd(a *app.App) *cobra.Command {
	var opts struct {
		Port int
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web interface",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := New(a.Backend, a.Config.Locale(), a.Config.Model())
			if err != nil {
				return err
			}
			return server.Start(cmd.Context(), opts.Port)
		},
	}

	cmd.Flags().IntVarP(&opts.Port, "port", "p", a.Config.Web.Port, "Port to serve on")
	return cmd
}

// Server renders the Home and Chat pages.
type Server struct {
	backend       session.Backend
	defaultLocale i18n.Locale
	defaultModel  api.Model
	tmpl          *template.Template
	log           *slog.Logger
}

// New parses the templates and instantiates a Server.
func New(backend session.Backend, defaultLocale i18n.Locale, defaultModel api.Model) (*Server, error) {
	funcMap := sprig.HtmlFuncMap()
	funcMap["markdown"] = markdown.ToHTML
	funcMap["t"] = func(locale i18n.Locale, key string, args ...any) string {
		return locale.T(key, args...)
	}
	funcMap["isUser"] = func(message api.Message) bool { return message.Role == api.RoleUser }
	funcMap["isAssistant"] = func(message api.Message) bool { return message.Role == api.RoleAssistant }

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS,
		"templates/*.tmpl",
		"templates/includes/*.tmpl",
		"templates/pages/*.tmpl",
	)
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}

	return &Server{
		backend:       backend,
		defaultLocale: defaultLocale,
		defaultModel:  defaultModel,
		tmpl:          tmpl,
		log:           debug.GetLogger(),
	}, nil
}

// Handler returns the routes of the web interface.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /{$}", s.handleParse)
	mux.HandleFunc("GET /chat", s.handleChat)
	mux.HandleFunc("POST /chat", s.handleSend)
	mux.HandleFunc("POST /chat/delete", s.handleDelete)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/", s.handleUnknown)
	return mux
}

// Start serves on port until ctx is cancelled.
func (s *Server) Start(ctx context.Context, port int) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	cli.Info("Server starting on http://localhost%s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serving")
	}
	return nil
}

func (s *Server) handleUnknown(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, data *PageData) {
	if err := s.tmpl.ExecuteTemplate(w, "base", data); err != nil {
		s.log.Error("rendering template", "page", data.Page, "error", err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}
