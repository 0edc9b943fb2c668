package tui

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.dalton.dog/bubbleup"

	"github.com/malonaz/urlreader/cli/tui/styles"
	"github.com/malonaz/urlreader/internal/configuration"
	"github.com/malonaz/urlreader/internal/debug"
	"github.com/malonaz/urlreader/internal/i18n"
	"github.com/malonaz/urlreader/internal/session"
)

const historyFileName = "urlreader_chat_history"

// historyPath is where the message input history is persisted. Empty keeps it in memory.
var historyPath = filepath.Join(os.TempDir(), historyFileName)

var log *slog.Logger

// Route is a page of the app shell.
type Route int

const (
	RouteHome Route = iota
	RouteChat
)

// Model is the Bubble Tea model of the app shell. It owns the navigation bar, the locale, and
// the two views.
type Model struct {
	// Core dependencies
	ctx     context.Context
	backend session.Backend

	locale i18n.Locale
	route  Route

	home *homeView
	chat *chatView

	// UI components
	spinner spinner.Model
	alert   bubbleup.AlertModel

	width    int
	height   int
	quitting bool
}

// New creates the app shell on the Home route.
func New(ctx context.Context, config *configuration.Config, backend session.Backend) (*Model, error) {
	log = debug.GetLogger()
	locale := config.Locale()

	home, err := newHomeView(ctx, backend, locale)
	if err != nil {
		return nil, errors.Wrap(err, "creating home view")
	}
	chat, err := newChatView(ctx, backend, locale, config.Model(), historyPath)
	if err != nil {
		return nil, errors.Wrap(err, "creating chat view")
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	alert := bubbleup.NewAlertModel(40, false, 2)

	return &Model{
		ctx:     ctx,
		backend: backend,
		locale:  locale,
		route:   RouteHome,
		home:    home,
		chat:    chat,
		spinner: sp,
		alert:   *alert,
	}, nil
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.alert.Init(),
		m.home.focus(),
	)
}

// Route returns the active route.
func (m *Model) Route() Route {
	return m.route
}

// Locale returns the active locale.
func (m *Model) Locale() i18n.Locale {
	return m.locale
}

// navigate switches routes. Opening Chat remounts it, which refetches the conversation list.
func (m *Model) navigate(route Route) tea.Cmd {
	if route == m.route {
		return nil
	}
	log.Debug("navigating", "from", m.route, "to", route)
	m.route = route
	switch route {
	case RouteChat:
		return m.chat.mount()
	default:
		return m.home.focus()
	}
}

func (m *Model) toggleLocale() {
	m.locale = m.locale.Toggle()
	m.home.setLocale(m.locale)
	m.chat.setLocale(m.locale)
}
