// Package tui implements the full-screen terminal client: an app shell with a Home route that
// summarizes a web page and a Chat route that talks about it.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/malonaz/urlreader/internal/configuration"
	"github.com/malonaz/urlreader/internal/session"
)

// Run starts the terminal client and blocks until the user quits.
func Run(ctx context.Context, config *configuration.Config, backend session.Backend) error {
	m, err := New(ctx, config, backend)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "running terminal client")
	}
	return nil
}
