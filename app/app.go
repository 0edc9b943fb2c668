package app

import (
	"github.com/pkg/errors"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/internal/configuration"
	"github.com/malonaz/urlreader/internal/debug"
	"github.com/malonaz/urlreader/internal/session"
)

// App holds the dependencies shared by every command.
type App struct {
	Config  *configuration.Config
	Backend session.Backend
}

// NewApp resolves the backend address from the configuration and instantiates the API client.
func NewApp(config *configuration.Config) (*App, error) {
	baseURL, err := config.ResolveAPIBaseURL()
	if err != nil {
		return nil, errors.Wrap(err, "resolving api base url")
	}
	client, err := api.NewClient(api.Config{
		BaseURL: baseURL,
		Timeout: config.Timeout(),
		Logger:  debug.GetLogger(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating api client")
	}
	return &App{
		Config:  config,
		Backend: client,
	}, nil
}
