package parse

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/urlreader/app"
	"github.com/malonaz/urlreader/internal/cli"
	"github.com/malonaz/urlreader/internal/markdown"
	"github.com/malonaz/urlreader/internal/session"
)

// NewCmd instantiates and returns the parse command.
func NewCmd(a *app.App) *cobra.Command {
	var opts struct {
		Raw bool
	}

	cmd := &cobra.Command{
		Use:   "parse <url>",
		Short: "Summarize a web page",
		Long:  "Fetch a web page through the backend and print its title and summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale := a.Config.Locale()
			home := &session.Home{URL: args[0]}
			home.Parse(cmd.Context(), a.Backend)
			switch home.State {
			case session.HomeIdle:
				return errors.New("url is required")
			case session.HomeError:
				return errors.New(locale.T("parse.error", home.Err))
			}

			render := func(content string) string { return content }
			if !opts.Raw {
				renderer, err := markdown.NewRenderer(cli.Width())
				if err != nil {
					return errors.Wrap(err, "creating markdown renderer")
				}
				render = renderer.Render
			}

			cli.Title("%s", locale.T("parse.result.title"))
			cli.AIOutput(render(home.Result.Title) + "\n")
			cli.Title("%s", locale.T("parse.result.content"))
			cli.AIOutput(render(home.Result.Content) + "\n")
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "print markdown without rendering it")
	return cmd
}
