package chat

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/app"
	"github.com/malonaz/urlreader/internal/cli"
	"github.com/malonaz/urlreader/internal/markdown"
)

// newHistoryCmd instantiates and returns the chat history command.
func newHistoryCmd(a *app.App) *cobra.Command {
	var opts struct {
		Raw bool
	}

	cmd := &cobra.Command{
		Use:   "history <conversation-id>",
		Short: "Print the messages of a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := a.Backend.GetHistory(cmd.Context(), args[0])
			if err != nil {
				return errors.Wrap(err, "getting history")
			}
			if failure := response.Failure(); failure != "" {
				return errors.New(failure)
			}

			renderer, err := markdown.NewRenderer(cli.Width())
			if err != nil {
				return errors.Wrap(err, "creating markdown renderer")
			}
			cli.Title("%s", args[0])
			printMessages(response.Messages, renderer, opts.Raw)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "print assistant markdown without rendering it")
	return cmd
}

// printMessages prints user content as plain text and assistant content as markdown.
func printMessages(messages []api.Message, renderer *markdown.Renderer, raw bool) {
	for _, message := range messages {
		switch message.Role {
		case api.RoleUser:
			cli.UserInput("> %s\n", message.Content)
		case api.RoleAssistant:
			content := message.Content
			if !raw {
				content = renderer.Render(content)
			}
			cli.AIOutput(content + "\n")
		default:
			cli.Info("[%s] %s\n", message.Role, message.Content)
		}
	}
}
