package chat

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/urlreader/app"
	"github.com/malonaz/urlreader/internal/cli"
)

// newListCmd instantiates and returns the chat list command.
func newListCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all conversations",
		Long:  "List the ids of all conversations held by the backend",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale := a.Config.Locale()
			response, err := a.Backend.GetConversations(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "listing conversations")
			}
			if failure := response.Failure(); failure != "" {
				return errors.New(failure)
			}

			cli.Title("%s", locale.T("chat.history"))
			if len(response.ConversationIDs) == 0 {
				cli.Info("%s\n", locale.T("chat.noConversations"))
				return nil
			}
			for _, id := range response.ConversationIDs {
				cli.Info("%s\n", id)
			}
			return nil
		},
	}
	return cmd
}
