package chat

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/urlreader/app"
	"github.com/malonaz/urlreader/internal/cli"
)

// confirm asks a yes/no question. Swapped in tests.
var confirm = cli.QueryUser

// newDeleteCmd instantiates and returns the chat delete command.
func newDeleteCmd(a *app.App) *cobra.Command {
	var opts struct {
		Yes bool
	}

	cmd := &cobra.Command{
		Use:   "delete <conversation-id>",
		Short: "Delete a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale := a.Config.Locale()
			id := args[0]
			if !opts.Yes && !confirm(locale.T("chat.deleteConfirm")+" "+id) {
				return nil
			}
			response, err := a.Backend.DeleteConversation(cmd.Context(), id)
			if err != nil {
				return errors.Wrap(err, "deleting conversation")
			}
			if failure := response.Failure(); failure != "" {
				return errors.New(failure)
			}
			cli.Info("%s: %s\n", locale.T("chat.deleted"), id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
