package chat

import (
	"github.com/spf13/cobra"

	"github.com/malonaz/urlreader/app"
)

// NewCmd instantiates and returns the chat command and its subcommands.
func NewCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk about the content of a web page",
		Long:  "Send chat turns, browse and delete conversations held by the backend",
	}
	cmd.AddCommand(
		newSendCmd(a),
		newListCmd(a),
		newHistoryCmd(a),
		newDeleteCmd(a),
		newReplCmd(a),
	)
	return cmd
}
