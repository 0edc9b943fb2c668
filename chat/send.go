package chat

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/app"
	"github.com/malonaz/urlreader/internal/cli"
)

// newSendCmd instantiates and returns the chat send command.
func newSendCmd(a *app.App) *cobra.Command {
	var opts struct {
		URL            string
		Model          string
		ConversationID string
	}

	cmd := &cobra.Command{
		Use:   "send <message>",
		Short: "Send one chat turn",
		Long:  "Send one chat turn. The first turn needs --url; later turns need --conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale := a.Config.Locale()
			model := api.Model(opts.Model)
			if !model.Valid() {
				return errors.Errorf("unknown model %q", opts.Model)
			}
			if opts.URL == "" && opts.ConversationID == "" {
				return errors.New("either --url or --conversation is required")
			}

			request := &api.ChatRequest{
				URL:            opts.URL,
				Message:        args[0],
				Model:          model,
				ConversationID: opts.ConversationID,
			}
			response, err := a.Backend.ChatWithPage(cmd.Context(), request)
			if err != nil {
				return errors.New(locale.T("chat.error", err.Error()))
			}
			if failure := response.Failure(); failure != "" {
				return errors.New(locale.T("chat.error", failure))
			}

			cli.Info("conversation %s\n", response.ConversationID)
			cli.AIOutput(response.Response + "\n")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.URL, "url", "u", "", "web page to talk about (first turn)")
	cmd.Flags().StringVarP(&opts.Model, "model", "m", string(a.Config.Model()), "model answering the turn (azure_openai or deepseek)")
	cmd.Flags().StringVarP(&opts.ConversationID, "conversation", "c", "", "conversation to continue")
	return cmd
}
