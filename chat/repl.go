package chat

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/app"
	"github.com/malonaz/urlreader/internal/cli"
	"github.com/malonaz/urlreader/internal/i18n"
	"github.com/malonaz/urlreader/internal/markdown"
	"github.com/malonaz/urlreader/internal/session"
)

const replHistoryFileName = "urlreader_repl_history"

// prompt reads one line of input. Swapped in tests.
var prompt = cli.PromptUser

// newReplCmd instantiates and returns the chat repl command.
func newReplCmd(a *app.App) *cobra.Command {
	var opts struct {
		URL            string
		Model          string
		ConversationID string
	}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Chat interactively in the terminal",
		Long:  "Chat interactively in the terminal. Type /help to list the commands",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := api.Model(opts.Model)
			if !model.Valid() {
				return errors.Errorf("unknown model %q", opts.Model)
			}
			renderer, err := markdown.NewRenderer(cli.Width())
			if err != nil {
				return errors.Wrap(err, "creating markdown renderer")
			}

			r := &repl{
				backend:     a.Backend,
				locale:      a.Config.Locale(),
				renderer:    renderer,
				chat:        session.NewChat(model),
				historyFile: filepath.Join(os.TempDir(), replHistoryFileName),
			}
			r.chat.URL = opts.URL
			return r.run(cmd.Context(), opts.ConversationID)
		},
	}

	cmd.Flags().StringVarP(&opts.URL, "url", "u", "", "web page to talk about")
	cmd.Flags().StringVarP(&opts.Model, "model", "m", string(a.Config.Model()), "model answering the turns (azure_openai or deepseek)")
	cmd.Flags().StringVarP(&opts.ConversationID, "conversation", "c", "", "conversation to resume")
	return cmd
}

type repl struct {
	backend     session.Backend
	locale      i18n.Locale
	renderer    *markdown.Renderer
	chat        *session.Chat
	historyFile string
}

func (r *repl) run(ctx context.Context, conversationID string) error {
	r.chat.Refresh(ctx, r.backend)
	r.reportError()
	if conversationID != "" {
		r.open(ctx, conversationID)
	}
	cli.Info("%s\n", r.locale.T("repl.help"))

	for {
		line, err := prompt(r.prompt(), r.historyFile)
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			r.send(ctx, line)
			continue
		}
		if quit := r.command(ctx, line); quit {
			return nil
		}
	}
}

func (r *repl) prompt() string {
	if r.chat.ConversationID != "" {
		return "[" + r.chat.ConversationID + "] > "
	}
	return "> "
}

// command executes a slash command. It returns true when the repl must exit.
func (r *repl) command(ctx context.Context, line string) bool {
	name, argument, _ := strings.Cut(line, " ")
	argument = strings.TrimSpace(argument)
	switch name {
	case "/quit", "/exit":
		return true
	case "/help":
		cli.Info("%s\n", r.locale.T("repl.help"))
	case "/new":
		r.chat.StartNewChat()
		cli.Info("%s\n", r.locale.T("button.newChat"))
	case "/list":
		r.chat.Refresh(ctx, r.backend)
		r.reportError()
		r.printList()
	case "/open":
		r.open(ctx, argument)
	case "/delete":
		id := argument
		if id == "" {
			id = r.chat.ConversationID
		}
		if id == "" || !confirm(r.locale.T("chat.deleteConfirm")+" "+id) {
			return false
		}
		r.chat.Err = ""
		r.chat.Delete(ctx, r.backend, id)
		if !r.reportError() {
			cli.Info("%s: %s\n", r.locale.T("chat.deleted"), id)
		}
	case "/model":
		r.chat.ToggleModel()
		cli.Info("%s: %s\n", r.locale.T("chat.model"), r.locale.T("model."+string(r.chat.Model)))
	case "/url":
		if !r.chat.URLEditable() {
			r.chat.StartNewChat()
		}
		r.chat.URL = argument
	default:
		cli.Error("%s\n", r.locale.T("repl.unknown", name))
	}
	return false
}

func (r *repl) open(ctx context.Context, id string) {
	if id == "" {
		return
	}
	r.chat.Open(ctx, r.backend, id)
	if r.reportError() {
		return
	}
	cli.Title("%s", id)
	printMessages(r.chat.Messages, r.renderer, false)
}

func (r *repl) send(ctx context.Context, message string) {
	r.chat.Draft = message
	if !r.chat.CanSend() {
		cli.Error("%s\n", r.locale.T("repl.needURL"))
		return
	}
	cli.Info("%s\n", r.locale.T("chat.sending"))
	r.chat.Send(ctx, r.backend)
	if r.reportError() {
		return
	}
	if reply, ok := r.chat.LastAssistantMessage(); ok {
		cli.AIOutput(r.renderer.Render(reply) + "\n")
	}
}

func (r *repl) printList() {
	cli.Title("%s", r.locale.T("chat.history"))
	if len(r.chat.List.IDs) == 0 {
		cli.Info("%s\n", r.locale.T("chat.noConversations"))
		return
	}
	for _, id := range r.chat.List.IDs {
		marker := "  "
		if id == r.chat.List.Selected {
			marker = "* "
		}
		cli.Info("%s%s\n", marker, id)
	}
}

// reportError prints and clears the chat error. It returns true when there was one.
func (r *repl) reportError() bool {
	if r.chat.Err == "" {
		return false
	}
	cli.Error("%s\n", r.locale.T("chat.error", r.chat.Err))
	r.chat.Err = ""
	return true
}
