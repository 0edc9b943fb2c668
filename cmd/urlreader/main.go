package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/malonaz/urlreader/app"
	"github.com/malonaz/urlreader/chat"
	"github.com/malonaz/urlreader/cli/tui"
	"github.com/malonaz/urlreader/internal/configuration"
	"github.com/malonaz/urlreader/internal/debug"
	"github.com/malonaz/urlreader/parse"
	"github.com/malonaz/urlreader/webserver"
)

const configFilepath = "~/.config/urlreader/config.json"

func main() {
	config, err := configuration.Parse(configFilepath)
	cobra.CheckErr(err)

	cobra.CheckErr(debug.Init(config.DebugLogPath))
	defer debug.Close()

	a, err := app.NewApp(config)
	cobra.CheckErr(err)

	rootCmd := &cobra.Command{
		Use:          "urlreader",
		Short:        "Summarize web pages and chat about them",
		Version:      "1.0",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), a.Config, a.Backend)
		},
	}
	rootCmd.AddCommand(parse.NewCmd(a))
	rootCmd.AddCommand(chat.NewCmd(a))
	rootCmd.AddCommand(webserver.NewServeCmd(a))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		debug.Close()
		os.Exit(1)
	}
}
