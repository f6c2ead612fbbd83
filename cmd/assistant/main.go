package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/assistant/internal/cli"
	"github.com/dmitrijs2005/assistant/internal/config"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.buildVersion=... -X main.buildDate=...".
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func newRootCmd(in io.Reader) *cobra.Command {
	root := &cobra.Command{
		Use:   "assistant",
		Short: "Personal assistant: contacts and notes in your terminal",
		Long: `assistant keeps an address book and a notebook.

Run without arguments to start the interactive shell; type "help" there to
list the commands. Settings come from defaults, an optional config file,
ASSISTANT_* environment variables and flags, in that order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.Load(path, cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := cli.NewApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Run(ctx, in)
		},
	}
	config.RegisterFlags(root.Flags())

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\nBuild date: %s\n", buildVersion, buildDate)
		},
	})
	return root
}

func main() {
	if err := newRootCmd(os.Stdin).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
