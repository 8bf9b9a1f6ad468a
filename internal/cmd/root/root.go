// Package root provides the root command for the hfs CLI.
package root

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/hfspace-cli/internal/cmd/completion"
	"github.com/open-cli-collective/hfspace-cli/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/hfspace-cli/internal/cmd/init"
	"github.com/open-cli-collective/hfspace-cli/internal/cmd/spaces"
	"github.com/open-cli-collective/hfspace-cli/internal/version"
)

// NewCmdRoot creates the root command for hfs.
func NewCmdRoot() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "hfs",
		Short: "A command-line interface for Hugging Face Spaces",
		Long: `hfs is a CLI tool for managing Hugging Face Spaces.

It provides commands for listing spaces, inspecting their metadata and
live runtime, and restarting or pausing spaces you own.

Get started by running: hfs init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC822})
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().String("token", "", "access token (default: HF_TOKEN, then HUGGINGFACE_TOKEN, then config file)")
	cmd.PersistentFlags().String("endpoint", "", "Hub endpoint (default: https://huggingface.co, or HF_ENDPOINT)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log API requests to stderr")

	// Set version template
	cmd.SetVersionTemplate("hfs version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(spaces.NewCmdList())
	cmd.AddCommand(spaces.NewCmdInfo())
	cmd.AddCommand(spaces.NewCmdRestart())
	cmd.AddCommand(spaces.NewCmdPause())
	cmd.AddCommand(spaces.NewCmdRuntime())
	cmd.AddCommand(spaces.NewCmdUser())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
