package configcmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/hfspace-cli/api"
	"github.com/open-cli-collective/hfspace-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current hfs configuration with the source of the active token.`,
		Example: `  # Show current config
  hfs config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(noColor)
		},
	}

	return cmd
}

func runShow(noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = api.DefaultEndpoint + " (default)"
	}
	_, _ = bold.Printf("%-10s", "Endpoint:")
	fmt.Println(endpoint)

	_, _ = bold.Printf("%-10s", "Token:")
	if cfg.Token == "" {
		_, _ = dim.Println("- (unauthenticated)")
	} else {
		fmt.Print(maskToken(cfg.Token))
		_, _ = dim.Printf("  (source: %s)\n", cfg.TokenSource())
	}

	_, _ = bold.Printf("%-10s", "Output:")
	if cfg.OutputFormat == "" {
		_, _ = dim.Println("table (default)")
	} else {
		fmt.Println(cfg.OutputFormat)
	}

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)

	return nil
}

// maskToken hides the middle of a token, keeping enough to recognize it.
func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
