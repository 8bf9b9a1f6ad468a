// Package init provides the init command for hfs.
package init

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/hfspace-cli/api"
	"github.com/open-cli-collective/hfspace-cli/internal/config"
	"github.com/open-cli-collective/hfspace-cli/internal/view"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		endpoint string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize hfs configuration",
		Long: `Initialize hfs with your Hugging Face credentials.

This command will guide you through setting up your access token and,
optionally, a custom Hub endpoint. The configuration will be saved to
~/.config/hfs/config.yml.

To generate an access token:
  1. Go to https://huggingface.co/settings/tokens
  2. Click "New token" (write scope is needed for restart/pause)
  3. Copy the token`,
		Example: `  # Interactive setup
  hfs init

  # Pre-populate a custom endpoint
  hfs init --endpoint https://hub-mirror.example.com`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(endpoint, noVerify)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Hub endpoint (default: https://huggingface.co)")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip token verification")

	return cmd
}

func runInit(prefillEndpoint string, noVerify bool) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{Endpoint: prefillEndpoint}

	// Build the form
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Access token").
				Description("Generate at: huggingface.co/settings/tokens").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.Token).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("token is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Endpoint (optional)").
				Description("Leave empty for https://huggingface.co").
				Placeholder(api.DefaultEndpoint).
				Value(&cfg.Endpoint),

			huh.NewSelect[string]().
				Title("Default output format").
				Options(
					huh.NewOption("table", string(view.FormatTable)),
					huh.NewOption("json", string(view.FormatJSON)),
					huh.NewOption("plain", string(view.FormatPlain)),
				).
				Value(&cfg.OutputFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify the token unless skipped
	author := "huggingface"
	if !noVerify {
		fmt.Print("Verifying token... ")
		user, err := verifyToken(cfg)
		if err != nil {
			fmt.Println("failed!")
			return fmt.Errorf("token verification failed: %w", err)
		}
		fmt.Printf("authenticated as %s\n", user.Name)
		if user.Name != "" {
			author = user.Name
		}
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  hfs list --author " + author)
	fmt.Println("  hfs info stabilityai/stable-diffusion")

	return nil
}

func verifyToken(cfg *config.Config) (*api.User, error) {
	client := api.NewClient(cfg.Endpoint, cfg.Token)
	return client.Whoami(context.Background())
}
