// Package spaces provides the Space management commands: list, info,
// restart, pause, runtime, and user.
package spaces

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/hfspace-cli/api"
	"github.com/open-cli-collective/hfspace-cli/internal/config"
	"github.com/open-cli-collective/hfspace-cli/internal/view"
)

// options are the resolved global settings shared by all space commands.
type options struct {
	token    string
	endpoint string
	output   string
	noColor  bool
}

// resolveOptions loads the config file, layers environment variables on top,
// and applies the global flags, which win over every other source.
func resolveOptions(cmd *cobra.Command) (*options, error) {
	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flagToken, _ := cmd.Flags().GetString("token")
	cfg.ApplyFlagToken(flagToken)

	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		cfg.Endpoint = endpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.OutputFormat
	}
	if output == "" {
		output = string(view.FormatTable)
	}

	noColor, _ := cmd.Flags().GetBool("no-color")

	return &options{
		token:    cfg.Token,
		endpoint: cfg.Endpoint,
		output:   output,
		noColor:  noColor,
	}, nil
}

func (o *options) hasToken() bool {
	return o.token != ""
}

// client builds the real Hub client for these options.
func (o *options) client() api.SpacesService {
	return api.NewClient(o.endpoint, o.token)
}

// renderSpaceList renders a sequence of space summaries.
func renderSpaceList(renderer *view.Renderer, spaces []api.Space) {
	headers := []string{"SPACE", "STAGE", "SDK", "VISIBILITY", "LIKES", "MODIFIED"}
	var rows [][]string

	for i := range spaces {
		s := &spaces[i]
		stage := "-"
		if s.Runtime != nil && s.Runtime.Stage != "" {
			stage = string(s.Runtime.Stage)
		}
		sdk := "-"
		if s.SDK != "" {
			sdk = string(s.SDK)
		}
		rows = append(rows, []string{
			s.ID,
			stage,
			sdk,
			s.Visibility(),
			strconv.Itoa(s.Likes),
			view.Age(s.LastModified.Time),
		})
	}

	renderer.RenderTable(headers, rows)
}
