package spaces

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/hfspace-cli/api"
	"github.com/open-cli-collective/hfspace-cli/internal/view"
)

// NewCmdRestart creates the restart command.
func NewCmdRestart() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restart <owner/name>",
		Short: "Restart a space",
		Long: `Restart a space's runtime. Requires a token with write access
to the space; set HF_TOKEN or pass --token.`,
		Example: `  # Restart a space you own
  hfs restart alice/my-space`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			global, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			return runRestart(args[0], global, nil)
		},
	}

	return cmd
}

func runRestart(spaceID string, global *options, svc api.SpacesService) error {
	if err := view.ValidateFormat(global.output); err != nil {
		return err
	}

	if err := api.ValidateSpaceID(spaceID); err != nil {
		return err
	}

	// Write operation: refuse before any network I/O when unauthenticated.
	if !global.hasToken() {
		return api.ErrMissingToken
	}

	if svc == nil {
		svc = global.client()
	}

	if err := svc.RestartSpace(context.Background(), spaceID); err != nil {
		return fmt.Errorf("failed to restart space: %w", err)
	}

	renderer := view.NewRenderer(view.Format(global.output), global.noColor)
	renderer.Success(fmt.Sprintf("Restarted %s", spaceID))
	return nil
}
