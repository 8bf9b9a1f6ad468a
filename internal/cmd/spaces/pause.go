package spaces

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/hfspace-cli/api"
	"github.com/open-cli-collective/hfspace-cli/internal/view"
)

// NewCmdPause creates the pause command.
func NewCmdPause() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause <owner/name>",
		Short: "Pause a space",
		Long: `Pause a space's runtime until it is restarted. Requires a token
with write access to the space. Pausing an already-paused space succeeds.`,
		Example: `  # Pause a space you own
  hfs pause alice/my-space`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			global, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			return runPause(args[0], global, nil)
		},
	}

	return cmd
}

func runPause(spaceID string, global *options, svc api.SpacesService) error {
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

	if err := svc.PauseSpace(context.Background(), spaceID); err != nil {
		return fmt.Errorf("failed to pause space: %w", err)
	}

	renderer := view.NewRenderer(view.Format(global.output), global.noColor)
	renderer.Success(fmt.Sprintf("Paused %s", spaceID))
	return nil
}
