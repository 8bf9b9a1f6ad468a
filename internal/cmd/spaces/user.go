package spaces

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/hfspace-cli/api"
	"github.com/open-cli-collective/hfspace-cli/internal/view"
)

// NewCmdUser creates the user command.
func NewCmdUser() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user <username>",
		Short: "List all spaces owned by a user",
		Example: `  # List a user's spaces
  hfs user stabilityai`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			global, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			return runUser(args[0], global, nil)
		},
	}

	return cmd
}

func runUser(username string, global *options, svc api.SpacesService) error {
	if err := view.ValidateFormat(global.output); err != nil {
		return err
	}

	if username == "" {
		return fmt.Errorf("username is required")
	}

	if svc == nil {
		svc = global.client()
	}

	spaces, err := svc.ListUserSpaces(context.Background(), username)
	if err != nil {
		return fmt.Errorf("failed to list spaces for %s: %w", username, err)
	}

	renderer := view.NewRenderer(view.Format(global.output), global.noColor)

	if global.output == string(view.FormatJSON) {
		return renderer.RenderJSON(spaces)
	}

	if len(spaces) == 0 {
		renderer.RenderText(fmt.Sprintf("No spaces found for %s.", username))
		return nil
	}

	renderSpaceList(renderer, spaces)
	return nil
}
