package spaces

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/hfspace-cli/api"
	"github.com/open-cli-collective/hfspace-cli/internal/view"
)

// NewCmdInfo creates the info command.
func NewCmdInfo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <owner/name>",
		Short: "Show metadata for one space",
		Long:  `Show the full metadata record of a space, including its runtime state when available.`,
		Example: `  # Show a space
  hfs info stabilityai/stable-diffusion

  # Output as JSON
  hfs info stabilityai/stable-diffusion -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			global, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			return runInfo(args[0], global, nil)
		},
	}

	return cmd
}

func runInfo(spaceID string, global *options, svc api.SpacesService) error {
	if err := view.ValidateFormat(global.output); err != nil {
		return err
	}

	if err := api.ValidateSpaceID(spaceID); err != nil {
		return err
	}

	if svc == nil {
		svc = global.client()
	}

	space, err := svc.GetSpace(context.Background(), spaceID)
	if err != nil {
		return fmt.Errorf("failed to get space: %w", err)
	}

	renderer := view.NewRenderer(view.Format(global.output), global.noColor)

	if global.output == string(view.FormatJSON) {
		return renderer.RenderJSON(space)
	}

	renderer.RenderKeyValue("Space", space.ID)
	renderer.RenderKeyValue("Author", space.Author)
	renderer.RenderKeyValue("Visibility", space.Visibility())
	renderer.RenderKeyValue("Likes", strconv.Itoa(space.Likes))
	if space.SDK != "" {
		renderer.RenderKeyValue("SDK", string(space.SDK))
	}
	if space.SHA != "" {
		renderer.RenderKeyValue("Revision", space.SHA)
	}
	if !space.LastModified.IsZero() {
		renderer.RenderKeyValue("Modified", view.Age(space.LastModified.Time))
	}
	if space.Runtime != nil {
		renderer.RenderKeyValue("Stage", string(space.Runtime.Stage))
		if space.Runtime.Hardware.Current != "" {
			renderer.RenderKeyValue("Hardware", space.Runtime.Hardware.Current)
		}
	}

	return nil
}
