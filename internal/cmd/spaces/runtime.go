package spaces

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/hfspace-cli/api"
	"github.com/open-cli-collective/hfspace-cli/internal/view"
)

// NewCmdRuntime creates the runtime command.
func NewCmdRuntime() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runtime <owner/name>",
		Short: "Show the live runtime of a space",
		Long:  `Show a space's live runtime descriptor: stage, allocated and requested hardware, and sleep-time configuration.`,
		Example: `  # Show runtime state
  hfs runtime stabilityai/stable-diffusion`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			global, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			return runRuntime(args[0], global, nil)
		},
	}

	return cmd
}

func runRuntime(spaceID string, global *options, svc api.SpacesService) error {
	if err := view.ValidateFormat(global.output); err != nil {
		return err
	}

	if err := api.ValidateSpaceID(spaceID); err != nil {
		return err
	}

	if svc == nil {
		svc = global.client()
	}

	runtime, err := svc.GetSpaceRuntime(context.Background(), spaceID)
	if err != nil {
		return fmt.Errorf("failed to get space runtime: %w", err)
	}

	renderer := view.NewRenderer(view.Format(global.output), global.noColor)

	if global.output == string(view.FormatJSON) {
		return renderer.RenderJSON(runtime)
	}

	renderer.RenderKeyValue("Stage", string(runtime.Stage))
	if runtime.Hardware.Current != "" {
		renderer.RenderKeyValue("Hardware", runtime.Hardware.Current)
	}
	if runtime.Hardware.Requested != "" {
		renderer.RenderKeyValue("Requested hardware", runtime.Hardware.Requested)
	}
	if runtime.GcTimeout > 0 {
		renderer.RenderKeyValue("Sleep time", fmt.Sprintf("%ds", runtime.GcTimeout))
	}

	return nil
}
