package spaces

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/hfspace-cli/api"
	"github.com/open-cli-collective/hfspace-cli/internal/view"
)

type listOptions struct {
	author string
	search string
	limit  int
}

// NewCmdList creates the list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List spaces on the Hub",
		Long:    `List spaces, optionally filtered by author or search keyword. Filtering happens server-side.`,
		Example: `  # List spaces
  hfs list

  # List spaces by one author
  hfs list --author stabilityai

  # Search spaces and output as JSON
  hfs list --search diffusion -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			global, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			return runList(opts, global, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.author, "author", "a", "", "Filter by author username")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Search term for space names")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 20, "Maximum number of spaces to return")

	return cmd
}

func runList(opts *listOptions, global *options, svc api.SpacesService) error {
	if err := view.ValidateFormat(global.output); err != nil {
		return err
	}

	if opts.limit < 0 {
		return fmt.Errorf("invalid limit %d: must be zero or positive", opts.limit)
	}

	renderer := view.NewRenderer(view.Format(global.output), global.noColor)

	// A zero limit is an empty result set, no request needed.
	if opts.limit == 0 {
		if global.output == string(view.FormatJSON) {
			return renderer.RenderJSON([]api.Space{})
		}
		renderer.RenderText("No spaces found.")
		return nil
	}

	if svc == nil {
		svc = global.client()
	}

	spaces, err := svc.ListSpaces(context.Background(), &api.ListSpacesOptions{
		Author: opts.author,
		Search: opts.search,
		Limit:  opts.limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list spaces: %w", err)
	}

	// The server bounds results by the limit param; enforce it locally too.
	if len(spaces) > opts.limit {
		spaces = spaces[:opts.limit]
	}

	if global.output == string(view.FormatJSON) {
		return renderer.RenderJSON(spaces)
	}

	if len(spaces) == 0 {
		renderer.RenderText("No spaces found.")
		return nil
	}

	renderSpaceList(renderer, spaces)
	return nil
}
