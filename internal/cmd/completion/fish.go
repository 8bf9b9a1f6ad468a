package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for hfs.

To load completions in your current shell session:

  hfs completion fish | source

To load completions for every new session:

  hfs completion fish > ~/.config/fish/completions/hfs.fish`,
		Example: `  # Load in current session
  hfs completion fish | source

  # Install permanently
  hfs completion fish > ~/.config/fish/completions/hfs.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
