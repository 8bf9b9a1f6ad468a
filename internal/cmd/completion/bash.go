package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for hfs.

To load completions in your current shell session:

  source <(hfs completion bash)

To load completions for every new session:

  # Linux
  hfs completion bash > /etc/bash_completion.d/hfs

  # macOS (requires bash-completion)
  hfs completion bash > $(brew --prefix)/etc/bash_completion.d/hfs`,
		Example: `  # Load in current session
  source <(hfs completion bash)

  # Install permanently (Linux)
  hfs completion bash | sudo tee /etc/bash_completion.d/hfs > /dev/null`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
