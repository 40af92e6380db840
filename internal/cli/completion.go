package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand wires cobra's shell completion generators.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for your shell.

Load it for the current session:

  source <(lynxviz completion bash)
  lynxviz completion fish | source

Or install it permanently, for example:

  # bash (Linux)
  lynxviz completion bash > /etc/bash_completion.d/lynxviz

  # zsh
  lynxviz completion zsh > "${fpath[1]}/_lynxviz"

  # fish
  lynxviz completion fish > ~/.config/fish/completions/lynxviz.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
