package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for wireform.

To load completions:

Bash:
  $ source <(wireform completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ wireform completion bash > /etc/bash_completion.d/wireform
  # macOS:
  $ wireform completion bash > $(brew --prefix)/etc/bash_completion.d/wireform

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ wireform completion zsh > "${fpath[1]}/_wireform"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ wireform completion fish | source

  # To load completions for each session, execute once:
  $ wireform completion fish > ~/.config/fish/completions/wireform.fish

PowerShell:
  PS> wireform completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> wireform completion powershell > wireform.ps1
  # and source this file from your PowerShell profile.
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

	return cmd
}
