package cli

import "github.com/spf13/cobra"

var shells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand prints a completion script for one of shells.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sbgnconv.

Bash:
  $ source <(sbgnconv completion bash)
  # persist (Linux):
  $ sbgnconv completion bash > /etc/bash_completion.d/sbgnconv

Zsh:
  $ sbgnconv completion zsh > "${fpath[1]}/_sbgnconv"

Fish:
  $ sbgnconv completion fish > ~/.config/fish/completions/sbgnconv.fish

PowerShell:
  PS> sbgnconv completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, w := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(w)
			default:
				return root.GenBashCompletionV2(w, true)
			}
		},
	}

	return cmd
}

// completeValues returns a flag completion function offering values.
func completeValues(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// sbgnFileArgs completes positional arguments with SBGN-ML files.
func sbgnFileArgs(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"sbgn", "sbgnml", "xml"}, cobra.ShellCompDirectiveFilterFileExt
}
