package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [powershell|bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for xticket-ip.

PowerShell:
  PS> xticket-ip completion powershell | Out-String | Invoke-Expression

  # To load completions for every session, add the line above to $PROFILE.

Bash:
  $ source <(xticket-ip completion bash)

Zsh:
  $ xticket-ip completion zsh > "${fpath[1]}/_xticket-ip"

Fish:
  $ xticket-ip completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"powershell", "bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
