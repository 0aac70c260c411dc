package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// completionCmd writes shell completion scripts for supported shells. Unlike
// the original timer CLI, there is no customer/project namespace to drive
// dynamic positional completion against — tags come straight from the
// journal content, which cobra's static flag completion already covers via
// --tag/--exclude-tag being plain strings.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}
