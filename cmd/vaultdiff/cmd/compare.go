package cmd

import (
	"github.com/spf13/cobra"

	"vaultdiff/internal/adapters/tui"
	"vaultdiff/internal/adapters/tui/views"
)

var compareCmd = &cobra.Command{
	Use:   "compare [file]",
	Short: "Compare two vault files side by side",
	Long: `Compare opens the file picker to choose two files and shows them side
by side. Pass a vault-relative path to preselect the first file and only
pick the second.

Examples:
  vaultdiff compare
  vaultdiff compare notes/Ideas.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := tui.Options{Initial: views.WorkflowCompare}
		if len(args) == 1 {
			opts.File1 = args[0]
		}
		return runTUI(opts)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
