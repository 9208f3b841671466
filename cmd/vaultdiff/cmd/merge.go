package cmd

import (
	"github.com/spf13/cobra"

	"vaultdiff/internal/adapters/tui"
	"vaultdiff/internal/adapters/tui/views"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [file]",
	Short: "Compare two vault files with merge actions enabled",
	Long: `Merge works like compare but enables the resolution actions: adopt one
side's content into the other, or delete a sync-conflict copy. The first
merge ever run asks for a one-time confirmation, because these actions
overwrite or delete files without undo.

Examples:
  vaultdiff merge
  vaultdiff merge notes/Ideas.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := tui.Options{Initial: views.WorkflowMerge}
		if len(args) == 1 {
			opts.File1 = args[0]
		}
		return runTUI(opts)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
