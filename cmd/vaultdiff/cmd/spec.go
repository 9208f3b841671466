package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vaultdiff/internal/adapters/tui"
	"vaultdiff/internal/adapters/tui/views"
	"vaultdiff/internal/application"
)

var specCmd = &cobra.Command{
	Use:   "spec <index>",
	Short: "Open the comparison a numbered spec file describes",
	Long: `Spec reads spec-<index>.yaml from the vault's specs directory and opens
the comparison it describes. The spec names the two files to compare as
vault-relative paths:

  file1: notes/Plan.md
  file2: notes/Plan.md.sync-conflict-20240101-120000-ABC123

Examples:
  vaultdiff spec 0
  vaultdiff spec 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number between 0 and 9, got %q", args[0])
		}
		if err := application.ValidateSpecIndex(index); err != nil {
			return err
		}
		return runTUI(tui.Options{Initial: views.WorkflowSpec, SpecIndex: index})
	},
}

func init() {
	rootCmd.AddCommand(specCmd)
}
