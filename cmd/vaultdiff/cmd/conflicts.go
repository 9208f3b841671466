package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"vaultdiff/internal/adapters/filesystem"
	"vaultdiff/internal/adapters/tui"
	"vaultdiff/internal/adapters/tui/views"
	"vaultdiff/internal/application/commands"
)

var conflictsList bool

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Review sync conflicts one pair at a time",
	Long: `Conflicts scans the vault for sync-conflict files, pairs each with its
original, and walks the pairs in order. Continue with enter, stop with
esc; the remaining pairs stay untouched.

With --list the pairs are printed instead of reviewed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if conflictsList {
			return printConflicts(cmd)
		}
		return runTUI(tui.Options{Initial: views.WorkflowConflicts})
	},
}

func printConflicts(cmd *cobra.Command) error {
	repo := filesystem.NewRepository(cfg.VaultPath())
	pairs, err := commands.NewFindConflictsCommand(repo).Execute(cmd.Context())
	if err != nil {
		return err
	}

	if len(pairs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No sync conflicts found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Original", "Conflict"})
	for _, p := range pairs {
		t.AppendRow(table.Row{p.Original.Path, p.Conflict.Path})
	}
	t.Render()
	return nil
}

func init() {
	conflictsCmd.Flags().BoolVar(&conflictsList, "list", false, "print conflict pairs without opening the review")
	rootCmd.AddCommand(conflictsCmd)
}
