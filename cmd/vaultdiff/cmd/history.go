package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"vaultdiff/internal/adapters/sqlite"
	"vaultdiff/internal/application/commands"
	"vaultdiff/internal/config"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent review resolutions",
	Long: `History lists the most recent resolution actions: which file's content
was adopted, and which conflict copies were deleted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open(config.StatePath())
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := commands.NewHistoryCommand(store, historyLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No reviews recorded yet.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"When", "Action", "File 1", "File 2"})
		for _, r := range records {
			t.AppendRow(table.Row{
				r.RecordedAt.Local().Format("2006-01-02 15:04"),
				string(r.Action),
				r.File1,
				r.File2,
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", commands.DefaultHistoryLimit, "maximum number of records to show")
	rootCmd.AddCommand(historyCmd)
}
