package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "Show previously generated output",
		Long: `Show previously generated output.

Without arguments, lists the most recent generations. With an ID,
prints the full stored output of that generation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.History == nil {
				return fmt.Errorf("history is unavailable")
			}

			if len(args) == 1 {
				rec, err := app.History.Get(args[0])
				if err != nil {
					return err
				}
				app.Console.Panel(fmt.Sprintf("%s (%s)", rec.ID, rec.Kind), rec.Output)
				return nil
			}

			records, err := app.History.List(limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				app.Console.Warnf("No history yet")
				return nil
			}

			var rows [][]string
			for _, rec := range records {
				rows = append(rows, []string{
					rec.ID,
					string(rec.Kind),
					rec.Branch,
					rec.Model,
					rec.CreatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			app.Console.Table("History", []string{"ID", "Kind", "Branch", "Model", "Created"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of entries to show")

	return cmd
}
