package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListRunsCmd creates the listRuns command
func ListRunsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRuns",
		Short: "List saved schedule runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.RequireDatabase()
			if err != nil {
				return err
			}

			runs, err := store.GetScheduleRuns(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list schedule runs: %w", err)
			}

			app.Logger.Info("Schedule runs fetched", zap.Int("count", len(runs)))

			if len(runs) == 0 {
				fmt.Println("\nNo schedule runs saved yet.")
				return nil
			}

			fmt.Printf("\nFound %d schedule runs:\n\n", len(runs))
			for _, run := range runs {
				fmt.Printf("- %s  %d-%02d  generated %s  (night violations: %d, evening: %d, shortage: %d, oversupply: %d)\n",
					run.ID,
					run.Year,
					run.Month,
					run.GeneratedDatetime,
					run.StrictNightViolations,
					run.EveningViolations,
					run.DaytimeShortage,
					run.DaytimeOversupply,
				)
			}
			fmt.Println()

			return nil
		},
	}
}
