package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thoshino/wardroster/pkg/db"
)

// AddDayOffCmd creates the addDayOff command
func AddDayOffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addDayOff <staff_id> <date>",
		Short: "Record a requested day off (date is YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.RequireDatabase()
			if err != nil {
				return err
			}

			staffID, date := args[0], args[1]
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
			}

			request := &db.DayOffRequest{
				ID:      uuid.New().String(),
				StaffID: staffID,
				Date:    date,
			}
			if err := store.InsertDayOffRequest(app.Ctx, request); err != nil {
				return fmt.Errorf("failed to add day off request: %w", err)
			}

			app.Logger.Info("Day off recorded", zap.String("staff_id", staffID), zap.String("date", date))
			fmt.Printf("\n✓ Recorded day off for %s on %s\n\n", staffID, date)
			return nil
		},
	}
}
