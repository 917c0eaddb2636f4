package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thoshino/wardroster/internal/config"
	"github.com/thoshino/wardroster/pkg/core/scheduler"
	"github.com/thoshino/wardroster/pkg/db"
)

// AddStaffCmd creates the addStaff command
func AddStaffCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addStaff <id> <name> <shift_codes>",
		Short: "Add a staff member (shift_codes is a comma-separated list, e.g. EA,DA,NB)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.RequireDatabase()
			if err != nil {
				return err
			}

			id, name := args[0], args[1]
			shifts := strings.Split(args[2], ",")
			catalog := scheduler.DefaultCatalog()
			for _, code := range shifts {
				if _, ok := catalog.Lookup(code); !ok {
					return fmt.Errorf("unknown shift code %q", code)
				}
			}

			restWeekdays, _ := cmd.Flags().GetStringSlice("rest-weekdays")
			for _, day := range restWeekdays {
				if _, err := config.ParseWeekday(day); err != nil {
					return err
				}
			}
			minMonthly, _ := cmd.Flags().GetInt("min-monthly-days")
			maxMonthly, _ := cmd.Flags().GetInt("max-monthly-days")
			minWeekly, _ := cmd.Flags().GetInt("min-weekly-days")
			maxWeekly, _ := cmd.Flags().GetInt("max-weekly-days")

			staff := &db.Staff{
				ID:             id,
				Name:           name,
				Shifts:         shifts,
				RestWeekdays:   restWeekdays,
				MinMonthlyDays: minMonthly,
				MaxMonthlyDays: maxMonthly,
				MinWeeklyDays:  minWeekly,
				MaxWeeklyDays:  maxWeekly,
			}
			if err := store.InsertStaff(app.Ctx, staff); err != nil {
				return fmt.Errorf("failed to add staff: %w", err)
			}

			app.Logger.Info("Staff added", zap.String("id", id), zap.String("name", name))
			fmt.Printf("\n✓ Added %s (%s) with shifts %s\n\n", name, id, strings.Join(shifts, ", "))
			return nil
		},
	}

	cmd.Flags().StringSlice("rest-weekdays", nil, "Weekdays locked as rest every week (e.g. monday,thursday)")
	cmd.Flags().Int("min-monthly-days", 0, "Advisory monthly workload minimum")
	cmd.Flags().Int("max-monthly-days", 0, "Monthly shift cap (0 for no cap)")
	cmd.Flags().Int("min-weekly-days", 0, "Advisory weekly workload minimum")
	cmd.Flags().Int("max-weekly-days", 0, "Weekly shift cap (0 for no cap)")

	return cmd
}
