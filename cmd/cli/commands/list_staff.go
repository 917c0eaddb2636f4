package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thoshino/wardroster/pkg/db"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List all staff members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var staff []db.Staff
			if app.Database != nil {
				var err error
				staff, err = app.Database.GetStaff(app.Ctx)
				if err != nil {
					return fmt.Errorf("failed to list staff: %w", err)
				}
			} else {
				for i, entry := range app.Cfg.Roster {
					id := entry.ID
					if id == "" {
						id = fmt.Sprintf("staff-%d", i+1)
					}
					staff = append(staff, db.Staff{
						ID:             id,
						Name:           entry.Name,
						Shifts:         entry.Shifts,
						RestWeekdays:   entry.RestWeekdays,
						MaxMonthlyDays: entry.MaxMonthlyDays,
						MaxWeeklyDays:  entry.MaxWeeklyDays,
					})
				}
			}

			app.Logger.Info("Staff fetched", zap.Int("count", len(staff)))

			fmt.Printf("\nFound %d staff members:\n\n", len(staff))
			for _, s := range staff {
				caps := ""
				if s.MaxMonthlyDays > 0 || s.MaxWeeklyDays > 0 {
					caps = fmt.Sprintf(" [max %d/month, %d/week]", s.MaxMonthlyDays, s.MaxWeeklyDays)
				}
				rest := ""
				if len(s.RestWeekdays) > 0 {
					rest = fmt.Sprintf(" rest: %s", strings.Join(s.RestWeekdays, ","))
				}
				fmt.Printf("- %s (%s) - %s%s%s\n", s.Name, s.ID, strings.Join(s.Shifts, ","), rest, caps)
			}
			fmt.Println()

			return nil
		},
	}
}
