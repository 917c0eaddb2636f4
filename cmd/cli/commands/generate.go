package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thoshino/wardroster/internal/config"
	"github.com/thoshino/wardroster/pkg/clients/sheetsclient"
	"github.com/thoshino/wardroster/pkg/core/scheduler"
	"github.com/thoshino/wardroster/pkg/core/services"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <year> <month>",
		Short: "Generate the shift schedule for a month",
		Long:  "Run the allocator for the given month, using the database roster when one is configured and the config file roster otherwise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be a number: %w", err)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("month must be a number: %w", err)
			}

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			fromConfig, _ := cmd.Flags().GetBool("from-config")
			publish, _ := cmd.Flags().GetBool("publish")
			rosterPath, _ := cmd.Flags().GetString("roster")

			cfg := app.Cfg
			if rosterPath != "" {
				cfg, err = config.LoadFromPath(rosterPath)
				if err != nil {
					return fmt.Errorf("failed to load roster file: %w", err)
				}
				fromConfig = true
			}

			app.Logger.Debug("generate command",
				zap.Int("year", year),
				zap.Int("month", month),
				zap.Bool("dry_run", dryRun),
				zap.Bool("from_config", fromConfig))

			var result *services.GenerateScheduleResult
			names := map[string]string{}

			if fromConfig || app.Database == nil {
				result, err = services.GenerateScheduleFromConfig(cfg, app.Logger, year, time.Month(month))
				if err != nil {
					return fmt.Errorf("generation failed: %w", err)
				}
				for i, entry := range cfg.Roster {
					id := entry.ID
					if id == "" {
						id = fmt.Sprintf("staff-%d", i+1)
					}
					names[id] = entry.Name
				}
			} else {
				result, err = services.GenerateSchedule(app.Ctx, app.Database, cfg, app.Logger, year, time.Month(month), dryRun)
				if err != nil {
					return fmt.Errorf("generation failed: %w", err)
				}
				staff, err := app.Database.GetStaff(app.Ctx)
				if err != nil {
					return fmt.Errorf("failed to fetch staff names: %w", err)
				}
				for _, s := range staff {
					names[s.ID] = s.Name
				}
			}

			printSchedule(result, names)
			printReport(result)

			if dryRun {
				fmt.Println("💡 This was a dry run. Use without --dry-run to save the schedule.")
			} else if result.Saved {
				fmt.Printf("✅ Schedule saved (run %s).\n", result.RunID)
			}

			if publish {
				oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
				if err != nil {
					return fmt.Errorf("failed to load OAuth client config: %w", err)
				}
				client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env)
				if err != nil {
					return fmt.Errorf("failed to create sheets client: %w", err)
				}
				if err := services.PublishSchedule(client, cfg, app.Logger, result, names); err != nil {
					return err
				}
				fmt.Printf("✅ Schedule published to sheet %s.\n", cfg.ScheduleSheetID)
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving to the database")
	cmd.Flags().Bool("from-config", false, "Use the config file roster even when a database is configured")
	cmd.Flags().String("roster", "", "Path to a roster YAML file to schedule instead of the database")
	cmd.Flags().Bool("publish", false, "Publish the result to the configured spreadsheet")

	return cmd
}

func printSchedule(result *services.GenerateScheduleResult, names map[string]string) {
	grid := result.Grid

	nameColWidth := 10
	for _, id := range grid.StaffIDs() {
		label := staffLabel(id, names)
		if len(label) > nameColWidth {
			nameColWidth = len(label)
		}
	}

	fmt.Printf("\n📅 Schedule for %d-%02d\n\n", result.Year, int(result.Month))

	fmt.Printf("%-*s", nameColWidth+2, "")
	for day := 1; day <= grid.Days; day++ {
		fmt.Printf("%-4d", day)
	}
	fmt.Println()

	for _, id := range grid.StaffIDs() {
		fmt.Printf("%-*s", nameColWidth+2, staffLabel(id, names))
		for day := 1; day <= grid.Days; day++ {
			cell := grid.Cell(id, day).Display()
			if cell == "" {
				cell = "-"
			}
			// the rest marker is two full-width runes and already fills the column
			if cell == scheduler.RestMarker {
				fmt.Printf("%s", cell)
			} else {
				fmt.Printf("%-4s", cell)
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

func printReport(result *services.GenerateScheduleResult) {
	report := result.Report

	fmt.Printf("📊 Coverage Report\n\n")
	fmt.Printf("Strict night violations: %d\n", report.StrictNightViolations)
	fmt.Printf("Evening violations:      %d\n", report.EveningViolations)
	fmt.Printf("Daytime shortage:        %d staff-hours\n", report.DaytimeShortage)
	fmt.Printf("Daytime oversupply:      %d staff-hours\n", report.DaytimeOversupply)

	short := []string{}
	for _, day := range report.Days {
		for _, band := range day.Bands {
			if band.Hours > 0 {
				short = append(short, fmt.Sprintf("day %d band %s (%d)", day.Day, band.Band, band.Hours))
			}
		}
	}
	if len(short) > 0 {
		fmt.Printf("\n⚠️  Understaffed bands (%d):\n", len(short))
		for _, s := range short {
			fmt.Printf("  • %s\n", s)
		}
	}
	fmt.Println()
}

func staffLabel(id string, names map[string]string) string {
	if name := names[id]; name != "" {
		return name
	}
	return id
}
