package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/thoshino/wardroster/internal/config"
	"github.com/thoshino/wardroster/pkg/clients/sheetsclient"
	"github.com/thoshino/wardroster/pkg/core/scheduler"
)

// SchedulePublisher is the sheet operation PublishSchedule depends on.
type SchedulePublisher interface {
	PublishSchedule(spreadsheetID string, schedule *sheetsclient.PublishedSchedule) error
}

// PublishSchedule writes a generated roster to the configured spreadsheet,
// one tab per month.
func PublishSchedule(
	client SchedulePublisher,
	cfg *config.Config,
	logger *zap.Logger,
	result *GenerateScheduleResult,
	staffNames map[string]string,
) error {
	if cfg.ScheduleSheetID == "" {
		return fmt.Errorf("no scheduleSheetID configured")
	}

	published := &sheetsclient.PublishedSchedule{
		Year:  result.Year,
		Month: result.Month,
		Days:  result.Grid.Days,
	}
	for _, id := range result.Grid.StaffIDs() {
		name := staffNames[id]
		if name == "" {
			name = id
		}
		row := sheetsclient.PublishedScheduleRow{StaffName: name}
		for day := 1; day <= result.Grid.Days; day++ {
			row.Cells = append(row.Cells, result.Grid.Cell(id, day).Display())
		}
		published.Rows = append(published.Rows, row)
	}
	published.Shortages = shortageRows(result.Report)

	if err := client.PublishSchedule(cfg.ScheduleSheetID, published); err != nil {
		return fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("sheet_id", cfg.ScheduleSheetID),
		zap.Int("year", result.Year),
		zap.Int("month", int(result.Month)),
		zap.Int("rows", len(published.Rows)))

	return nil
}

// shortageRows regroups the report's per-day band breakdown into one row per
// band, mirroring the summary block of the original roster sheet.
func shortageRows(report *scheduler.Report) []sheetsclient.ShortageRow {
	if report == nil || len(report.Days) == 0 {
		return nil
	}

	rows := make([]sheetsclient.ShortageRow, len(report.Days[0].Bands))
	for i, band := range report.Days[0].Bands {
		rows[i] = sheetsclient.ShortageRow{
			Band:  band.Band,
			Hours: make([]int, 0, len(report.Days)),
		}
	}
	for _, day := range report.Days {
		for i, band := range day.Bands {
			rows[i].Hours = append(rows[i].Hours, band.Hours)
		}
	}
	return rows
}

// StaffNamesFromGrid builds the id-to-name map PublishSchedule renders rows
// with, falling back to ids for unknown entries.
func StaffNamesFromGrid(roster []scheduler.StaffProfile) map[string]string {
	names := make(map[string]string, len(roster))
	for _, s := range roster {
		if s.Name != "" {
			names[s.ID] = s.Name
		}
	}
	return names
}
