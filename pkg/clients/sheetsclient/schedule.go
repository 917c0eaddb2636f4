package sheetsclient

import (
	"fmt"
	"time"
)

// PublishedSchedule is the grid data written to the spreadsheet: one row per
// staff member, one column per day of the month.
type PublishedSchedule struct {
	Year  int
	Month time.Month
	Days  int

	// Rows in roster order; Cells holds one display value per day (shift
	// code, rest marker, or blank).
	Rows []PublishedScheduleRow

	// Shortages holds the report's per-day band shortages, appended below
	// the grid one row per band.
	Shortages []ShortageRow
}

// PublishedScheduleRow is one staff member's row.
type PublishedScheduleRow struct {
	StaffName string
	Cells     []string
}

// ShortageRow is one coverage band's missing staff-hours, one value per day.
type ShortageRow struct {
	Band  string
	Hours []int
}

// PublishSchedule writes a monthly schedule to its own tab, creating the tab
// when missing and overwriting it otherwise. The tab is titled like
// "2026-02".
func (c *Client) PublishSchedule(spreadsheetID string, schedule *PublishedSchedule) error {
	tabTitle := fmt.Sprintf("%04d-%02d", schedule.Year, schedule.Month)

	exists, err := c.SheetExists(spreadsheetID, tabTitle)
	if err != nil {
		return err
	}
	if !exists {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab %s: %w", tabTitle, err)
		}
	}

	// Header row: blank corner cell, then "1 (Sun)" style day columns.
	header := make([]interface{}, 0, schedule.Days+1)
	header = append(header, "")
	for day := 1; day <= schedule.Days; day++ {
		weekday := time.Date(schedule.Year, schedule.Month, day, 0, 0, 0, 0, time.UTC).
			Weekday().String()[:3]
		header = append(header, fmt.Sprintf("%d (%s)", day, weekday))
	}

	values := make([][]interface{}, 0, len(schedule.Rows)+1)
	values = append(values, header)
	for _, row := range schedule.Rows {
		cells := make([]interface{}, 0, schedule.Days+1)
		cells = append(cells, row.StaffName)
		for _, cell := range row.Cells {
			cells = append(cells, cell)
		}
		values = append(values, cells)
	}

	if len(schedule.Shortages) > 0 {
		values = append(values, []interface{}{})
		for _, row := range schedule.Shortages {
			cells := make([]interface{}, 0, schedule.Days+1)
			cells = append(cells, fmt.Sprintf("不足 %s", row.Band))
			for _, hours := range row.Hours {
				cells = append(cells, hours)
			}
			values = append(values, cells)
		}
	}

	writeRange := fmt.Sprintf("%s!A1", tabTitle)
	if err := c.UpdateValues(spreadsheetID, writeRange, values); err != nil {
		return fmt.Errorf("failed to write schedule to %s: %w", tabTitle, err)
	}

	return nil
}
