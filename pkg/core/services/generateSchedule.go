package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/thoshino/wardroster/internal/config"
	"github.com/thoshino/wardroster/pkg/core/scheduler"
	"github.com/thoshino/wardroster/pkg/db"
)

// GenerateScheduleStore defines the database operations needed for
// generating a monthly schedule.
type GenerateScheduleStore interface {
	GetStaff(ctx context.Context) ([]db.Staff, error)
	GetDayOffRequests(ctx context.Context, year, month int) ([]db.DayOffRequest, error)
	InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, cells []db.ScheduleCell) error
}

// GenerateScheduleResult contains the generated roster and its report.
type GenerateScheduleResult struct {
	RunID  string
	Year   int
	Month  time.Month
	Grid   *scheduler.Grid
	Report *scheduler.Report
	Saved  bool
}

// GenerateSchedule loads the roster and day-off requests from the database,
// runs the allocator for the given month and, unless dryRun is set, saves
// the run.
func GenerateSchedule(
	ctx context.Context,
	store GenerateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month time.Month,
	dryRun bool,
) (*GenerateScheduleResult, error) {
	logger.Debug("Starting generateSchedule",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Bool("dry_run", dryRun))

	staff, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	if len(staff) == 0 {
		return nil, fmt.Errorf("no staff found - please add staff first")
	}
	logger.Debug("Found staff", zap.Int("count", len(staff)))

	roster, err := rosterFromRecords(staff)
	if err != nil {
		return nil, err
	}

	requests, err := store.GetDayOffRequests(ctx, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch day off requests: %w", err)
	}
	daysOff, err := daysOffFromRecords(requests)
	if err != nil {
		return nil, err
	}
	logger.Debug("Found day off requests", zap.Int("count", len(daysOff)))

	result, err := runEngine(cfg, year, month, roster, daysOff)
	if err != nil {
		return nil, err
	}

	out := &GenerateScheduleResult{
		RunID:  uuid.New().String(),
		Year:   year,
		Month:  month,
		Grid:   result.Grid,
		Report: result.Report,
	}

	logger.Info("Schedule generated",
		zap.Int("strict_night_violations", result.Report.StrictNightViolations),
		zap.Int("evening_violations", result.Report.EveningViolations),
		zap.Int("daytime_shortage", result.Report.DaytimeShortage))

	if dryRun {
		logger.Info("Dry run - schedule not saved")
		return out, nil
	}

	run := &db.ScheduleRun{
		ID:                    out.RunID,
		Year:                  year,
		Month:                 int(month),
		StrictNightViolations: result.Report.StrictNightViolations,
		EveningViolations:     result.Report.EveningViolations,
		DaytimeShortage:       result.Report.DaytimeShortage,
		DaytimeOversupply:     result.Report.DaytimeOversupply,
	}
	if err := store.InsertScheduleRun(ctx, run, cellRecords(out.RunID, result.Grid)); err != nil {
		return nil, fmt.Errorf("failed to save schedule run: %w", err)
	}
	out.Saved = true
	logger.Info("Schedule saved", zap.String("run_id", out.RunID))

	return out, nil
}

// GenerateScheduleFromConfig runs the allocator for a roster defined wholly
// in the config file, expanding any recurring day-off rules for the month.
// Nothing is persisted.
func GenerateScheduleFromConfig(
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month time.Month,
) (*GenerateScheduleResult, error) {
	if len(cfg.Roster) == 0 {
		return nil, fmt.Errorf("config has no roster entries")
	}

	roster := make([]scheduler.StaffProfile, 0, len(cfg.Roster))
	var daysOff []scheduler.DayOff
	for i, entry := range cfg.Roster {
		id := entry.ID
		if id == "" {
			id = fmt.Sprintf("staff-%d", i+1)
		}
		restWeekdays, err := parseWeekdays(entry.RestWeekdays)
		if err != nil {
			return nil, fmt.Errorf("roster entry %q: %w", entry.Name, err)
		}
		roster = append(roster, scheduler.StaffProfile{
			ID:             id,
			Name:           entry.Name,
			AllowedShifts:  entry.Shifts,
			RestWeekdays:   restWeekdays,
			MinMonthlyDays: entry.MinMonthlyDays,
			MaxMonthlyDays: entry.MaxMonthlyDays,
			MinWeeklyDays:  entry.MinWeeklyDays,
			MaxWeeklyDays:  entry.MaxWeeklyDays,
		})

		expanded, err := expandRecurringOff(id, entry.RecurringOff, year, month)
		if err != nil {
			return nil, fmt.Errorf("roster entry %q: %w", entry.Name, err)
		}
		daysOff = append(daysOff, expanded...)
	}

	result, err := runEngine(cfg, year, month, roster, daysOff)
	if err != nil {
		return nil, err
	}

	logger.Info("Schedule generated from config roster",
		zap.Int("staff", len(roster)),
		zap.Int("strict_night_violations", result.Report.StrictNightViolations))

	return &GenerateScheduleResult{
		RunID:  uuid.New().String(),
		Year:   year,
		Month:  month,
		Grid:   result.Grid,
		Report: result.Report,
	}, nil
}

func runEngine(cfg *config.Config, year int, month time.Month, roster []scheduler.StaffProfile, daysOff []scheduler.DayOff) (*scheduler.Result, error) {
	input := scheduler.SchedulingInput{
		Year:    year,
		Month:   month,
		Roster:  roster,
		DaysOff: daysOff,
	}
	if cfg != nil {
		input.Coverage = cfg.Coverage
		input.Weights = cfg.Weights
	}

	result, err := scheduler.Schedule(input)
	if err != nil {
		return nil, fmt.Errorf("scheduling failed: %w", err)
	}
	return result, nil
}

func rosterFromRecords(staff []db.Staff) ([]scheduler.StaffProfile, error) {
	roster := make([]scheduler.StaffProfile, 0, len(staff))
	for _, s := range staff {
		restWeekdays, err := parseWeekdays(s.RestWeekdays)
		if err != nil {
			return nil, fmt.Errorf("staff %q: %w", s.Name, err)
		}
		roster = append(roster, scheduler.StaffProfile{
			ID:             s.ID,
			Name:           s.Name,
			AllowedShifts:  s.Shifts,
			RestWeekdays:   restWeekdays,
			MinMonthlyDays: s.MinMonthlyDays,
			MaxMonthlyDays: s.MaxMonthlyDays,
			MinWeeklyDays:  s.MinWeeklyDays,
			MaxWeeklyDays:  s.MaxWeeklyDays,
		})
	}
	return roster, nil
}

func daysOffFromRecords(requests []db.DayOffRequest) ([]scheduler.DayOff, error) {
	daysOff := make([]scheduler.DayOff, 0, len(requests))
	for _, r := range requests {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, fmt.Errorf("day off request %s has invalid date %q: %w", r.ID, r.Date, err)
		}
		daysOff = append(daysOff, scheduler.DayOff{StaffID: r.StaffID, Date: date})
	}
	return daysOff, nil
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	weekdays := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		wd, err := config.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}

// expandRecurringOff turns RRULE strings into concrete day-off requests
// falling inside the target month.
func expandRecurringOff(staffID string, rules []string, year int, month time.Month) ([]scheduler.DayOff, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	var daysOff []scheduler.DayOff
	for i, raw := range rules {
		rule, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid recurringOff[%d]: %w", i, err)
		}
		rule.DTStart(monthStart)
		for _, occurrence := range rule.Between(monthStart, monthEnd, true) {
			daysOff = append(daysOff, scheduler.DayOff{StaffID: staffID, Date: occurrence})
		}
	}
	return daysOff, nil
}

func cellRecords(runID string, grid *scheduler.Grid) []db.ScheduleCell {
	cells := make([]db.ScheduleCell, 0, len(grid.StaffIDs())*grid.Days)
	for _, id := range grid.StaffIDs() {
		for day := 1; day <= grid.Days; day++ {
			cells = append(cells, db.ScheduleCell{
				RunID:   runID,
				StaffID: id,
				Day:     day,
				Value:   grid.Cell(id, day).Display(),
			})
		}
	}
	return cells
}
