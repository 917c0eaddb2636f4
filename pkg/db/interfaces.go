package db

import "context"

// StaffStore defines the staff and day-off database operations the
// scheduling service depends on.
type StaffStore interface {
	GetStaff(ctx context.Context) ([]Staff, error)
	InsertStaff(ctx context.Context, staff *Staff) error
	GetDayOffRequests(ctx context.Context, year, month int) ([]DayOffRequest, error)
	InsertDayOffRequest(ctx context.Context, request *DayOffRequest) error
}

// Database defines the interface for all database operations.
type Database interface {
	StaffStore
	GetScheduleRuns(ctx context.Context) ([]ScheduleRun, error)
	InsertScheduleRun(ctx context.Context, run *ScheduleRun, cells []ScheduleCell) error
	GetScheduleCells(ctx context.Context, runID string) ([]ScheduleCell, error)
}
