package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/thoshino/wardroster/pkg/db"
)

// GetStaff retrieves all staff records in insertion order.
func (d *DB) GetStaff(ctx context.Context) ([]db.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, shifts, rest_weekdays, min_monthly_days, max_monthly_days, min_weekly_days, max_weekly_days
		FROM staff
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []db.Staff
	for rows.Next() {
		var s db.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Shifts, &s.RestWeekdays, &s.MinMonthlyDays, &s.MaxMonthlyDays, &s.MinWeeklyDays, &s.MaxWeeklyDays); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// InsertStaff inserts a new staff record
func (d *DB) InsertStaff(ctx context.Context, staff *db.Staff) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO staff (id, name, shifts, rest_weekdays, min_monthly_days, max_monthly_days, min_weekly_days, max_weekly_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, staff.ID, staff.Name, staff.Shifts, staff.RestWeekdays, staff.MinMonthlyDays, staff.MaxMonthlyDays, staff.MinWeeklyDays, staff.MaxWeeklyDays)
	if err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}

// GetDayOffRequests retrieves the day-off requests falling in a month.
func (d *DB) GetDayOffRequests(ctx context.Context, year, month int) ([]db.DayOffRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, date
		FROM day_off_request
		WHERE date >= $1 AND date < $2
		ORDER BY date, staff_id
	`, fmt.Sprintf("%04d-%02d-01", year, month), nextMonthStart(year, month))
	if err != nil {
		return nil, fmt.Errorf("failed to query day off requests: %w", err)
	}
	defer rows.Close()

	var requests []db.DayOffRequest
	for rows.Next() {
		var r db.DayOffRequest
		var date time.Time
		if err := rows.Scan(&r.ID, &r.StaffID, &date); err != nil {
			return nil, fmt.Errorf("failed to scan day off request: %w", err)
		}
		r.Date = date.Format("2006-01-02")
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating day off requests: %w", err)
	}

	return requests, nil
}

// InsertDayOffRequest inserts a new day-off request
func (d *DB) InsertDayOffRequest(ctx context.Context, request *db.DayOffRequest) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO day_off_request (id, staff_id, date)
		VALUES ($1, $2, $3)
	`, request.ID, request.StaffID, request.Date)
	if err != nil {
		return fmt.Errorf("failed to insert day off request: %w", err)
	}
	return nil
}

func nextMonthStart(year, month int) string {
	if month == 12 {
		return fmt.Sprintf("%04d-01-01", year+1)
	}
	return fmt.Sprintf("%04d-%02d-01", year, month+1)
}
