package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/thoshino/wardroster/pkg/db"
)

// GetScheduleRuns retrieves all saved schedule runs, newest first.
func (d *DB) GetScheduleRuns(ctx context.Context) ([]db.ScheduleRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, year, month, generated_datetime,
		       strict_night_violations, evening_violations,
		       daytime_shortage, daytime_oversupply
		FROM schedule_run
		ORDER BY generated_datetime DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule runs: %w", err)
	}
	defer rows.Close()

	var runs []db.ScheduleRun
	for rows.Next() {
		var r db.ScheduleRun
		var generated time.Time
		if err := rows.Scan(&r.ID, &r.Year, &r.Month, &generated,
			&r.StrictNightViolations, &r.EveningViolations,
			&r.DaytimeShortage, &r.DaytimeOversupply); err != nil {
			return nil, fmt.Errorf("failed to scan schedule run: %w", err)
		}
		r.GeneratedDatetime = generated.UTC().Format(time.RFC3339)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule runs: %w", err)
	}

	return runs, nil
}

// InsertScheduleRun saves a run and its cells in one transaction.
func (d *DB) InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, cells []db.ScheduleCell) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO schedule_run (
			id, year, month,
			strict_night_violations, evening_violations,
			daytime_shortage, daytime_oversupply
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, run.ID, run.Year, run.Month,
		run.StrictNightViolations, run.EveningViolations,
		run.DaytimeShortage, run.DaytimeOversupply)
	if err != nil {
		return fmt.Errorf("failed to insert schedule run: %w", err)
	}

	for _, cell := range cells {
		_, err = tx.Exec(ctx, `
			INSERT INTO schedule_cell (run_id, staff_id, day, value)
			VALUES ($1, $2, $3, $4)
		`, run.ID, cell.StaffID, cell.Day, cell.Value)
		if err != nil {
			return fmt.Errorf("failed to insert schedule cell: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schedule run: %w", err)
	}
	return nil
}

// GetScheduleCells retrieves the cells of one saved run.
func (d *DB) GetScheduleCells(ctx context.Context, runID string) ([]db.ScheduleCell, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT run_id, staff_id, day, value
		FROM schedule_cell
		WHERE run_id = $1
		ORDER BY staff_id, day
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule cells: %w", err)
	}
	defer rows.Close()

	var cells []db.ScheduleCell
	for rows.Next() {
		var c db.ScheduleCell
		if err := rows.Scan(&c.RunID, &c.StaffID, &c.Day, &c.Value); err != nil {
			return nil, fmt.Errorf("failed to scan schedule cell: %w", err)
		}
		cells = append(cells, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule cells: %w", err)
	}

	return cells, nil
}
