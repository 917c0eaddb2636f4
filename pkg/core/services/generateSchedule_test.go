package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thoshino/wardroster/internal/config"
	"github.com/thoshino/wardroster/pkg/core/scheduler"
	"github.com/thoshino/wardroster/pkg/db"
)

// mockStore implements a test double for the schedule store
type mockStore struct {
	staff       []db.Staff
	requests    []db.DayOffRequest
	savedRuns   []*db.ScheduleRun
	savedCells  [][]db.ScheduleCell
	getStaffErr error
	insertErr   error
}

func (m *mockStore) GetStaff(ctx context.Context) ([]db.Staff, error) {
	if m.getStaffErr != nil {
		return nil, m.getStaffErr
	}
	return m.staff, nil
}

func (m *mockStore) GetDayOffRequests(ctx context.Context, year, month int) ([]db.DayOffRequest, error) {
	return m.requests, nil
}

func (m *mockStore) InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, cells []db.ScheduleCell) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.savedRuns = append(m.savedRuns, run)
	m.savedCells = append(m.savedCells, cells)
	return nil
}

func fullRoster() []db.Staff {
	shifts := []string{"EA", "DA", "DB", "LA", "NA", "NB", "NC"}
	return []db.Staff{
		{ID: "s1", Name: "Sato", Shifts: shifts},
		{ID: "s2", Name: "Suzuki", Shifts: shifts},
		{ID: "s3", Name: "Takahashi", Shifts: shifts},
		{ID: "s4", Name: "Tanaka", Shifts: shifts},
		{ID: "s5", Name: "Ito", Shifts: shifts},
	}
}

func TestGenerateSchedule_SavesRun(t *testing.T) {
	mock := &mockStore{staff: fullRoster()}
	logger := zap.NewNop()

	result, err := GenerateSchedule(context.Background(), mock, &config.Config{}, logger, 2026, time.February, false)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Saved)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 28, result.Grid.Days)
	assert.Equal(t, 0, result.Report.StrictNightViolations)

	require.Len(t, mock.savedRuns, 1)
	assert.Equal(t, result.RunID, mock.savedRuns[0].ID)
	assert.Equal(t, 2026, mock.savedRuns[0].Year)
	assert.Equal(t, 2, mock.savedRuns[0].Month)

	// One cell per staff member per day.
	require.Len(t, mock.savedCells, 1)
	assert.Len(t, mock.savedCells[0], 5*28)
}

func TestGenerateSchedule_DryRunSkipsSave(t *testing.T) {
	mock := &mockStore{staff: fullRoster()}

	result, err := GenerateSchedule(context.Background(), mock, &config.Config{}, zap.NewNop(), 2026, time.February, true)
	require.NoError(t, err)

	assert.False(t, result.Saved)
	assert.Empty(t, mock.savedRuns)
}

func TestGenerateSchedule_NoStaff(t *testing.T) {
	mock := &mockStore{}

	_, err := GenerateSchedule(context.Background(), mock, &config.Config{}, zap.NewNop(), 2026, time.February, false)
	assert.Error(t, err)
}

func TestGenerateSchedule_AppliesDayOffRequests(t *testing.T) {
	mock := &mockStore{
		staff: fullRoster(),
		requests: []db.DayOffRequest{
			{ID: "r1", StaffID: "s1", Date: "2026-02-10"},
		},
	}

	result, err := GenerateSchedule(context.Background(), mock, &config.Config{}, zap.NewNop(), 2026, time.February, true)
	require.NoError(t, err)

	assert.Equal(t, scheduler.CellRest, result.Grid.Cell("s1", 10).State)
}

func TestGenerateSchedule_RejectsBadDate(t *testing.T) {
	mock := &mockStore{
		staff: fullRoster(),
		requests: []db.DayOffRequest{
			{ID: "r1", StaffID: "s1", Date: "tomorrow"},
		},
	}

	_, err := GenerateSchedule(context.Background(), mock, &config.Config{}, zap.NewNop(), 2026, time.February, true)
	assert.Error(t, err)
}

func TestGenerateScheduleFromConfig_ExpandsRecurringOff(t *testing.T) {
	cfg := &config.Config{
		Roster: []config.StaffEntry{
			{Name: "Sato", Shifts: []string{"EA", "DA", "NB"}},
			{Name: "Suzuki", Shifts: []string{"EA", "DA", "NB"}},
			{Name: "Takahashi", Shifts: []string{"EA", "DA", "NB"},
				RecurringOff: []string{"FREQ=WEEKLY;BYDAY=MO"}},
		},
	}

	result, err := GenerateScheduleFromConfig(cfg, zap.NewNop(), 2026, time.February)
	require.NoError(t, err)

	// February 2026 Mondays: 2, 9, 16, 23.
	for _, day := range []int{2, 9, 16, 23} {
		assert.Equal(t, scheduler.CellRest, result.Grid.Cell("staff-3", day).State, "day %d", day)
	}
}

func TestGenerateScheduleFromConfig_EmptyRoster(t *testing.T) {
	_, err := GenerateScheduleFromConfig(&config.Config{}, zap.NewNop(), 2026, time.February)
	assert.Error(t, err)
}
