package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thoshino/wardroster/internal/config"
	"github.com/thoshino/wardroster/pkg/clients/sheetsclient"
)

type mockPublisher struct {
	spreadsheetID string
	published     *sheetsclient.PublishedSchedule
}

func (m *mockPublisher) PublishSchedule(spreadsheetID string, schedule *sheetsclient.PublishedSchedule) error {
	m.spreadsheetID = spreadsheetID
	m.published = schedule
	return nil
}

func TestPublishSchedule_BuildsRows(t *testing.T) {
	cfg := &config.Config{
		ScheduleSheetID: "sheet-xyz",
		Roster: []config.StaffEntry{
			{Name: "Sato", Shifts: []string{"NB", "NC"}},
			{Name: "Suzuki", Shifts: []string{"EA", "DA", "NB"}},
		},
	}

	result, err := GenerateScheduleFromConfig(cfg, zap.NewNop(), 2026, time.February)
	require.NoError(t, err)

	mock := &mockPublisher{}
	names := map[string]string{"staff-1": "Sato", "staff-2": "Suzuki"}
	require.NoError(t, PublishSchedule(mock, cfg, zap.NewNop(), result, names))

	assert.Equal(t, "sheet-xyz", mock.spreadsheetID)
	require.NotNil(t, mock.published)
	assert.Equal(t, 2026, mock.published.Year)
	assert.Equal(t, time.February, mock.published.Month)
	require.Len(t, mock.published.Rows, 2)
	assert.Equal(t, "Sato", mock.published.Rows[0].StaffName)
	assert.Len(t, mock.published.Rows[0].Cells, 28)
}

func TestPublishSchedule_AppendsShortageSummary(t *testing.T) {
	cfg := &config.Config{
		ScheduleSheetID: "sheet-xyz",
		Roster: []config.StaffEntry{
			{Name: "Sato", Shifts: []string{"NB", "NC"}},
			{Name: "Suzuki", Shifts: []string{"EA", "DA", "NB"}},
		},
	}

	result, err := GenerateScheduleFromConfig(cfg, zap.NewNop(), 2026, time.February)
	require.NoError(t, err)

	mock := &mockPublisher{}
	require.NoError(t, PublishSchedule(mock, cfg, zap.NewNop(), result, nil))

	require.NotNil(t, mock.published)
	require.Len(t, mock.published.Shortages, 6)
	assert.Equal(t, "7-9", mock.published.Shortages[0].Band)
	for _, row := range mock.published.Shortages {
		assert.Len(t, row.Hours, 28, "band %s", row.Band)
	}

	// Nobody in this roster covers 18:00-20:59, so every day misses the
	// evening pair for all three hours.
	evening := mock.published.Shortages[3]
	require.Equal(t, "18-21", evening.Band)
	for day, hours := range evening.Hours {
		assert.Equal(t, 6, hours, "day %d", day+1)
	}
}

func TestPublishSchedule_RequiresSheetID(t *testing.T) {
	cfg := &config.Config{
		Roster: []config.StaffEntry{{Name: "Sato", Shifts: []string{"NB"}}},
	}

	result, err := GenerateScheduleFromConfig(cfg, zap.NewNop(), 2026, time.February)
	require.NoError(t, err)

	err = PublishSchedule(&mockPublisher{}, cfg, zap.NewNop(), result, nil)
	assert.Error(t, err)
}
