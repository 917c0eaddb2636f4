package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wardroster_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_Valid(t *testing.T) {
	path := writeConfig(t, `
scheduleSheetID: sheet-123
roster:
  - name: Sato
    shifts: [EA, DA, NB]
    restWeekdays: [Sunday]
    maxMonthlyDays: 20
    recurringOff:
      - "FREQ=WEEKLY;BYDAY=MO"
  - name: Suzuki
    shifts: [NB, NC]
weights:
  strictNight: 60
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "sheet-123", cfg.ScheduleSheetID)
	require.Len(t, cfg.Roster, 2)
	assert.Equal(t, "Sato", cfg.Roster[0].Name)
	assert.Equal(t, []string{"EA", "DA", "NB"}, cfg.Roster[0].Shifts)
	assert.Equal(t, 20, cfg.Roster[0].MaxMonthlyDays)
	require.NotNil(t, cfg.Weights)
	assert.Equal(t, 60, cfg.Weights.StrictNight)
	assert.Nil(t, cfg.Coverage)
}

func TestLoadFromPath_RejectsUnknownShift(t *testing.T) {
	path := writeConfig(t, `
roster:
  - name: Sato
    shifts: [XX]
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_RejectsMissingName(t *testing.T) {
	path := writeConfig(t, `
roster:
  - shifts: [EA]
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_RejectsBadRRule(t *testing.T) {
	path := writeConfig(t, `
roster:
  - name: Sato
    shifts: [EA]
    recurringOff:
      - "not an rrule"
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday("Wednesday")
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, wd)

	_, err = ParseWeekday("Someday")
	assert.Error(t, err)
}

func writeOAuthClient(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oauthClient.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOAuthClientFromPath_Valid(t *testing.T) {
	path := writeOAuthClient(t, `{
  "installed": {
    "client_id": "id-123.apps.googleusercontent.com",
    "project_id": "wardroster",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
    "client_secret": "secret",
    "redirect_uris": ["http://localhost"]
  }
}`)

	cfg, err := LoadOAuthClientFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "id-123.apps.googleusercontent.com", cfg.Installed.ClientID)
	assert.Equal(t, "wardroster", cfg.Installed.ProjectID)
}

func TestLoadOAuthClientFromPath_RejectsIncomplete(t *testing.T) {
	path := writeOAuthClient(t, `{"installed": {"client_id": "id-123"}}`)

	_, err := LoadOAuthClientFromPath(path)
	assert.Error(t, err)
}
