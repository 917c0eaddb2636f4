package db

// ScheduleRun records one generated monthly roster together with its report
// summary. GeneratedDatetime is RFC3339.
type ScheduleRun struct {
	ID                    string `json:"id"`
	Year                  int    `json:"year"`
	Month                 int    `json:"month"`
	GeneratedDatetime     string `json:"generatedDatetime"`
	StrictNightViolations int    `json:"strictNightViolations"`
	EveningViolations     int    `json:"eveningViolations"`
	DaytimeShortage       int    `json:"daytimeShortage"`
	DaytimeOversupply     int    `json:"daytimeOversupply"`
}

// ScheduleCell is one (staff, day) cell of a saved run. Value holds the
// shift code, the rest marker, or the empty string.
type ScheduleCell struct {
	RunID   string `json:"runId"`
	StaffID string `json:"staffId"`
	Day     int    `json:"day"`
	Value   string `json:"value"`
}
