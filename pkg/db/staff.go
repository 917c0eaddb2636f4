package db

// Staff is a roster member record. Shifts holds the catalog codes the member
// may work; RestWeekdays the weekday names locked as rest every week.
type Staff struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Shifts         []string `json:"shifts"`
	RestWeekdays   []string `json:"restWeekdays"`
	MinMonthlyDays int      `json:"minMonthlyDays"`
	MaxMonthlyDays int      `json:"maxMonthlyDays"`
	MinWeeklyDays  int      `json:"minWeeklyDays"`
	MaxWeeklyDays  int      `json:"maxWeeklyDays"`
}

// DayOffRequest is one requested day off. Date is formatted "2006-01-02".
type DayOffRequest struct {
	ID      string `json:"id"`
	StaffID string `json:"staffId"`
	Date    string `json:"date"`
}
