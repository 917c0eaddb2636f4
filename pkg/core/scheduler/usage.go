package scheduler

// UsageTracker counts committed working days per staff member, monthly and by
// Monday-start week, so quota checks stay O(1).
type UsageTracker struct {
	monthly map[string]int
	weekly  map[string]map[int]int
}

// NewUsageTracker returns an empty tracker.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{
		monthly: make(map[string]int),
		weekly:  make(map[string]map[int]int),
	}
}

// MonthlyUsed returns a staff member's committed working days in the month.
func (u *UsageTracker) MonthlyUsed(staffID string) int {
	return u.monthly[staffID]
}

// WeeklyUsed returns a staff member's committed working days in one week.
func (u *UsageTracker) WeeklyUsed(staffID string, week int) int {
	return u.weekly[staffID][week]
}

// Increment records one committed working day.
func (u *UsageTracker) Increment(staffID string, week int) {
	u.monthly[staffID]++
	byWeek, ok := u.weekly[staffID]
	if !ok {
		byWeek = make(map[int]int)
		u.weekly[staffID] = byWeek
	}
	byWeek[week]++
}
