package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func allCodes() []string {
	return []string{ShiftEA, ShiftDA, ShiftDB, ShiftLA, ShiftNA, ShiftNB, ShiftNC}
}

// newTestRun builds run state for February 2026 without executing any phase.
func newTestRun(t *testing.T, roster []StaffProfile, daysOff ...DayOff) *run {
	t.Helper()
	r, err := newRun(SchedulingInput{
		Year:    2026,
		Month:   time.February,
		Roster:  roster,
		DaysOff: daysOff,
	})
	require.NoError(t, err)
	return r
}

func mustLookup(t *testing.T, r *run, code string) ShiftTemplate {
	t.Helper()
	tmpl, ok := r.catalog.Lookup(code)
	require.True(t, ok)
	return tmpl
}

func TestEligible_OccupiedCell(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes()}
	r := newTestRun(t, []StaffProfile{staff})
	ea := mustLookup(t, r, ShiftEA)

	require.True(t, r.eligible(&staff, 3, ea))

	r.grid.assignShift("a", 3, ShiftDA)
	require.False(t, r.eligible(&staff, 3, ea))

	r.grid.lockRest("a", 4)
	require.False(t, r.eligible(&staff, 4, ea))
}

func TestEligible_FixedRestWeekday(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes(), RestWeekdays: []time.Weekday{time.Sunday}}
	r := newTestRun(t, []StaffProfile{staff})
	ea := mustLookup(t, r, ShiftEA)

	// February 2026 day 1 is a Sunday.
	require.False(t, r.eligible(&staff, 1, ea))
	require.True(t, r.eligible(&staff, 2, ea))
}

func TestEligible_RequestedDayOff(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes()}
	r := newTestRun(t, []StaffProfile{staff},
		DayOff{StaffID: "a", Date: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)})
	ea := mustLookup(t, r, ShiftEA)

	require.False(t, r.eligible(&staff, 10, ea))
	require.True(t, r.eligible(&staff, 11, ea))
}

func TestEligible_ShiftNotAllowed(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: []string{ShiftEA, ShiftDA}}
	r := newTestRun(t, []StaffProfile{staff})

	require.True(t, r.eligible(&staff, 2, mustLookup(t, r, ShiftEA)))
	require.False(t, r.eligible(&staff, 2, mustLookup(t, r, ShiftNB)))
}

func TestEligible_MonthlyCap(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes(), MaxMonthlyDays: 2}
	r := newTestRun(t, []StaffProfile{staff})
	ea := mustLookup(t, r, ShiftEA)

	r.usage.Increment("a", 0)
	require.True(t, r.eligible(&staff, 10, ea))

	r.usage.Increment("a", 1)
	require.False(t, r.eligible(&staff, 10, ea))
}

func TestEligible_WeeklyCap(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes(), MaxWeeklyDays: 1}
	r := newTestRun(t, []StaffProfile{staff})
	ea := mustLookup(t, r, ShiftEA)

	// Days 2-8 share the week that starts Monday the 2nd.
	r.usage.Increment("a", r.grid.WeekIndex(2))
	require.False(t, r.eligible(&staff, 5, ea))
	require.False(t, r.eligible(&staff, 8, ea))
	require.True(t, r.eligible(&staff, 9, ea))
}

func TestEligible_ConsecutiveRunBackward(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes()}
	r := newTestRun(t, []StaffProfile{staff})
	ea := mustLookup(t, r, ShiftEA)

	for day := 2; day <= 5; day++ {
		r.grid.assignShift("a", day, ShiftEA)
	}
	require.True(t, r.eligible(&staff, 6, ea))

	r.grid.assignShift("a", 6, ShiftEA)
	require.False(t, r.eligible(&staff, 7, ea))
}

func TestEligible_ConsecutiveRunJoinsForward(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes()}
	r := newTestRun(t, []StaffProfile{staff})
	da := mustLookup(t, r, ShiftDA)

	// Days 3-7 are already committed; day 2 would join them into a run of six.
	for day := 3; day <= 7; day++ {
		r.grid.assignShift("a", day, ShiftDA)
	}
	require.False(t, r.eligible(&staff, 2, da))

	// Days 10-11 and 13-14 committed; day 12 would bridge a run of five, fine.
	for _, day := range []int{10, 11, 13, 14} {
		r.grid.assignShift("a", day, ShiftDA)
	}
	require.True(t, r.eligible(&staff, 12, da))
}

func TestEligible_RestWindowReservable(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes()}
	r := newTestRun(t, []StaffProfile{staff})
	nb := mustLookup(t, r, ShiftNB)
	nc := mustLookup(t, r, ShiftNC)

	r.grid.assignShift("a", 7, ShiftEA)

	// NB needs day 7 free for rest; NC needs days 6 and 7.
	require.False(t, r.eligible(&staff, 6, nb))
	require.False(t, r.eligible(&staff, 5, nc))
	require.True(t, r.eligible(&staff, 5, nb))

	// An existing rest day satisfies the window.
	r.grid.lockRest("a", 11)
	require.True(t, r.eligible(&staff, 10, nb))
}

func TestEligible_RestWindowTruncatesAtMonthEnd(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes()}
	r := newTestRun(t, []StaffProfile{staff})

	require.True(t, r.eligible(&staff, 28, mustLookup(t, r, ShiftNC)))
	require.True(t, r.eligible(&staff, 28, mustLookup(t, r, ShiftNB)))
}

func TestEligible_NightTurnaround(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes()}
	r := newTestRun(t, []StaffProfile{staff})

	// The light night template reserves no rest window, so only the
	// turnaround rule keeps the next day clear.
	r.grid.assignShift("a", 9, ShiftNA)
	for _, code := range allCodes() {
		require.False(t, r.eligible(&staff, 10, mustLookup(t, r, code)), code)
	}
	require.True(t, r.eligible(&staff, 11, mustLookup(t, r, ShiftEA)))
}

func TestEligible_LateToEarlyTurnaround(t *testing.T) {
	staff := StaffProfile{ID: "a", AllowedShifts: allCodes()}
	r := newTestRun(t, []StaffProfile{staff})

	r.grid.assignShift("a", 9, ShiftLA)
	require.False(t, r.eligible(&staff, 10, mustLookup(t, r, ShiftEA)))
	require.True(t, r.eligible(&staff, 10, mustLookup(t, r, ShiftDA)))
}
