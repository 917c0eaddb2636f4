package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func generalists(n int) []StaffProfile {
	roster := make([]StaffProfile, n)
	for i := range roster {
		roster[i] = StaffProfile{ID: string(rune('a' + i)), AllowedShifts: allCodes()}
	}
	return roster
}

func TestScore_NightShiftOnEmptyDay(t *testing.T) {
	roster := generalists(4)
	r := newTestRun(t, roster)

	// NB covers ten pinned overnight hours plus the next morning's 07:00 and
	// 08:00. Each empty overnight hour is worth deficit 2 plus the pinned
	// band reward; each morning hour deficit 3 plus the shortage reward.
	// The generalist penalty applies because the staff can work daytime.
	nb := mustLookup(t, r, ShiftNB)
	assert.Equal(t, 10*52+2*33+6-40, r.score(&roster[0], 1, nb))

	// NC stops at 08:00 so it reaches one fewer morning hour, but carries a
	// higher night priority nudge.
	nc := mustLookup(t, r, ShiftNC)
	assert.Equal(t, 10*52+33+8-40, r.score(&roster[0], 1, nc))
}

func TestScore_ThirdNightIsDiscardable(t *testing.T) {
	roster := generalists(4)
	r := newTestRun(t, roster)
	nb := mustLookup(t, r, ShiftNB)

	r.grid.assignShift("a", 1, ShiftNB)
	r.grid.assignShift("b", 1, ShiftNB)

	// The overnight band is full, so only the two morning hours still pay,
	// and the generalist penalty pushes the total below zero.
	assert.Equal(t, 2*11+6-40, r.score(&roster[2], 1, nb))
	assert.LessOrEqual(t, r.score(&roster[2], 1, nb), 0)
}

func TestScore_NightSpecialistBonus(t *testing.T) {
	roster := generalists(4)
	roster[3] = StaffProfile{ID: "d", AllowedShifts: []string{ShiftNB}}
	r := newTestRun(t, roster)
	nb := mustLookup(t, r, ShiftNB)

	withDaytime := r.score(&roster[0], 1, nb)
	nightOnly := r.score(&roster[3], 1, nb)
	assert.Equal(t, WeightNightSpecialistBonus+WeightNightGeneralistPenalty, nightOnly-withDaytime)
}

func TestScore_DaytimeShift(t *testing.T) {
	roster := generalists(4)
	r := newTestRun(t, roster)
	ea := mustLookup(t, r, ShiftEA)

	// Day 2 is a plain weekday: nine covered hours, all at minimum 3.
	assert.Equal(t, 9*33, r.score(&roster[0], 2, ea))

	// Day 1 is a Sunday, where mid-day minimums drop to 2.
	assert.Equal(t, 2*33+7*22, r.score(&roster[0], 1, ea))
}

func TestScore_DayOnlyBonus(t *testing.T) {
	roster := generalists(4)
	roster[3] = StaffProfile{ID: "d", AllowedShifts: []string{ShiftEA, ShiftDA}}
	r := newTestRun(t, roster)
	ea := mustLookup(t, r, ShiftEA)

	assert.Equal(t, WeightDayOnlyBonus, r.score(&roster[3], 2, ea)-r.score(&roster[0], 2, ea))
}

func TestScore_ScarcityBonus(t *testing.T) {
	roster := generalists(4)
	roster[2].AllowedShifts = []string{ShiftEA, ShiftDA}
	roster[3].AllowedShifts = []string{ShiftEA, ShiftDA}
	r := newTestRun(t, roster)
	nb := mustLookup(t, r, ShiftNB)

	// Only two roster members can perform NB now.
	assert.Equal(t, 10*52+2*33+6-40+WeightScarcityBonus, r.score(&roster[0], 1, nb))
}

func TestScore_OversupplyPenalty(t *testing.T) {
	roster := generalists(5)
	r := newTestRun(t, roster)
	ea := mustLookup(t, r, ShiftEA)

	for _, id := range []string{"a", "b", "c", "d"} {
		r.grid.assignShift(id, 2, ShiftEA)
	}

	// A fifth early shift sits one above the soft ceiling for all nine hours.
	assert.Equal(t, -9*4, r.score(&roster[4], 2, ea))
}

func TestScore_SkipsHoursPastMonthEnd(t *testing.T) {
	roster := generalists(4)
	r := newTestRun(t, roster)
	nb := mustLookup(t, r, ShiftNB)

	// On the last day only the 21:00-23:59 hours fall inside the month.
	assert.Equal(t, 3*52+6-40, r.score(&roster[0], 28, nb))
}
