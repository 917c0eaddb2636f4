package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid_MonthLength(t *testing.T) {
	g := NewGrid(2026, time.February, []string{"a"})
	assert.Equal(t, 28, g.Days)

	g = NewGrid(2025, time.December, []string{"a"})
	assert.Equal(t, 31, g.Days)

	g = NewGrid(2028, time.February, []string{"a"})
	assert.Equal(t, 29, g.Days)
}

func TestGrid_WeekIndexMondayStart(t *testing.T) {
	// February 2026: day 1 is a Sunday, so day 2 opens the second week.
	g := NewGrid(2026, time.February, []string{"a"})
	assert.Equal(t, 0, g.WeekIndex(1))
	assert.Equal(t, 1, g.WeekIndex(2))
	assert.Equal(t, 1, g.WeekIndex(8))
	assert.Equal(t, 2, g.WeekIndex(9))

	// December 2025: day 1 is a Monday.
	g = NewGrid(2025, time.December, []string{"a"})
	assert.Equal(t, 0, g.WeekIndex(1))
	assert.Equal(t, 0, g.WeekIndex(7))
	assert.Equal(t, 1, g.WeekIndex(8))
}

func TestGrid_AssignShift(t *testing.T) {
	g := NewGrid(2026, time.February, []string{"a", "b"})

	g.assignShift("a", 3, ShiftNB)

	cell := g.Cell("a", 3)
	assert.Equal(t, CellShift, cell.State)
	assert.Equal(t, ShiftNB, cell.Shift)
	assert.True(t, cell.Locked)

	assert.Equal(t, CellEmpty, g.Cell("b", 3).State)

	assert.Panics(t, func() { g.assignShift("a", 3, ShiftEA) })
}

func TestGrid_LockRest(t *testing.T) {
	g := NewGrid(2026, time.February, []string{"a"})

	g.lockRest("a", 5)
	assert.Equal(t, CellRest, g.Cell("a", 5).State)
	assert.True(t, g.Cell("a", 5).Locked)

	// Reserving the same day twice is a no-op.
	assert.NotPanics(t, func() { g.lockRest("a", 5) })

	g.assignShift("a", 6, ShiftEA)
	assert.Panics(t, func() { g.lockRest("a", 6) })
}

func TestGrid_AssignIntoRestPanics(t *testing.T) {
	g := NewGrid(2026, time.February, []string{"a"})
	g.lockRest("a", 5)
	assert.Panics(t, func() { g.assignShift("a", 5, ShiftEA) })
}

func TestCell_Display(t *testing.T) {
	assert.Equal(t, "", Cell{}.Display())
	assert.Equal(t, RestMarker, Cell{State: CellRest}.Display())
	assert.Equal(t, ShiftLA, Cell{State: CellShift, Shift: ShiftLA}.Display())
}

func TestUsageTracker_Counts(t *testing.T) {
	u := NewUsageTracker()
	assert.Equal(t, 0, u.MonthlyUsed("a"))
	assert.Equal(t, 0, u.WeeklyUsed("a", 0))

	u.Increment("a", 0)
	u.Increment("a", 0)
	u.Increment("a", 1)
	u.Increment("b", 0)

	assert.Equal(t, 3, u.MonthlyUsed("a"))
	assert.Equal(t, 2, u.WeeklyUsed("a", 0))
	assert.Equal(t, 1, u.WeeklyUsed("a", 1))
	assert.Equal(t, 1, u.MonthlyUsed("b"))
	assert.Equal(t, 0, u.WeeklyUsed("b", 1))
}
