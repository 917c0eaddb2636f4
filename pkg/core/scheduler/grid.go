package scheduler

import (
	"fmt"
	"time"
)

// CellState is the lifecycle of one (staff, day) cell.
type CellState int

const (
	CellEmpty CellState = iota
	CellRest
	CellShift
)

// Cell is one assignment slot in the month grid. Once locked it never changes
// for the remainder of the run.
type Cell struct {
	State  CellState
	Shift  string // shift code, set only when State == CellShift
	Locked bool
}

// Display renders a cell the way the original roster table does: the shift
// code, the rest marker, or blank.
func (c Cell) Display() string {
	switch c.State {
	case CellShift:
		return c.Shift
	case CellRest:
		return RestMarker
	default:
		return ""
	}
}

// Grid holds one cell per roster member per calendar day of the target month.
// Day numbers are 1-based.
type Grid struct {
	Year  int
	Month time.Month
	Days  int

	staffIDs []string
	cells    map[string][]Cell

	// firstDayOffset places the Monday of the month's first ISO-style week
	// at offset zero, so weekly quotas follow Monday-start weeks.
	firstDayOffset int
}

// NewGrid builds an all-empty grid for the month.
func NewGrid(year int, month time.Month, staffIDs []string) *Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make(map[string][]Cell, len(staffIDs))
	ids := make([]string, len(staffIDs))
	copy(ids, staffIDs)
	for _, id := range ids {
		cells[id] = make([]Cell, days)
	}

	return &Grid{
		Year:           year,
		Month:          month,
		Days:           days,
		staffIDs:       ids,
		cells:          cells,
		firstDayOffset: (int(first.Weekday()) + 6) % 7,
	}
}

// StaffIDs returns the roster ids in input order.
func (g *Grid) StaffIDs() []string {
	return g.staffIDs
}

// Cell returns the cell for a staff member and day.
func (g *Grid) Cell(staffID string, day int) Cell {
	return g.cells[staffID][day-1]
}

// Row returns one staff member's cells in day order.
func (g *Grid) Row(staffID string) []Cell {
	return g.cells[staffID]
}

// WeekIndex returns the Monday-start week number of a day within the month.
func (g *Grid) WeekIndex(day int) int {
	return (day - 1 + g.firstDayOffset) / 7
}

// Weekday returns the calendar weekday of a day of the month.
func (g *Grid) Weekday(day int) time.Weekday {
	return time.Date(g.Year, g.Month, day, 0, 0, 0, 0, time.UTC).Weekday()
}

// DayType returns the day type of a day of the month.
func (g *Grid) DayType(day int) DayType {
	return DayTypeOf(g.Year, g.Month, day)
}

// assignShift commits a working assignment and locks the cell. Assigning into
// a non-empty or locked cell is a programming error: the eligibility filter
// is supposed to make that state unreachable.
func (g *Grid) assignShift(staffID string, day int, code string) {
	cell := &g.cells[staffID][day-1]
	if cell.Locked || cell.State != CellEmpty {
		panic(fmt.Sprintf("scheduler: assign into occupied cell staff=%s day=%d", staffID, day))
	}
	cell.State = CellShift
	cell.Shift = code
	cell.Locked = true
}

// lockRest commits a rest cell. Idempotent for cells that are already rest;
// overwriting a committed shift is a programming error.
func (g *Grid) lockRest(staffID string, day int) {
	cell := &g.cells[staffID][day-1]
	if cell.State == CellRest {
		cell.Locked = true
		return
	}
	if cell.State == CellShift {
		panic(fmt.Sprintf("scheduler: rest over committed shift staff=%s day=%d", staffID, day))
	}
	cell.State = CellRest
	cell.Locked = true
}
