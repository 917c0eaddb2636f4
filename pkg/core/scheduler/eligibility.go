package scheduler

// eligible applies the hard feasibility checks for assigning a template to a
// staff member on a day. Checks run cheapest first; any failure rejects the
// candidate outright. Soft preferences belong to the scorer, never here.
func (r *run) eligible(staff *StaffProfile, day int, tmpl ShiftTemplate) bool {
	if r.grid.Cell(staff.ID, day).State != CellEmpty {
		return false
	}

	// Fixed weekly rest days and requested days off are locked as rest
	// before any phase runs, so the cell check above already covers them.
	// Kept explicit so the rule survives even if the lock pass changes.
	if r.restWeekdays[staff.ID][r.grid.Weekday(day)] {
		return false
	}
	if r.daysOff[staff.ID][day] {
		return false
	}

	if !r.allowed[staff.ID][tmpl.Code] {
		return false
	}

	if staff.MaxMonthlyDays > 0 && r.usage.MonthlyUsed(staff.ID) >= staff.MaxMonthlyDays {
		return false
	}
	if staff.MaxWeeklyDays > 0 && r.usage.WeeklyUsed(staff.ID, r.grid.WeekIndex(day)) >= staff.MaxWeeklyDays {
		return false
	}

	if r.streakWith(staff.ID, day) > r.w.MaxConsecutiveDays {
		return false
	}

	// A night template with a trailing rest window needs those days to still
	// be reservable. Rest cells are fine (reservation is idempotent); a
	// committed shift is not. The window truncates at month end.
	for i := 1; i <= tmpl.RestDays; i++ {
		d := day + i
		if d > r.grid.Days {
			break
		}
		if r.grid.Cell(staff.ID, d).State == CellShift {
			return false
		}
	}

	// Turnaround: a night shift occupies the early hours of the following
	// day, so nothing may follow it directly. A late shift leaves too short
	// a gap before the next early shift.
	if day > 1 {
		prev := r.grid.Cell(staff.ID, day-1)
		if prev.State == CellShift {
			if pt, ok := r.catalog.Lookup(prev.Shift); ok && pt.IsNight() {
				return false
			}
			if prev.Shift == ShiftLA && tmpl.Code == ShiftEA {
				return false
			}
		}
	}

	return true
}

// streakWith returns the length of the consecutive working run that would
// exist if day were committed, counting committed shifts on both sides.
// Later phases can fill a gap between runs committed by earlier phases, so
// a backward-only scan would miss the joined run.
func (r *run) streakWith(staffID string, day int) int {
	streak := 1
	for d := day - 1; d >= 1 && r.grid.Cell(staffID, d).State == CellShift; d-- {
		streak++
	}
	for d := day + 1; d <= r.grid.Days && r.grid.Cell(staffID, d).State == CellShift; d++ {
		streak++
	}
	return streak
}
