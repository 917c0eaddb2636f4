package scheduler

// score rates one eligible candidate. The walk visits every hour the
// template covers; hours at 24 and above evaluate against the following
// day's supply and need, and hours spilling past the month end are skipped.
// A non-positive total means the assignment helps nothing and is discarded
// by the picker.
func (r *run) score(staff *StaffProfile, day int, tmpl ShiftTemplate) int {
	total := 0
	for raw := tmpl.Start; raw < tmpl.End; raw++ {
		d := day + raw/24
		if d > r.grid.Days {
			// The trailing overnight hours of the month's last day fall in
			// the next month; nothing in this run needs them.
			break
		}
		hour := raw % 24
		need, _ := r.cov.NeedAt(DayTypeOf(r.grid.Year, r.grid.Month, d), hour)
		before := r.supplyAt(d, hour)
		after := before + 1

		deficit := need - before
		if deficit < 0 {
			deficit = 0
		}
		total += deficit

		switch {
		case isStrictNightHour(hour):
			total += r.w.StrictNight * (min(after, need) - before)
		case isEveningHour(hour):
			total += r.w.Evening * (min(after, need) - before)
		default:
			total += r.w.DaytimeShortage * deficit
			if over := after - (need + 1); over > 0 {
				total -= r.w.DaytimeOverflow * over
			}
		}
	}

	if tmpl.IsNight() {
		total += r.w.NightPriorityStep * (1 + tmpl.NightRank)
		if r.noDaytime[staff.ID] {
			total += r.w.NightSpecialistBonus
		} else {
			total -= r.w.NightGeneralistPenalty
		}
	} else if r.role[staff.ID] == RoleDayOnly {
		total += r.w.DayOnlyBonus
	}

	if r.performers[tmpl.Code] <= r.w.ScarcityThreshold {
		total += r.w.ScarcityBonus
	}

	return total
}
