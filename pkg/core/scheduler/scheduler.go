package scheduler

import (
	"fmt"
	"time"
)

// StaffProfile is one roster member as the engine sees them. AllowedShifts
// holds catalog codes; an empty set means the member is never assigned.
// Zero-valued caps are unlimited. Minimums are advisory workload targets
// carried through to reporting collaborators; a minimum above its cap is
// clamped down to the cap when the run starts.
type StaffProfile struct {
	ID             string
	Name           string
	AllowedShifts  []string
	RestWeekdays   []time.Weekday
	MinMonthlyDays int
	MaxMonthlyDays int
	MinWeeklyDays  int
	MaxWeeklyDays  int
}

// DayOff is a single requested day off. Dates outside the scheduled month
// are ignored, as are ids not on the roster.
type DayOff struct {
	StaffID string
	Date    time.Time
}

// SchedulingInput carries everything one run needs. Nil Coverage, Weights
// and Catalog fall back to the built-in defaults.
type SchedulingInput struct {
	Year     int
	Month    time.Month
	Roster   []StaffProfile
	DaysOff  []DayOff
	Coverage *CoverageTable
	Weights  *Weights
	Catalog  []ShiftTemplate
}

// Result is a completed run: the filled grid and the coverage report. The
// report is diagnostic only; shortages never fail a run.
type Result struct {
	Grid   *Grid
	Report *Report
}

// run is the mutable state threaded through the allocation phases.
type run struct {
	grid    *Grid
	catalog Catalog
	cov     *Coverage
	w       Weights
	roster  []StaffProfile

	allowed      map[string]map[string]bool
	role         map[string]RoleCategory
	noDaytime    map[string]bool
	performers   map[string]int
	restWeekdays map[string]map[time.Weekday]bool
	daysOff      map[string]map[int]bool

	usage *UsageTracker
}

// Schedule produces a month's roster. It is deterministic and pure: the same
// input always yields the same grid, and no state survives the call. The
// only errors are malformed inputs; an infeasible month still returns a
// grid, with the gaps spelled out in the report.
func Schedule(input SchedulingInput) (*Result, error) {
	r, err := newRun(input)
	if err != nil {
		return nil, err
	}

	r.lockRestDays()
	r.fillNights([]string{ShiftNC, ShiftNB})
	r.fillMornings([]string{ShiftEA, ShiftDA})
	r.fillBand([]string{ShiftDB})
	r.fillBand([]string{ShiftLA})
	r.fillNights([]string{ShiftNA})

	return &Result{Grid: r.grid, Report: BuildReport(r.grid, r.catalog, r.cov)}, nil
}

func newRun(input SchedulingInput) (*run, error) {
	if input.Year <= 0 {
		return nil, fmt.Errorf("scheduling input: year %d out of range", input.Year)
	}
	if input.Month < time.January || input.Month > time.December {
		return nil, fmt.Errorf("scheduling input: month %d out of range", input.Month)
	}

	seen := make(map[string]bool, len(input.Roster))
	staffIDs := make([]string, 0, len(input.Roster))
	for _, s := range input.Roster {
		if s.ID == "" {
			return nil, fmt.Errorf("scheduling input: staff %q has no id", s.Name)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("scheduling input: duplicate staff id %q", s.ID)
		}
		seen[s.ID] = true
		staffIDs = append(staffIDs, s.ID)
	}

	catalog := DefaultCatalog()
	if input.Catalog != nil {
		catalog = NewCatalog(input.Catalog)
	}
	table := DefaultCoverageTable()
	if input.Coverage != nil {
		table = *input.Coverage
	}
	weights := DefaultWeights()
	if input.Weights != nil {
		weights = *input.Weights
	}

	roster := make([]StaffProfile, len(input.Roster))
	copy(roster, input.Roster)
	for i := range roster {
		normalizeQuotas(&roster[i])
	}

	r := &run{
		grid:         NewGrid(input.Year, input.Month, staffIDs),
		catalog:      catalog,
		cov:          NewCoverage(table),
		w:            weights,
		roster:       roster,
		allowed:      make(map[string]map[string]bool, len(input.Roster)),
		role:         make(map[string]RoleCategory, len(input.Roster)),
		noDaytime:    make(map[string]bool, len(input.Roster)),
		performers:   make(map[string]int, len(catalog.Templates())),
		restWeekdays: make(map[string]map[time.Weekday]bool, len(input.Roster)),
		daysOff:      make(map[string]map[int]bool),
		usage:        NewUsageTracker(),
	}

	for _, s := range input.Roster {
		allowed := make(map[string]bool, len(s.AllowedShifts))
		hasDaytime := false
		for _, code := range s.AllowedShifts {
			t, ok := catalog.Lookup(code)
			if !ok {
				continue
			}
			allowed[code] = true
			r.performers[code]++
			if !t.IsNight() {
				hasDaytime = true
			}
		}
		r.allowed[s.ID] = allowed
		r.role[s.ID] = classifyRole(catalog, allowed)
		r.noDaytime[s.ID] = !hasDaytime

		rest := make(map[time.Weekday]bool, len(s.RestWeekdays))
		for _, wd := range s.RestWeekdays {
			rest[wd] = true
		}
		r.restWeekdays[s.ID] = rest
	}

	for _, off := range input.DaysOff {
		if !seen[off.StaffID] {
			continue
		}
		if off.Date.Year() != input.Year || off.Date.Month() != input.Month {
			continue
		}
		byDay, ok := r.daysOff[off.StaffID]
		if !ok {
			byDay = make(map[int]bool)
			r.daysOff[off.StaffID] = byDay
		}
		byDay[off.Date.Day()] = true
	}

	return r, nil
}

// normalizeQuotas clamps each advisory minimum into [0, cap] when the cap is
// set; without a cap a negative minimum still floors at zero.
func normalizeQuotas(s *StaffProfile) {
	if s.MinMonthlyDays < 0 {
		s.MinMonthlyDays = 0
	}
	if s.MinWeeklyDays < 0 {
		s.MinWeeklyDays = 0
	}
	if s.MaxMonthlyDays > 0 && s.MinMonthlyDays > s.MaxMonthlyDays {
		s.MinMonthlyDays = s.MaxMonthlyDays
	}
	if s.MaxWeeklyDays > 0 && s.MinWeeklyDays > s.MaxWeeklyDays {
		s.MinWeeklyDays = s.MaxWeeklyDays
	}
}

// lockRestDays pins every fixed weekly rest day and requested day off before
// any allocation runs, so no phase can ever see those cells as free.
func (r *run) lockRestDays() {
	for _, s := range r.roster {
		for day := 1; day <= r.grid.Days; day++ {
			if r.restWeekdays[s.ID][r.grid.Weekday(day)] || r.daysOff[s.ID][day] {
				r.grid.lockRest(s.ID, day)
			}
		}
	}
}

// fillNights works each day in calendar order, committing from the given
// night pool until the day's overnight and evening hours show no deficit or
// no candidate scores positive.
func (r *run) fillNights(pool []string) {
	for day := 1; day <= r.grid.Days; day++ {
		r.fillUntil(day, pool, r.nightDeficit)
	}
}

// fillMornings raises the headcount across the 07:00-08:59 handover window
// of each day to the morning target. Overnight carryover from the previous
// day counts toward the target. The window is filled hour by hour, and only
// templates that cover the hour being raised may commit: otherwise a
// template whose later hours score well can consume the day's remaining
// staff without ever touching the handover gap.
func (r *run) fillMornings(pool []string) {
	for day := 1; day <= r.grid.Days; day++ {
		for hour := strictEnd; hour < morningEnd; hour++ {
			covering := make([]string, 0, len(pool))
			for _, code := range pool {
				if t, ok := r.catalog.Lookup(code); ok && t.CoversHour(hour) {
					covering = append(covering, code)
				}
			}
			h := hour
			r.fillUntil(day, covering, func(d int) bool {
				return r.supplyAt(d, h) < r.w.MorningSupplyTarget
			})
		}
	}
}

// fillBand commits from a daytime pool until the hours its templates cover
// show no deficit against the coverage minimums.
func (r *run) fillBand(pool []string) {
	hours := map[int]bool{}
	for _, code := range pool {
		if t, ok := r.catalog.Lookup(code); ok {
			for h := t.Start; h < t.End && h < 24; h++ {
				hours[h] = true
			}
		}
	}
	for day := 1; day <= r.grid.Days; day++ {
		r.fillUntil(day, pool, func(d int) bool {
			dt := r.grid.DayType(d)
			for h := range hours {
				need, _ := r.cov.NeedAt(dt, h)
				if r.supplyAt(d, h) < need {
					return true
				}
			}
			return false
		})
	}
}

// fillUntil is the greedy inner loop: while the day still shows a deficit,
// commit the best-scoring eligible candidate. Every commit consumes a
// staff-day, so the loop always terminates.
func (r *run) fillUntil(day int, pool []string, deficit func(day int) bool) {
	for deficit(day) {
		staffIdx, tmpl, ok := r.pickBest(day, pool)
		if !ok {
			return
		}
		r.commit(&r.roster[staffIdx], day, tmpl)
	}
}

// pickBest scans the shift pool and the roster in fixed order and returns
// the highest-scoring eligible candidate. Ties go to the staff member with
// fewer committed working days this month, then to scan order. Candidates
// scoring zero or below are discarded.
func (r *run) pickBest(day int, pool []string) (int, ShiftTemplate, bool) {
	bestIdx, bestScore := -1, 0
	var bestTmpl ShiftTemplate
	for _, code := range pool {
		tmpl, ok := r.catalog.Lookup(code)
		if !ok {
			continue
		}
		for i := range r.roster {
			staff := &r.roster[i]
			if !r.eligible(staff, day, tmpl) {
				continue
			}
			s := r.score(staff, day, tmpl)
			if s <= 0 {
				continue
			}
			better := s > bestScore
			if s == bestScore && bestIdx >= 0 &&
				r.usage.MonthlyUsed(staff.ID) < r.usage.MonthlyUsed(r.roster[bestIdx].ID) {
				better = true
			}
			if bestIdx < 0 || better {
				bestIdx, bestScore, bestTmpl = i, s, tmpl
			}
		}
	}
	if bestIdx < 0 {
		return 0, ShiftTemplate{}, false
	}
	return bestIdx, bestTmpl, true
}

// commit writes the assignment, counts it against the member's quotas and
// reserves the template's trailing rest window, truncated at month end.
func (r *run) commit(staff *StaffProfile, day int, tmpl ShiftTemplate) {
	r.grid.assignShift(staff.ID, day, tmpl.Code)
	r.usage.Increment(staff.ID, r.grid.WeekIndex(day))
	for i := 1; i <= tmpl.RestDays; i++ {
		if d := day + i; d <= r.grid.Days {
			r.grid.lockRest(staff.ID, d)
		}
	}
}

// nightDeficit reports whether the day's evening corridor or overnight
// window is still below its pinned minimum. The overnight window belongs to
// the day it starts on, so its small hours are read from the following day.
func (r *run) nightDeficit(day int) bool {
	dt := r.grid.DayType(day)
	for h := eveningStart; h < 24; h++ {
		need, _ := r.cov.NeedAt(dt, h)
		if r.supplyAt(day, h) < need {
			return true
		}
	}
	for h := 0; h < strictEnd; h++ {
		if r.supplyAt(day+1, h) < strictNightStaff {
			return true
		}
	}
	return false
}

// supplyAt counts committed staff on duty at an hour of a day: same-day
// shifts covering the hour plus the previous day's shifts spilling past
// midnight. day may be Days+1, where only carryover can contribute.
func (r *run) supplyAt(day, hour int) int {
	return supplyOf(r.grid, r.catalog, day, hour)
}

func supplyOf(g *Grid, catalog Catalog, day, hour int) int {
	n := 0
	for _, id := range g.StaffIDs() {
		if day >= 1 && day <= g.Days {
			if c := g.Cell(id, day); c.State == CellShift {
				if t, ok := catalog.Lookup(c.Shift); ok && t.CoversHour(hour) {
					n++
				}
			}
		}
		if prev := day - 1; prev >= 1 && prev <= g.Days {
			if c := g.Cell(id, prev); c.State == CellShift {
				if t, ok := catalog.Lookup(c.Shift); ok && t.CoversHour(hour+24) {
					n++
				}
			}
		}
	}
	return n
}
