package scheduler

// reportBands are the fixed sub-ranges the per-day shortage breakdown uses,
// matching the bands on the facility's printed coverage sheet. Each covers
// hours [from, to) of the calendar day.
var reportBands = []struct {
	label    string
	from, to int
}{
	{"7-9", 7, 9},
	{"9-15", 9, 16},
	{"16-18", 16, 18},
	{"18-21", 18, 21},
	{"21-24", 21, 24},
	{"0-7", 0, 7},
}

// BandShortage is the staff-hours missing in one band of one day.
type BandShortage struct {
	Band  string `json:"band"`
	Hours int    `json:"hours"`
}

// DayReport is the shortage breakdown for one calendar day.
type DayReport struct {
	Day   int            `json:"day"`
	Bands []BandShortage `json:"bands"`
}

// Report is the post-allocation coverage check. It is diagnostic only: a
// run with violations still returns its grid, and nothing here feeds back
// into allocation.
type Report struct {
	Days []DayReport `json:"days"`

	// DaytimeShortage and DaytimeOversupply total the month's daytime
	// staff-hours below the table minimum and above the soft ceiling of
	// minimum plus one.
	DaytimeShortage   int `json:"daytimeShortage"`
	DaytimeOversupply int `json:"daytimeOversupply"`

	// StrictNightViolations counts days whose overnight window strays from
	// its pinned headcount; EveningViolations counts days whose evening
	// corridor leaves its allowed range.
	StrictNightViolations int `json:"strictNightViolations"`
	EveningViolations     int `json:"eveningViolations"`
}

// NightBandViolations returns the combined night and evening violation count.
func (r *Report) NightBandViolations() int {
	return r.StrictNightViolations + r.EveningViolations
}

// BuildReport validates a filled grid against the coverage model. The
// overnight window of a day runs from 21:00 to 07:00 the next morning and is
// attributed to the day it starts on; the window of the month's last day is
// still checked even though its small hours fall in the next month. Hours
// before 07:00 on day one are skipped everywhere, since the previous month's
// carryover is unknowable.
func BuildReport(g *Grid, catalog Catalog, cov *Coverage) *Report {
	rep := &Report{Days: make([]DayReport, 0, g.Days)}

	for day := 1; day <= g.Days; day++ {
		dt := g.DayType(day)

		violated := false
		for h := strictStart; h < 24; h++ {
			if supplyOf(g, catalog, day, h) != strictNightStaff {
				violated = true
				break
			}
		}
		if !violated {
			for h := 0; h < strictEnd; h++ {
				if supplyOf(g, catalog, day+1, h) != strictNightStaff {
					violated = true
					break
				}
			}
		}
		if violated {
			rep.StrictNightViolations++
		}

		for h := eveningStart; h < eveningEnd; h++ {
			s := supplyOf(g, catalog, day, h)
			if s < eveningMinStaff || s > eveningMaxStaff {
				rep.EveningViolations++
				break
			}
		}

		for h := strictEnd; h < eveningStart; h++ {
			need, _ := cov.NeedAt(dt, h)
			s := supplyOf(g, catalog, day, h)
			if s < need {
				rep.DaytimeShortage += need - s
			} else if over := s - (need + 1); over > 0 {
				rep.DaytimeOversupply += over
			}
		}

		dr := DayReport{Day: day, Bands: make([]BandShortage, 0, len(reportBands))}
		for _, band := range reportBands {
			short := 0
			for h := band.from; h < band.to; h++ {
				if day == 1 && h < strictEnd {
					continue
				}
				need, _ := cov.NeedAt(dt, h)
				if s := supplyOf(g, catalog, day, h); s < need {
					short += need - s
				}
			}
			dr.Bands = append(dr.Bands, BandShortage{Band: band.label, Hours: short})
		}
		rep.Days = append(rep.Days, dr)
	}

	return rep
}
