package scheduler

// NoMax marks an hour whose staffing has no enforced upper bound.
const NoMax = 1 << 30

// Fixed override bands. The strict-night window is pinned to exactly two
// staff, evening to a two-to-three range; daytime takes its minimum from the
// day-type table and has no hard ceiling.
const (
	morningEnd   = 9  // handover window 07:00 up to 08:59
	eveningStart = 18 // 18:00
	eveningEnd   = 21 // up to 20:59
	strictStart  = 21 // 21:00
	strictEnd    = 7  // up to 06:59 next day

	strictNightStaff = 2
	eveningMinStaff  = 2
	eveningMaxStaff  = 3
)

func isStrictNightHour(hour int) bool {
	return hour >= strictStart || hour < strictEnd
}

func isEveningHour(hour int) bool {
	return hour >= eveningStart && hour < eveningEnd
}

func isDaytimeHour(hour int) bool {
	return hour >= strictEnd && hour < eveningStart
}

// HourRange is one named sub-range of a day-type table, covering hours
// [From, To) with a minimum staffing level.
type HourRange struct {
	From int `yaml:"from" json:"from" validate:"min=0,max=23"`
	To   int `yaml:"to" json:"to" validate:"min=1,max=24"`
	Min  int `yaml:"min" json:"min" validate:"min=0"`
}

// CoverageTable holds the per-day-type sub-ranges the hourly minimums are
// expanded from. Hours no sub-range covers default to zero.
type CoverageTable struct {
	Weekday   []HourRange `yaml:"weekday" json:"weekday"`
	Wednesday []HourRange `yaml:"wednesday" json:"wednesday"`
	Weekend   []HourRange `yaml:"weekend" json:"weekend"`
}

// DefaultCoverageTable returns the facility's standard daytime minimums.
func DefaultCoverageTable() CoverageTable {
	return CoverageTable{
		Weekday: []HourRange{
			{From: 7, To: 9, Min: 3},
			{From: 9, To: 16, Min: 3},
			{From: 16, To: 18, Min: 2},
		},
		Wednesday: []HourRange{
			{From: 7, To: 9, Min: 3},
			{From: 9, To: 16, Min: 2},
			{From: 16, To: 18, Min: 2},
		},
		Weekend: []HourRange{
			{From: 7, To: 9, Min: 3},
			{From: 9, To: 16, Min: 2},
			{From: 16, To: 18, Min: 2},
		},
	}
}

// Coverage is the expanded coverage model: a 24-hour minimum per day type
// with the fixed band overrides applied on lookup.
type Coverage struct {
	mins map[DayType][24]int
}

// NewCoverage expands a coverage table into hourly minimum arrays.
func NewCoverage(table CoverageTable) *Coverage {
	expand := func(ranges []HourRange) [24]int {
		var mins [24]int
		for _, r := range ranges {
			for h := r.From; h < r.To && h < 24; h++ {
				mins[h] = r.Min
			}
		}
		return mins
	}
	return &Coverage{mins: map[DayType][24]int{
		DayTypeWeekday:   expand(table.Weekday),
		DayTypeWednesday: expand(table.Wednesday),
		DayTypeWeekend:   expand(table.Weekend),
	}}
}

// NeedAt returns the minimum and maximum staffing for an hour of a day type.
// The strict-night and evening overrides win over the table; all other hours
// are unbounded above.
func (c *Coverage) NeedAt(dt DayType, hour int) (min, max int) {
	switch {
	case isStrictNightHour(hour):
		return strictNightStaff, strictNightStaff
	case isEveningHour(hour):
		return eveningMinStaff, eveningMaxStaff
	default:
		table := c.mins[dt]
		return table[hour], NoMax
	}
}
