package scheduler

// Built-in scoring weights and allocation limits. A run can override these
// through SchedulingInput.Weights; config files feed overrides in the same
// way.
const (
	// WeightStrictNight is the per-hour swing for the fixed 21:00-07:00
	// staffing band. It dominates every other term so candidates that push
	// the band off its pinned headcount never win.
	WeightStrictNight = 50

	// WeightEvening is the per-hour swing for the 18:00-21:00 corridor
	// between its lower and upper bounds.
	WeightEvening = 25

	// WeightDaytimeShortage rewards each daytime staff-hour that closes a
	// gap below the coverage table minimum.
	WeightDaytimeShortage = 10

	// WeightDaytimeOverflow penalizes each daytime staff-hour stacked above
	// the soft ceiling of minimum plus one.
	WeightDaytimeOverflow = 4

	// WeightNightSpecialistBonus favors staff with no daytime template in
	// their repertoire when a night shift is on offer.
	WeightNightSpecialistBonus = 80

	// WeightNightGeneralistPenalty discourages burning daytime-capable staff
	// on nights while specialists remain available.
	WeightNightGeneralistPenalty = 40

	// WeightScarcityBonus favors shifts that only a handful of the roster
	// can perform at all.
	WeightScarcityBonus = 50

	// WeightDayOnlyBonus favors daytime templates for staff who can work no
	// night shift.
	WeightDayOnlyBonus = 50

	// NightPriorityStep scales the small per-template nudge that orders the
	// night variants among themselves.
	NightPriorityStep = 2

	// ScarcityThreshold is the roster headcount at or below which a shift
	// counts as scarce.
	ScarcityThreshold = 3

	// MorningSupplyTarget is the simultaneous headcount at 07:00 and 08:00
	// that the morning pass fills toward each day.
	MorningSupplyTarget = 3

	// MaxConsecutiveDays caps any run of working days.
	MaxConsecutiveDays = 5
)

// Weights carries the tunable parameters for one scheduling run.
type Weights struct {
	StrictNight            int `yaml:"strictNight"`
	Evening                int `yaml:"evening"`
	DaytimeShortage        int `yaml:"daytimeShortage"`
	DaytimeOverflow        int `yaml:"daytimeOverflow"`
	NightSpecialistBonus   int `yaml:"nightSpecialistBonus"`
	NightGeneralistPenalty int `yaml:"nightGeneralistPenalty"`
	ScarcityBonus          int `yaml:"scarcityBonus"`
	DayOnlyBonus           int `yaml:"dayOnlyBonus"`
	NightPriorityStep      int `yaml:"nightPriorityStep"`
	ScarcityThreshold      int `yaml:"scarcityThreshold"`
	MorningSupplyTarget    int `yaml:"morningSupplyTarget"`
	MaxConsecutiveDays     int `yaml:"maxConsecutiveDays"`
}

// DefaultWeights returns the built-in parameter set.
func DefaultWeights() Weights {
	return Weights{
		StrictNight:            WeightStrictNight,
		Evening:                WeightEvening,
		DaytimeShortage:        WeightDaytimeShortage,
		DaytimeOverflow:        WeightDaytimeOverflow,
		NightSpecialistBonus:   WeightNightSpecialistBonus,
		NightGeneralistPenalty: WeightNightGeneralistPenalty,
		ScarcityBonus:          WeightScarcityBonus,
		DayOnlyBonus:           WeightDayOnlyBonus,
		NightPriorityStep:      NightPriorityStep,
		ScarcityThreshold:      ScarcityThreshold,
		MorningSupplyTarget:    MorningSupplyTarget,
		MaxConsecutiveDays:     MaxConsecutiveDays,
	}
}
