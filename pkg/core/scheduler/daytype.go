package scheduler

import "time"

// DayType drives the hourly minimum staffing table. Wednesday carries its own
// profile (the facility's clinic day); Saturday and Sunday share the weekend
// profile.
type DayType int

const (
	DayTypeWeekday DayType = iota
	DayTypeWednesday
	DayTypeWeekend
)

func (d DayType) String() string {
	switch d {
	case DayTypeWednesday:
		return "weekday-wednesday"
	case DayTypeWeekend:
		return "weekend"
	default:
		return "weekday-normal"
	}
}

// DayTypeOf classifies a calendar date purely by its weekday.
func DayTypeOf(year int, month time.Month, day int) DayType {
	switch time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday() {
	case time.Wednesday:
		return DayTypeWednesday
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	default:
		return DayTypeWeekday
	}
}
