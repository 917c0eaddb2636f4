package scheduler

// Shift codes used throughout the engine. The display names are the ones the
// facility uses on its printed rosters.
const (
	ShiftEA = "EA" // 早番
	ShiftDA = "DA" // 日勤A
	ShiftDB = "DB" // 日勤B
	ShiftLA = "LA" // 遅番
	ShiftNA = "NA" // 夜勤A
	ShiftNB = "NB" // 夜勤B
	ShiftNC = "NC" // 夜勤C
)

// RestMarker is the value renderers should show for a rest cell.
const RestMarker = "休み"

// ShiftTemplate describes one named shift. End may exceed 24; hours at 24 and
// above fall on the following calendar day.
type ShiftTemplate struct {
	Code        string
	DisplayName string
	Start       int
	End         int

	// RestDays is the mandatory trailing rest window reserved when this
	// shift is committed. Zero for everything except NB and NC.
	RestDays int

	// NightRank orders the night templates from lightest (1) to heaviest
	// priority (3). Zero marks a daytime template.
	NightRank int
}

// IsNight reports whether the template is one of the overnight shifts.
func (t ShiftTemplate) IsNight() bool {
	return t.NightRank > 0
}

// CoversHour reports whether the template covers the given raw hour, where
// hours 24..End-1 denote the following day.
func (t ShiftTemplate) CoversHour(raw int) bool {
	return raw >= t.Start && raw < t.End
}

// Hours returns the raw hours the template covers, in ascending order.
func (t ShiftTemplate) Hours() []int {
	hours := make([]int, 0, t.End-t.Start)
	for h := t.Start; h < t.End; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Catalog is the immutable set of shift templates for a scheduling run.
type Catalog struct {
	templates []ShiftTemplate
	byCode    map[string]ShiftTemplate
}

// NewCatalog builds a catalog from the given templates, preserving order.
func NewCatalog(templates []ShiftTemplate) Catalog {
	byCode := make(map[string]ShiftTemplate, len(templates))
	for _, t := range templates {
		byCode[t.Code] = t
	}
	return Catalog{templates: templates, byCode: byCode}
}

// DefaultCatalog returns the facility's seven standard templates.
func DefaultCatalog() Catalog {
	return NewCatalog([]ShiftTemplate{
		{Code: ShiftEA, DisplayName: "早番", Start: 7, End: 16},
		{Code: ShiftDA, DisplayName: "日勤A", Start: 8, End: 17},
		{Code: ShiftDB, DisplayName: "日勤B", Start: 9, End: 18},
		{Code: ShiftLA, DisplayName: "遅番", Start: 12, End: 21},
		{Code: ShiftNA, DisplayName: "夜勤A", Start: 21, End: 31, NightRank: 1},
		{Code: ShiftNB, DisplayName: "夜勤B", Start: 21, End: 33, RestDays: 1, NightRank: 2},
		{Code: ShiftNC, DisplayName: "夜勤C", Start: 21, End: 32, RestDays: 2, NightRank: 3},
	})
}

// Lookup returns the template for a code.
func (c Catalog) Lookup(code string) (ShiftTemplate, bool) {
	t, ok := c.byCode[code]
	return t, ok
}

// Templates returns all templates in catalog order.
func (c Catalog) Templates() []ShiftTemplate {
	return c.templates
}

// RoleCategory classifies a staff member by their allowed-shift set. It is
// computed once per run and only ever biases scoring; it never decides
// eligibility.
type RoleCategory int

const (
	RoleDayOnly RoleCategory = iota
	RoleNightCapable
	RoleNightExclusive
)

func (r RoleCategory) String() string {
	switch r {
	case RoleNightExclusive:
		return "night-exclusive"
	case RoleNightCapable:
		return "night-capable"
	default:
		return "day-only"
	}
}

// classifyRole derives the role category from the usable template set.
func classifyRole(cat Catalog, allowed map[string]bool) RoleCategory {
	var nights, days, heavyNights int
	for code := range allowed {
		t, ok := cat.Lookup(code)
		if !ok {
			continue
		}
		if t.IsNight() {
			nights++
			if code == ShiftNB || code == ShiftNC {
				heavyNights++
			}
		} else {
			days++
		}
	}
	switch {
	case nights > 0 && days == 0 && nights == heavyNights:
		return RoleNightExclusive
	case nights > 0:
		return RoleNightCapable
	default:
		return RoleDayOnly
	}
}
