package chart

import "strings"

// StepUnit is the navigation granularity used by Back/Forward.
type StepUnit int

const (
	StepDay StepUnit = iota
	StepWeek
	StepMonth
	StepYear
)

var stepUnits = [...]struct {
	name string
	days int
}{
	StepDay:   {"Day", 1},
	StepWeek:  {"Week", 7},
	StepMonth: {"Month", 30},
	StepYear:  {"Year", 365},
}

// Days returns the fixed length of the unit. Months and years are fixed
// day counts, not calendar arithmetic.
func (u StepUnit) Days() int {
	if u < 0 || int(u) >= len(stepUnits) {
		return 1
	}
	return stepUnits[u].days
}

func (u StepUnit) String() string {
	if u < 0 || int(u) >= len(stepUnits) {
		return "Day"
	}
	return stepUnits[u].name
}

// Next cycles Day -> Week -> Month -> Year -> Day.
func (u StepUnit) Next() StepUnit {
	return StepUnit((int(u) + 1) % len(stepUnits))
}

// ParseStepUnit accepts a unit name, ignoring case.
func ParseStepUnit(s string) (StepUnit, bool) {
	for i, su := range stepUnits {
		if strings.EqualFold(strings.TrimSpace(s), su.name) {
			return StepUnit(i), true
		}
	}
	return StepDay, false
}
