package schedule

import "fmt"

// DaysPerWeek is the number of days the timetable models: Monday through
// Saturday. Sundays never appear on the page.
const DaysPerWeek = 6

// Week is one timetable week: a 1-based ordinal relative to the semester
// start plus exactly six days in Monday..Saturday order.
type Week struct {
	Number int
	Days   []Day
}

// NewWeek builds a Week. Anything other than exactly six days means the
// extraction went fundamentally wrong, so construction panics rather than
// handing out a half-built week.
func NewWeek(number int, days []Day) Week {
	if len(days) != DaysPerWeek {
		panic(fmt.Sprintf("schedule: week %d built with %d days, want %d", number, len(days), DaysPerWeek))
	}
	return Week{Number: number, Days: days}
}
