package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time of day without a date attached.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On combines the clock time with a calendar date in the given location.
func (c Clock) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, loc)
}

// ParseClock parses strings like "8:00" or " 13:30 " as printed on the
// timetable page.
func ParseClock(s string) (Clock, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("malformed clock time %q", s)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Clock{}, fmt.Errorf("malformed clock time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Clock{}, fmt.Errorf("malformed clock time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("clock time %q out of range", s)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// SlotInterval holds the institution-wide start and end times of one slot.
type SlotInterval struct {
	Start Clock
	End   Clock
}

// SlotCount is the number of daily class periods.
const SlotCount = 6

// SlotTimes is the fixed institution-wide slot time table. It is a static
// lookup and is never derived from the fetched document.
var SlotTimes = map[int]SlotInterval{
	1: {Clock{8, 0}, Clock{9, 35}},
	2: {Clock{9, 45}, Clock{11, 20}},
	3: {Clock{11, 30}, Clock{13, 5}},
	4: {Clock{13, 30}, Clock{15, 5}},
	5: {Clock{15, 15}, Clock{16, 50}},
	6: {Clock{17, 0}, Clock{18, 35}},
}

// SlotNumberForTimes reverse-looks-up a slot ordinal by its printed start and
// end times. Returns 0 when no slot matches exactly.
func SlotNumberForTimes(start, end Clock) int {
	for number := 1; number <= SlotCount; number++ {
		if SlotTimes[number] == (SlotInterval{start, end}) {
			return number
		}
	}
	return 0
}

// TimeSlot is one ordinal slot of a day together with every lesson occurring
// in it. Several lessons in one slot are parallel sections or subgroups.
// A slot with no lessons is a window.
type TimeSlot struct {
	Number  int
	Lessons []Lesson
}

// Empty reports whether the slot is a window.
func (s TimeSlot) Empty() bool {
	return len(s.Lessons) == 0
}

func (s TimeSlot) String() string {
	if s.Empty() {
		return ""
	}
	names := make([]string, len(s.Lessons))
	for i, l := range s.Lessons {
		names[i] = l.Discipline
	}
	return fmt.Sprintf("№%d - %s", s.Number, strings.Join(names, " | "))
}
