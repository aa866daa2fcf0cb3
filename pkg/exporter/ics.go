package exporter

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
)

// WriteICS serializes the given weeks into an ICS calendar and writes it to
// the provided writer. Event times come from the static slot time table
// combined with each day's date; slots with an unresolved ordinal carry no
// wall-clock bounds and are skipped.
func WriteICS(w io.Writer, weeks []schedule.Week) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	// The university lives in Samara time (UTC+4, no DST)
	loc, err := time.LoadLocation("Europe/Samara")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	for _, week := range weeks {
		for _, day := range week.Days {
			for _, slot := range day.Slots {
				interval, ok := schedule.SlotTimes[slot.Number]
				if !ok {
					continue
				}
				start := interval.Start.On(day.Date, loc)
				end := interval.End.On(day.Date, loc)

				for i, lesson := range slot.Lessons {
					event := cal.AddEvent(fmt.Sprintf("%s-%d-%d", start.Format("20060102T150405Z"), slot.Number, i))
					event.SetCreatedTime(time.Now())
					event.SetDtStampTime(time.Now())
					event.SetModifiedAt(time.Now())
					event.SetStartAt(start)
					event.SetEndAt(end)
					event.SetSummary(lesson.Discipline)
					if lesson.Place != "" {
						event.SetLocation(lesson.Place)
					}

					description := lesson.Kind.String()
					if lesson.Teacher != "" {
						description += fmt.Sprintf("\nПреподаватель: %s", lesson.Teacher)
					}
					event.SetDescription(description)
				}
			}
		}
	}

	return cal.SerializeTo(w)
}

// FilterSubgroup returns a deep copy of the week with every lesson tagged
// for a different subgroup removed. Untagged lessons are always kept.
func FilterSubgroup(week schedule.Week, subgroup int) schedule.Week {
	days := make([]schedule.Day, len(week.Days))
	for i, day := range week.Days {
		copied := schedule.Day{Date: day.Date, Slots: make([]schedule.TimeSlot, len(day.Slots))}
		for j, slot := range day.Slots {
			kept := make([]schedule.Lesson, 0, len(slot.Lessons))
			for _, lesson := range slot.Lessons {
				if lesson.ForSubgroup(subgroup) {
					kept = append(kept, lesson)
				}
			}
			copied.Slots[j] = schedule.TimeSlot{Number: slot.Number, Lessons: kept}
		}
		days[i] = copied
	}
	return schedule.NewWeek(week.Number, days)
}
