// Package semester maps calendar dates to timetable week ordinals.
//
// The university numbers its timetable weeks from the start of the current
// semester, but the schedule page itself never says when that was. The
// heuristic here mirrors the academic calendar: the autumn semester starts
// on September 1, the spring one on the first Monday of February.
package semester

import "time"

// Start derives the semester start for the given date.
// September..December belong to the autumn semester of the same year,
// January still belongs to the autumn semester started the previous year,
// and February..August belong to the spring semester, which by convention
// begins on the first Monday on or after February 1.
func Start(date time.Time) time.Time {
	switch {
	case date.Month() >= time.September:
		return time.Date(date.Year(), time.September, 1, 0, 0, 0, 0, time.UTC)
	case date.Month() == time.January:
		return time.Date(date.Year()-1, time.September, 1, 0, 0, 0, 0, time.UTC)
	default:
		feb := time.Date(date.Year(), time.February, 1, 0, 0, 0, 0, time.UTC)
		return nextMonday(feb)
	}
}

// FirstLearningMonday returns the Monday week 1 begins on: the semester
// start itself if it is a Monday, otherwise the next Monday after it.
func FirstLearningMonday(start time.Time) time.Time {
	return nextMonday(start)
}

// WeekNumber computes the timetable week ordinal for a date, deriving the
// semester start heuristically.
func WeekNumber(date time.Time) int {
	return WeekNumberFrom(date, Start(date))
}

// WeekNumberFrom computes the timetable week ordinal for a date relative to
// an explicit semester start. Week 1 begins on the first learning Monday;
// the arithmetic is exact whole-day floor division.
func WeekNumberFrom(date, start time.Time) int {
	days := daysBetween(FirstLearningMonday(start), date)
	weeks := days / 7
	if days < 0 && days%7 != 0 {
		weeks--
	}
	return weeks + 1
}

// nextMonday returns date itself when it already is a Monday.
func nextMonday(date time.Time) time.Time {
	if date.Weekday() == time.Monday {
		return date
	}
	offset := (7 - mondayIndex(date)) % 7
	return date.AddDate(0, 0, offset)
}

// mondayIndex converts time.Weekday (Sunday=0) to a Monday-based index.
func mondayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// daysBetween counts whole calendar days from a to b, ignoring any
// time-of-day or zone component on either value.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
