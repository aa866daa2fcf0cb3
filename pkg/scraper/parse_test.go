package scraper

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
)

func parseFixture(t *testing.T) schedule.Week {
	t.Helper()

	file, err := os.Open("testdata/rasp_530996168.html")
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer file.Close()

	week, err := ParseWeek(file, 1, nil)
	if err != nil {
		t.Fatalf("ParseWeek failed: %v", err)
	}
	return week
}

func TestParseWeekDates(t *testing.T) {
	week := parseFixture(t)

	if len(week.Days) != schedule.DaysPerWeek {
		t.Fatalf("expected %d days, got %d", schedule.DaysPerWeek, len(week.Days))
	}

	monday := time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC)
	for i, day := range week.Days {
		if want := monday.AddDate(0, 0, i); !day.Date.Equal(want) {
			t.Errorf("day %d has date %s, want %s", i, day.Date.Format("02.01.2006"), want.Format("02.01.2006"))
		}
	}
}

func TestParseWeekLessons(t *testing.T) {
	week := parseFixture(t)

	// Monday: leading window trimmed, so the day starts at slot 2.
	mon := week.Days[0]
	if len(mon.Slots) != 2 {
		t.Fatalf("expected 2 slots on Monday after trimming, got %d: %+v", len(mon.Slots), mon.Slots)
	}
	if mon.Slots[0].Number != 2 {
		t.Errorf("expected Monday to start at slot 2, got %d", mon.Slots[0].Number)
	}

	lesson := mon.Slots[0].Lessons[0]
	if lesson.Discipline != "Математический анализ" {
		t.Errorf("unexpected discipline: %q", lesson.Discipline)
	}
	if lesson.Kind != schedule.KindLecture {
		t.Errorf("expected lecture kind, got %v", lesson.Kind)
	}
	if lesson.Place != "корпус 3, ауд. 222" {
		t.Errorf("unexpected place: %q", lesson.Place)
	}
	if lesson.Teacher != "Иванов И.И." {
		t.Errorf("unexpected teacher: %q", lesson.Teacher)
	}
	if len(lesson.Subgroups) != 0 {
		t.Errorf("expected no subgroup tags, got %v", lesson.Subgroups)
	}
}

func TestParseWeekParallelSubgroups(t *testing.T) {
	week := parseFixture(t)

	tue := week.Days[1]
	if len(tue.Slots) != 1 {
		t.Fatalf("expected 1 slot on Tuesday, got %d", len(tue.Slots))
	}
	slot := tue.Slots[0]
	if len(slot.Lessons) != 2 {
		t.Fatalf("expected 2 parallel lessons, got %d", len(slot.Lessons))
	}
	if got := slot.Lessons[0].Subgroups; len(got) != 1 || got[0] != 1 {
		t.Errorf("expected first lesson tagged for subgroup 1, got %v", got)
	}
	if got := slot.Lessons[1].Subgroups; len(got) != 1 || got[0] != 2 {
		t.Errorf("expected second lesson tagged for subgroup 2, got %v", got)
	}
}

func TestParseWeekDegradedCell(t *testing.T) {
	week := parseFixture(t)

	// Row 3 prints 11:40-13:05, which matches no slot; the ordinal falls
	// back to sequential counting and must not lose the lesson.
	mon := week.Days[0]
	degraded := mon.Slots[1]
	if degraded.Number != 3 {
		t.Errorf("expected fallback slot number 3, got %d", degraded.Number)
	}
	if len(degraded.Lessons) != 1 {
		t.Fatalf("expected the malformed lesson block to survive, got %d lessons", len(degraded.Lessons))
	}

	lesson := degraded.Lessons[0]
	if lesson.Discipline != "" {
		t.Errorf("expected empty discipline for malformed block, got %q", lesson.Discipline)
	}
	if lesson.Kind != schedule.KindOther {
		t.Errorf("expected unrecognized kind marker to decode as Other, got %v", lesson.Kind)
	}
}

func TestParseWeekEmptyDays(t *testing.T) {
	week := parseFixture(t)

	for i := 3; i < schedule.DaysPerWeek; i++ {
		if len(week.Days[i].Slots) != 0 {
			t.Errorf("expected day %d to have no slots, got %+v", i, week.Days[i].Slots)
		}
	}
}

func TestParseWeekRejectsWrongShape(t *testing.T) {
	_, err := ParseWeek(strings.NewReader("<html><body><p>страница не найдена</p></body></html>"), 1, nil)
	if err == nil {
		t.Fatalf("expected shape error for a page without day headers")
	}

	var remote *RemoteServiceError
	if !errors.As(err, &remote) {
		t.Errorf("expected RemoteServiceError, got %T: %v", err, err)
	}
}
