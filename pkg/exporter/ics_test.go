package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
)

func fixtureWeek() schedule.Week {
	days := make([]schedule.Day, schedule.DaysPerWeek)
	monday := time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC)
	for i := range days {
		days[i] = schedule.Day{Date: monday.AddDate(0, 0, i)}
	}

	days[1].Slots = []schedule.TimeSlot{
		{
			Number: 2,
			Lessons: []schedule.Lesson{
				{
					Discipline: "Математический анализ",
					Teacher:    "Иванов И.И.",
					Place:      "корпус 3, ауд. 222",
					Kind:       schedule.KindLecture,
				},
				{
					Discipline: "Иностранный язык",
					Place:      "корпус 5, ауд. 101",
					Kind:       schedule.KindSeminar,
					Subgroups:  []int{2},
				},
			},
		},
	}

	return schedule.NewWeek(1, days)
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteICS(&buf, []schedule.Week{fixtureWeek()}); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Математический анализ") {
		t.Errorf("expected ICS to contain the lesson summary, got:\n%s", output)
	}
	if !strings.Contains(output, "LOCATION:корпус 3\\, ауд. 222") && !strings.Contains(output, "LOCATION:корпус 3") {
		t.Errorf("expected ICS to contain the lesson location, got:\n%s", output)
	}

	// Slot 2 starts 09:45 Samara time (UTC+4), which is 05:45 UTC on 3 Sep.
	if !strings.Contains(output, "DTSTART:20240903T054500Z") {
		t.Errorf("expected UTC start time string in ICS, got:\n%s", output)
	}
	if !strings.Contains(output, "DTEND:20240903T072000Z") {
		t.Errorf("expected UTC end time string in ICS, got:\n%s", output)
	}
}

func TestFilterSubgroup(t *testing.T) {
	week := fixtureWeek()

	filtered := FilterSubgroup(week, 1)

	slot := filtered.Days[1].Slots[0]
	if len(slot.Lessons) != 1 {
		t.Fatalf("expected the other subgroup's lesson to be removed, got %d lessons", len(slot.Lessons))
	}
	if slot.Lessons[0].Discipline != "Математический анализ" {
		t.Errorf("expected the untagged lesson to survive, got %q", slot.Lessons[0].Discipline)
	}

	// The source week must stay intact: filtering deep-copies.
	if got := len(week.Days[1].Slots[0].Lessons); got != 2 {
		t.Errorf("FilterSubgroup mutated its input week, now has %d lessons", got)
	}
}
