package schedule

import (
	"strings"
	"testing"
	"time"
)

func renderFixtureWeek() Week {
	days := make([]Day, DaysPerWeek)
	monday := time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC)
	for i := range days {
		days[i] = Day{Date: monday.AddDate(0, 0, i)}
	}
	days[0].Slots = []TimeSlot{slotWith(2, "Математический анализ")}
	return NewWeek(1, days)
}

func TestRenderWeek(t *testing.T) {
	output := RenderWeek(renderFixtureWeek())

	if !strings.Contains(output, "Понедельник 02.09") {
		t.Errorf("expected capitalized weekday header, got:\n%s", output)
	}
	if !strings.Contains(output, "08:00-09:35") {
		t.Errorf("expected the slot time column, got:\n%s", output)
	}
	if !strings.Contains(output, "Математический анализ") {
		t.Errorf("expected the lesson to appear in the grid, got:\n%s", output)
	}
}

func TestRenderDay(t *testing.T) {
	day := Day{
		Date:  time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC),
		Slots: []TimeSlot{slotWith(2, "Физика")},
	}

	output := RenderDay(day)

	if !strings.Contains(output, "02.09.2024") {
		t.Errorf("expected the date header, got:\n%s", output)
	}
	if !strings.Contains(output, "№2 - Физика") {
		t.Errorf("expected the slot line, got:\n%s", output)
	}
}
