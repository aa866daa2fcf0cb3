package schedule

import (
	"reflect"
	"testing"
	"time"
)

func slotWith(number int, disciplines ...string) TimeSlot {
	slot := TimeSlot{Number: number}
	for _, d := range disciplines {
		slot.Lessons = append(slot.Lessons, Lesson{Discipline: d})
	}
	return slot
}

func TestDayTrim(t *testing.T) {
	day := Day{
		Date: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
		Slots: []TimeSlot{
			slotWith(1),
			slotWith(2),
			slotWith(3, "Математический анализ"),
			slotWith(4),
			slotWith(5, "Физика"),
			slotWith(6),
		},
	}

	day.Trim()

	want := []TimeSlot{
		slotWith(3, "Математический анализ"),
		slotWith(4),
		slotWith(5, "Физика"),
	}
	if !reflect.DeepEqual(day.Slots, want) {
		t.Errorf("Trim kept wrong slots.\nGot: %+v\nExpected: %+v", day.Slots, want)
	}
}

func TestDayTrimIdempotent(t *testing.T) {
	day := Day{
		Slots: []TimeSlot{
			slotWith(1),
			slotWith(2, "История"),
			slotWith(3),
			slotWith(4, "Философия"),
			slotWith(5),
		},
	}

	day.Trim()
	once := append([]TimeSlot(nil), day.Slots...)
	day.Trim()

	if !reflect.DeepEqual(day.Slots, once) {
		t.Errorf("Trim is not idempotent.\nAfter once: %+v\nAfter twice: %+v", once, day.Slots)
	}
}

func TestDayTrimAllEmpty(t *testing.T) {
	day := Day{Slots: []TimeSlot{slotWith(1), slotWith(2), slotWith(3)}}

	day.Trim()

	if len(day.Slots) != 0 {
		t.Errorf("expected fully empty day to trim to no slots, got %+v", day.Slots)
	}
	if !day.Empty() {
		t.Errorf("expected trimmed day to be empty")
	}
}

func TestNewWeekPanicsOnWrongDayCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected NewWeek to panic for 5 days")
		}
	}()
	NewWeek(1, make([]Day, 5))
}

func TestSlotNumberForTimes(t *testing.T) {
	if got := SlotNumberForTimes(Clock{8, 0}, Clock{9, 35}); got != 1 {
		t.Errorf("expected slot 1 for 08:00-09:35, got %d", got)
	}
	if got := SlotNumberForTimes(Clock{17, 0}, Clock{18, 35}); got != 6 {
		t.Errorf("expected slot 6 for 17:00-18:35, got %d", got)
	}
	if got := SlotNumberForTimes(Clock{8, 30}, Clock{10, 0}); got != 0 {
		t.Errorf("expected no slot for 08:30-10:00, got %d", got)
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock(" 8:00 ")
	if err != nil {
		t.Fatalf("ParseClock failed: %v", err)
	}
	if c != (Clock{8, 0}) {
		t.Errorf("expected 08:00, got %s", c)
	}

	if _, err := ParseClock("morning"); err == nil {
		t.Errorf("expected error for non-numeric clock time")
	}
}

func TestLessonForSubgroup(t *testing.T) {
	tagged := Lesson{Discipline: "Иностранный язык", Subgroups: []int{2}}
	untagged := Lesson{Discipline: "Лекция по физике"}

	if tagged.ForSubgroup(1) {
		t.Errorf("lesson tagged for subgroup 2 should not apply to subgroup 1")
	}
	if !tagged.ForSubgroup(2) {
		t.Errorf("lesson tagged for subgroup 2 should apply to subgroup 2")
	}
	if !untagged.ForSubgroup(1) {
		t.Errorf("untagged lesson should apply to every subgroup")
	}
}
