package schedule

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var weekdayNames = []string{"понедельник", "вторник", "среда", "четверг", "пятница", "суббота", "воскресенье"}

var ruTitle = cases.Title(language.Russian)

// WeekdayName returns the lowercase Russian weekday name for a Monday-based
// index (Mon=0 .. Sun=6).
func WeekdayName(index int) string {
	return weekdayNames[index]
}

// RenderDay renders one day as a bordered single-column table, slot by slot.
func RenderDay(d Day) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(d.Date.Format("02.01.2006"))
	for _, slot := range d.Slots {
		t.Row(slot.String())
	}
	return t.Render()
}

func (d Day) String() string {
	return RenderDay(d)
}

// RenderWeek renders the full Monday..Saturday grid with the static slot
// times in the leading column.
func RenderWeek(w Week) string {
	headers := make([]string, 0, DaysPerWeek+1)
	headers = append(headers, "Время")
	for i, day := range w.Days {
		headers = append(headers, fmt.Sprintf("%s %s", ruTitle.String(WeekdayName(i)), day.Date.Format("02.01")))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for number := 1; number <= SlotCount; number++ {
		interval := SlotTimes[number]
		row := make([]string, 0, DaysPerWeek+1)
		row = append(row, fmt.Sprintf("%s-%s", interval.Start, interval.End))
		for _, day := range w.Days {
			cell := ""
			for _, slot := range day.Slots {
				if slot.Number == number {
					cell = slot.String()
					break
				}
			}
			row = append(row, cell)
		}
		t.Row(row...)
	}

	return t.Render()
}
