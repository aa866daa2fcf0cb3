package alice

import (
	"fmt"
	"strings"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
)

// SpokenDay renders a day as the text Alice reads out loud: the date, a
// heads-up when the first class is not the first slot, the place when the
// day opens with a single lesson, then every slot in order.
func SpokenDay(day schedule.Day) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Расписание на %s.\nИ так слушайте:\n", day.Date.Format("02.01.2006"))

	if len(day.Slots) == 0 {
		b.WriteString("По моим данным в этот день нет пар.")
		return b.String()
	}

	first := day.Slots[0]
	if first.Number != 1 {
		fmt.Fprintf(&b, "Вам к паре номер %d.\n", first.Number)
	}
	if len(first.Lessons) == 1 {
		fmt.Fprintf(&b, "Место: %s.\n", first.Lessons[0].Place)
	}
	for _, slot := range day.Slots {
		fmt.Fprintf(&b, "%s.\n", slot)
	}
	return b.String()
}
