package schedule

import "time"

// Day is a calendar date with its ordered time slots. A Day with no slots
// at all means no classes (Sunday, or a fully empty fetched day).
type Day struct {
	Date  time.Time
	Slots []TimeSlot
}

// Empty reports whether the day has no lessons at all.
func (d Day) Empty() bool {
	for _, slot := range d.Slots {
		if !slot.Empty() {
			return false
		}
	}
	return true
}

// Trim removes leading and trailing windows, keeping interior ones so gaps
// between real lessons stay visible. Trimming twice is a no-op.
func (d *Day) Trim() {
	first := -1
	last := -1
	for i, slot := range d.Slots {
		if !slot.Empty() {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		d.Slots = nil
		return
	}
	d.Slots = d.Slots[first : last+1]
}
