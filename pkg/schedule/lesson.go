package schedule

// Kind classifies a lesson. The numeric values match the styling markers
// used on the timetable page (lesson-type-N__color), which is why 7 is absent.
type Kind int

const (
	KindUnknown      Kind = 0
	KindLecture      Kind = 1
	KindLab          Kind = 2
	KindSeminar      Kind = 3
	KindOther        Kind = 4
	KindExam         Kind = 5
	KindConsultation Kind = 6
	KindCreditTest   Kind = 8
)

// KnownKinds lists every kind that has a styling marker on the timetable page,
// in marker order.
var KnownKinds = []Kind{
	KindLecture,
	KindLab,
	KindSeminar,
	KindOther,
	KindExam,
	KindConsultation,
	KindCreditTest,
}

var kindNames = map[Kind]string{
	KindLecture:      "Лекция",
	KindLab:          "Лабораторная",
	KindSeminar:      "Практика",
	KindOther:        "Другое",
	KindExam:         "Экзамен",
	KindConsultation: "Консультация",
	KindCreditTest:   "Зачёт",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindOther]
}

// Lesson is a single class occurrence within one time slot.
// Teacher, Place and Subgroups are optional: older timetable variants carry
// no subgroup tags at all, and an untagged lesson applies to the whole group.
type Lesson struct {
	Discipline string
	Teacher    string
	Place      string
	Kind       Kind
	Subgroups  []int
}

// ForSubgroup reports whether the lesson applies to the given subgroup.
// Lessons without subgroup tags apply to everyone.
func (l Lesson) ForSubgroup(subgroup int) bool {
	if len(l.Subgroups) == 0 {
		return true
	}
	for _, s := range l.Subgroups {
		if s == subgroup {
			return true
		}
	}
	return false
}
