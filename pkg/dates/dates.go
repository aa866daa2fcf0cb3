// Package dates resolves free-text Russian date phrases ("завтра",
// "в следующий вторник", "через 2 недели") to concrete calendar dates.
//
// Resolution is a fixed ordered list of matchers; the first one that
// recognizes the phrase wins. A fuzzy weekday lookup runs last so that
// misheard weekday names from the voice surface still resolve.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// UnresolvedPhraseError is returned when no matcher recognizes the phrase.
type UnresolvedPhraseError struct {
	Phrase string
}

func (e *UnresolvedPhraseError) Error() string {
	return fmt.Sprintf("dates: cannot resolve a date from %q", e.Phrase)
}

// Weekdays are the Russian weekday names in Monday-based order.
var Weekdays = []string{"понедельник", "вторник", "среда", "четверг", "пятница", "суббота", "воскресенье"}

// fuzzyThreshold is the minimum 0..100 similarity score for the fallback
// weekday match to be accepted.
const fuzzyThreshold = 70

var monthNames = map[string]time.Month{
	"января":   time.January,
	"февраля":  time.February,
	"марта":    time.March,
	"апреля":   time.April,
	"мая":      time.May,
	"июня":     time.June,
	"июля":     time.July,
	"августа":  time.August,
	"сентября": time.September,
	"октября":  time.October,
	"ноября":   time.November,
	"декабря":  time.December,
}

// literalOffsets is checked in order: "послезавтра" has to be tried before
// "завтра", which it contains as a substring.
var literalOffsets = []struct {
	word string
	days int
}{
	{"послезавтра", 2},
	{"сегодня", 0},
	{"завтра", 1},
	{"вчера", -1},
}

type matcher func(phrase string, ref time.Time) (time.Time, bool)

// matchers is the resolution order: literal keywords, weekday names,
// explicit day-of-month, relative offsets, then the fuzzy weekday fallback.
var matchers = []matcher{
	matchLiteral,
	matchWeekday,
	matchDayOfMonth,
	matchRelative,
	matchFuzzyWeekday,
}

// Resolve maps a phrase to a concrete date relative to the reference date.
// The time-of-day and location of ref are preserved on the result.
func Resolve(phrase string, ref time.Time) (time.Time, error) {
	phrase = strings.ToLower(phrase)
	for _, match := range matchers {
		if date, ok := match(phrase, ref); ok {
			return date, nil
		}
	}
	return time.Time{}, &UnresolvedPhraseError{Phrase: phrase}
}

func matchLiteral(phrase string, ref time.Time) (time.Time, bool) {
	for _, lit := range literalOffsets {
		if strings.Contains(phrase, lit.word) {
			return ref.AddDate(0, 0, lit.days), true
		}
	}
	return time.Time{}, false
}

func matchWeekday(phrase string, ref time.Time) (time.Time, bool) {
	nextWeek := strings.Contains(phrase, "следующ")
	for target, name := range Weekdays {
		if !strings.Contains(phrase, name) {
			continue
		}
		delta := (target - mondayIndex(ref) + 7) % 7
		// A bare repeat of today's weekday means next week's occurrence,
		// never today.
		if nextWeek || delta == 0 {
			delta += 7
		}
		return ref.AddDate(0, 0, delta), true
	}
	return time.Time{}, false
}

var dayOfMonthRe = regexp.MustCompile(`(\d{1,2})\s*(число|января|февраля|марта|апреля|мая|июня|июля|августа|сентября|октября|ноября|декабря)`)

func matchDayOfMonth(phrase string, ref time.Time) (time.Time, bool) {
	m := dayOfMonthRe.FindStringSubmatch(phrase)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])

	month := ref.Month()
	if named, ok := monthNames[m[2]]; ok {
		month = named
	}

	// A date already behind the reference rolls into the next year.
	year := ref.Year()
	if month < ref.Month() || (month == ref.Month() && day < ref.Day()) {
		year++
	}

	if day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, month, day, ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location()), true
}

// relativeUnits holds one forward and one backward pattern per unit, in the
// same order the phrases are tried.
var relativeUnits = []struct {
	forward  *regexp.Regexp
	backward *regexp.Regexp
	add      func(t time.Time, n int) time.Time
}{
	{
		forward:  regexp.MustCompile(`через\s*(\d+)\s*(день|дня|дней)`),
		backward: regexp.MustCompile(`(\d+)\s*(день|дня|дней)\s*назад`),
		add:      func(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) },
	},
	{
		forward:  regexp.MustCompile(`через\s*(\d+)\s*(неделю|недели|недель)`),
		backward: regexp.MustCompile(`(\d+)\s*(неделю|недели|недель)\s*назад`),
		add:      func(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) },
	},
	{
		forward:  regexp.MustCompile(`через\s*(\d+)\s*(месяц|месяца|месяцев)`),
		backward: regexp.MustCompile(`(\d+)\s*(месяц|месяца|месяцев)\s*назад`),
		add:      addMonthsClamped,
	},
	{
		forward:  regexp.MustCompile(`через\s*(\d+)\s*(год|года|лет)`),
		backward: regexp.MustCompile(`(\d+)\s*(год|года|лет)\s*назад`),
		add:      func(t time.Time, n int) time.Time { return addMonthsClamped(t, 12*n) },
	},
}

func matchRelative(phrase string, ref time.Time) (time.Time, bool) {
	for _, unit := range relativeUnits {
		if m := unit.forward.FindStringSubmatch(phrase); m != nil {
			n, _ := strconv.Atoi(m[1])
			return unit.add(ref, n), true
		}
		if m := unit.backward.FindStringSubmatch(phrase); m != nil {
			n, _ := strconv.Atoi(m[1])
			return unit.add(ref, -n), true
		}
	}
	return time.Time{}, false
}

func matchFuzzyWeekday(phrase string, ref time.Time) (time.Time, bool) {
	best := -1
	bestScore := 0
	for i, name := range Weekdays {
		score := fuzzy.WRatio(phrase, name)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best == -1 || bestScore < fuzzyThreshold {
		return time.Time{}, false
	}
	return ref.AddDate(0, 0, best-mondayIndex(ref)), true
}

// addMonthsClamped shifts by whole months, clamping the day-of-month to the
// last valid day of the target month instead of letting Jan 31 + 1 month
// roll over into March.
func addMonthsClamped(t time.Time, months int) time.Time {
	total := int(t.Month()) - 1 + months
	year := t.Year() + floorDiv(total, 12)
	month := time.Month(mod(total, 12) + 1)
	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// mondayIndex converts time.Weekday (Sunday=0) to a Monday-based index.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
