package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
)

// headerItems is the number of grid cells before the first lesson cell:
// the corner cell plus the six day headers.
const headerItems = 7

// Document is a structured view of one timetable page: six day headers, the
// printed wall-clock interval of every grid row, and a row-major stream of
// lesson cells. The week assembly logic only talks to this interface, so an
// alternate source format can be substituted without touching it.
type Document interface {
	// Dates returns the calendar dates of the day header cells, in order.
	Dates() []time.Time
	// RowTimes returns the printed start/end interval of every grid row.
	// A zero interval marks a row whose times could not be read.
	RowTimes() []schedule.SlotInterval
	// Cell returns the lessons of one grid cell; nil for an empty cell or
	// when the cell is missing from the document entirely.
	Cell(row, col int) []schedule.Lesson
}

// ParseWeek extracts a Week from a timetable HTML page. Individual malformed
// cells degrade to empty values and are logged; only a document that fails
// the basic grid shape (six day headers) is rejected outright.
func ParseWeek(r io.Reader, weekNumber int, logger *zap.Logger) (schedule.Week, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return schedule.Week{}, &RemoteServiceError{Reason: fmt.Sprintf("unparsable document: %v", err)}
	}

	return AssembleWeek(newHTMLDocument(doc, logger), weekNumber)
}

// AssembleWeek reshapes the flat cell stream of a Document into six per-day
// columns and builds the normalized Week.
func AssembleWeek(doc Document, weekNumber int) (schedule.Week, error) {
	dates := doc.Dates()
	if len(dates) != schedule.DaysPerWeek {
		return schedule.Week{}, &RemoteServiceError{
			Reason: fmt.Sprintf("expected %d day headers, found %d", schedule.DaysPerWeek, len(dates)),
		}
	}

	days := make([]schedule.Day, schedule.DaysPerWeek)
	for i, date := range dates {
		days[i] = schedule.Day{Date: date}
	}

	for row, interval := range doc.RowTimes() {
		number := schedule.SlotNumberForTimes(interval.Start, interval.End)
		if number == 0 {
			// Printed times that match no known slot still must not lose
			// data; fall back to counting rows from the top.
			number = row + 1
		}
		for col := 0; col < schedule.DaysPerWeek; col++ {
			days[col].Slots = append(days[col].Slots, schedule.TimeSlot{
				Number:  number,
				Lessons: doc.Cell(row, col),
			})
		}
	}

	for i := range days {
		days[i].Trim()
	}

	return schedule.NewWeek(weekNumber, days), nil
}

// htmlDocument adapts a goquery document of the ssau.ru/rasp page to the
// Document interface.
type htmlDocument struct {
	items  *goquery.Selection
	dates  []time.Time
	times  []schedule.SlotInterval
	logger *zap.Logger
}

func newHTMLDocument(doc *goquery.Document, logger *zap.Logger) *htmlDocument {
	d := &htmlDocument{
		items:  doc.Find("div.schedule__item"),
		logger: logger,
	}

	doc.Find("div.schedule__item.schedule__head").Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Find("div.schedule__head-date").First().Text())
		if text == "" {
			return
		}
		date, err := time.Parse("02.01.2006", text)
		if err != nil {
			logger.Warn("unreadable day header date", zap.String("text", text))
			return
		}
		d.dates = append(d.dates, date)
	})

	doc.Find("div.schedule__time").Each(func(i int, sel *goquery.Selection) {
		items := sel.Find("div.schedule__time-item")
		if items.Length() != 2 {
			// Keep the row so the cell stream stays aligned; the slot
			// ordinal resolves through the sequential fallback.
			logger.Warn("time row without two time items", zap.Int("row", i))
			d.times = append(d.times, schedule.SlotInterval{})
			return
		}
		start, errStart := schedule.ParseClock(items.Eq(0).Text())
		end, errEnd := schedule.ParseClock(items.Eq(1).Text())
		if errStart != nil || errEnd != nil {
			logger.Warn("unreadable time row", zap.Int("row", i))
			d.times = append(d.times, schedule.SlotInterval{})
			return
		}
		d.times = append(d.times, schedule.SlotInterval{Start: start, End: end})
	})

	return d
}

func (d *htmlDocument) Dates() []time.Time {
	return d.dates
}

func (d *htmlDocument) RowTimes() []schedule.SlotInterval {
	return d.times
}

func (d *htmlDocument) Cell(row, col int) []schedule.Lesson {
	idx := headerItems + row*schedule.DaysPerWeek + col
	if idx >= d.items.Length() {
		return nil
	}

	var lessons []schedule.Lesson
	d.items.Eq(idx).Find("div.schedule__lesson").Each(func(i int, sel *goquery.Selection) {
		lessons = append(lessons, d.parseLesson(sel))
	})
	return lessons
}

func (d *htmlDocument) parseLesson(sel *goquery.Selection) schedule.Lesson {
	discipline := strings.TrimSpace(sel.Find("div.schedule__discipline").First().Text())
	if discipline == "" {
		// Required field; degrade to an empty name rather than aborting
		// the whole extraction.
		d.logger.Warn("lesson block without discipline name")
	}

	return schedule.Lesson{
		Discipline: discipline,
		Teacher:    strings.TrimSpace(sel.Find("div.schedule__teacher").First().Text()),
		Place:      strings.TrimSpace(sel.Find("div.schedule__place").First().Text()),
		Kind:       parseKind(sel),
		Subgroups:  parseSubgroups(sel.Find("div.schedule__groups").First().Text()),
	}
}

// parseKind decodes the lesson kind from its styling marker. An unknown
// marker is Other, never an error.
func parseKind(sel *goquery.Selection) schedule.Kind {
	for _, kind := range schedule.KnownKinds {
		marker := fmt.Sprintf("div.schedule__lesson-type-color.lesson-type-%d__color", int(kind))
		if sel.Find(marker).Length() > 0 {
			return kind
		}
	}
	return schedule.KindOther
}

var subgroupRe = regexp.MustCompile(`(\d+)\s*подгр`)

// parseSubgroups reads optional subgroup tags ("1 подгруппа"). Older
// timetable variants carry none, which yields nil.
func parseSubgroups(text string) []int {
	var subgroups []int
	for _, m := range subgroupRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		subgroups = append(subgroups, n)
	}
	return subgroups
}
