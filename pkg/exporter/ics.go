package exporter

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/matcher"
)

// clockRe pulls the components out of one clock string inside a final-time
// range like "10:15 a.m. - 12:15 p.m.".
var clockRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([ap])\.?\s*m\.?`)

// GenerateICS writes the found finals as calendar events. weekStart is the
// Monday of finals week; exam day names are mapped onto concrete dates from
// there. Courses without a found final are left out of the calendar.
func GenerateICS(results []matcher.Result, weekStart time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, res := range results {
		if res.FinalDay == matcher.NotFound {
			continue
		}

		date, ok := dateForDay(weekStart, res.FinalDay)
		if !ok {
			continue // "Unknown" table day, nothing to anchor the event to
		}

		event := cal.AddEvent(fmt.Sprintf("final-%d-%s", i, date.Format("20060102")))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetSummary(fmt.Sprintf("Final: %s", res.Course))
		event.SetDescription(fmt.Sprintf("Final exam time: %s", res.FinalTime))

		start, end, timed := parseFinalRange(res.FinalTime, date)
		if timed {
			event.SetStartAt(start)
			event.SetEndAt(end)
		} else {
			// Couldn't parse the time range; an all-day marker still gets
			// the student to the right building on the right day.
			event.SetAllDayStartAt(date)
			event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		}
	}

	return cal.SerializeTo(w)
}

// dateForDay finds the date within the week starting at weekStart whose
// weekday name equals dayName.
func dateForDay(weekStart time.Time, dayName string) (time.Time, bool) {
	for offset := 0; offset < 7; offset++ {
		d := weekStart.AddDate(0, 0, offset)
		if strings.EqualFold(d.Weekday().String(), dayName) {
			return d, true
		}
	}
	return time.Time{}, false
}

// parseFinalRange interprets the verbatim final-time text as a start/end
// pair on the given date. A single parseable time gets a two-hour block,
// the standard final-exam length.
func parseFinalRange(text string, date time.Time) (time.Time, time.Time, bool) {
	matches := clockRe.FindAllStringSubmatch(text, 2)
	if len(matches) == 0 {
		return time.Time{}, time.Time{}, false
	}

	start := clockOn(date, matches[0])
	if len(matches) >= 2 {
		end := clockOn(date, matches[1])
		if end.After(start) {
			return start, end, true
		}
	}
	return start, start.Add(2 * time.Hour), true
}

func clockOn(date time.Time, m []string) time.Time {
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if strings.EqualFold(m[3], "p") && hour < 12 {
		hour += 12
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}
