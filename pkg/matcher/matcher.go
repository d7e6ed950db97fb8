package matcher

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/finals"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/schedule"
)

// NotFound is what the user sees for a course with no satisfying slot.
const NotFound = "Not Found"

// Result is the per-course outcome of the reconciliation, in the field
// order the CSV output expects.
type Result struct {
	Course    string `csv:"Course"`
	FinalDay  string `csv:"Final_Day"`
	FinalTime string `csv:"Final_Time"`
}

// Policy decides whether a finals-table slot covers a course. Two policies
// exist because the page's time strings aren't always well formed: Exact
// insists on identical canonical strings, Tolerant settles for the same day
// letters and roughly the same hour.
type Policy interface {
	Name() string
	Matches(course schedule.Course, slot finals.Slot) bool
}

// ParsePolicy maps a flag/config value to a policy. An empty name selects
// the tolerant policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "tolerant":
		return Tolerant{}, nil
	case "exact":
		return Exact{}, nil
	}
	return nil, fmt.Errorf("unknown matching policy %q (want \"exact\" or \"tolerant\")", name)
}

// Exact requires the slot's day pattern and canonical class time to equal
// the course's pattern and start time, character for character.
type Exact struct{}

func (Exact) Name() string { return "exact" }

func (Exact) Matches(course schedule.Course, slot finals.Slot) bool {
	if !course.Days.Matchable() || slot.DayPattern == finals.UnknownPattern {
		return false
	}
	if slot.DayPattern != course.Days.Pattern {
		return false
	}
	return schedule.NormalizeTime(slot.ClassTime) == course.StartTime
}

// Tolerant accepts a slot whose day letters cover the course's (so an MW
// class matches the MWF row) and whose 24-hour-resolved hour is within one
// of the course's. Minutes and meridiem spelling are ignored, which keeps
// malformed source times matchable.
type Tolerant struct{}

func (Tolerant) Name() string { return "tolerant" }

func (Tolerant) Matches(course schedule.Course, slot finals.Slot) bool {
	if !course.Days.Matchable() || slot.DayPattern == finals.UnknownPattern {
		return false
	}
	if !subset(course.Days.Pattern, slot.DayPattern) {
		return false
	}

	courseHour, ok := hour24(course.StartTime)
	if !ok {
		return false
	}
	slotHour, ok := hour24(schedule.NormalizeTime(slot.ClassTime))
	if !ok {
		return false
	}

	diff := courseHour - slotHour
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}

// subset reports whether every letter of sub appears in super. Empty
// patterns never match anything.
func subset(sub, super string) bool {
	if sub == "" {
		return false
	}
	for _, r := range sub {
		if !strings.ContainsRune(super, r) {
			return false
		}
	}
	return true
}

var clockRe = regexp.MustCompile(`^(\d{1,2})(?::\d{2})?\s*([ap])\.?\s*m\.?`)

// hour24 pulls the hour out of a clock string and resolves it against the
// meridiem: a p.m. hour under 12 gains 12.
func hour24(text string) (int, bool) {
	m := clockRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if m == nil {
		return 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if m[2] == "p" && hour < 12 {
		hour += 12
	}
	return hour, true
}

// Match scans the tables in source order, rows in source order, and returns
// the first satisfying slot. No scoring, no tie-breaks; the page lists each
// pattern/time combination once, so first hit is the answer. A course with
// no satisfying slot gets the Not Found sentinel pair, which is a normal
// outcome, not an error.
func Match(course schedule.Course, tables []finals.DayTable, policy Policy) Result {
	for _, table := range tables {
		for _, slot := range table.Slots {
			if policy.Matches(course, slot) {
				return Result{
					Course:    course.Name,
					FinalDay:  table.Day,
					FinalTime: slot.FinalTime,
				}
			}
		}
	}

	return Result{
		Course:    course.Name,
		FinalDay:  NotFound,
		FinalTime: NotFound,
	}
}

// MatchAll produces exactly one Result per course, in course order.
func MatchAll(courses []schedule.Course, tables []finals.DayTable, policy Policy) []Result {
	results := make([]Result, 0, len(courses))
	for _, course := range courses {
		results = append(results, Match(course, tables, policy))
	}
	return results
}
