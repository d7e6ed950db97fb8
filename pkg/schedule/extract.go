package schedule

import (
	"regexp"
	"strings"
)

var (
	// PDF text extraction tends to glue adjacent tokens together. These
	// three put the spaces back: "10:50AM" -> "10:50 AM", "AMWPEB" -> "AM
	// WPEB" (meridiem jammed against a room code), and any word stuck to an
	// Enrolled/ADEnrolled status marker. ADEnrolled comes first in the
	// alternation so the Enrolled branch can't split it in half.
	mergedMeridiemRe = regexp.MustCompile(`(\d+)(AM|PM)`)
	meridiemRoomRe   = regexp.MustCompile(`(AM|PM)([A-Z]{2,})`)
	enrolledMarkRe   = regexp.MustCompile(`(?i)([a-zA-Z])(ADEnrolled|Enrolled)`)

	// A course-code header: two-plus uppercase letters, a three-digit
	// number, trailing whitespace. Every section of the source starts with
	// one of these.
	courseHeaderRe = regexp.MustCompile(`[A-Z]{2,}\s+\d{3}\s+`)

	// Cues that terminate the header-plus-title span inside a section.
	titleCueRe = regexp.MustCompile(`(?i)ADEnrolled|Enrolled|Days:|Times:|Class #`)

	headerStartRe = regexp.MustCompile(`^[A-Z]{2,}\s+\d{3}`)
	titleRe       = regexp.MustCompile(`^[A-Z]{2,}\s+\d{3}\s+(.+)$`)
	titlePrefixRe = regexp.MustCompile(`^[A-Z]{2,}\s+\d{3}\s*`)

	daysFieldRe  = regexp.MustCompile(`(?i)Days:\s*([A-Za-z\s,\-]+)`)
	timesFieldRe = regexp.MustCompile(`(?i)Times:\s*(\d{1,2}:\d{2}\s*[APM]{2}|\d{1,2}\s*[APM]{2})`)
)

// ParseCourses segments the concatenated PDF text into course-code sections
// and parses each one, reporting a SectionOutcome per section. Sections for
// audited or non-enrolled classes are kept in the outcome list with their
// skip reason; Courses() drops them.
func ParseCourses(text string, vocab Vocabulary) []SectionOutcome {
	text = cleanMergedTokens(text)

	var outcomes []SectionOutcome
	for _, section := range splitSections(text) {
		outcomes = append(outcomes, parseSection(section, vocab))
	}
	return outcomes
}

func cleanMergedTokens(text string) string {
	text = mergedMeridiemRe.ReplaceAllString(text, "${1} ${2}")
	text = meridiemRoomRe.ReplaceAllString(text, "${1} ${2}")
	text = enrolledMarkRe.ReplaceAllString(text, "${1} ${2}")
	return text
}

// splitSections cuts the text at every course-code header, keeping the
// header at the front of its section. Text before the first header (page
// banners, student info) becomes a leading section that won't parse and
// gets skipped downstream.
func splitSections(text string) []string {
	locs := courseHeaderRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	var sections []string
	prev := 0
	for _, loc := range locs {
		sections = append(sections, text[prev:loc[0]])
		prev = loc[0]
	}
	sections = append(sections, text[prev:])
	return sections
}

func parseSection(section string, vocab Vocabulary) SectionOutcome {
	out := SectionOutcome{Snippet: snippet(section)}

	if strings.TrimSpace(section) == "" {
		out.Skipped = SkipEmpty
		return out
	}

	title, ok := courseTitle(section)
	if !ok {
		out.Skipped = SkipNoHeader
		return out
	}

	// Audited classes have no final; MyNEVADA marks them "ADEnrolled" (or
	// spells out "Audit").
	if strings.Contains(section, "ADEnrolled") || strings.Contains(section, "Audit") {
		out.Skipped = SkipAudit
		return out
	}

	// Anything without an Enrolled status (waitlisted, dropped) is noise.
	if !strings.Contains(section, "Enrolled") {
		out.Skipped = SkipNotEnrolled
		return out
	}

	days := DayResult{Kind: DayAbsent}
	if m := daysFieldRe.FindStringSubmatch(section); m != nil {
		days = vocab.NormalizeDays(m[1])
	}

	// Only the first time token: the meeting start is what the finals
	// table is keyed on, so the end time is dropped on purpose.
	start := "N/A"
	if m := timesFieldRe.FindStringSubmatch(section); m != nil {
		start = NormalizeTime(m[1])
	}

	out.Course = &Course{Name: title, Days: days, StartTime: start}
	return out
}

// courseTitle captures everything from the course code up to the first
// status/field cue, collapses line wraps, and strips the code-and-number
// prefix to leave the human-readable title.
func courseTitle(section string) (string, bool) {
	span := section
	if loc := titleCueRe.FindStringIndex(section); loc != nil {
		span = section[:loc[0]]
	}

	if !headerStartRe.MatchString(span) {
		return "", false
	}

	span = strings.TrimSpace(strings.Join(strings.Fields(span), " "))

	if m := titleRe.FindStringSubmatch(span); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	// Looser fallback when the strict prefix pattern doesn't take.
	return strings.TrimSpace(titlePrefixRe.ReplaceAllString(span, "")), true
}

func snippet(section string) string {
	s := strings.TrimSpace(section)
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 60 {
		s = s[:60] + "..."
	}
	return s
}
