package schedule

import (
	"regexp"
	"strings"
)

var (
	// "10 AM", "10A.M." and friends: hour only, no minutes.
	hourOnlyRe = regexp.MustCompile(`^(\d{1,2})\s*([AaPp])\.?\s*[Mm]\.?$`)
	// "10:30 PM", "2:30p.m." and friends: hour plus minutes.
	hourMinuteRe = regexp.MustCompile(`(\d{1,2}:\d{2})\s*([AaPp])\.?\s*[Mm]\.?`)
)

// NormalizeTime rewrites free-form clock text into the "H:MM a.m." shape the
// finals timetable uses: hour not zero-padded, two-digit minutes, one space,
// lowercase dot-separated meridiem. Hour-only forms gain ":00". Text that
// matches neither form passes through unchanged, so a weird value never
// breaks the pipeline; it just won't match anything later.
func NormalizeTime(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}

	text = hourOnlyRe.ReplaceAllStringFunc(text, func(s string) string {
		m := hourOnlyRe.FindStringSubmatch(s)
		return m[1] + ":00 " + meridiem(m[2])
	})

	text = hourMinuteRe.ReplaceAllStringFunc(text, func(s string) string {
		m := hourMinuteRe.FindStringSubmatch(s)
		return m[1] + " " + meridiem(m[2])
	})

	return text
}

func meridiem(letter string) string {
	if strings.EqualFold(letter, "a") {
		return "a.m."
	}
	return "p.m."
}
