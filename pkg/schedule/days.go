package schedule

import "strings"

// Vocabulary holds the weekday order and the single-letter codes used when
// building day patterns. It is built once at startup and handed to whatever
// needs to turn day names into letters, so tests can swap in a different
// day set without touching globals.
type Vocabulary struct {
	order   []string
	letters map[string]string
}

// DefaultVocabulary returns the standard Monday-Friday vocabulary used by
// both MyNEVADA and the finals timetable.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		order: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		letters: map[string]string{
			"Monday":    "M",
			"Tuesday":   "T",
			"Wednesday": "W",
			"Thursday":  "R",
			"Friday":    "F",
		},
	}
}

// NewVocabulary builds a vocabulary from an ordered day list and a
// day-to-letter table. The order slice is copied so the caller can't
// mutate it afterwards.
func NewVocabulary(order []string, letters map[string]string) Vocabulary {
	v := Vocabulary{
		order:   make([]string, len(order)),
		letters: make(map[string]string, len(letters)),
	}
	copy(v.order, order)
	for day, letter := range letters {
		v.letters[day] = letter
	}
	return v
}

// Days returns the weekday names in weekly order.
func (v Vocabulary) Days() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// Letter returns the single-letter code for a full weekday name, or "" if
// the name is not part of the vocabulary.
func (v Vocabulary) Letter(day string) string {
	return v.letters[day]
}

// isPattern reports whether text is already a letter-code pattern, i.e.
// every rune is one of the vocabulary's day letters.
func (v Vocabulary) isPattern(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		known := false
		for _, letter := range v.letters {
			if letter == string(r) {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return true
}

func (v Vocabulary) index(day string) int {
	for i, d := range v.order {
		if d == day {
			return i
		}
	}
	return -1
}

// NormalizeDays reduces free-form day text ("Monday to Thursday",
// "Tuesday, Thursday") to a day-pattern code in the finals timetable's
// vocabulary.
//
// Range text ("X to Y") takes the inclusive slice of the week between the
// two endpoints. If either endpoint isn't a known weekday name the range
// branch gives up and the text goes through the explicit-day scan instead,
// which picks out whichever full day names appear anywhere in the text,
// always in weekly order.
func (v Vocabulary) NormalizeDays(text string) DayResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return DayResult{Kind: DayAbsent}
	}

	// Already-canonical letter codes pass through untouched, so feeding a
	// result back in is a no-op.
	if v.isPattern(text) {
		return DayResult{Kind: DayKnown, Pattern: text}
	}

	if strings.Contains(text, "to") {
		parts := strings.SplitN(text, "to", 2)
		start := v.index(strings.TrimSpace(parts[0]))
		end := v.index(strings.TrimSpace(parts[1]))
		if start >= 0 && end >= 0 {
			var b strings.Builder
			for i := start; i <= end; i++ {
				b.WriteString(v.letters[v.order[i]])
			}
			if b.Len() == 0 {
				// Reversed range, e.g. "Friday to Monday".
				return DayResult{Kind: DayUnrecognized}
			}
			return DayResult{Kind: DayKnown, Pattern: compressPattern(b.String())}
		}
	}

	var b strings.Builder
	for _, day := range v.order {
		if strings.Contains(text, day) {
			b.WriteString(v.letters[day])
		}
	}
	if b.Len() == 0 {
		return DayResult{Kind: DayUnrecognized}
	}
	return DayResult{Kind: DayKnown, Pattern: b.String()}
}

// compressPattern rewrites the full-week and Monday-Thursday patterns to the
// shorter codes the finals timetable actually prints. This is intentionally
// lossy: a five-day class sits in the MWF slot and a four-day class in the
// MW slot, so the longer codes never appear on the finals page.
func compressPattern(letters string) string {
	switch letters {
	case "MTWRF":
		return "MWF"
	case "MTWR":
		return "MW"
	}
	return letters
}
