package schedule

// DayKind distinguishes "the Days field was missing" from "the field was
// there but no weekday name was recognized". Both are unmatchable, but tests
// and diagnostics care which one happened.
type DayKind int

const (
	DayAbsent DayKind = iota
	DayUnrecognized
	DayKnown
)

// DayResult is the outcome of day canonicalization: a pattern code plus how
// confident we are in it.
type DayResult struct {
	Kind    DayKind
	Pattern string
}

// Matchable reports whether the pattern is concrete enough to compare
// against a finals-table row.
func (d DayResult) Matchable() bool {
	return d.Kind == DayKnown && d.Pattern != ""
}

// String renders the result the way the CSV output expects: "N/A" for a
// missing field, the empty string for unrecognized text.
func (d DayResult) String() string {
	if d.Kind == DayAbsent {
		return "N/A"
	}
	return d.Pattern
}

// Course is one enrolled section pulled out of the schedule PDF text.
// Entries are identified by position in the source, not by name; two
// sections of the same course stay as two entries.
type Course struct {
	Name      string
	Days      DayResult
	StartTime string // canonical clock string, or "N/A" when the PDF had none
}

// SkipReason says why a course-code section produced no Course.
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipEmpty
	SkipNoHeader
	SkipAudit
	SkipNotEnrolled
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "not skipped"
	case SkipEmpty:
		return "empty section"
	case SkipNoHeader:
		return "no course header"
	case SkipAudit:
		return "audited enrollment"
	case SkipNotEnrolled:
		return "not enrolled"
	}
	return "unknown"
}

// SectionOutcome reports what happened to one section of the source text:
// either a parsed Course, or the reason the section was dropped. Keeping the
// skipped sections around lets callers (and tests) see why something is
// missing instead of just noticing its absence.
type SectionOutcome struct {
	Course  *Course
	Skipped SkipReason
	Snippet string // leading text of the section, for diagnostics
}

// Courses flattens outcomes down to the retained entries, in source order.
func Courses(outcomes []SectionOutcome) []Course {
	var courses []Course
	for _, o := range outcomes {
		if o.Course != nil {
			courses = append(courses, *o.Course)
		}
	}
	return courses
}
