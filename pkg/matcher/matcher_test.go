package matcher

import (
	"testing"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/finals"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/schedule"
)

func knownDays(pattern string) schedule.DayResult {
	return schedule.DayResult{Kind: schedule.DayKnown, Pattern: pattern}
}

func fixtureTables() []finals.DayTable {
	return []finals.DayTable{
		{Day: "Monday", Slots: []finals.Slot{
			{ClassTime: "8:00 a.m.", DayPattern: "MWF", FinalTime: "7:15 a.m. - 9:15 a.m."},
			{ClassTime: "10:00 a.m.", DayPattern: "TR", FinalTime: "9:45 a.m. - 11:45 a.m."},
		}},
		{Day: "Wednesday", Slots: []finals.Slot{
			{ClassTime: "10:00 a.m.", DayPattern: "MWF", FinalTime: "10:15 a.m. - 12:15 p.m."},
			{ClassTime: "1:00 p.m.", DayPattern: "MWF", FinalTime: "12:30 p.m. - 2:30 p.m."},
		}},
	}
}

func TestExactPolicy(t *testing.T) {
	tables := fixtureTables()

	hit := schedule.Course{Name: "Chemistry", Days: knownDays("MWF"), StartTime: "8:00 a.m."}
	res := Match(hit, tables, Exact{})
	if res.FinalDay != "Monday" || res.FinalTime != "7:15 a.m. - 9:15 a.m." {
		t.Errorf("expected exact match on the Monday MWF slot, got %+v", res)
	}

	// Same time, different day pattern: exact says no.
	miss := schedule.Course{Name: "Algebra", Days: knownDays("MW"), StartTime: "10:00 a.m."}
	res = Match(miss, tables, Exact{})
	if res.FinalDay != NotFound || res.FinalTime != NotFound {
		t.Errorf("expected Not Found for MW under exact policy, got %+v", res)
	}
}

func TestTolerantPolicy(t *testing.T) {
	tables := fixtureTables()

	// MW is covered by the MWF row.
	subset := schedule.Course{Name: "Algebra", Days: knownDays("MW"), StartTime: "10:00 a.m."}
	res := Match(subset, tables, Tolerant{})
	if res.FinalDay != "Wednesday" || res.FinalTime != "10:15 a.m. - 12:15 p.m." {
		t.Errorf("expected tolerant subset match on the Wednesday MWF slot, got %+v", res)
	}

	// One hour off still matches.
	offByOne := schedule.Course{Name: "Statics", Days: knownDays("MWF"), StartTime: "11:00 a.m."}
	res = Match(offByOne, tables, Tolerant{})
	if res.FinalDay != "Wednesday" {
		t.Errorf("expected 11:00 to match the 10:00 slot within the one-hour window, got %+v", res)
	}

	// Two hours off does not.
	offByTwo := schedule.Course{Name: "Dynamics", Days: knownDays("MWF"), StartTime: "3:00 p.m."}
	res = Match(offByTwo, tables, Tolerant{})
	if res.FinalDay != NotFound {
		t.Errorf("expected Not Found two hours away from every slot, got %+v", res)
	}

	// Meridiem resolution: 1:00 p.m. is 13, not 1, so it must not match a
	// morning slot.
	afternoon := schedule.Course{Name: "Seminar", Days: knownDays("TR"), StartTime: "1:00 p.m."}
	res = Match(afternoon, tables, Tolerant{})
	if res.FinalDay != NotFound {
		t.Errorf("expected p.m. hour to resolve to 13 and miss the 10:00 a.m. TR slot, got %+v", res)
	}
}

func TestMatch_UnknownsNeverMatch(t *testing.T) {
	tables := []finals.DayTable{
		{Day: "Friday", Slots: []finals.Slot{
			{ClassTime: "10:00 a.m.", DayPattern: finals.UnknownPattern, FinalTime: "noon"},
		}},
	}

	courses := []schedule.Course{
		{Name: "No days", Days: schedule.DayResult{Kind: schedule.DayAbsent}, StartTime: "10:00 a.m."},
		{Name: "Bad days", Days: schedule.DayResult{Kind: schedule.DayUnrecognized}, StartTime: "10:00 a.m."},
		{Name: "No time", Days: knownDays("MWF"), StartTime: "N/A"},
	}

	for _, policy := range []Policy{Exact{}, Tolerant{}} {
		for _, course := range courses {
			if res := Match(course, tables, policy); res.FinalDay != NotFound {
				t.Errorf("%s policy matched unmatchable course %q: %+v", policy.Name(), course.Name, res)
			}
		}
	}
}

func TestMatch_FirstSlotWins(t *testing.T) {
	tables := []finals.DayTable{
		{Day: "Monday", Slots: []finals.Slot{
			{ClassTime: "10:00 a.m.", DayPattern: "TR", FinalTime: "first"},
		}},
		{Day: "Tuesday", Slots: []finals.Slot{
			{ClassTime: "10:00 a.m.", DayPattern: "TR", FinalTime: "second"},
		}},
	}

	course := schedule.Course{Name: "Duplicated", Days: knownDays("TR"), StartTime: "10:00 a.m."}
	res := Match(course, tables, Exact{})
	if res.FinalDay != "Monday" || res.FinalTime != "first" {
		t.Errorf("expected the first satisfying slot in source order, got %+v", res)
	}
}

// Every course yields exactly one result, found or not.
func TestMatchAll_TotalCorrespondence(t *testing.T) {
	tables := fixtureTables()
	courses := []schedule.Course{
		{Name: "A", Days: knownDays("MWF"), StartTime: "9:00 a.m."},
		{Name: "B", Days: knownDays("TR"), StartTime: "8:00 p.m."},
		{Name: "C", Days: schedule.DayResult{Kind: schedule.DayAbsent}, StartTime: "N/A"},
	}

	results := MatchAll(courses, tables, Tolerant{})
	if len(results) != len(courses) {
		t.Fatalf("expected %d results, got %d", len(courses), len(results))
	}
	for i, res := range results {
		if res.Course != courses[i].Name {
			t.Errorf("result %d is for %q, want %q", i, res.Course, courses[i].Name)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	for name, want := range map[string]string{
		"":         "tolerant",
		"tolerant": "tolerant",
		"exact":    "exact",
		"EXACT":    "exact",
	} {
		policy, err := ParsePolicy(name)
		if err != nil {
			t.Fatalf("ParsePolicy(%q) failed: %v", name, err)
		}
		if policy.Name() != want {
			t.Errorf("ParsePolicy(%q) = %s, want %s", name, policy.Name(), want)
		}
	}

	if _, err := ParsePolicy("bogus"); err == nil {
		t.Errorf("expected an error for an unknown policy name")
	}
}

// The whole pipeline on one course: PDF-ish text in, matched final out. The
// course's days reduce to MW, the finals row says MWF, so the two policies
// disagree on purpose.
func TestEndToEnd_PolicyComparison(t *testing.T) {
	blob := "CS 135 Intro to Programming Enrolled Days: Monday to Wednesday Times: 10:00 AM - 10:50 AM Class #12345"

	vocab := schedule.DefaultVocabulary()
	courses := schedule.Courses(schedule.ParseCourses(blob, vocab))
	if len(courses) != 1 {
		t.Fatalf("expected 1 course from the blob, got %d", len(courses))
	}

	tables := []finals.DayTable{
		{Day: "Wednesday", Slots: []finals.Slot{
			{ClassTime: "10:00 a.m.", DayPattern: "MWF", FinalTime: "10:15 a.m. - 12:15 p.m."},
		}},
	}

	tolerant := Match(courses[0], tables, Tolerant{})
	if tolerant.Course != "Intro to Programming" ||
		tolerant.FinalDay != "Wednesday" ||
		tolerant.FinalTime != "10:15 a.m. - 12:15 p.m." {
		t.Errorf("tolerant policy got %+v, want the Wednesday MWF final", tolerant)
	}

	exact := Match(courses[0], tables, Exact{})
	if exact.FinalDay != NotFound || exact.FinalTime != NotFound {
		t.Errorf("exact policy should refuse the MW/MWF pattern mismatch, got %+v", exact)
	}
}
