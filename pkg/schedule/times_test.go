package schedule

import "testing"

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Hour-only forms gain :00.
		{"10AM", "10:00 a.m."},
		{"10 AM", "10:00 a.m."},
		{"10A.M.", "10:00 a.m."},
		{"2 p.m.", "2:00 p.m."},
		{"7P M.", "7:00 p.m."},
		// Hour:minute forms get the canonical meridiem.
		{"2:30PM", "2:30 p.m."},
		{"10:30 PM", "10:30 p.m."},
		{"9:00am", "9:00 a.m."},
		{"11:45 A.M.", "11:45 a.m."},
		// The empty sentinel passes through.
		{"", ""},
		// So does anything that isn't a clock time.
		{"noon", "noon"},
		{"TBA", "TBA"},
	}

	for _, tt := range tests {
		if got := NormalizeTime(tt.input); got != tt.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeTime_Idempotent(t *testing.T) {
	for _, canonical := range []string{"10:00 a.m.", "2:30 p.m.", "12:15 p.m."} {
		if got := NormalizeTime(canonical); got != canonical {
			t.Errorf("NormalizeTime(%q) = %q, expected the canonical input back", canonical, got)
		}
	}
}
