package finals

// UnknownPattern marks a row whose day description couldn't be reduced to a
// letter code, and a table with no caption to take a day name from.
const UnknownPattern = "Unknown"

// Slot is one row of a finals table: when the class meets, which day
// pattern it follows, and when its final is. FinalTime is passed through
// verbatim from the page; its formatting is the university's problem.
type Slot struct {
	ClassTime  string `json:"class_time"`
	DayPattern string `json:"day_pattern"`
	FinalTime  string `json:"final_time"`
}

// DayTable groups the slots that share a final-exam day. Day is the full
// weekday name from the table caption ("Thursday" out of "Thursday, first
// day of finals"), or Unknown when the caption is missing.
type DayTable struct {
	Day   string `json:"day"`
	Slots []Slot `json:"slots"`
}
