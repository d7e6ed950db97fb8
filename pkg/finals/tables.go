package finals

import (
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/schedule"
)

var parenPatternRe = regexp.MustCompile(`\(([A-Z]+)\)`)

// ParseTables pulls the finals tables out of the schedule page. The page
// marks them with class="footable"; each carries a caption naming the exam
// day and body rows of [class time, day description, final time].
func ParseTables(r io.Reader, vocab schedule.Vocabulary) ([]DayTable, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var tables []DayTable

	doc.Find("table.footable").Each(func(i int, tbl *goquery.Selection) {
		day := UnknownPattern
		if caption := cleanCell(tbl.Find("caption").First().Text()); caption != "" {
			// Captions read "Thursday, first day of finals"; only the day
			// name matters.
			day = strings.TrimSpace(strings.SplitN(caption, ",", 2)[0])
		}

		var slots []Slot
		tbl.Find("tbody tr").Each(func(j int, tr *goquery.Selection) {
			var cells []string
			tr.Find("td").Each(func(k int, td *goquery.Selection) {
				cells = append(cells, cleanCell(td.Text()))
			})

			// Header-ish or spanning rows don't have the three data cells.
			if len(cells) < 3 {
				return
			}

			slots = append(slots, Slot{
				ClassTime:  schedule.NormalizeTime(cells[0]),
				DayPattern: dayPattern(cells[1], vocab),
				FinalTime:  cells[2],
			})
		})

		tables = append(tables, DayTable{Day: day, Slots: slots})
	})

	return tables, nil
}

// cleanCell trims a cell and turns non-breaking spaces into ordinary ones so
// the pattern matching below doesn't trip over them.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
}

// dayPattern reduces a day-description cell like
// "Monday/Wednesday/Friday (MWF)" to its letter code. Most rows carry the
// bracketed code, but the page isn't consistent about it, so fall back to
// the compound phrases it is known to print, then to a single weekday name.
func dayPattern(text string, vocab schedule.Vocabulary) string {
	if m := parenPatternRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	switch {
	case strings.Contains(text, "Monday/Wednesday/Friday"):
		return "MWF"
	case strings.Contains(text, "Tuesday/Thursday"):
		return "TR"
	case strings.Contains(text, "Monday/Wednesday"):
		return "MW"
	}

	for _, day := range vocab.Days() {
		if strings.Contains(text, day) {
			return vocab.Letter(day)
		}
	}

	return UnknownPattern
}
