package exporter

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/matcher"
)

// WriteCSV writes the matched finals schedule as CSV with the
// Course,Final_Day,Final_Time header row.
func WriteCSV(results []matcher.Result, w io.Writer) error {
	if err := gocsv.Marshal(&results, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
