// Package pdftext turns a schedule PDF into the plain text blob the course
// extractor works on.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads every page of the PDF at path and concatenates the
// extracted plain text page-wise. Pages that can't be decoded contribute
// nothing, the same as a page with no text; an unreadable file is an error
// the caller should treat as fatal.
func ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}

	return b.String(), nil
}
