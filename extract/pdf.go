package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ongiao-ai/tutorchat/models"
)

// extractPDF walks the document page by page, in page order. Within a page
// every text fragment is written in the order the file reports it, followed
// by a single space; a newline terminates each page. Reading order is the
// format's responsibility and is not re-sorted here.
func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed files; degrade that to an
	// extraction error instead of taking the caller down.
	defer func() {
		if r := recover(); r != nil {
			err = &ExtractionError{MimeType: models.MimePDF, Err: fmt.Errorf("pdf parser panic: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{MimeType: models.MimePDF, Err: err}
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			b.WriteByte('\n')
			continue
		}
		for _, fragment := range page.Content().Text {
			b.WriteString(fragment.S)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
