// Package extract converts binary documents (PDF, Word) into plain text for
// the model request path. It is stateless: callers hand in the raw bytes and
// a MIME type, and nothing is retained after the call returns.
package extract

import (
	"fmt"
	"strings"

	"github.com/ongiao-ai/tutorchat/models"
)

// UnsupportedTypeError is returned when the MIME type is not one of the two
// document kinds this package handles.
type UnsupportedTypeError struct {
	MimeType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s. Only PDF and DOCX are supported for text extraction", e.MimeType)
}

// ExtractionError wraps a failure inside one of the document parsers.
type ExtractionError struct {
	MimeType string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s document: %v", e.MimeType, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extract returns the plain text of a PDF or Word document. Empty documents
// yield an empty string, not an error.
func Extract(data []byte, mimeType string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case models.MimePDF:
		return extractPDF(data)
	case models.MimeDoc, models.MimeDocx:
		return extractDocx(data, mimeType)
	default:
		return "", &UnsupportedTypeError{MimeType: mimeType}
	}
}
