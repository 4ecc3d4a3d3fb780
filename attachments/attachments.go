// Package attachments turns user-picked image files into inline message
// parts. Non-image documents never come through here; they go to the extract
// package instead.
package attachments

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/ongiao-ai/tutorchat/models"
)

// FileReadError is returned when the underlying read fails. It carries the
// filename so the caller can show a message naming the file.
type FileReadError struct {
	Filename string
	Err      error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file %q: %v", e.Filename, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// EncodeImage reads the whole file and encodes it as a base64 inline part
// tagged with its MIME type. The payload is not validated against the
// declared type; that is the producer's responsibility.
func EncodeImage(filename string, mimeType string, r io.Reader) (models.ImagePart, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.ImagePart{}, &FileReadError{Filename: filename, Err: err}
	}
	return models.ImagePart{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}
