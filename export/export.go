// Package export serializes a conversation transcript into a Word document.
// Export is read-only over the history: the same input always produces the
// same structural content.
package export

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/fumiama/go-docx"

	"github.com/ongiao-ai/tutorchat/models"
)

// ErrNothingToExport is returned when the transcript holds nothing beyond the
// initial greeting.
var ErrNothingToExport = errors.New("nothing to export beyond the greeting")

const (
	documentTitle    = "Nội dung cuộc trò chuyện với Ông Giáo Biết Tuốt"
	userLabel        = "Học sinh:"
	modelLabel       = "Ông Giáo:"
	attachmentNote   = "[Hình ảnh/Tệp đính kèm]"
	userLabelColor   = "4F46E5"
	modelLabelColor  = "2563EB"
	attachmentColor  = "94A3B8"
	filenamePrefix   = "CuocTroChuyen_OngGiaoBietTuot_"
	filenameDateForm = "02-01-2006" // vi-VN day-first date, slashes made path-safe
)

// Filename suggests a download name embedding the given date.
func Filename(now time.Time) string {
	return filenamePrefix + now.Format(filenameDateForm) + ".docx"
}

// Export writes the transcript as a .docx document: a centered title, then
// for each message a bold role label followed by one paragraph per non-empty
// line of each text part, with an italic placeholder for image parts.
func Export(history []models.Message, w io.Writer) error {
	if len(history) <= 1 {
		return ErrNothingToExport
	}

	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph().Justification("center")
	title.AddText(documentTitle).Size("32").Bold()

	for _, msg := range history {
		label, color := modelLabel, modelLabelColor
		if msg.Role == models.RoleUser {
			label, color = userLabel, userLabelColor
		}
		doc.AddParagraph().AddText(label).Size("28").Color(color).Bold()

		for _, part := range msg.Parts {
			switch p := part.(type) {
			case models.TextPart:
				for _, line := range nonEmptyLines(p.Text) {
					doc.AddParagraph().AddText(line).Size("24")
				}
			default:
				doc.AddParagraph().AddText(attachmentNote).Color(attachmentColor).Italic()
			}
		}
	}

	_, err := doc.WriteTo(w)
	return err
}

// nonEmptyLines splits a text part on line breaks and drops blank lines, so a
// multi-paragraph reply does not collapse into one giant unwrapped paragraph.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
