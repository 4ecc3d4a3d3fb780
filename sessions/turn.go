package sessions

import (
	"fmt"
	"io"

	"github.com/ongiao-ai/tutorchat/attachments"
	"github.com/ongiao-ai/tutorchat/extract"
	"github.com/ongiao-ai/tutorchat/models"
)

// BuildTurn constructs the dual representation of a user turn. The attachment
// kind decides the shape, a three-way branch:
//
//   - no attachment: display == api == {USER, [text]}
//   - image: display == api == {USER, [text?, inline image]}
//   - other document: display notes the filename, api carries the extracted
//     text between fixed markers
//
// text is assumed to be trimmed already; an empty text with no attachment is
// rejected before this point.
//
// When document extraction fails, the returned turn still carries the display
// message (the user's action stays visible in the transcript) alongside the
// error.
func BuildTurn(text string, att *Attachment) (models.PendingTurn, error) {
	var textParts []models.Part
	if text != "" {
		textParts = append(textParts, models.TextPart{Text: text})
	}

	if att == nil {
		msg := models.Message{Role: models.RoleUser, Parts: textParts}
		return models.PendingTurn{Display: msg, API: msg}, nil
	}

	if models.IsImageMimeType(att.MimeType) {
		imagePart, err := attachments.EncodeImage(att.Filename, att.MimeType, att.Reader)
		if err != nil {
			return models.PendingTurn{}, err
		}
		msg := models.Message{Role: models.RoleUser, Parts: append(textParts, imagePart)}
		return models.PendingTurn{Display: msg, API: msg}, nil
	}

	display := models.Message{
		Role:  models.RoleUser,
		Parts: append(textParts, models.TextPart{Text: fmt.Sprintf(FileNoteFormat, att.Filename)}),
	}
	turn := models.PendingTurn{Display: display}

	data, err := io.ReadAll(att.Reader)
	if err != nil {
		return turn, &attachments.FileReadError{Filename: att.Filename, Err: err}
	}
	content, err := extract.Extract(data, att.MimeType)
	if err != nil {
		return turn, err
	}

	apiParts := make([]models.Part, len(textParts), len(textParts)+1)
	copy(apiParts, textParts)
	apiParts = append(apiParts, models.TextPart{
		Text: fmt.Sprintf(FileContentFormat, att.Filename, content),
	})
	turn.API = models.Message{Role: models.RoleUser, Parts: apiParts}
	return turn, nil
}
