// Package tutorchat exposes the top level API for running tutoring
// conversations against a Gemini model: sessions, transcript stores, and
// the DOCX exporter.
package tutorchat

import (
	"log"

	"github.com/ongiao-ai/tutorchat/sessions"
	"github.com/ongiao-ai/tutorchat/stores"
)

// TutorSession re-exports sessions.TutorSession.
type TutorSession = sessions.TutorSession

// Attachment re-exports sessions.Attachment.
type Attachment = sessions.Attachment

// Model re-exports sessions.Model.
type Model = sessions.Model

// ErrBusy is returned by Send while a previous turn is still in flight.
var ErrBusy = sessions.ErrBusy

// NewTutorSession creates a session bound to a conversation, seeding the
// greeting when the conversation is new.
func NewTutorSession(conversationID string, model Model, store stores.MessageStore, logger *log.Logger) *TutorSession {
	return sessions.NewTutorSession(conversationID, model, store, logger)
}
