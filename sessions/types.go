package sessions

import (
	"context"
	"errors"
	"io"
	"log"
	"sync/atomic"

	"github.com/ongiao-ai/tutorchat/models"
	"github.com/ongiao-ai/tutorchat/stores"
)

// Model is the remote generative backend. One call per turn, no retries; a
// failed call produces exactly one synthetic error message downstream.
type Model interface {
	Generate_Reply(ctx context.Context, history []models.Message, message models.Message) (models.Reply, error)
}

// Attachment is the input-capture contract for a user-picked file. The reader
// is consumed at most once, during the turn it was submitted with.
type Attachment struct {
	Filename string
	MimeType string
	Reader   io.Reader
}

// Send states. The only legal cycle is Idle -> Sending -> Idle; a second
// concurrent Send is rejected outright rather than queued.
const (
	stateIdle int32 = iota
	stateSending
)

// ErrBusy is returned when a Send is attempted while another is in flight.
var ErrBusy = errors.New("a message is already being sent")

// ErrEmptyMessage is returned when a turn has neither text nor an attachment.
var ErrEmptyMessage = errors.New("message must carry text or an attachment")

// TutorSession orchestrates one conversation: it turns user input into a
// pending turn, maintains the transcript in the store, and talks to the
// model. Exactly one turn may be in flight at a time.
type TutorSession struct {
	ConversationID string
	Model          Model
	Store          stores.MessageStore
	Logger         *log.Logger

	state atomic.Int32
}
