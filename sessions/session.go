package sessions

import (
	"context"
	"fmt"
	"strings"

	"github.com/ongiao-ai/tutorchat/models"
)

// Send runs one complete turn: build the pending turn from the input, append
// the display message, call the model with priorHistory + the API message,
// and append the resulting MODEL message. Failures never escape as errors in
// the transcript sense: attachment and upstream problems each append a fixed
// apology turn and Send still returns that message. The only error returns
// are input rejection (ErrEmptyMessage) and the busy gate (ErrBusy).
func (s *TutorSession) Send(ctx context.Context, text string, att *Attachment) (models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" && att == nil {
		return models.Message{}, ErrEmptyMessage
	}

	if !s.state.CompareAndSwap(stateIdle, stateSending) {
		return models.Message{}, ErrBusy
	}
	// The loading flag must clear on every exit path, including panics out of
	// the extraction libraries.
	defer s.state.Store(stateIdle)

	// Snapshot before the display append: the outbound request is always
	// priorHistory + api message, never the current display history. That
	// keeps the filename-framing text out of the model's view when the two
	// representations diverge.
	prior, err := s.Store.FetchHistory(s.ConversationID)
	if err != nil {
		// Answering without the conversation context would silently change
		// the reply's meaning; degrade to the apology turn instead.
		s.Logger.Printf("Error fetching history for %s: %v", s.ConversationID, err)
		apology := models.NewTextMessage(models.RoleModel, UpstreamApology)
		s.append(apology)
		return apology, nil
	}

	turn, err := BuildTurn(text, att)
	if err != nil {
		s.Logger.Printf("Error processing file for %s: %v", s.ConversationID, err)
		if len(turn.Display.Parts) > 0 {
			s.append(turn.Display)
		}
		apology := models.NewTextMessage(models.RoleModel, fmt.Sprintf(FileApologyFormat, att.Filename))
		s.append(apology)
		return apology, nil
	}

	s.append(turn.Display)

	reply, err := s.Model.Generate_Reply(ctx, prior, turn.API)
	if err != nil {
		s.Logger.Printf("Failed to get model response for %s: %v", s.ConversationID, err)
		apology := models.NewTextMessage(models.RoleModel, UpstreamApology)
		s.append(apology)
		return apology, nil
	}

	replyText := reply.Text
	if replyText == "" {
		replyText = EmptyReplyFallback
	}
	msg := MergeCitations(models.NewTextMessage(models.RoleModel, replyText), reply.Sources)
	s.append(msg)
	return msg, nil
}

// Loading reports whether a turn is currently in flight.
func (s *TutorSession) Loading() bool {
	return s.state.Load() == stateSending
}

// History returns the display transcript, greeting included.
func (s *TutorSession) History() ([]models.Message, error) {
	return s.Store.FetchHistory(s.ConversationID)
}

func (s *TutorSession) append(msg models.Message) {
	if err := s.Store.AppendMessage(s.ConversationID, msg); err != nil {
		s.Logger.Printf("Error saving message for %s: %v", s.ConversationID, err)
	}
}
