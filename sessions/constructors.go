package sessions

import (
	"log"
	"os"

	"github.com/ongiao-ai/tutorchat/models"
	"github.com/ongiao-ai/tutorchat/stores"
)

// NewTutorSession creates a session over an existing or new conversation.
// A brand-new conversation is seeded with the fixed greeting so the
// transcript always opens with a MODEL turn.
func NewTutorSession(conversationID string, model Model, store stores.MessageStore, logger *log.Logger) *TutorSession {
	if logger == nil {
		logger = log.New(os.Stdout, "[Session "+conversationID+"] ", log.LstdFlags)
	}

	s := &TutorSession{
		ConversationID: conversationID,
		Model:          model,
		Store:          store,
		Logger:         logger,
	}

	count, err := store.CountMessages(conversationID)
	if err != nil {
		logger.Printf("Error counting messages for %s: %v", conversationID, err)
		return s
	}
	if count == 0 {
		// CreateConversation may fail if the row already exists with zero
		// messages; the greeting append is what matters.
		if err := store.CreateConversation(conversationID); err != nil {
			logger.Printf("Conversation record for %s: %v", conversationID, err)
		}
		if err := store.AppendMessage(conversationID, models.NewTextMessage(models.RoleModel, Greeting)); err != nil {
			logger.Printf("Error seeding greeting for %s: %v", conversationID, err)
		}
	}
	return s
}
