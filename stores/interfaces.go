package stores

import (
	"github.com/ongiao-ai/tutorchat/models"
)

// MessageStore is the append-only transcript log behind a conversation. It is
// the single source of truth for what the UI displays. Messages are never
// updated or reordered; the only whole-conversation mutation is the sweep of
// an idle conversation.
type MessageStore interface {
	// Conversation operations
	CreateConversation(conversationID string) error
	DeleteConversation(conversationID string) error
	ListConversations() ([]string, error)

	// Message operations
	AppendMessage(conversationID string, msg models.Message) error
	FetchHistory(conversationID string) ([]models.Message, error)
	CountMessages(conversationID string) (int, error)

	// Connection management
	Close() error
	Ping() error
}

// StoreConfig holds configuration for transcript stores.
type StoreConfig struct {
	Type       string `json:"type"`       // "memory", "sqlite"
	Connection string `json:"connection"` // connection string (sqlite path, typically ":memory:")
}

// NewStoreConfig creates a new store configuration.
func NewStoreConfig(storeType, connection string) *StoreConfig {
	return &StoreConfig{
		Type:       storeType,
		Connection: connection,
	}
}
