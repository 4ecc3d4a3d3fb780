package stores

import (
	"fmt"
	"sync"

	"github.com/ongiao-ai/tutorchat/models"
)

// MemoryStore keeps transcripts in process memory. It is the default store:
// history lives for the session and is discarded with the process.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string][]models.Message
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string][]models.Message),
	}
}

func (s *MemoryStore) CreateConversation(conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.conversations[conversationID]; exists {
		return fmt.Errorf("conversation %s already exists", conversationID)
	}
	s.conversations[conversationID] = nil
	return nil
}

func (s *MemoryStore) DeleteConversation(conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, conversationID)
	return nil
}

func (s *MemoryStore) ListConversations() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.conversations))
	for id := range s.conversations {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *MemoryStore) AppendMessage(conversationID string, msg models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conversationID] = append(s.conversations[conversationID], msg)
	return nil
}

// FetchHistory returns a copy of the transcript so callers can iterate while
// a turn appends.
func (s *MemoryStore) FetchHistory(conversationID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.conversations[conversationID]
	out := make([]models.Message, len(history))
	copy(out, history)
	return out, nil
}

func (s *MemoryStore) CountMessages(conversationID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations[conversationID]), nil
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Ping() error { return nil }
