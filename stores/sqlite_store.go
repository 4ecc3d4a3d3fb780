package stores

import (
	"encoding/json"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ongiao-ai/tutorchat/models"
)

// MessageRecord is one transcript row. PartsJSON holds the JSON-marshaled
// parts array of the message.
type MessageRecord struct {
	gorm.Model
	ConversationID string `gorm:"index;not null"`
	Sequence       int    `gorm:"not null"`
	Role           string `gorm:"not null"`
	PartsJSON      string `gorm:"type:json"`
}

// ConversationRecord holds metadata for a transcript.
type ConversationRecord struct {
	gorm.Model
	ConversationID string `gorm:"uniqueIndex;not null"`
	MessageCount   int    `gorm:"default:0"`
}

// SQLiteStore implements MessageStore on a SQLite database. The default
// connection is ":memory:", so nothing outlives the process; a file path is
// accepted for debugging but the application never configures one.
type SQLiteStore struct {
	db   *gorm.DB
	path string
}

// NewSQLiteStore creates a new SQLite store from a configuration.
func NewSQLiteStore(config *StoreConfig) (*SQLiteStore, error) {
	if config.Type != "sqlite" {
		return nil, fmt.Errorf("invalid store type for SQLite store: %s", config.Type)
	}
	path := config.Connection
	if path == "" {
		path = ":memory:"
	}
	store := &SQLiteStore{path: path}
	if err := store.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	return store, nil
}

// NewSQLiteStoreDefault creates an in-memory SQLite store.
func NewSQLiteStoreDefault() (*SQLiteStore, error) {
	return NewSQLiteStore(NewStoreConfig("sqlite", ":memory:"))
}

func (s *SQLiteStore) connect() error {
	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	s.db = db

	if err := s.db.AutoMigrate(&ConversationRecord{}, &MessageRecord{}); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) CreateConversation(conversationID string) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	var count int64
	if err := s.db.Model(&ConversationRecord{}).Where("conversation_id = ?", conversationID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for conversation: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("conversation %s already exists", conversationID)
	}
	return s.db.Create(&ConversationRecord{ConversationID: conversationID}).Error
}

func (s *SQLiteStore) DeleteConversation(conversationID string) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if err := s.db.Where("conversation_id = ?", conversationID).Delete(&MessageRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	return s.db.Where("conversation_id = ?", conversationID).Delete(&ConversationRecord{}).Error
}

func (s *SQLiteStore) ListConversations() ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	var ids []string
	if err := s.db.Model(&ConversationRecord{}).Pluck("conversation_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return ids, nil
}

func (s *SQLiteStore) AppendMessage(conversationID string, msg models.Message) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	partsJSON, err := marshalParts(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message parts: %w", err)
	}

	var count int64
	if err := s.db.Model(&MessageRecord{}).Where("conversation_id = ?", conversationID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count existing messages: %w", err)
	}

	record := MessageRecord{
		ConversationID: conversationID,
		Sequence:       int(count) + 1,
		Role:           string(msg.Role),
		PartsJSON:      partsJSON,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return s.db.Model(&ConversationRecord{}).
		Where("conversation_id = ?", conversationID).
		UpdateColumn("message_count", gorm.Expr("message_count + 1")).Error
}

func (s *SQLiteStore) FetchHistory(conversationID string) ([]models.Message, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	var records []MessageRecord
	if err := s.db.Where("conversation_id = ?", conversationID).Order("sequence asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	history := make([]models.Message, 0, len(records))
	for _, rec := range records {
		msg, err := unmarshalRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to decode message %d: %w", rec.ID, err)
		}
		history = append(history, msg)
	}
	return history, nil
}

func (s *SQLiteStore) CountMessages(conversationID string) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database connection is nil")
	}
	var count int64
	if err := s.db.Model(&MessageRecord{}).Where("conversation_id = ?", conversationID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return int(count), nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLiteStore) Ping() error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func marshalParts(msg models.Message) (string, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	var envelope struct {
		Parts json.RawMessage `json:"parts"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", err
	}
	return string(envelope.Parts), nil
}

func unmarshalRecord(rec MessageRecord) (models.Message, error) {
	raw := fmt.Sprintf(`{"role":%q,"parts":%s}`, rec.Role, rec.PartsJSON)
	var msg models.Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return models.Message{}, err
	}
	return msg, nil
}
