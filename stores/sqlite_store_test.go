package stores

import (
	"testing"

	"github.com/ongiao-ai/tutorchat/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStoreDefault()
	if err != nil {
		t.Fatalf("failed to create in-memory SQLite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	if err := store.CreateConversation("c1"); err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}

	userMsg := models.Message{
		Role: models.RoleUser,
		Parts: []models.Part{
			models.TextPart{Text: "nhìn giúp em hình này"},
			models.ImagePart{MimeType: "image/png", Data: "aGVsbG8="},
		},
	}
	if err := store.AppendMessage("c1", userMsg); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}
	if err := store.AppendMessage("c1", models.NewTextMessage(models.RoleModel, "đây là hình vuông")); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	history, err := store.FetchHistory("c1")
	if err != nil {
		t.Fatalf("FetchHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(history))
	}

	img, ok := history[0].Parts[1].(models.ImagePart)
	if !ok {
		t.Fatalf("Expected ImagePart, got %T", history[0].Parts[1])
	}
	if img.Data != "aGVsbG8=" {
		t.Errorf("Image payload corrupted: %q", img.Data)
	}

	count, _ := store.CountMessages("c1")
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}

func TestSQLiteStore_DeleteConversation(t *testing.T) {
	store := newTestSQLiteStore(t)
	store.CreateConversation("c1")
	store.AppendMessage("c1", models.NewTextMessage(models.RoleUser, "hi"))

	if err := store.DeleteConversation("c1"); err != nil {
		t.Fatalf("DeleteConversation failed: %v", err)
	}
	count, _ := store.CountMessages("c1")
	if count != 0 {
		t.Errorf("Expected 0 messages after delete, got %d", count)
	}
}

func TestSQLiteStore_Ping(t *testing.T) {
	store := newTestSQLiteStore(t)
	if err := store.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
