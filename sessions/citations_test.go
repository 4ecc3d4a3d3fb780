package sessions

import (
	"strings"
	"testing"

	"github.com/ongiao-ai/tutorchat/models"
)

func TestMergeCitations_AppendsLinksInOrder(t *testing.T) {
	msg := models.NewTextMessage(models.RoleModel, "Trái Đất quay quanh Mặt Trời.")
	sources := []models.Source{
		{Title: "NASA", URI: "https://nasa.gov"},
		{Title: "Wikipedia", URI: "https://vi.wikipedia.org"},
	}

	merged := MergeCitations(msg, sources)
	text := merged.FirstText()

	if !strings.Contains(text, "**Nguồn tham khảo:**") {
		t.Error("Expected references heading in merged text")
	}
	nasa := strings.Index(text, "[NASA](https://nasa.gov)")
	wiki := strings.Index(text, "[Wikipedia](https://vi.wikipedia.org)")
	if nasa == -1 || wiki == -1 {
		t.Fatalf("Expected both links, got %q", text)
	}
	if nasa > wiki {
		t.Error("Links must keep chunk order")
	}
}

func TestMergeCitations_FiltersIncompleteEntries(t *testing.T) {
	msg := models.NewTextMessage(models.RoleModel, "đáp án")
	sources := []models.Source{
		{Title: "", URI: "https://a.example"},
		{Title: "B", URI: ""},
		{Title: "C", URI: "https://c.example"},
	}

	merged := MergeCitations(msg, sources)
	text := merged.FirstText()

	if strings.Count(text, "](") != 1 {
		t.Errorf("Expected exactly 1 link, got %q", text)
	}
	if !strings.Contains(text, "[C](https://c.example)") {
		t.Errorf("Expected the complete entry to survive, got %q", text)
	}
}

func TestMergeCitations_NoCompleteEntries_Unchanged(t *testing.T) {
	msg := models.NewTextMessage(models.RoleModel, "đáp án")
	merged := MergeCitations(msg, []models.Source{{Title: "", URI: ""}})
	if merged.FirstText() != "đáp án" {
		t.Errorf("Text must be unchanged when no entry is complete, got %q", merged.FirstText())
	}

	merged = MergeCitations(msg, nil)
	if merged.FirstText() != "đáp án" {
		t.Errorf("Text must be unchanged with no sources, got %q", merged.FirstText())
	}
}

func TestMergeCitations_DoesNotDeduplicate(t *testing.T) {
	msg := models.NewTextMessage(models.RoleModel, "đáp án")
	sources := []models.Source{
		{Title: "A", URI: "https://same.example"},
		{Title: "A", URI: "https://same.example"},
	}
	merged := MergeCitations(msg, sources)
	if strings.Count(merged.FirstText(), "[A](https://same.example)") != 2 {
		t.Errorf("Repeated sources must both appear, got %q", merged.FirstText())
	}
}

func TestMergeCitations_DoesNotMutateInput(t *testing.T) {
	msg := models.NewTextMessage(models.RoleModel, "gốc")
	MergeCitations(msg, []models.Source{{Title: "A", URI: "https://a.example"}})
	if msg.FirstText() != "gốc" {
		t.Errorf("MergeCitations mutated its input: %q", msg.FirstText())
	}
}
