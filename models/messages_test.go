package models

import (
	"encoding/json"
	"testing"
)

func TestMessageJSON_TextRoundTrip(t *testing.T) {
	msg := NewTextMessage(RoleUser, "2 + 2 = ?")
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"role":"user","parts":[{"text":"2 + 2 = ?"}]}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, string(data))
	}

	var back Message
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Role != RoleUser || back.FirstText() != "2 + 2 = ?" {
		t.Errorf("Round trip lost content: %+v", back)
	}
}

func TestMessageJSON_InlineDataRoundTrip(t *testing.T) {
	msg := Message{
		Role: RoleUser,
		Parts: []Part{
			TextPart{Text: "what is this?"},
			ImagePart{MimeType: "image/png", Data: "aGVsbG8="},
		},
	}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back Message
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(back.Parts) != 2 {
		t.Fatalf("Expected 2 parts, got %d", len(back.Parts))
	}
	img, ok := back.Parts[1].(ImagePart)
	if !ok {
		t.Fatalf("Expected second part to be ImagePart, got %T", back.Parts[1])
	}
	if img.MimeType != "image/png" || img.Data != "aGVsbG8=" {
		t.Errorf("Image part corrupted: %+v", img)
	}
}

func TestMessageJSON_RejectsAmbiguousPart(t *testing.T) {
	var msg Message
	err := json.Unmarshal([]byte(`{"role":"user","parts":[{}]}`), &msg)
	if err == nil {
		t.Error("Expected error for part with neither text nor inlineData")
	}
}

func TestPendingTurn_SameTurn(t *testing.T) {
	text := NewTextMessage(RoleUser, "hello")
	if !(PendingTurn{Display: text, API: text}).SameTurn() {
		t.Error("Identical display/api should be the same turn")
	}

	split := PendingTurn{
		Display: NewTextMessage(RoleUser, "file note"),
		API:     NewTextMessage(RoleUser, "extracted content"),
	}
	if split.SameTurn() {
		t.Error("Diverging display/api should not be the same turn")
	}
}

func TestAcceptedMimeType(t *testing.T) {
	cases := []struct {
		mime string
		want bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"image/webp", true},
		{"application/pdf", true},
		{"application/msword", true},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{"image/gif", false},
		{"text/plain", false},
		{"application/zip", false},
		{" Image/PNG ", true},
	}
	for _, c := range cases {
		if got := AcceptedMimeType(c.mime); got != c.want {
			t.Errorf("AcceptedMimeType(%q) = %v, want %v", c.mime, got, c.want)
		}
	}
}

func TestIsImageMimeType(t *testing.T) {
	if !IsImageMimeType("image/webp") {
		t.Error("image/webp should be an image type")
	}
	if IsImageMimeType("application/pdf") {
		t.Error("application/pdf should not be an image type")
	}
}
