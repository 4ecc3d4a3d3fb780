package sessions

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"

	"github.com/ongiao-ai/tutorchat/models"
)

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	w := docx.New().WithDefaultTheme()
	for _, text := range paragraphs {
		w.AddParagraph().AddText(text)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		t.Fatalf("failed to build test docx: %v", err)
	}
	return buf.Bytes()
}

func TestBuildTurn_NoAttachment(t *testing.T) {
	turn, err := BuildTurn("2 + 2 = ?", nil)
	if err != nil {
		t.Fatalf("BuildTurn failed: %v", err)
	}
	if !turn.SameTurn() {
		t.Error("Display and API must be identical without an attachment")
	}
	if len(turn.API.Parts) != 1 || turn.API.FirstText() != "2 + 2 = ?" {
		t.Errorf("Unexpected parts: %+v", turn.API.Parts)
	}
	if turn.API.Role != models.RoleUser {
		t.Errorf("Expected USER role, got %s", turn.API.Role)
	}
}

func TestBuildTurn_ImageAttachment(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	turn, err := BuildTurn("hình này là gì?", &Attachment{
		Filename: "hinh.png",
		MimeType: "image/png",
		Reader:   bytes.NewReader(raw),
	})
	if err != nil {
		t.Fatalf("BuildTurn failed: %v", err)
	}
	if !turn.SameTurn() {
		t.Error("Image turns have no display/api split")
	}
	if len(turn.API.Parts) != 2 {
		t.Fatalf("Expected text + image parts, got %d", len(turn.API.Parts))
	}
	img, ok := turn.API.Parts[1].(models.ImagePart)
	if !ok {
		t.Fatalf("Expected ImagePart, got %T", turn.API.Parts[1])
	}
	if img.MimeType != "image/png" {
		t.Errorf("Expected image/png, got %s", img.MimeType)
	}
}

func TestBuildTurn_ImageOnly_NoTextPart(t *testing.T) {
	turn, err := BuildTurn("", &Attachment{
		Filename: "hinh.png",
		MimeType: "image/png",
		Reader:   bytes.NewReader([]byte{1, 2, 3}),
	})
	if err != nil {
		t.Fatalf("BuildTurn failed: %v", err)
	}
	if len(turn.API.Parts) != 1 {
		t.Fatalf("Empty text must not produce a text part, got %d parts", len(turn.API.Parts))
	}
	if _, ok := turn.API.Parts[0].(models.ImagePart); !ok {
		t.Errorf("Expected lone ImagePart, got %T", turn.API.Parts[0])
	}
}

func TestBuildTurn_DocumentAttachment_SplitsRepresentations(t *testing.T) {
	content := "Giải bài tập trang 12"
	data := buildDocx(t, content)
	turn, err := BuildTurn("thầy xem giúp em", &Attachment{
		Filename: "bai-tap.docx",
		MimeType: models.MimeDocx,
		Reader:   bytes.NewReader(data),
	})
	if err != nil {
		t.Fatalf("BuildTurn failed: %v", err)
	}
	if turn.SameTurn() {
		t.Fatal("Document turns must split display and api")
	}

	displayText := strings.Join(allTexts(turn.Display), "\n")
	apiText := strings.Join(allTexts(turn.API), "\n")

	if !strings.Contains(displayText, "bai-tap.docx") {
		t.Errorf("Display must name the file, got %q", displayText)
	}
	if strings.Contains(displayText, content) {
		t.Error("Display must never contain the extracted content")
	}
	if !strings.Contains(apiText, content) {
		t.Errorf("API message must embed the extracted content, got %q", apiText)
	}
	if !strings.Contains(apiText, fmt.Sprintf("[Dữ liệu từ tệp %q]", "bai-tap.docx")) ||
		!strings.Contains(apiText, "[Hết nội dung tệp]") {
		t.Errorf("Extracted content must sit between the fixed markers, got %q", apiText)
	}
	start := strings.Index(apiText, "[Dữ liệu từ tệp")
	end := strings.Index(apiText, "[Hết nội dung tệp]")
	mid := strings.Index(apiText, content)
	if !(start < mid && mid < end) {
		t.Error("Content must appear between the start and end markers")
	}
}

func TestBuildTurn_DocumentExtractionFailure_KeepsDisplay(t *testing.T) {
	turn, err := BuildTurn("xem giúp em", &Attachment{
		Filename: "hong.docx",
		MimeType: models.MimeDocx,
		Reader:   bytes.NewReader([]byte("not a docx")),
	})
	if err == nil {
		t.Fatal("Expected extraction error for corrupt document")
	}
	if len(turn.Display.Parts) == 0 {
		t.Error("Display message must survive an extraction failure")
	}
	if len(turn.API.Parts) != 0 {
		t.Error("API message must not be built when extraction fails")
	}
}

func allTexts(msg models.Message) []string {
	var out []string
	for _, p := range msg.Parts {
		if tp, ok := p.(models.TextPart); ok {
			out = append(out, tp.Text)
		}
	}
	return out
}
