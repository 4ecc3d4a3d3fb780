package models

import (
	"encoding/json"
	"fmt"
)

// Role identifies the speaker of a message. The values match what the
// Generative Language API expects on the wire.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Part is the content-part sum type. A part is either a TextPart or an
// ImagePart, never a struct with both fields maybe-set.
type Part interface {
	part()
}

// TextPart holds a UTF-8 string. It may contain markdown or LaTeX markers;
// those are opaque here and belong to the renderer.
type TextPart struct {
	Text string `json:"text"`
}

// ImagePart holds an inline image: a MIME type and the base64-encoded bytes.
// The producer (attachments.EncodeImage) guarantees the payload decodes to
// valid bytes of that type; it is not re-validated here.
type ImagePart struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

func (TextPart) part()  {}
func (ImagePart) part() {}

// Message is one turn in a conversation: a role fixed at creation and an
// ordered, non-empty sequence of parts. Messages are immutable once appended
// to a store.
type Message struct {
	Role  Role
	Parts []Part
}

// NewTextMessage builds a single-part text message.
func NewTextMessage(role Role, text string) Message {
	return Message{Role: role, Parts: []Part{TextPart{Text: text}}}
}

// FirstText returns the text of the first text part, or "" if the message has
// none.
func (m Message) FirstText() string {
	for _, p := range m.Parts {
		if tp, ok := p.(TextPart); ok {
			return tp.Text
		}
	}
	return ""
}

// wirePart mirrors the original client's JSON shape for a content part:
// {"text": "..."} or {"inlineData": {"mimeType": "...", "data": "..."}}.
type wirePart struct {
	Text       *string    `json:"text,omitempty"`
	InlineData *ImagePart `json:"inlineData,omitempty"`
}

type wireMessage struct {
	Role  Role       `json:"role"`
	Parts []wirePart `json:"parts"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	wm := wireMessage{Role: m.Role, Parts: make([]wirePart, 0, len(m.Parts))}
	for _, p := range m.Parts {
		switch v := p.(type) {
		case TextPart:
			text := v.Text
			wm.Parts = append(wm.Parts, wirePart{Text: &text})
		case ImagePart:
			inline := v
			wm.Parts = append(wm.Parts, wirePart{InlineData: &inline})
		default:
			return nil, fmt.Errorf("unknown part type %T", p)
		}
	}
	return json.Marshal(wm)
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var wm wireMessage
	if err := json.Unmarshal(data, &wm); err != nil {
		return err
	}
	m.Role = wm.Role
	m.Parts = make([]Part, 0, len(wm.Parts))
	for i, p := range wm.Parts {
		switch {
		case p.Text != nil:
			m.Parts = append(m.Parts, TextPart{Text: *p.Text})
		case p.InlineData != nil:
			m.Parts = append(m.Parts, *p.InlineData)
		default:
			return fmt.Errorf("part %d carries neither text nor inlineData", i)
		}
	}
	return nil
}
