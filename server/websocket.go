package server

import (
	"bytes"
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ongiao-ai/tutorchat/models"
	"github.com/ongiao-ai/tutorchat/sessions"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is one inbound chat turn. The attachment payload is base64.
type wsRequest struct {
	Text       string `json:"text"`
	Attachment *struct {
		Filename string `json:"filename"`
		MimeType string `json:"mimeType"`
		Data     string `json:"data"`
	} `json:"attachment,omitempty"`
}

// wsWriter serializes frame writes onto a single connection.
type wsWriter struct {
	Conn   *websocket.Conn
	Logger *log.Logger
	mu     sync.Mutex
}

func (w *wsWriter) WriteLoading() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(map[string]string{"type": "loading"})
}

func (w *wsWriter) WriteMessage(message interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(map[string]interface{}{"type": "message", "message": message})
}

func (w *wsWriter) WriteDone() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(map[string]string{"type": "done"})
}

func (w *wsWriter) WriteError(message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(map[string]string{"type": "error", "error": message})
}

func (s *Server) handleWebSocket(c *gin.Context) {
	conversationID := c.Param("conversationID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session := s.session(conversationID)
	writer := &wsWriter{Conn: conn, Logger: s.Logger}

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.Logger.Printf("WebSocket error on %s: %v", conversationID, err)
			}
			break
		}

		var att *sessions.Attachment
		if req.Attachment != nil {
			if !models.AcceptedMimeType(req.Attachment.MimeType) {
				writer.WriteError("unsupported file type: " + req.Attachment.MimeType)
				continue
			}
			data, err := base64.StdEncoding.DecodeString(req.Attachment.Data)
			if err != nil {
				writer.WriteError("invalid attachment encoding")
				continue
			}
			att = &sessions.Attachment{
				Filename: req.Attachment.Filename,
				MimeType: req.Attachment.MimeType,
				Reader:   bytes.NewReader(data),
			}
		}

		// The session was resolved at upgrade time; keep the idle clock
		// moving so the sweeper never evicts a live conversation.
		s.touch(conversationID)

		writer.WriteLoading()

		reply, err := session.Send(c.Request.Context(), req.Text, att)
		if err != nil {
			switch {
			case errors.Is(err, sessions.ErrBusy):
				writer.WriteError("a reply is already in progress")
			case errors.Is(err, sessions.ErrEmptyMessage):
				writer.WriteError("message is empty")
			default:
				writer.WriteError(err.Error())
			}
			continue
		}

		writer.WriteMessage(reply)
		writer.WriteDone()
	}

	s.Logger.Printf("WebSocket session %s ended", conversationID)
}
