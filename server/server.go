// Package server exposes the tutoring chat over HTTP and WebSocket using gin.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tutorchat "github.com/ongiao-ai/tutorchat"
	"github.com/ongiao-ai/tutorchat/export"
	"github.com/ongiao-ai/tutorchat/models"
	"github.com/ongiao-ai/tutorchat/sessions"
	"github.com/robfig/cron/v3"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// sessionEntry tracks a live session and when it was last used, for sweeping.
type sessionEntry struct {
	session    *sessions.TutorSession
	lastActive time.Time
}

// Server routes chat traffic to per-conversation sessions.
type Server struct {
	Config *tutorchat.Config
	Model  sessions.Model
	Logger *log.Logger

	mu       sync.Mutex
	sessions map[string]*sessionEntry
	cron     *cron.Cron
}

// New creates a server from a configuration and a model.
func New(config *tutorchat.Config, model sessions.Model) *Server {
	return &Server{
		Config:   config,
		Model:    model,
		Logger:   log.New(os.Stdout, "[Server] ", log.LstdFlags),
		sessions: make(map[string]*sessionEntry),
	}
}

// session returns the live session for a conversation, creating one on first
// use. New conversations get the greeting seeded by the session constructor.
func (s *Server) session(conversationID string) *sessions.TutorSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.sessions[conversationID]; ok {
		entry.lastActive = time.Now()
		return entry.session
	}

	session := sessions.NewTutorSession(conversationID, s.Model, s.Config.Store, nil)
	s.sessions[conversationID] = &sessionEntry{
		session:    session,
		lastActive: time.Now(),
	}
	return session
}

// lookup returns an existing session without creating one, refreshing its
// idle clock on hit. Reads must not mint conversations.
func (s *Server) lookup(conversationID string) (*sessions.TutorSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[conversationID]
	if !ok {
		return nil, false
	}
	entry.lastActive = time.Now()
	return entry.session, true
}

// touch refreshes a session's idle clock. Long-lived websocket connections
// resolve their session once, so every inbound frame has to touch it or the
// sweeper would evict a conversation that is actively chatting.
func (s *Server) touch(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.sessions[conversationID]; ok {
		entry.lastActive = time.Now()
	}
}

// Routes builds the gin engine with all API routes registered.
func (s *Server) Routes() *gin.Engine {
	router := gin.Default()
	r := router.Group("/api/v1")

	r.POST("/conversations", s.handleCreateConversation)
	r.POST("/chat/:conversationID", s.handleChat)
	r.GET("/chat/history/:conversationID", s.handleHistory)
	r.GET("/chat/export/:conversationID", s.handleExport)
	r.GET("/ws/:conversationID", s.handleWebSocket)

	return router
}

// Run starts the sweeper and serves until the listener fails.
func (s *Server) Run() error {
	s.StartSweeper()
	defer s.StopSweeper()

	s.Logger.Printf("Listening on %s", s.Config.Addr)
	return s.Routes().Run(s.Config.Addr)
}

func (s *Server) handleCreateConversation(c *gin.Context) {
	conversationID := uuid.NewString()
	s.session(conversationID)
	c.JSON(http.StatusOK, gin.H{"conversationID": conversationID})
}

func (s *Server) handleChat(c *gin.Context) {
	conversationID := c.Param("conversationID")
	text := c.PostForm("text")

	var att *sessions.Attachment
	fileHeader, err := c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fileHeader != nil {
		mimeType := fileHeader.Header.Get("Content-Type")
		if !models.AcceptedMimeType(mimeType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported file type: %s", mimeType)})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()
		att = &sessions.Attachment{
			Filename: fileHeader.Filename,
			MimeType: mimeType,
			Reader:   file,
		}
	}

	session := s.session(conversationID)
	reply, err := session.Send(c.Request.Context(), text, att)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": "a reply is already in progress"})
		case errors.Is(err, sessions.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func (s *Server) handleHistory(c *gin.Context) {
	session, ok := s.lookup(c.Param("conversationID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}

	history, err := session.History()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (s *Server) handleExport(c *gin.Context) {
	session, ok := s.lookup(c.Param("conversationID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}

	history, err := session.History()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.Export(history, &buf); err != nil {
		if errors.Is(err, export.ErrNothingToExport) {
			c.JSON(http.StatusPreconditionFailed, gin.H{"error": "nothing to export yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := export.Filename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, docxContentType, buf.Bytes())
}
