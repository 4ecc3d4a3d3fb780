package server

import (
	"time"

	"github.com/robfig/cron/v3"
)

// StartSweeper schedules periodic eviction of idle sessions. A session is
// idle when it has no reply in flight and has not been used for the
// configured TTL. No-op when the sweep spec is empty.
func (s *Server) StartSweeper() {
	if s.Config.SweepSpec == "" {
		return
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.Config.SweepSpec, s.Sweep); err != nil {
		s.Logger.Printf("Failed to schedule session sweep: %v", err)
		s.cron = nil
		return
	}
	s.cron.Start()
}

// StopSweeper stops the sweep scheduler if one is running.
func (s *Server) StopSweeper() {
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
}

// Sweep evicts sessions idle for longer than the TTL and deletes their
// stored transcripts.
func (s *Server) Sweep() {
	cutoff := time.Now().Add(-s.Config.IdleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for conversationID, entry := range s.sessions {
		if entry.lastActive.After(cutoff) || entry.session.Loading() {
			continue
		}
		if err := s.Config.Store.DeleteConversation(conversationID); err != nil {
			s.Logger.Printf("Failed to delete conversation %s: %v", conversationID, err)
			continue
		}
		delete(s.sessions, conversationID)
		s.Logger.Printf("Swept idle conversation %s", conversationID)
	}
}
