package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asrlabs/advisor/backend/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidRole     = errors.New("invalid message role")
)

// Service owns all conversation state for the lifetime of the process.
// Sessions are never evicted; memory grows with the number of distinct
// conversations until restart.
type Service struct {
	preamble string

	mu       sync.RWMutex
	sessions map[string]chat.Session
	messages map[string][]chat.Message
}

// NewService bootstraps the in-memory conversation store. The preamble is
// injected as the first system message of every fresh session.
func NewService(preamble string) *Service {
	return &Service{
		preamble: preamble,
		sessions: make(map[string]chat.Session),
		messages: make(map[string][]chat.Message),
	}
}

// GetOrCreate resolves the session for id, creating a fresh one when id is
// empty or unknown. It never fails; the returned flag reports creation. The
// transcript comes back as a snapshot copy.
func (s *Service) GetOrCreate(_ context.Context, id string) (chat.Session, []chat.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, created := s.resolveLocked(id)
	return session, s.snapshotLocked(session.ID), created
}

// StartTurn performs the mutating half of a chat turn as one atomic
// sequence: resolve or create the session, inject the system preamble into
// an empty transcript, append the user message, and return a snapshot of
// the full transcript. The snapshot is what the LLM call should see; the
// store lock is not held across that call.
func (s *Service) StartTurn(_ context.Context, id, userContent string) (chat.Session, []chat.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, created := s.resolveLocked(id)
	if len(s.messages[session.ID]) == 0 && s.preamble != "" {
		s.appendLocked(session.ID, chat.RoleSystem, s.preamble)
	}
	s.appendLocked(session.ID, chat.RoleUser, userContent)

	return session, s.snapshotLocked(session.ID), created
}

// Append adds a message to an existing session. An unknown id is a broken
// caller contract, not a user error: sessions are always created before
// anything is appended to them.
func (s *Service) Append(_ context.Context, id string, role chat.Role, content string) (chat.Message, error) {
	if !role.Valid() {
		return chat.Message{}, ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return chat.Message{}, ErrSessionNotFound
	}
	return s.appendLocked(id, role, content), nil
}

// History returns a copy of the stored transcript in insertion order.
func (s *Service) History(_ context.Context, id string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sessions[id]; !ok {
		return nil, ErrSessionNotFound
	}
	return s.snapshotLocked(id), nil
}

// resolveLocked looks up id or registers a new session under a fresh uuid.
// Caller holds the write lock.
func (s *Service) resolveLocked(id string) (chat.Session, bool) {
	if id != "" {
		if session, ok := s.sessions[id]; ok {
			return session, false
		}
	}

	newID := uuid.NewString()
	for {
		if _, taken := s.sessions[newID]; !taken {
			break
		}
		newID = uuid.NewString()
	}

	session := chat.Session{
		ID:        newID,
		CreatedAt: time.Now().UTC(),
	}
	s.sessions[session.ID] = session
	s.messages[session.ID] = make([]chat.Message, 0, 16)
	return session, true
}

func (s *Service) appendLocked(id string, role chat.Role, content string) chat.Message {
	message := chat.Message{
		ID:        uuid.NewString(),
		SessionID: id,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.messages[id] = append(s.messages[id], message)
	return message
}

func (s *Service) snapshotLocked(id string) []chat.Message {
	stored := s.messages[id]
	copied := make([]chat.Message, len(stored))
	copy(copied, stored)
	return copied
}
