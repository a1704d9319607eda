// Package session exposes the conversation engine at a request/response
// boundary: one exchange per inbound message, with a rendered transcript.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/masalawok/orderbot/internal/conversation"
	"github.com/masalawok/orderbot/pkg/logging"
)

// ErrNotFound is returned for unknown session ids.
var ErrNotFound = errors.New("session: not found")

// Entry is one displayed transcript line.
type Entry struct {
	Author string `json:"author"` // "user" or "bot"
	Text   string `json:"text"`
}

// Snapshot is the caller-facing view of a session after an exchange.
type Snapshot struct {
	SessionID  string    `json:"session_id"`
	Reply      string    `json:"reply"`
	Transcript []Entry   `json:"transcript"`
	StartedAt  time.Time `json:"started_at"`
}

type session struct {
	id        string
	startedAt time.Time

	// mu serializes exchanges: two messages for the same session must never
	// run concurrently against the same conversation.
	mu         sync.Mutex
	conv       conversation.Conversation
	transcript []Entry
}

// Manager owns all live sessions. Each session holds its own conversation
// value; sessions share nothing but the store underneath the engine.
type Manager struct {
	engine *conversation.Engine
	logger *logging.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewManager creates an empty session manager.
func NewManager(engine *conversation.Engine, logger *logging.Logger) *Manager {
	if engine == nil {
		panic("session: engine required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Manager{
		engine:   engine,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// Start opens a new session and returns the greeting transcript.
func (m *Manager) Start(ctx context.Context) (*Snapshot, error) {
	conv, greeting, err := m.engine.Start(ctx)
	if err != nil {
		return nil, err
	}

	s := &session{
		id:         uuid.NewString(),
		startedAt:  time.Now().UTC(),
		conv:       conv,
		transcript: []Entry{{Author: "bot", Text: greeting.Content}},
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.logger.Info("session started", "session_id", s.id)
	return snapshot(s, greeting.Content), nil
}

// Post runs one exchange against the session's conversation.
func (m *Manager) Post(ctx context.Context, sessionID, text string) (*Snapshot, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, reply, err := m.engine.HandleMessage(ctx, s.conv, text)
	if err != nil {
		return nil, err
	}
	s.conv = conv
	s.transcript = append(s.transcript,
		Entry{Author: "user", Text: text},
		Entry{Author: "bot", Text: reply.Content},
	)
	return snapshot(s, reply.Content), nil
}

// End resets the session to a fresh conversation and greeting, equivalent to
// starting over under the same id.
func (m *Manager) End(ctx context.Context, sessionID string) (*Snapshot, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, greeting, err := m.engine.Reset(ctx)
	if err != nil {
		return nil, err
	}
	s.conv = conv
	s.transcript = []Entry{{Author: "bot", Text: greeting.Content}}

	m.logger.Info("session reset", "session_id", sessionID)
	return snapshot(s, greeting.Content), nil
}

func (m *Manager) lookup(sessionID string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func snapshot(s *session, reply string) *Snapshot {
	transcript := make([]Entry, len(s.transcript))
	copy(transcript, s.transcript)
	return &Snapshot{
		SessionID:  s.id,
		Reply:      reply,
		Transcript: transcript,
		StartedAt:  s.startedAt,
	}
}
