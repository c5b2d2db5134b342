// Package session keeps per-conversation transcripts in memory so the API
// can return chat history and bound how much context a session accumulates.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxMessages bounds the transcript length per session. Older
// messages are dropped first.
const DefaultMaxMessages = 20

// Message is one transcript entry. Role is "user" or "assistant".
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type session struct {
	messages []Message
	lastSeen time.Time
}

// Store holds session transcripts. Safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]*session
	maxMessages int
	ttl         time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

// NewStore creates a session store. Sessions idle longer than ttl are swept;
// a non-positive ttl disables sweeping.
func NewStore(maxMessages int, ttl time.Duration) *Store {
	if maxMessages < 2 {
		maxMessages = DefaultMaxMessages
	}

	s := &Store{
		sessions:    make(map[string]*session),
		maxMessages: maxMessages,
		ttl:         ttl,
		stop:        make(chan struct{}),
	}

	if ttl > 0 {
		go s.sweep()
	}

	return s
}

// NewID returns a fresh session identifier.
func (s *Store) NewID() string {
	return uuid.New().String()
}

// Append records a message on the session, creating the session if needed.
// When the transcript exceeds the configured cap the oldest entries are
// dropped.
func (s *Store) Append(sessionID, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}

	sess.messages = append(sess.messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	if excess := len(sess.messages) - s.maxMessages; excess > 0 {
		sess.messages = append([]Message(nil), sess.messages[excess:]...)
	}
	sess.lastSeen = time.Now()
}

// Get returns a copy of the session transcript. The second result is false
// when the session does not exist.
func (s *Store) Get(sessionID string) ([]Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}

	out := make([]Message, len(sess.messages))
	copy(out, sess.messages)
	return out, true
}

// Clear removes the session. Clearing an unknown session is a no-op.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the background sweeper.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) sweep() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for id, sess := range s.sessions {
				if sess.lastSeen.Before(cutoff) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}
