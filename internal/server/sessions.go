package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/season-radar/internal/agent"
)

const (
	// defaultSessionTTL is how long an idle chat session survives.
	defaultSessionTTL = 30 * time.Minute
	// sweepInterval is how often expired sessions are collected.
	sweepInterval = 5 * time.Minute
)

// ChatSession owns one conversation. The agent keeps history, so turns are
// serialized with a mutex.
type ChatSession struct {
	ID       string
	agent    *agent.Agent
	mu       sync.Mutex
	lastUsed time.Time // guarded by the store mutex
}

// Run executes one conversational turn on this session.
func (cs *ChatSession) Run(ctx context.Context, message string) (string, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.agent.RunTurn(ctx, message)
}

// SessionStore keeps chat sessions in memory and expires idle ones.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*ChatSession
	ttl      time.Duration

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
}

// NewSessionStore creates a store whose sessions expire after ttl of inactivity.
func NewSessionStore(ttl time.Duration) *SessionStore {
	store := &SessionStore{
		sessions: make(map[string]*ChatSession),
		ttl:      ttl,
	}

	store.sweepTicker = time.NewTicker(sweepInterval)
	store.sweepStop = make(chan struct{})
	go store.sweep()

	return store
}

// GetOrCreate returns the live session with the given ID, refreshing its
// expiry. An empty, unknown, or expired ID starts a fresh conversation under
// a new ID, so callers should always read the ID off the returned session.
func (st *SessionStore) GetOrCreate(id string, build func() *agent.Agent) *ChatSession {
	st.mu.Lock()
	defer st.mu.Unlock()

	if id != "" {
		if session, ok := st.sessions[id]; ok {
			session.lastUsed = time.Now()
			return session
		}
	}

	session := &ChatSession{
		ID:       uuid.New().String(),
		agent:    build(),
		lastUsed: time.Now(),
	}
	st.sessions[session.ID] = session
	return session
}

// Len reports the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// sweep collects expired sessions until Stop is called.
func (st *SessionStore) sweep() {
	for {
		select {
		case <-st.sweepTicker.C:
			st.expire(time.Now())
		case <-st.sweepStop:
			return
		}
	}
}

// expire removes sessions idle longer than the store TTL.
func (st *SessionStore) expire(now time.Time) {
	cutoff := now.Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	for id, session := range st.sessions {
		if session.lastUsed.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}

// Stop terminates the background sweeper.
func (st *SessionStore) Stop() {
	st.sweepTicker.Stop()
	close(st.sweepStop)
}
