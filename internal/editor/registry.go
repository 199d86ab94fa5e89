package editor

import (
	"context"
	"sync"
	"time"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry tracks the open editor sessions of this process. Idle sessions
// are dropped lazily on the next Create.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	store  DocumentStore
	gate   CredentialGate
	ttl    time.Duration
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewRegistry(store DocumentStore, gate CredentialGate, ttl time.Duration, logger *zap.SugaredLogger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		store:    store,
		gate:     gate,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Create opens a session on the currently persisted document.
func (r *Registry) Create(ctx context.Context, lang domain.Language) (*Session, error) {
	session := NewSession(uuid.NewString(), r.store, r.gate, lang, r.logger)
	session.touch(r.now())

	if err := session.Load(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	r.sessions[session.ID()] = session

	return session, nil
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	session, ok := r.sessions[id]
	r.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	session.touch(r.now())

	return session, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)

	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *Registry) sweepLocked() {
	if r.ttl <= 0 {
		return
	}

	now := r.now()
	for id, session := range r.sessions {
		if session.expired(now, r.ttl) {
			delete(r.sessions, id)
			r.logger.Infow("editor session expired", "session_id", id)
		}
	}
}
