// Package memory keeps visitor sessions in process memory. Everything is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fastygo/petbuddy/domain"
	"github.com/fastygo/petbuddy/repository"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewSessionRepository creates an empty in-memory session repository.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]domain.Session),
	}
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if session == nil || session.ID == "" {
		return domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepository) Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if err := fn(&session); err != nil {
		return nil, err
	}
	r.sessions[id] = session
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *sessionRepository) Sweep(ctx context.Context, now time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.IsExpired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *sessionRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}
