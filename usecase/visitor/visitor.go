// Package visitor gives every browser its own view state, keyed by a session id.
package visitor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/petbuddy/domain"
	"github.com/fastygo/petbuddy/repository"
	"github.com/fastygo/petbuddy/usecase"
	"github.com/fastygo/petbuddy/usecase/site"
)

// Visit is the outcome of one request against a visitor session.
type Visit struct {
	SessionID string               `json:"session_id"`
	Created   bool                 `json:"-"`
	State     domain.StateSnapshot `json:"state"`
	// ScrollToTop asks the view to scroll to the top once.
	ScrollToTop bool `json:"scroll_to_top"`
}

type UseCase struct {
	sessions   repository.SessionRepository
	catalog    repository.CatalogRepository
	dispatcher *usecase.Dispatcher
	ttl        time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

func New(sessions repository.SessionRepository, catalog repository.CatalogRepository, dispatcher *usecase.Dispatcher, ttl time.Duration, logger *zap.Logger) *UseCase {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if dispatcher == nil {
		dispatcher = usecase.NewSiteDispatcher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		sessions:   sessions,
		catalog:    catalog,
		dispatcher: dispatcher,
		ttl:        ttl,
		now:        time.Now,
		logger:     logger,
	}
}

// WithClock replaces the time source; intended for tests.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	if now != nil {
		uc.now = now
	}
	return uc
}

// Dispatch applies action to the visitor's state. A missing or expired session
// is replaced by a fresh one before the action runs.
func (uc *UseCase) Dispatch(ctx context.Context, sessionID string, action domain.Action) (*Visit, error) {
	employees, err := uc.employees(ctx)
	if err != nil {
		return nil, err
	}

	var (
		snapshot domain.StateSnapshot
		scrolled bool
	)
	session, created, err := uc.withSession(ctx, sessionID, func(s *domain.Session) error {
		scrolled = false
		store := site.Restore(employees, s.State, site.EffectsFunc(func() { scrolled = true }))
		if err := uc.dispatcher.Dispatch(store, action); err != nil {
			return err
		}
		s.State = store.State()
		if scrolled {
			s.ScrollPending = true
		}
		snapshot = store.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("action applied",
		zap.String("session_id", session.ID),
		zap.String("action", string(action.Type)),
		zap.Stringer("page", snapshot.Page),
	)
	return &Visit{SessionID: session.ID, Created: created, State: snapshot, ScrollToTop: scrolled}, nil
}

// View returns the state to render and consumes a pending scroll request.
func (uc *UseCase) View(ctx context.Context, sessionID string) (*Visit, error) {
	return uc.read(ctx, sessionID, true)
}

// Snapshot returns the state without consuming a pending scroll request.
func (uc *UseCase) Snapshot(ctx context.Context, sessionID string) (*Visit, error) {
	return uc.read(ctx, sessionID, false)
}

// End discards the visitor's session. Unknown ids yield ErrSessionNotFound.
func (uc *UseCase) End(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

func (uc *UseCase) read(ctx context.Context, sessionID string, consume bool) (*Visit, error) {
	employees, err := uc.employees(ctx)
	if err != nil {
		return nil, err
	}

	var (
		snapshot domain.StateSnapshot
		scroll   bool
	)
	session, created, err := uc.withSession(ctx, sessionID, func(s *domain.Session) error {
		snapshot = site.Restore(employees, s.State, nil).Snapshot()
		scroll = s.ScrollPending
		if consume {
			s.ScrollPending = false
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Visit{SessionID: session.ID, Created: created, State: snapshot, ScrollToTop: scroll}, nil
}

func (uc *UseCase) withSession(ctx context.Context, sessionID string, fn func(*domain.Session) error) (*domain.Session, bool, error) {
	now := uc.now()
	if sessionID != "" {
		session, err := uc.sessions.Update(ctx, sessionID, func(s *domain.Session) error {
			if s.IsExpired(now) {
				return domain.ErrSessionNotFound
			}
			s.Touch(now, uc.ttl)
			return fn(s)
		})
		if err == nil {
			return session, false, nil
		}
		if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, false, err
		}
	}

	session := &domain.Session{ID: uuid.NewString(), State: domain.DefaultState()}
	session.Touch(now, uc.ttl)
	if err := fn(session); err != nil {
		return nil, false, err
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, false, err
	}
	uc.logger.Debug("visitor session created", zap.String("session_id", session.ID))
	return session, true, nil
}

func (uc *UseCase) employees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := uc.catalog.Employees(ctx)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, domain.ErrReferenceData.Message, err)
	}
	return employees, nil
}
