package repository

import (
	"context"
	"time"

	"github.com/fastygo/petbuddy/domain"
)

type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	// Update applies fn to the stored session atomically. The change is kept only if fn returns nil.
	Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	// Sweep removes every session expired at now and returns how many were removed.
	Sweep(ctx context.Context, now time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}
