package visitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/petbuddy/domain"
	"github.com/fastygo/petbuddy/repository"
	"github.com/fastygo/petbuddy/repository/memory"
	"github.com/fastygo/petbuddy/repository/static"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newUseCase(t *testing.T) (*UseCase, repository.SessionRepository, *fakeClock) {
	t.Helper()
	doc, err := static.Default()
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)}
	sessions := memory.NewSessionRepository()
	uc := New(sessions, static.NewCatalogRepository(doc), nil, time.Minute, nil).WithClock(clock.Now)
	return uc, sessions, clock
}

func TestViewCreatesSessionWithDefaults(t *testing.T) {
	uc, sessions, _ := newUseCase(t)
	ctx := context.Background()

	visit, err := uc.View(ctx, "")
	require.NoError(t, err)

	assert.True(t, visit.Created)
	assert.NotEmpty(t, visit.SessionID)
	assert.Equal(t, domain.PageHome, visit.State.Page)
	assert.False(t, visit.State.DarkMode)
	assert.Equal(t, "", visit.State.SearchTerm)
	assert.Len(t, visit.State.Employees, 6)
	assert.False(t, visit.ScrollToTop)

	count, err := sessions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatchKeepsStatePerSession(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	first, err := uc.View(ctx, "")
	require.NoError(t, err)
	second, err := uc.View(ctx, "")
	require.NoError(t, err)
	require.NotEqual(t, first.SessionID, second.SessionID)

	_, err = uc.Dispatch(ctx, first.SessionID, domain.ToggleTheme())
	require.NoError(t, err)
	visit, err := uc.Dispatch(ctx, first.SessionID, domain.SetSearch("chen"))
	require.NoError(t, err)

	assert.False(t, visit.Created)
	assert.Equal(t, first.SessionID, visit.SessionID)
	assert.True(t, visit.State.DarkMode)
	require.Len(t, visit.State.Employees, 1)
	assert.Equal(t, "Marcus Chen", visit.State.Employees[0].Name)

	other, err := uc.Snapshot(ctx, second.SessionID)
	require.NoError(t, err)
	assert.False(t, other.State.DarkMode)
	assert.Len(t, other.State.Employees, 6)
}

func TestScrollRequestIsOneShot(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	visit, err := uc.Dispatch(ctx, "", domain.SetPage("Products"))
	require.NoError(t, err)
	assert.True(t, visit.ScrollToTop)
	id := visit.SessionID

	snap, err := uc.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.True(t, snap.ScrollToTop, "snapshot does not consume")

	view, err := uc.View(ctx, id)
	require.NoError(t, err)
	assert.True(t, view.ScrollToTop)
	assert.Equal(t, domain.PageProducts, view.State.Page)

	view, err = uc.View(ctx, id)
	require.NoError(t, err)
	assert.False(t, view.ScrollToTop)
}

func TestNotFoundNavigationDoesNotScroll(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	visit, err := uc.Dispatch(ctx, "", domain.SetPage("Settings"))
	require.NoError(t, err)
	assert.Equal(t, domain.PageNotFound, visit.State.Page)
	assert.False(t, visit.ScrollToTop)

	view, err := uc.View(ctx, visit.SessionID)
	require.NoError(t, err)
	assert.False(t, view.ScrollToTop)
	assert.Equal(t, domain.PageNotFound, view.State.Page)
}

func TestExpiredSessionIsReplaced(t *testing.T) {
	uc, _, clock := newUseCase(t)
	ctx := context.Background()

	visit, err := uc.Dispatch(ctx, "", domain.ToggleTheme())
	require.NoError(t, err)

	clock.now = clock.now.Add(30 * time.Second)
	still, err := uc.Snapshot(ctx, visit.SessionID)
	require.NoError(t, err)
	assert.Equal(t, visit.SessionID, still.SessionID)
	assert.True(t, still.State.DarkMode)

	clock.now = clock.now.Add(2 * time.Minute)
	fresh, err := uc.Snapshot(ctx, visit.SessionID)
	require.NoError(t, err)
	assert.True(t, fresh.Created)
	assert.NotEqual(t, visit.SessionID, fresh.SessionID)
	assert.False(t, fresh.State.DarkMode)
}

func TestUnknownSessionIsReplaced(t *testing.T) {
	uc, _, _ := newUseCase(t)

	visit, err := uc.View(context.Background(), "not-a-session")
	require.NoError(t, err)
	assert.True(t, visit.Created)
	assert.NotEqual(t, "not-a-session", visit.SessionID)
}

func TestDispatchUnknownAction(t *testing.T) {
	uc, sessions, _ := newUseCase(t)
	ctx := context.Background()

	visit, err := uc.View(ctx, "")
	require.NoError(t, err)

	_, err = uc.Dispatch(ctx, visit.SessionID, domain.Action{Type: "JUMP"})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	stored, err := sessions.Get(ctx, visit.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultState(), stored.State)
}

func TestEnd(t *testing.T) {
	uc, sessions, _ := newUseCase(t)
	ctx := context.Background()

	visit, err := uc.View(ctx, "")
	require.NoError(t, err)
	require.NoError(t, uc.End(ctx, visit.SessionID))

	_, err = sessions.Get(ctx, visit.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = uc.End(ctx, visit.SessionID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestEndUnknownSession(t *testing.T) {
	uc, _, _ := newUseCase(t)

	err := uc.End(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

type brokenCatalog struct{}

func (brokenCatalog) Employees(context.Context) ([]domain.Employee, error) {
	return nil, errors.New("disk on fire")
}

func (brokenCatalog) Plans(context.Context) ([]domain.ProductPlan, error) {
	return nil, errors.New("disk on fire")
}

func TestCatalogFailureIsInternal(t *testing.T) {
	uc := New(memory.NewSessionRepository(), brokenCatalog{}, nil, time.Minute, nil)

	_, err := uc.View(context.Background(), "")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInternal))
}
