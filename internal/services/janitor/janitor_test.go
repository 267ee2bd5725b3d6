package janitor

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
)

func TestSweepRemovesExpiredSessions(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	expired := &domain.Session{ID: "old"}
	expired.Touch(now.Add(-time.Hour), time.Minute)
	live := &domain.Session{ID: "live"}
	live.Touch(now, time.Minute)
	require.NoError(t, repo.Save(ctx, expired))
	require.NoError(t, repo.Save(ctx, live))

	j := New(repo, time.Hour, nil)
	j.now = func() time.Time { return now }

	status := j.Sweep()
	assert.True(t, status.Healthy)
	assert.Equal(t, 1, status.Removed)
	assert.Equal(t, 1, status.Sessions)
	assert.Equal(t, now, status.LastSweep)
	assert.Equal(t, status, j.Status())
}

func TestLiveCountsWithoutSweep(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()
	j := New(repo, time.Hour, nil)
	j.Sweep()

	for _, id := range []string{"a", "b", "c"} {
		s := &domain.Session{ID: id}
		s.Touch(time.Now(), time.Hour)
		require.NoError(t, repo.Save(ctx, s))
	}

	live, err := j.Live(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, live)
	assert.Zero(t, j.Status().Sessions)
}

func TestStartSweepsImmediately(t *testing.T) {
	j := New(memory.NewSessionRepository(), time.Hour, nil)
	j.Start()
	assert.False(t, j.Status().LastSweep.IsZero())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	j.Stop(ctx)
	j.Stop(ctx)
}

func TestScheduledSweep(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()
	j := New(repo, time.Second, nil)
	j.Start()
	defer j.Stop(ctx)

	first := j.Status().LastSweep
	assert.Eventually(t, func() bool {
		return j.Status().LastSweep.After(first)
	}, 3*time.Second, 50*time.Millisecond)
}

type failingSessions struct {
	repository.SessionRepository
}

func (failingSessions) Sweep(context.Context, time.Time) (int, error) {
	return 0, errors.New("unavailable")
}

func (failingSessions) Count(context.Context) (int, error) {
	return 0, nil
}

func TestSweepFailureMarksUnhealthy(t *testing.T) {
	j := New(failingSessions{}, time.Hour, nil)
	status := j.Sweep()
	assert.False(t, status.Healthy)
}
