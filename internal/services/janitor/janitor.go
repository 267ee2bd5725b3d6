// Package janitor evicts expired visitor sessions in the background.
package janitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/petbuddy/repository"
)

// Status describes the last sweep. Sessions is the count right after that
// sweep; use Live for the current figure.
type Status struct {
	Sessions  int       `json:"sessions"`
	Removed   int       `json:"removed"`
	LastSweep time.Time `json:"last_sweep"`
	Healthy   bool      `json:"healthy"`
}

type Janitor struct {
	sessions repository.SessionRepository
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger
	cron     *cron.Cron

	mu        sync.RWMutex
	status    Status
	startOnce sync.Once
	stopOnce  sync.Once
}

// New schedules a sweep every interval. Intervals below one second are
// rounded up by the scheduler.
func New(sessions repository.SessionRepository, interval time.Duration, logger *zap.Logger) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	j := &Janitor{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   logger,
		cron:     cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %s", interval)
	if _, err := j.cron.AddFunc(schedule, func() { j.Sweep() }); err != nil {
		logger.Error("session janitor schedule rejected", zap.String("schedule", schedule), zap.Error(err))
	}
	return j
}

// Start runs one sweep immediately and then hands over to the scheduler.
func (j *Janitor) Start() {
	j.startOnce.Do(func() {
		j.Sweep()
		j.cron.Start()
		j.logger.Info("session janitor started", zap.Duration("interval", j.interval))
	})
}

// Stop halts the scheduler and waits for a running sweep, bounded by ctx.
func (j *Janitor) Stop(ctx context.Context) {
	j.stopOnce.Do(func() {
		stopCtx := j.cron.Stop()
		select {
		case <-stopCtx.Done():
		case <-ctx.Done():
		}
		j.logger.Info("session janitor stopped")
	})
}

func (j *Janitor) Status() Status {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.status
}

// Live counts the sessions held right now.
func (j *Janitor) Live(ctx context.Context) (int, error) {
	return j.sessions.Count(ctx)
}

// Sweep runs one eviction pass immediately.
func (j *Janitor) Sweep() Status {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	now := j.now()
	status := Status{LastSweep: now, Healthy: true}

	removed, err := j.sessions.Sweep(ctx, now)
	if err != nil {
		j.logger.Warn("session sweep failed", zap.Error(err))
		status.Healthy = false
	}
	status.Removed = removed

	count, err := j.sessions.Count(ctx)
	if err != nil {
		j.logger.Warn("session count failed", zap.Error(err))
		status.Healthy = false
	}
	status.Sessions = count

	if removed > 0 {
		j.logger.Debug("expired sessions removed", zap.Int("removed", removed), zap.Int("remaining", count))
	}

	j.mu.Lock()
	j.status = status
	j.mu.Unlock()
	return status
}
