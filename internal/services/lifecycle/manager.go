// Package lifecycle stops the site's components in order when the process is asked to exit.
package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ShutdownFunc stops one component within the deadline carried by ctx.
type ShutdownFunc func(ctx context.Context) error

type component struct {
	name string
	stop ShutdownFunc
}

// Manager owns the shutdown sequence: components registered last stop first.
type Manager struct {
	timeout time.Duration
	logger  *zap.Logger
	signals []os.Signal

	mu         sync.Mutex
	components []component
	stopped    bool
}

func New(timeout time.Duration, logger *zap.Logger) *Manager {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		timeout: timeout,
		logger:  logger,
		signals: []os.Signal{syscall.SIGTERM, syscall.SIGINT},
	}
}

// Register appends a component. Nil stop functions are ignored.
func (m *Manager) Register(name string, stop ShutdownFunc) {
	if stop == nil {
		return
	}
	m.mu.Lock()
	m.components = append(m.components, component{name: name, stop: stop})
	m.mu.Unlock()
}

// Shutdown stops every component once, sharing one deadline, and joins their errors.
func (m *Manager) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return nil
	}
	m.stopped = true

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	started := time.Now()
	var errs []error
	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]
		begin := time.Now()
		if err := c.stop(ctx); err != nil {
			m.logger.Error("component failed to stop", zap.String("component", c.name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		m.logger.Info("component stopped", zap.String("component", c.name), zap.Duration("took", time.Since(begin)))
	}
	m.logger.Info("shutdown complete",
		zap.Int("components", len(m.components)),
		zap.Int("failed", len(errs)),
		zap.Duration("took", time.Since(started)),
	)
	return errors.Join(errs...)
}

// Listen calls cancel on the first SIGTERM or SIGINT.
func (m *Manager) Listen(cancel context.CancelFunc) {
	if cancel == nil {
		return
	}
	received := make(chan os.Signal, 1)
	signal.Notify(received, m.signals...)

	go func() {
		defer signal.Stop(received)
		sig := <-received
		m.logger.Info("shutdown signal received", zap.Stringer("signal", sig))
		cancel()
	}()
}
