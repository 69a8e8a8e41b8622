// Package lifecycle coordinates background services with process shutdown.
// A Manager hands out Handles; services watch their Handle and call Close
// when they have fully stopped.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Manager tracks registered background services and broadcasts shutdown.
type Manager struct {
	wg       sync.WaitGroup
	mu       sync.Mutex
	services map[string]bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewManager creates a lifecycle manager.
func NewManager() *Manager {
	m := &Manager{services: make(map[string]bool)}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	return m
}

// NewServiceHandle registers a named service and returns its handle.
func (m *Manager) NewServiceHandle(name string) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.services[name] {
		return nil, fmt.Errorf("lifecycle: service %q already registered", name)
	}
	m.services[name] = true
	m.wg.Add(1)

	return &Handle{
		ctx: m.ctx,
		Close: func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if !m.services[name] {
				return
			}
			delete(m.services, name)
			m.wg.Done()
		},
	}, nil
}

// Shutdown broadcasts the stop signal to every handle.
func (m *Manager) Shutdown() {
	m.cancel()
}

// WaitWithTimeout waits for all registered services to close, returning the
// names of any that are still running when the timeout elapses.
func (m *Manager) WaitWithTimeout(timeout time.Duration) []string {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		m.mu.Lock()
		defer m.mu.Unlock()
		remaining := make([]string, 0, len(m.services))
		for name := range m.services {
			remaining = append(remaining, name)
		}
		return remaining
	}
}

// Handle is the per-service shutdown controller.
type Handle struct {
	ctx context.Context
	// Close tells the manager the service has finished; defer it in the
	// service goroutine.
	Close func()
}

// Done is closed when shutdown has been broadcast.
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Sleep pauses for the duration, returning early with the context error when
// shutdown is broadcast mid-sleep.
func (h *Handle) Sleep(duration time.Duration) error {
	timer := time.NewTimer(duration)
	select {
	case <-h.ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return h.ctx.Err()
	case <-timer.C:
		return nil
	}
}
