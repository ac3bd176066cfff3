package utils

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// BackgroundProcessManager owns the bot's long-running goroutines (session
// sweepers, metrics server) and stops them together on shutdown.
type BackgroundProcessManager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	processes map[string]*ProcessInfo
}

type ProcessInfo struct {
	Name        string
	Description string
	StartedAt   time.Time
	cancel      context.CancelFunc
}

func NewBackgroundProcessManager(parent context.Context) *BackgroundProcessManager {
	ctx, cancel := context.WithCancel(parent)
	return &BackgroundProcessManager{
		ctx:       ctx,
		cancel:    cancel,
		processes: make(map[string]*ProcessInfo),
	}
}

// StartProcess runs fn in its own goroutine. A process with the same name is replaced.
func (m *BackgroundProcessManager) StartProcess(name, description string, fn func(ctx context.Context)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.processes[name]; exists {
		slog.Warn("Process already running, replacing it",
			slog.String("type", "sys"),
			slog.String("process", name))
		m.stopLocked(name)
	}

	ctx, cancel := context.WithCancel(m.ctx)
	info := &ProcessInfo{
		Name:        name,
		Description: description,
		StartedAt:   time.Now(),
		cancel:      cancel,
	}
	m.processes[name] = info

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.forget(name, info)
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Background process panic",
					slog.String("type", "error"),
					slog.String("process", name),
					slog.Any("panic", r))
			}
		}()

		slog.Debug("Background process started",
			slog.String("type", "sys"),
			slog.String("process", name),
			slog.String("description", description))

		fn(ctx)
	}()
}

// forget removes the entry unless it was already replaced.
func (m *BackgroundProcessManager) forget(name string, info *ProcessInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.processes[name]; ok && cur == info {
		cur.cancel()
		delete(m.processes, name)
	}
}

func (m *BackgroundProcessManager) StopProcess(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked(name)
}

func (m *BackgroundProcessManager) stopLocked(name string) {
	if p, exists := m.processes[name]; exists {
		p.cancel()
		delete(m.processes, name)
	}
}

// Shutdown cancels every process and waits up to timeout for them to return.
func (m *BackgroundProcessManager) Shutdown(timeout time.Duration) error {
	slog.Info("Shutting down background processes",
		slog.String("type", "sys"),
		slog.Int("process_count", m.ProcessCount()))

	m.cancel()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		slog.Warn("Timeout waiting for background processes to stop",
			slog.String("type", "sys"),
			slog.Duration("timeout", timeout))
		return context.DeadlineExceeded
	}
}

func (m *BackgroundProcessManager) ProcessCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.processes)
}

// Processes lists running processes by name.
func (m *BackgroundProcessManager) Processes() []ProcessInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ProcessInfo, 0, len(m.processes))
	for _, p := range m.processes {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (m *BackgroundProcessManager) Context() context.Context {
	return m.ctx
}
