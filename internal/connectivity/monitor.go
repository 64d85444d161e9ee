// Package connectivity tracks whether the journal client can currently reach
// the server.
//
// The [Monitor] is passive: it never probes the network itself. A background
// watcher (see internal/workers) feeds it with [Monitor.SetOnline] and the
// rest of the client reads the cached state with [Monitor.IsOnline] or
// reacts to transitions through [Monitor.Subscribe].
package connectivity

import (
	"sync"

	"github.com/MKhiriev/go-journal/internal/logger"
)

// Monitor holds the current online flag and notifies subscribers on
// transitions. It is safe for concurrent use.
type Monitor struct {
	mu          sync.RWMutex
	online      bool
	nextID      int
	subscribers map[int]func(online bool)

	logger *logger.Logger
}

// NewMonitor returns a monitor whose initial state is initial.
func NewMonitor(initial bool, logger *logger.Logger) *Monitor {
	return &Monitor{
		online:      initial,
		subscribers: make(map[int]func(online bool)),
		logger:      logger,
	}
}

// IsOnline returns the last recorded state.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// SetOnline records the platform signal. Subscribers are called only when the
// state actually changes, outside of the monitor lock.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online

	callbacks := make([]func(bool), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		callbacks = append(callbacks, fn)
	}
	m.mu.Unlock()

	if online {
		m.logger.Info().Str("func", "Monitor.SetOnline").Msg("connection restored")
	} else {
		m.logger.Warn().Str("func", "Monitor.SetOnline").Msg("connection lost, working offline")
	}

	for _, fn := range callbacks {
		fn(online)
	}
}

// Subscribe registers fn for state transitions and returns a function that
// removes it. Calling the returned function more than once is a no-op.
func (m *Monitor) Subscribe(fn func(online bool)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
		})
	}
}
