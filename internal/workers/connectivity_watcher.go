// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-journal/internal/adapter"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

// defaultProbeInterval is used when the configured interval is not positive.
const defaultProbeInterval = 15 * time.Second

// HealthChecker probes the server. adapter.ServerAdapter satisfies it.
type HealthChecker interface {
	Health(ctx context.Context) (models.Health, error)
}

// StatusSetter receives probe results. *connectivity.Monitor satisfies it.
type StatusSetter interface {
	SetOnline(online bool)
}

type connectivityWatcher struct {
	checker  HealthChecker
	status   StatusSetter
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewConnectivityWatcher returns a worker that probes checker right away and
// then every interval, reporting the result to status. Only a transport
// failure counts as offline: a server answering with an error is reachable.
func NewConnectivityWatcher(checker HealthChecker, status StatusSetter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &connectivityWatcher{checker: checker, status: status, interval: interval, logger: logger}
}

func (c *connectivityWatcher) Start(ctx context.Context) {
	c.Stop()

	c.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		t := time.NewTicker(c.interval)
		defer t.Stop()

		c.probe(watchCtx)
		for {
			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
				c.probe(watchCtx)
			}
		}
	}()
}

func (c *connectivityWatcher) probe(ctx context.Context) {
	_, err := c.checker.Health(ctx)
	if ctx.Err() != nil {
		return
	}

	if err != nil && !errors.Is(err, adapter.ErrServerUnreachable) {
		c.logger.Warn().Err(err).Str("func", "connectivityWatcher.probe").Msg("server answered health check with an error")
	}
	c.status.SetOnline(!errors.Is(err, adapter.ErrServerUnreachable))
}

func (c *connectivityWatcher) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}
