package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers wires the client background workers: the connectivity
// watcher first, so the sync job sees the probed state.
func NewClientWorkers(
	cfg config.ClientWorkers,
	checker HealthChecker,
	status StatusSetter,
	syncJob service.ClientSyncJob,
	logger *logger.Logger,
) *Workers {
	return &Workers{workers: []Worker{
		NewConnectivityWatcher(checker, status, cfg.ProbeInterval, logger),
		NewSyncWorker(syncJob, cfg.SyncInterval),
	}}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

// NewSyncWorker adapts a [service.ClientSyncJob] to the [Worker] interface.
func NewSyncWorker(job service.ClientSyncJob, interval time.Duration) Worker {
	return &syncWorker{job: job, interval: interval}
}

func (s *syncWorker) Start(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *syncWorker) Stop() {
	s.job.Stop()
}
