package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-journal/internal/logger"
)

type clientSyncJob struct {
	syncService ClientSyncService
	notifier    ConnectivityNotifier

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.SyncLocalData
// on a ticker and whenever notifier reports that the connection came back.
// The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, notifier ConnectivityNotifier, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, notifier: notifier, logger: logger}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that syncs every interval and on every
// offline to online transition. If interval is zero or negative it defaults
// to 5 minutes. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	reconnected := make(chan struct{}, 1)
	unsubscribe := j.notifier.Subscribe(func(online bool) {
		if !online {
			return
		}
		select {
		case reconnected <- struct{}{}:
		default:
		}
	})

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer unsubscribe()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sync(jobCtx)
			case <-reconnected:
				j.sync(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) sync(ctx context.Context) {
	err := j.syncService.SyncLocalData(ctx)
	if err != nil && !errors.Is(err, ErrOffline) {
		j.logger.Err(err).Str("func", "clientSyncJob.sync").Msg("sync failed")
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
