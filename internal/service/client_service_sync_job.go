package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/species-sync/internal/logger"
)

const (
	defaultSyncInterval = 5 * time.Minute
	maxBackoffFactor    = 8
)

type clientSyncJob struct {
	syncService ClientSyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob returns an idle job; nothing runs until Start.
func NewClientSyncJob(syncService ClientSyncService) ClientSyncJob {
	return &clientSyncJob{syncService: syncService}
}

func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.loop(jobCtx, interval)
	}()
}

func (j *clientSyncJob) loop(ctx context.Context, interval time.Duration) {
	log := logger.FromContext(ctx)
	wait := interval

	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		decision, err := j.syncService.Sync(ctx)
		if err != nil {
			wait = nextBackoff(wait, interval)
			log.Warn().Err(err).
				Str("func", "clientSyncJob.loop").
				Dur("retry_in", wait).
				Msg("background sync failed")
		} else {
			wait = interval
			log.Debug().
				Str("func", "clientSyncJob.loop").
				Stringer("decision", decision).
				Msg("background sync done")
		}
		timer.Reset(wait)
	}
}

// nextBackoff doubles the current wait, capped at maxBackoffFactor intervals.
func nextBackoff(current, interval time.Duration) time.Duration {
	next := current * 2
	if limit := interval * maxBackoffFactor; next > limit {
		return limit
	}
	return next
}

// Stop cancels the running loop and waits for it to exit. Calling it on an
// idle job is a no-op.
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
