package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/species-sync/internal/service"
)

// SyncWorker polls the server through a ClientSyncJob every interval.
type SyncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func NewSyncWorker(job service.ClientSyncJob, interval time.Duration) *SyncWorker {
	return &SyncWorker{job: job, interval: interval}
}

func (s *SyncWorker) Run(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *SyncWorker) Stop() {
	s.job.Stop()
}
