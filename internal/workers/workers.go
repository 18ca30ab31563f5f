package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers assembles the daemon workers from cfg. The vault watcher is
// only added when file vault watching is enabled.
func NewWorkers(cfg config.Workers, services *service.Services, logger *logger.Logger) *Workers {
	ws := []Worker{NewSyncWorker(services.SyncJob, cfg.SyncInterval)}
	if cfg.WatchFileVaults {
		ws = append(ws, NewVaultWatcher(services.VaultService, services.SyncCoordinator, cfg.WatchDebounce, logger))
	}
	return &Workers{workers: ws, logger: logger}
}

// Run starts every worker in order. If one fails to start, the workers
// already running are stopped and the error is returned.
func (w *Workers) Run(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := worker.Run(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				w.workers[j].Stop()
			}
			return fmt.Errorf("start worker %d: %w", i, err)
		}
	}
	return nil
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// syncWorker runs the periodic sync job.
type syncWorker struct {
	job      service.SyncJob
	interval time.Duration
}

func NewSyncWorker(job service.SyncJob, interval time.Duration) Worker {
	return &syncWorker{job: job, interval: interval}
}

func (w *syncWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.interval)
	return nil
}

func (w *syncWorker) Stop() {
	w.job.Stop()
}
