package workers

import (
	"github.com/ekalin/fintrack/internal/config"
	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/internal/service"
	"github.com/ekalin/fintrack/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers from its
// configuration. A worker whose configuration disables it is not created.
func NewWorkers(services *service.Services, repos *store.Repositories, cfg config.Workers, logger *logger.Logger) *Workers {
	var ws []Worker

	if cfg.SyncInterval > 0 {
		ws = append(ws, newSyncWorker(services.TransactionService, repos.Users, cfg.SyncInterval, logger))
	}

	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop signals every stoppable worker to finish its current cycle and exit.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if stoppable, ok := worker.(interface{ Stop() }); ok {
			stoppable.Stop()
		}
	}
}
