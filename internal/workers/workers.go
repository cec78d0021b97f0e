package workers

import (
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers returns the startup workers of a vault described by cfg.
func NewWorkers(cfg config.App, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewTempSweeper(cfg.TempDir, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
