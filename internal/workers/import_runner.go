// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/models"
)

// eventBuffer keeps a slow consumer from stalling the import goroutine on
// short bursts of progress ticks.
const eventBuffer = 64

// ImportRunner executes import jobs off the calling goroutine and reports
// progress as a stream of events. Jobs are not serialized against each other.
type ImportRunner struct {
	imports service.ImportService
	logger  *logger.Logger
}

func NewImportRunner(imports service.ImportService, logger *logger.Logger) *ImportRunner {
	return &ImportRunner{
		imports: imports,
		logger:  logger,
	}
}

// Submit launches job unless ctx is already done. The returned channel
// carries one progress event per imported file, then a single done event,
// and is closed afterwards. A running job cannot be cancelled.
func (r *ImportRunner) Submit(ctx context.Context, job models.ImportJob) (<-chan models.ImportEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportNotStarted, err)
	}

	events := make(chan models.ImportEvent, eventBuffer)
	userProgress := job.Progress

	job.Progress = func(current, total int) {
		if userProgress != nil {
			userProgress(current, total)
		}
		events <- models.ImportEvent{Kind: models.ImportEventProgress, Current: current, Total: total}
	}

	runCtx := context.WithoutCancel(ctx)

	go func() {
		defer close(events)

		result, err := r.imports.Import(runCtx, job)
		if err != nil {
			r.logger.Err(err).Str("func", "ImportRunner.Submit").Str("panel", string(job.Panel)).Msg("import job failed")
		}

		events <- models.ImportEvent{
			Kind:    models.ImportEventDone,
			Current: result.Imported,
			Total:   result.Total,
			Result:  result,
			Err:     err,
		}
	}()

	return events, nil
}
