package workers

import (
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// DelayedScheduler runs fire-and-forget tasks after a delay. Scheduled tasks
// cannot be cancelled and always run, even after the session that scheduled
// them is gone.
type DelayedScheduler struct {
	logger *logger.Logger
}

func NewDelayedScheduler(logger *logger.Logger) *DelayedScheduler {
	return &DelayedScheduler{logger: logger}
}

func (s *DelayedScheduler) Schedule(delay time.Duration, task func()) {
	time.AfterFunc(delay, func() {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error().Interface("panic", rec).Msg("scheduled task panicked")
			}
		}()
		task()
	})
}
