package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"careerline.app/studio/common/logger"
)

// SessionJanitor deletes expired sessions on a fixed interval.
type SessionJanitor struct {
	purger   SessionPurger
	clock    clockwork.Clock
	interval time.Duration

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewSessionJanitor(purger SessionPurger, clock clockwork.Clock, interval time.Duration) *SessionJanitor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SessionJanitor{
		purger:    purger,
		clock:     clock,
		interval:  interval,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (j *SessionJanitor) Run(ctx context.Context) {
	defer close(j.stoppedCh)

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "careerline.worker.janitor",
	})

	ticker := j.clock.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-j.stopCh:
			return
		case <-ticker.Chan():
			if err := j.purger.DeleteExpired(ctx); err != nil {
				slog.ErrorContext(ctx, "session purge failed", "error", err)
				continue
			}
			slog.DebugContext(ctx, "expired sessions purged")
		}
	}
}

func (j *SessionJanitor) Stop() {
	close(j.stopCh)
	<-j.stoppedCh
}
