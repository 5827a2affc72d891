package editor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const DefaultAutosaveInterval = 30 * time.Second

// Autosaver saves a Controller's dirty state on a fixed period. A tick that
// lands while a save is in flight is dropped, not queued.
type Autosaver struct {
	ctrl     *Controller
	clock    clockwork.Clock
	interval time.Duration

	ticks     sync.WaitGroup
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewAutosaver(ctrl *Controller, clock clockwork.Clock, interval time.Duration) *Autosaver {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Autosaver{
		ctrl:      ctrl,
		clock:     clock,
		interval:  interval,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Run blocks until ctx is cancelled or Stop is called, then waits for any
// save a tick started.
func (a *Autosaver) Run(ctx context.Context) {
	defer close(a.stoppedCh)
	defer a.ticks.Wait()

	ticker := a.clock.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-a.stopCh:
			return
		case <-ticker.Chan():
			// Saves run off the tick loop so a slow request never delays the next tick.
			a.ticks.Add(1)
			go func() {
				defer a.ticks.Done()
				a.tick(ctx)
			}()
		}
	}
}

func (a *Autosaver) tick(ctx context.Context) {
	ran, err := a.ctrl.TrySave(ctx)
	if err != nil {
		slog.DebugContext(ctx, "autosave failed, will retry on next tick", "error", err)
		return
	}
	if ran {
		slog.DebugContext(ctx, "autosaved draft", "company_id", a.ctrl.companyID)
	}
}

// Stop returns once the loop has exited and no tick is still saving.
func (a *Autosaver) Stop() {
	close(a.stopCh)
	<-a.stoppedCh
}
