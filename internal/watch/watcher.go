package watch

import (
	"context"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"devicequery"
)

// DefaultInterval is used when a Watcher has no Interval.
const DefaultInterval = 50 * time.Millisecond

// Watcher polls Source every Interval.
type Watcher struct {
	Source   devicequery.DeviceQuery
	Interval time.Duration
	Logger   golog.Logger
}

// Run calls fn with the first snapshot and no events, then with every later
// snapshot and the events since the one before it. It returns nil once ctx is
// done. fn runs on the polling goroutine; a slow fn delays the next poll.
func (w *Watcher) Run(ctx context.Context, fn func(Snapshot, []Event)) error {
	if w.Source == nil {
		return errors.New("watcher has no source")
	}
	interval := w.Interval
	if interval == 0 {
		interval = DefaultInterval
	}
	if interval < 0 {
		return errors.Errorf("invalid poll interval %s", interval)
	}
	logger := w.Logger
	if logger == nil {
		logger = golog.Global().Named("watch")
	}

	prev := Take(w.Source)
	fn(prev, nil)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	logger.Debugw("watching", "interval", interval)
	for {
		if ctx.Err() != nil {
			logger.Debugw("watch stopped", "reason", ctx.Err())
			return nil
		}
		select {
		case <-ctx.Done():
			logger.Debugw("watch stopped", "reason", ctx.Err())
			return nil
		case <-ticker.C:
		}
		cur := Take(w.Source)
		fn(cur, Diff(prev, cur))
		prev = cur
	}
}
