package sweep

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Purger interface {
	PurgeStale(ctx context.Context) (int64, error)
}

// Sweeper drives the periodic device log retention job. Runs happen
// inline on the ticker goroutine, so a slow sweep delays the next one
// instead of overlapping it.
type Sweeper struct {
	purger   Purger
	interval time.Duration
}

func New(purger Purger, interval time.Duration) *Sweeper {
	return &Sweeper{
		purger:   purger,
		interval: interval,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	zap.L().Info("Starting sweeper", zap.Duration("interval", s.interval))

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Sweeper has been stopped")
			return
		case <-t.C:
			if _, err := s.purger.PurgeStale(ctx); err != nil {
				zap.L().Error("failed to purge stale device logs", zap.Error(err))
			}
		}
	}
}
