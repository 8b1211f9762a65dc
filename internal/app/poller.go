package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/vatscope/vatscope/internal/state"
	"github.com/vatscope/vatscope/internal/vatsim"
)

const maxBackoff = 60 * time.Second

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the datafeed is unreachable. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, client vatsim.Fetcher, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(ctx, store, client, logger)

			delay := interval
			if failures := store.Snapshot().ConsecutiveFailures; failures > 0 {
				delay = calculateBackoff(failures, interval)
			}
			timer.Reset(delay)
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, client vatsim.Fetcher, logger *slog.Logger) {
	data, err := client.FetchData(ctx)
	if err != nil {
		store.Update(nil, err)
		if ctx.Err() == nil {
			logger.Warn("datafeed poll failed", "error", err)
		}
		return
	}
	store.Update(data, nil)
	logger.Debug("datafeed refreshed",
		"pilots", len(data.Pilots),
		"controllers", len(data.Controllers))
}

// calculateBackoff doubles the base interval per consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	delay := base
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	return delay
}
