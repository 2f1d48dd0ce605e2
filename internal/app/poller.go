package app

import (
	"context"
	"log"
	"time"

	"github.com/calebmd/porthole/internal/harbor"
	"github.com/calebmd/porthole/internal/progress"
	"github.com/calebmd/porthole/internal/state"
)

const (
	defaultPollInterval = 15 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches the background reconciliation loop. It returns
// immediately.
//
// Status is fetched every tick; it carries the authoritative devmode flag the
// optimistic toggle reconciles against. The queue is only fetched while the
// socket is down, since a live socket already pushes queue snapshots and a
// polled copy would race them. Consecutive failures stretch the cadence up to
// maxBackoff so a dead daemon is not hammered.
func StartPoller(ctx context.Context, store *state.Store, sess *session, tracker *progress.Tracker, socketLive func() bool, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, store, sess.current(), tracker, socketLive)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, client harbor.StatusFetcher, tracker *progress.Tracker, socketLive func() bool) {
	status, err := client.FetchStatus(ctx)
	if err != nil {
		store.RecordError(err)
		log.Printf("status poll failed: %v", err)
		return
	}
	store.SetDaemonStatus(status)

	if socketLive() {
		return
	}
	queue, err := client.FetchQueue(ctx)
	if err != nil {
		store.RecordError(err)
		log.Printf("queue poll failed: %v", err)
		return
	}
	store.SetQueue(queue)
	tracker.Observe(queue)
}

// calculateBackoff returns the poll delay after the given number of
// consecutive failures: the base interval doubled per failure, capped at
// maxBackoff. Zero failures returns the base interval unchanged.
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
