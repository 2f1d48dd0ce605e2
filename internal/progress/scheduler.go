package progress

import "time"

// Scheduler abstracts deferred execution and one-shot timers so the tracker
// can be driven by a manual scheduler in tests. The production scheduler runs
// deferrals asynchronously, which is what keeps a flash from being published
// in the middle of the snapshot pass that produced it.
type Scheduler interface {
	// Defer runs fn after the current pass completes.
	Defer(fn func())
	// After runs fn once after d elapses and returns a cancel func.
	After(d time.Duration, fn func()) (cancel func())
}

type clockScheduler struct{}

// NewScheduler returns the real-time scheduler.
func NewScheduler() Scheduler {
	return clockScheduler{}
}

func (clockScheduler) Defer(fn func()) {
	go fn()
}

func (clockScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
