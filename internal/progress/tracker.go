package progress

import (
	"sync"
	"time"

	"github.com/calebmd/porthole/internal/harbor"
)

// FlashDuration matches the completion animation length in the UI.
const FlashDuration = 800 * time.Millisecond

// Flash is a transient completion signal: something left the queue because it
// finished. It clears itself after FlashDuration unless a newer flash
// supersedes it first.
type Flash struct {
	Theme Theme
}

// Tracker detects completions by diffing consecutive queue snapshots.
//
// It retains only the identity set of the previous snapshot. A flash fires
// when identities vanish while the set shrinks; growth and steady-state never
// fire. The tracker reports the union of what disappeared between two
// observations - simultaneous mixed removals collapse into one "both" flash
// rather than two sequential ones.
type Tracker struct {
	sched    Scheduler
	onChange func(*Flash)

	mu      sync.Mutex
	prev    map[string]harbor.MediaType
	flash   *Flash
	flashID int
	cancel  func()
}

// NewTracker builds a Tracker. onChange is invoked with the new flash when
// one fires and with nil when it decays; it may be nil.
func NewTracker(sched Scheduler, onChange func(*Flash)) *Tracker {
	return &Tracker{sched: sched, onChange: onChange}
}

// Observe compares the new snapshot against the previous one and fires a
// flash when items completed. The retained identity set is replaced
// unconditionally every cycle, so each snapshot is only ever compared to its
// immediate predecessor.
func (t *Tracker) Observe(items []harbor.QueueItem) {
	current := make(map[string]harbor.MediaType, len(items))
	for _, item := range items {
		current[item.ID] = item.MediaType
	}

	t.mu.Lock()
	prev := t.prev
	t.prev = current
	t.mu.Unlock()

	// Only shrinkage is interesting: a first observation, growth, or
	// steady-state can't mean something finished.
	if len(prev) == 0 || len(current) >= len(prev) {
		return
	}

	var movie, tv bool
	for id, media := range prev {
		if _, still := current[id]; still {
			continue
		}
		switch media {
		case harbor.MediaMovie:
			movie = true
		case harbor.MediaSeries:
			tv = true
		}
	}

	var theme Theme
	switch {
	case movie && tv:
		theme = ThemeBoth
	case movie:
		theme = ThemeMovie
	case tv:
		theme = ThemeTV
	default:
		return
	}

	// Publish on the next tick rather than mid-pass; observers may be
	// reacting to the same snapshot that produced this flash.
	t.sched.Defer(func() { t.set(Flash{Theme: theme}) })
}

// Flash returns the current flash, or nil when none is active.
func (t *Tracker) Flash() *Flash {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.flash == nil {
		return nil
	}
	f := *t.flash
	return &f
}

// Stop cancels any pending decay timer. Called on teardown so a timer can't
// fire into a destroyed scope.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.mu.Unlock()
}

func (t *Tracker) set(f Flash) {
	t.mu.Lock()
	t.flash = &f
	t.flashID++
	id := t.flashID
	if t.cancel != nil {
		// A newer flash supersedes the old one and restarts the decay.
		t.cancel()
	}
	t.cancel = t.sched.After(FlashDuration, func() { t.expire(id) })
	t.mu.Unlock()

	if t.onChange != nil {
		t.onChange(&f)
	}
}

func (t *Tracker) expire(id int) {
	t.mu.Lock()
	if id != t.flashID || t.flash == nil {
		t.mu.Unlock()
		return
	}
	t.flash = nil
	t.cancel = nil
	t.mu.Unlock()

	if t.onChange != nil {
		t.onChange(nil)
	}
}
