package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/calebmd/porthole/internal/harbor"
)

// manualScheduler lets tests drive deferrals and timers explicitly.
type manualScheduler struct {
	mu       sync.Mutex
	deferred []func()
	timers   []*manualTimer
}

type manualTimer struct {
	d       time.Duration
	fn      func()
	stopped bool
}

func (s *manualScheduler) Defer(fn func()) {
	s.mu.Lock()
	s.deferred = append(s.deferred, fn)
	s.mu.Unlock()
}

func (s *manualScheduler) After(d time.Duration, fn func()) func() {
	t := &manualTimer{d: d, fn: fn}
	s.mu.Lock()
	s.timers = append(s.timers, t)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		t.stopped = true
		s.mu.Unlock()
	}
}

// runDeferred drains the defer queue, including deferrals queued while running.
func (s *manualScheduler) runDeferred() {
	for {
		s.mu.Lock()
		if len(s.deferred) == 0 {
			s.mu.Unlock()
			return
		}
		fn := s.deferred[0]
		s.deferred = s.deferred[1:]
		s.mu.Unlock()
		fn()
	}
}

// fireTimers runs every armed timer that has not been cancelled.
func (s *manualScheduler) fireTimers() {
	s.mu.Lock()
	pending := s.timers
	s.timers = nil
	s.mu.Unlock()
	for _, t := range pending {
		s.mu.Lock()
		stopped := t.stopped
		s.mu.Unlock()
		if !stopped {
			t.fn()
		}
	}
}

func (s *manualScheduler) pendingDeferred() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.deferred)
}

func items(pairs ...harbor.QueueItem) []harbor.QueueItem { return pairs }

func movie(id string) harbor.QueueItem {
	return harbor.QueueItem{ID: id, MediaType: harbor.MediaMovie}
}

func series(id string) harbor.QueueItem {
	return harbor.QueueItem{ID: id, MediaType: harbor.MediaSeries}
}

func TestTracker_CompletionFires(t *testing.T) {
	sched := &manualScheduler{}
	var changes []*Flash
	tr := NewTracker(sched, func(f *Flash) { changes = append(changes, f) })

	tr.Observe(items(movie("1"), series("2")))
	tr.Observe(items(series("2")))
	sched.runDeferred()

	f := tr.Flash()
	if f == nil || f.Theme != ThemeMovie {
		t.Fatalf("Flash = %#v, want movie flash", f)
	}
	if len(changes) != 1 || changes[0] == nil || changes[0].Theme != ThemeMovie {
		t.Fatalf("onChange calls = %#v, want one movie flash", changes)
	}
}

func TestTracker_FirstObservationNeverFires(t *testing.T) {
	sched := &manualScheduler{}
	tr := NewTracker(sched, nil)

	tr.Observe(items(movie("1"), series("2")))
	sched.runDeferred()

	if tr.Flash() != nil {
		t.Fatal("flash fired on first observation")
	}
}

func TestTracker_NoFlashOnGrowth(t *testing.T) {
	sched := &manualScheduler{}
	tr := NewTracker(sched, nil)

	tr.Observe(items(movie("1")))
	tr.Observe(items(movie("1"), series("2")))

	if sched.pendingDeferred() != 0 {
		t.Fatal("growth queued a flash")
	}
	if tr.Flash() != nil {
		t.Fatal("growth produced a flash")
	}
}

func TestTracker_NoFlashOnSubstitution(t *testing.T) {
	sched := &manualScheduler{}
	tr := NewTracker(sched, nil)

	// Same size, different identities: re-ordering or replacement, not
	// completion.
	tr.Observe(items(movie("1")))
	tr.Observe(items(series("2")))

	if sched.pendingDeferred() != 0 {
		t.Fatal("substitution queued a flash")
	}
}

func TestTracker_MixedRemovalCollapsesToBoth(t *testing.T) {
	sched := &manualScheduler{}
	var changes []*Flash
	tr := NewTracker(sched, func(f *Flash) { changes = append(changes, f) })

	tr.Observe(items(movie("1"), series("2")))
	tr.Observe(nil)
	sched.runDeferred()

	f := tr.Flash()
	if f == nil || f.Theme != ThemeBoth {
		t.Fatalf("Flash = %#v, want a single both flash", f)
	}
	if len(changes) != 1 {
		t.Fatalf("onChange fired %d times, want exactly once", len(changes))
	}
}

func TestTracker_FlashDecays(t *testing.T) {
	sched := &manualScheduler{}
	var changes []*Flash
	tr := NewTracker(sched, func(f *Flash) { changes = append(changes, f) })

	tr.Observe(items(movie("1")))
	tr.Observe(nil)
	sched.runDeferred()

	if tr.Flash() == nil {
		t.Fatal("no flash to decay")
	}

	sched.fireTimers()
	if tr.Flash() != nil {
		t.Fatal("flash survived its decay timer")
	}
	if len(changes) != 2 || changes[1] != nil {
		t.Fatalf("onChange calls = %#v, want flash then nil", changes)
	}
}

func TestTracker_NewFlashSupersedesAndRestartsDecay(t *testing.T) {
	sched := &manualScheduler{}
	tr := NewTracker(sched, nil)

	tr.Observe(items(movie("1"), series("2"), series("3")))
	tr.Observe(items(series("2"), series("3")))
	sched.runDeferred()

	first := sched.timers[0]

	tr.Observe(items(series("3")))
	sched.runDeferred()

	f := tr.Flash()
	if f == nil || f.Theme != ThemeTV {
		t.Fatalf("Flash = %#v, want tv flash after supersede", f)
	}

	// The first decay timer was cancelled; even firing its callback by hand
	// must not clear the newer flash.
	if !first.stopped {
		t.Fatal("superseded decay timer was not cancelled")
	}
	first.fn()
	if tr.Flash() == nil {
		t.Fatal("stale decay cleared the superseding flash")
	}

	sched.fireTimers()
	if tr.Flash() != nil {
		t.Fatal("flash survived the restarted decay timer")
	}
}

func TestTracker_PrevReplacedEveryCycle(t *testing.T) {
	sched := &manualScheduler{}
	tr := NewTracker(sched, nil)

	// Growth cycles still replace the retained set, so the next shrink is
	// measured against the latest snapshot, never an older one.
	tr.Observe(items(movie("1"), movie("2")))
	tr.Observe(items(movie("1"), movie("2"), series("3")))
	tr.Observe(items(movie("1"), movie("2")))
	sched.runDeferred()

	f := tr.Flash()
	if f == nil || f.Theme != ThemeTV {
		t.Fatalf("Flash = %#v, want tv flash for the series that left", f)
	}
}

func TestTracker_StopCancelsDecay(t *testing.T) {
	sched := &manualScheduler{}
	tr := NewTracker(sched, nil)

	tr.Observe(items(movie("1")))
	tr.Observe(nil)
	sched.runDeferred()

	tr.Stop()
	if len(sched.timers) != 1 || !sched.timers[0].stopped {
		t.Fatal("Stop did not cancel the decay timer")
	}
}
