package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/calebmd/porthole/internal/devmode"
	"github.com/calebmd/porthole/internal/harbor"
	"github.com/calebmd/porthole/internal/progress"
	"github.com/calebmd/porthole/internal/socket"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Queue               []harbor.QueueItem
	Stats               progress.DownloadStats
	Flash               *progress.Flash
	DevMode             devmode.State
	Conn                socket.State
	Running             bool
	Version             string
	Tasks               []harbor.TaskStatus
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when neither the socket nor the poller is getting
// through to the daemon.
func (s Snapshot) IsOffline() bool {
	return s.Conn != socket.StateConnected && s.ConsecutiveFailures >= 2
}

// Store is the single owned container for live client state. All mutation
// funnels through its named methods; consumers read immutable snapshots and
// subscribe to change notifications via Watch.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	watch    chan struct{}
}

// NewStore returns an empty store ready for use.
func NewStore() *Store {
	return &Store{watch: make(chan struct{}, 1)}
}

// SetQueue replaces the queue wholesale and recomputes the derived stats.
// A successful update clears the failure counters.
func (s *Store) SetQueue(items []harbor.QueueItem) {
	s.mu.Lock()
	s.snapshot.Queue = cloneQueue(items)
	s.snapshot.Stats = progress.Project(items)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	s.mu.Unlock()
	s.notify()
}

// RecordError notes a failed refresh. Previous data is kept; only the error
// and failure counter change.
func (s *Store) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
	s.mu.Unlock()
	s.notify()
}

// SetConnState records the socket lifecycle state.
func (s *Store) SetConnState(cs socket.State) {
	s.mu.Lock()
	s.snapshot.Conn = cs
	s.mu.Unlock()
	s.notify()
}

// SetFlash publishes or clears the transient completion flash.
func (s *Store) SetFlash(f *progress.Flash) {
	s.mu.Lock()
	s.snapshot.Flash = f
	s.mu.Unlock()
	s.notify()
}

// SetDaemonStatus records daemon-level fields from an authoritative status
// read and reconciles the devmode flag against it.
func (s *Store) SetDaemonStatus(status *harbor.StatusResponse) {
	if status == nil {
		return
	}
	s.mu.Lock()
	s.snapshot.Running = status.Running
	s.snapshot.Version = status.Version
	s.snapshot.Tasks = cloneTasks(status.Tasks)
	s.snapshot.DevMode = devmode.Reconcile(s.snapshot.DevMode, status.DevMode)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	s.mu.Unlock()
	s.notify()
}

// SetTask updates one background task's state in place.
func (s *Store) SetTask(task harbor.TaskStatus) {
	s.mu.Lock()
	replaced := false
	for i := range s.snapshot.Tasks {
		if s.snapshot.Tasks[i].Name == task.Name {
			s.snapshot.Tasks[i] = task
			replaced = true
			break
		}
	}
	if !replaced {
		s.snapshot.Tasks = append(s.snapshot.Tasks, task)
	}
	s.mu.Unlock()
	s.notify()
}

// BeginDevModeToggle applies the optimistic local state for a toggle and
// returns the desired value the caller should send to the daemon.
func (s *Store) BeginDevModeToggle() bool {
	s.mu.Lock()
	desired := !s.snapshot.DevMode.Enabled
	s.snapshot.DevMode = devmode.BeginToggle(s.snapshot.DevMode, desired)
	s.mu.Unlock()
	s.notify()
	return desired
}

// ReconcileDevMode merges an authoritative devmode read (ack message or
// status poll) into local state.
func (s *Store) ReconcileDevMode(enabled bool) {
	s.mu.Lock()
	s.snapshot.DevMode = devmode.Reconcile(s.snapshot.DevMode, enabled)
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Queue = cloneQueue(s.snapshot.Queue)
	snap.Tasks = cloneTasks(s.snapshot.Tasks)
	if s.snapshot.Flash != nil {
		f := *s.snapshot.Flash
		snap.Flash = &f
	}
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Watch returns a channel that receives a signal whenever the snapshot
// changes. Notifications coalesce: a slow consumer sees at least one signal
// for any number of intervening updates.
func (s *Store) Watch() <-chan struct{} {
	return s.watch
}

func (s *Store) notify() {
	select {
	case s.watch <- struct{}{}:
	default:
	}
}

func cloneQueue(items []harbor.QueueItem) []harbor.QueueItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]harbor.QueueItem, len(items))
	copy(dup, items)
	return dup
}

func cloneTasks(tasks []harbor.TaskStatus) []harbor.TaskStatus {
	if len(tasks) == 0 {
		return nil
	}
	dup := make([]harbor.TaskStatus, len(tasks))
	copy(dup, tasks)
	return dup
}
