// Package progress derives aggregate download state from queue snapshots.
//
// Two things live here. Project is a pure reduction of a queue snapshot into
// DownloadStats: per-media counts, a 0..100 aggregate percentage, a theme
// classifier, and the paused flag. It is recomputed from scratch on every
// snapshot and keeps no state.
//
// The Tracker is the stateful half: it watches consecutive snapshots and
// fires a Flash when items vanish, which is the only observable signal that
// a transfer completed (Harbor removes finished items from the queue rather
// than marking them). The diff is deliberately coarse - it reports the union
// of media kinds that disappeared between two observations, with no attempt
// to reconstruct per-item ordering inside that window, because the frequency
// of snapshots makes finer resolution meaningless.
//
// Completion is inferred from set shrinkage only. An item that disappears
// while the queue grows or holds steady was re-ordered or replaced, not
// completed, and must not fire; snapshots are too noisy to trust anything
// but shrinkage.
//
// Flashes publish on the scheduler's next tick rather than synchronously
// inside Observe, so a consumer reacting to a snapshot update never sees a
// second state write re-enter mid-pass. Timers and deferrals go through the
// Scheduler interface; tests substitute a manual scheduler and drive both
// by hand.
package progress
