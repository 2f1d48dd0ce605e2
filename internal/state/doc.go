// Package state owns all shared client state for porthole.
//
// The Store is the single writer-side container. Every data source funnels
// into it through a named mutation method: the poller via SetQueue,
// SetDaemonStatus, and RecordError; the socket layer via SetConnState and the
// event handlers; the key handler via BeginDevModeToggle. Consumers never see
// the live struct - Snapshot returns a defensive copy with the queue, tasks,
// flash, and error cloned, so the UI can hold one across a frame without
// racing the next update.
//
// Failed refreshes keep the previous data. RecordError only swaps the error
// and bumps ConsecutiveFailures; the queue from the last good read stays
// visible until something better arrives. IsOffline treats two consecutive
// failures with no live socket as the daemon being unreachable.
//
// Watch exposes a coalescing change signal: a one-slot channel that receives
// after every mutation. Any number of updates between reads collapse to a
// single signal, so a slow consumer re-renders once with the latest snapshot
// instead of queueing stale frames.
package state
