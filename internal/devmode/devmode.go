// Package devmode models the developer-mode toggle as optimistic local state
// reconciled against authoritative daemon reads.
//
// A toggle is sent over the socket with no delivery guarantee, so the local
// state flips immediately and marks itself as switching. The flag settles
// when any authoritative read arrives - the ack message, a status poll, a
// post-connect refresh. A lost ack is the expected steady-state path here,
// not an error: reconciliation covers it without retries.
package devmode

// State is the local view of the daemon's developer-mode flag. Switching is
// true while an optimistic toggle awaits confirmation.
type State struct {
	Enabled   bool
	Switching bool
}

// BeginToggle returns the optimistic state for a requested toggle. The caller
// is responsible for actually sending the devmode:set message.
func BeginToggle(s State, desired bool) State {
	return State{Enabled: desired, Switching: true}
}

// Reconcile merges an authoritative read into local state. The authoritative
// value always wins and always clears Switching, including when a daemon push
// lands while a local toggle is still in flight - the daemon's answer
// supersedes whatever the in-flight toggle was hoping for.
func Reconcile(s State, enabled bool) State {
	return State{Enabled: enabled, Switching: false}
}
