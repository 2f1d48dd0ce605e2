// Package ui implements the porthole terminal interface on bubbletea.
//
// The Model renders four stacked sections: a status header, the aggregate
// progress line, the queue table, and a command bar. It never mutates shared
// state directly; reads go through state.Store snapshots and writes go back
// through store methods or the socket.
//
// # Update loop
//
// The model subscribes to the store with a long-running command that blocks
// on Store.Watch and resolves to storeChangedMsg. Each storeChangedMsg pulls
// a fresh snapshot, rebuilds the table rows, and re-arms the watch. Store
// notifications coalesce, so a burst of socket events costs one re-render.
//
// # Lifecycle triggers
//
// Three paths force a reconnect through the socket manager: tea.FocusMsg
// (terminal regained focus, possibly after a suspend that killed the
// transport silently), tea.ResumeMsg (process continued after SIGTSTP), and
// the manual r key. Init issues a non-forced connect; the manager dedupes
// whatever arrives first.
//
// # Keys
//
// j/k navigate the queue table, d toggles developer mode optimistically,
// r forces a reconnect, T cycles the color theme and persists it to prefs,
// q or ctrl+c quits.
package ui
