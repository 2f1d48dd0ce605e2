// Package app is the composition root for porthole.
//
// Run wires the pieces together and blocks until the context cancels:
//
//  1. Load the porthole config and user prefs
//  2. Build the Harbor HTTP client and the shared state.Store
//  3. Register socket event handlers (queue, devmode, task)
//  4. Start the socket manager, the reconciliation poller, and the
//     config-file watcher
//  5. Hand everything to ui.Run
//
// # Data flow
//
// Two sources feed the store. The socket pushes full queue snapshots and
// devmode/task events as they happen; the poller fetches /api/status on every
// tick and falls back to fetching /api/queue only while the socket is down.
// Both paths route queue snapshots through the completion tracker so a flash
// fires no matter which transport delivered the shrink.
//
// The poll cadence stretches with consecutive failures (calculateBackoff) so
// a stopped daemon is probed gently, and snaps back to the configured
// interval on the first success.
//
// # Config reload
//
// A watcher on the config file re-parses it on change, swaps the Harbor
// client inside the session, and forces a socket reconnect so the next dial
// targets the new address. Reload failures are logged and the previous
// config stays in effect.
//
// # Error handling
//
// Fatal errors (bad config, unparseable address) abort Run. Poll failures
// are recorded in the store and logged; the UI keeps showing the last good
// data with an offline indicator once failures accumulate.
package app
