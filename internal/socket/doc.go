// Package socket maintains the persistent event connection to Harbor.
//
// # Overview
//
// Harbor pushes queue snapshots, task updates and devmode changes over a
// WebSocket. This package owns that connection end to end: the lifecycle
// state machine, automatic retry, and the routing of inbound messages to
// per-kind handlers.
//
// # Connection Lifecycle
//
// The Manager moves through three states:
//
//	disconnected -> connecting -> connected
//	      ^______________|____________|
//
// Transitions happen only inside Connect, Disconnect, the dial path, and the
// read loop. Reconnect requests arrive from several independent sources (app
// start, terminal focus regained, process resume, config reload, retry
// timers); all of them call Connect, so suppressing redundant attempts lives
// in exactly one place. A generation counter ties every transport, read loop
// and retry timer to the Connect call that created it - anything from an
// older generation quietly discards itself, which is what makes Connect and
// Disconnect safe to call at any moment from any goroutine.
//
// # Failure Handling
//
// A failed dial or a broken connection schedules a retry on a capped
// exponential backoff (2s base, 30s cap, ±20% jitter). Transport failures are
// never fatal: the rest of the application sees only the state change. A
// Disconnect always wins over a pending retry.
//
// # Message Dispatch
//
// Inbound frames carry a {type, payload} envelope. The Dispatcher maps each
// kind to at most one handler, registered once at startup. Unknown kinds are
// forward-compatible no-ops. Handlers run synchronously on the read loop in
// delivery order; a panic in a handler is recovered and logged so one bad
// message cannot tear the connection down.
//
// # Outbound Messages
//
// Send transmits only while connected and otherwise drops the message. There
// is no outbound queue; callers that need delivery guarantees re-send after
// observing a connected state. Devmode toggles rely on this plus the
// reconciliation pass in the poller, so a lost message heals on its own.
package socket
