// Package harbor provides the typed client for the Harbor daemon's API.
//
// # Overview
//
// Harbor exposes two surfaces porthole consumes:
//
//   - An HTTP request/response API for point-in-time reads: the current queue
//     snapshot (/api/queue) and daemon status (/api/status). The status
//     payload carries the authoritative developer-mode flag, which the
//     application uses to reconcile optimistic local state.
//   - A WebSocket event stream (/api/socket) pushing queue snapshots, task
//     updates, and devmode changes as they happen. This package only derives
//     the stream URL; the connection itself is owned by internal/socket.
//
// # Wire Types
//
// QueueItem, StatusResponse and TaskStatus mirror the daemon's JSON payloads.
// Event kind constants and their payload structs (events.go) define the
// envelope contents for the socket stream; the envelope itself
// ({type, payload}) lives in internal/socket.
//
// # Error Semantics
//
// All fetches return wrapped errors suitable for display and logging. HTTP
// status >= 400 and JSON decode failures are reported as errors; callers
// (the poller, the UI) treat them as transient and keep the previous data.
//
// # Testing
//
// StatusFetcher is the seam for fakes: anything that can serve status and
// queue reads can stand in for a live daemon. Tests in this repository use
// httptest servers rather than hand-rolled fakes where practical.
package harbor
