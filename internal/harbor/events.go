package harbor

// Event kinds carried in the socket message envelope. Unknown kinds are
// forward-compatible no-ops on the receiving side.
const (
	// Server to client
	EventQueue   = "queue"
	EventTask    = "task"
	EventDevMode = "devmode"

	// Client to server
	EventDevModeSet = "devmode:set"
)

// QueuePayload is the payload of an EventQueue message: a full replacement
// snapshot of the transfer queue, no delta semantics.
type QueuePayload struct {
	Items []QueueItem `json:"items"`
}

// DevModePayload is the payload of EventDevMode and EventDevModeSet messages.
type DevModePayload struct {
	Enabled bool `json:"enabled"`
}

// TaskPayload is the payload of an EventTask message.
type TaskPayload struct {
	Name  string `json:"name"`
	State string `json:"state"`
}
