package socket

import (
	"encoding/json"
	"fmt"
)

// Message is the wire envelope exchanged with Harbor over the socket.
// Type selects the handler on the receiving side; Payload is opaque until a
// handler decodes it.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage builds an envelope around the given payload value.
func NewMessage(kind string, payload any) (Message, error) {
	if payload == nil {
		return Message{Type: kind}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %q payload: %w", kind, err)
	}
	return Message{Type: kind, Payload: raw}, nil
}
