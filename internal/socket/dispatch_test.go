package socket

import (
	"encoding/json"
	"testing"
)

func TestDispatcher_RoutesByKind(t *testing.T) {
	d := NewDispatcher()

	var gotQueue, gotTask json.RawMessage
	d.Register("queue", func(p json.RawMessage) { gotQueue = p })
	d.Register("task", func(p json.RawMessage) { gotTask = p })

	d.Dispatch(Message{Type: "queue", Payload: json.RawMessage(`{"items":[]}`)})
	d.Dispatch(Message{Type: "task", Payload: json.RawMessage(`{"name":"scan"}`)})

	if string(gotQueue) != `{"items":[]}` {
		t.Fatalf("queue handler payload = %q", gotQueue)
	}
	if string(gotTask) != `{"name":"scan"}` {
		t.Fatalf("task handler payload = %q", gotTask)
	}
}

func TestDispatcher_UnknownKindIsDropped(t *testing.T) {
	d := NewDispatcher()

	called := false
	d.Register("queue", func(json.RawMessage) { called = true })

	// Must not panic and must not hit another kind's handler.
	d.Dispatch(Message{Type: "library:refreshed", Payload: json.RawMessage(`{}`)})
	if called {
		t.Fatal("unknown kind reached a registered handler")
	}
}

func TestDispatcher_LastRegistrationWins(t *testing.T) {
	d := NewDispatcher()

	var hit string
	d.Register("devmode", func(json.RawMessage) { hit = "first" })
	d.Register("devmode", func(json.RawMessage) { hit = "second" })

	d.Dispatch(Message{Type: "devmode"})
	if hit != "second" {
		t.Fatalf("dispatched to %q handler, want second", hit)
	}
}

func TestDispatcher_HandlerPanicIsIsolated(t *testing.T) {
	d := NewDispatcher()

	d.Register("queue", func(json.RawMessage) { panic("bad payload assumption") })

	var after bool
	d.Register("task", func(json.RawMessage) { after = true })

	d.Dispatch(Message{Type: "queue"}) // must not propagate
	d.Dispatch(Message{Type: "task"})

	if !after {
		t.Fatal("dispatch after a panicking handler never ran")
	}
}

func TestNewMessage_WrapsPayload(t *testing.T) {
	msg, err := NewMessage("devmode:set", map[string]bool{"enabled": true})
	if err != nil {
		t.Fatalf("NewMessage returned error: %v", err)
	}
	if msg.Type != "devmode:set" {
		t.Fatalf("Type = %q, want devmode:set", msg.Type)
	}
	var decoded struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.Unmarshal(msg.Payload, &decoded); err != nil {
		t.Fatalf("payload did not round-trip: %v", err)
	}
	if !decoded.Enabled {
		t.Fatal("payload lost enabled flag")
	}

	empty, err := NewMessage("ping", nil)
	if err != nil {
		t.Fatalf("NewMessage(nil payload) returned error: %v", err)
	}
	if len(empty.Payload) != 0 {
		t.Fatalf("nil payload produced %q", empty.Payload)
	}
}
