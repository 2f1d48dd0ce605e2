package socket

import (
	"encoding/json"
	"log"
)

// Handler consumes the payload of one inbound message kind.
type Handler func(payload json.RawMessage)

// Dispatcher routes inbound messages to handlers by message kind.
//
// Registration is static startup wiring: one handler per kind, last
// registration wins, and Register must not be called once messages are
// flowing (the map is not guarded). Unknown kinds are forward-compatible
// no-ops, not errors.
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

// Register associates a handler with a message kind.
func (d *Dispatcher) Register(kind string, h Handler) {
	d.handlers[kind] = h
}

// Dispatch invokes the handler for the message's kind. Messages with no
// registered handler are dropped. A panicking handler is recovered and
// logged; a single bad message must never tear down the receive loop.
func (d *Dispatcher) Dispatch(msg Message) {
	h, ok := d.handlers[msg.Type]
	if !ok {
		log.Printf("socket: unhandled %q message dropped", msg.Type)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("socket: %q handler panicked: %v", msg.Type, r)
		}
	}()
	h(msg.Payload)
}
