package app

import (
	"encoding/json"
	"log"

	"github.com/calebmd/porthole/internal/harbor"
	"github.com/calebmd/porthole/internal/progress"
	"github.com/calebmd/porthole/internal/socket"
	"github.com/calebmd/porthole/internal/state"
)

// registerHandlers wires the inbound socket events into the store. Called
// once at startup, before any messages flow.
func registerHandlers(d *socket.Dispatcher, store *state.Store, tracker *progress.Tracker) {
	d.Register(harbor.EventQueue, func(payload json.RawMessage) {
		var p harbor.QueuePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			log.Printf("queue event: %v", err)
			return
		}
		store.SetQueue(p.Items)
		tracker.Observe(p.Items)
	})

	d.Register(harbor.EventDevMode, func(payload json.RawMessage) {
		var p harbor.DevModePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			log.Printf("devmode event: %v", err)
			return
		}
		store.ReconcileDevMode(p.Enabled)
	})

	d.Register(harbor.EventTask, func(payload json.RawMessage) {
		var p harbor.TaskPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			log.Printf("task event: %v", err)
			return
		}
		store.SetTask(harbor.TaskStatus{Name: p.Name, State: p.State})
	})
}
