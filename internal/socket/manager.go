package socket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// State is the connection lifecycle state owned by the Manager.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

// String returns a lowercase label for display and logging.
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

const handshakeTimeout = 5 * time.Second

// Manager owns one logical persistent connection to the Harbor socket.
//
// At most one underlying transport is live at a time: every (re)connect bumps
// a generation counter, and dial results, read loops and retry timers from an
// older generation discard themselves. Reconnect triggers from any source
// funnel through Connect, which is where redundant requests are suppressed.
type Manager struct {
	urlFn      func() string
	dispatcher *Dispatcher
	onState    func(State)

	mu        sync.Mutex
	state     State
	conn      *websocket.Conn
	gen       int
	failures  int
	retry     *time.Timer
	retryBase time.Duration

	// gorilla permits one concurrent writer per connection
	sendMu sync.Mutex

	dialer *websocket.Dialer
}

// NewManager builds a Manager. urlFn is evaluated at each dial so a config
// reload can repoint the manager without rebuilding it. onState receives
// every state transition; it may be nil.
func NewManager(urlFn func() string, d *Dispatcher, onState func(State)) *Manager {
	return &Manager{
		urlFn:      urlFn,
		dispatcher: d,
		onState:    onState,
		retryBase:  baseRetryDelay,
		dialer:     &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
	}
}

// State returns the current connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connect establishes the connection. When force is false and a connection
// attempt is already underway or established, the call is a no-op. When force
// is true any existing transport is torn down first; a long-suspended
// transport can report open while being dead, so lifecycle triggers force.
func (m *Manager) Connect(force bool) {
	m.mu.Lock()
	if !force && m.state != StateDisconnected {
		m.mu.Unlock()
		return
	}
	m.cancelRetryLocked()
	m.closeConnLocked()
	m.gen++
	gen := m.gen
	changed := m.setStateLocked(StateConnecting)
	m.mu.Unlock()

	if changed {
		m.notify(StateConnecting)
	}
	go m.dial(gen)
}

// Disconnect tears down the transport unconditionally, cancels any pending
// retry, and leaves the manager disconnected. Safe to call repeatedly; always
// wins over an in-flight retry timer.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	m.cancelRetryLocked()
	m.closeConnLocked()
	m.gen++
	m.failures = 0
	changed := m.setStateLocked(StateDisconnected)
	m.mu.Unlock()

	if changed {
		m.notify(StateDisconnected)
	}
}

// Send serializes and transmits the message if connected. When not connected
// the message is dropped and false is returned; there is no outbound queue.
// Callers needing delivery re-send after observing a connected state.
func (m *Manager) Send(msg Message) bool {
	m.mu.Lock()
	conn := m.conn
	connected := m.state == StateConnected && conn != nil
	m.mu.Unlock()
	if !connected {
		return false
	}

	m.sendMu.Lock()
	defer m.sendMu.Unlock()
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("socket: send %q: %v", msg.Type, err)
		return false
	}
	return true
}

func (m *Manager) dial(gen int) {
	url := m.urlFn()
	conn, _, err := m.dialer.Dial(url, nil) //nolint:bodyclose // handshake response body is managed by gorilla

	m.mu.Lock()
	if gen != m.gen {
		// Superseded by a newer Connect or a Disconnect while dialing.
		m.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		return
	}
	if err != nil {
		m.setStateLocked(StateDisconnected)
		m.scheduleRetryLocked()
		m.mu.Unlock()
		m.notify(StateDisconnected)
		log.Printf("socket: dial %s: %v", url, err)
		return
	}
	m.conn = conn
	m.failures = 0
	m.setStateLocked(StateConnected)
	m.mu.Unlock()

	m.notify(StateConnected)
	go m.readLoop(conn, gen)
}

// readLoop dispatches inbound messages in delivery order until the transport
// fails or is superseded.
func (m *Manager) readLoop(conn *websocket.Conn, gen int) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			_ = conn.Close()

			m.mu.Lock()
			if gen != m.gen {
				// Deliberate teardown; the newer generation owns the state.
				m.mu.Unlock()
				return
			}
			m.conn = nil
			m.setStateLocked(StateDisconnected)
			m.scheduleRetryLocked()
			m.mu.Unlock()

			m.notify(StateDisconnected)
			log.Printf("socket: connection lost: %v", err)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("socket: malformed message dropped: %v", err)
			continue
		}
		m.dispatcher.Dispatch(msg)
	}
}

func (m *Manager) scheduleRetryLocked() {
	m.cancelRetryLocked()
	delay := withJitter(retryDelay(m.failures, m.retryBase))
	m.failures++
	gen := m.gen
	m.retry = time.AfterFunc(delay, func() { m.retryConnect(gen) })
}

// retryConnect is the timer path back into the connect flow. The generation
// check makes a timer that lost the Stop race a no-op.
func (m *Manager) retryConnect(gen int) {
	m.mu.Lock()
	if gen != m.gen || m.state != StateDisconnected {
		m.mu.Unlock()
		return
	}
	m.gen++
	next := m.gen
	m.setStateLocked(StateConnecting)
	m.mu.Unlock()

	m.notify(StateConnecting)
	go m.dial(next)
}

func (m *Manager) cancelRetryLocked() {
	if m.retry != nil {
		m.retry.Stop()
		m.retry = nil
	}
}

func (m *Manager) closeConnLocked() {
	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
}

func (m *Manager) setStateLocked(s State) bool {
	if m.state == s {
		return false
	}
	m.state = s
	return true
}

func (m *Manager) notify(s State) {
	if m.onState != nil {
		m.onState(s)
	}
}
