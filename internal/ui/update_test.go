package ui

import (
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebmd/porthole/internal/harbor"
	"github.com/calebmd/porthole/internal/socket"
	"github.com/calebmd/porthole/internal/state"
)

type fakeSocket struct {
	connects []bool // force flag per Connect call
	sent     []socket.Message
	sendOK   bool
}

func (f *fakeSocket) Connect(force bool) { f.connects = append(f.connects, force) }

func (f *fakeSocket) Send(msg socket.Message) bool {
	f.sent = append(f.sent, msg)
	return f.sendOK
}

func newTestModel(sock *fakeSocket) (Model, *state.Store) {
	store := state.NewStore()
	m := newModel(Options{
		Store:     store,
		Socket:    sock,
		ThemeName: "Dracula",
	})
	return m, store
}

// runCmd executes a command returned by Update so its side effects happen.
func runCmd(cmd tea.Cmd) {
	if cmd != nil {
		cmd()
	}
}

func TestUpdate_DevModeKeyTogglesAndSends(t *testing.T) {
	sock := &fakeSocket{sendOK: true}
	m, store := newTestModel(sock)

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	runCmd(cmd)

	dm := store.Snapshot().DevMode
	if !dm.Enabled || !dm.Switching {
		t.Fatalf("DevMode = %+v, want optimistic enabled switching", dm)
	}

	if len(sock.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sock.sent))
	}
	msg := sock.sent[0]
	if msg.Type != harbor.EventDevModeSet {
		t.Fatalf("sent type %q, want %q", msg.Type, harbor.EventDevModeSet)
	}
	var p harbor.DevModePayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if !p.Enabled {
		t.Fatal("payload should request enabled=true from a disabled start")
	}
}

func TestUpdate_DevModeToggleSurvivesDroppedSend(t *testing.T) {
	sock := &fakeSocket{sendOK: false}
	m, store := newTestModel(sock)

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	runCmd(cmd)

	// Optimistic state holds; the poller reconciles later.
	dm := store.Snapshot().DevMode
	if !dm.Enabled || !dm.Switching {
		t.Fatalf("DevMode = %+v, want optimistic state despite dropped send", dm)
	}
}

func TestUpdate_FocusForcesReconnect(t *testing.T) {
	sock := &fakeSocket{}
	m, _ := newTestModel(sock)

	_, cmd := m.Update(tea.FocusMsg{})
	runCmd(cmd)

	if len(sock.connects) != 1 || !sock.connects[0] {
		t.Fatalf("connects = %v, want single forced connect", sock.connects)
	}
}

func TestUpdate_ResumeForcesReconnect(t *testing.T) {
	sock := &fakeSocket{}
	m, _ := newTestModel(sock)

	_, cmd := m.Update(tea.ResumeMsg{})
	runCmd(cmd)

	if len(sock.connects) != 1 || !sock.connects[0] {
		t.Fatalf("connects = %v, want single forced connect", sock.connects)
	}
}

func TestUpdate_ReconnectKeyForces(t *testing.T) {
	sock := &fakeSocket{}
	m, _ := newTestModel(sock)

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	runCmd(cmd)

	if len(sock.connects) != 1 || !sock.connects[0] {
		t.Fatalf("connects = %v, want single forced connect", sock.connects)
	}
}

func TestInit_ConnectsWithoutForce(t *testing.T) {
	sock := &fakeSocket{}
	m, store := newTestModel(sock)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init returned nil cmd")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("Init should batch the connect with the store watch")
	}

	// Pre-signal the watch so the watch command returns instead of blocking.
	store.SetQueue(nil)
	for _, c := range batch {
		runCmd(c)
	}

	if len(sock.connects) != 1 || sock.connects[0] {
		t.Fatalf("connects = %v, want single non-forced connect", sock.connects)
	}
}

func TestUpdate_StoreChangeRefreshesSnapshot(t *testing.T) {
	sock := &fakeSocket{}
	m, store := newTestModel(sock)

	store.SetQueue([]harbor.QueueItem{{ID: "1", Title: "Dune", MediaType: harbor.MediaMovie}})

	next, _ := m.Update(storeChangedMsg{})
	model := next.(Model)
	if len(model.snapshot.Queue) != 1 || model.snapshot.Queue[0].Title != "Dune" {
		t.Fatalf("snapshot not refreshed: %#v", model.snapshot.Queue)
	}
	if len(model.table.Rows()) != 1 {
		t.Fatalf("table rows = %d, want 1", len(model.table.Rows()))
	}
}

func TestUpdate_ThemeKeyCycles(t *testing.T) {
	sock := &fakeSocket{}
	m, _ := newTestModel(sock)

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'T'}})
	model := next.(Model)
	if model.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate after cycling from Dracula", model.theme.Name)
	}
}
