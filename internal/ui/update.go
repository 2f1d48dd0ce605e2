package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebmd/porthole/internal/harbor"
	"github.com/calebmd/porthole/internal/prefs"
	"github.com/calebmd/porthole/internal/socket"
	"github.com/calebmd/porthole/internal/state"
)

// Init kicks off the initial connection attempt and arms the store watch.
// The initial connect is not forced; the manager suppresses it if something
// already connected first.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		connectCmd(m.sock, false),
		waitForChange(m.store),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.FocusMsg:
		// The terminal regaining focus may be the first sign of waking from
		// a long suspend, where the transport looks open but is dead.
		return m, connectCmd(m.sock, true)

	case tea.ResumeMsg:
		return m, connectCmd(m.sock, true)

	case storeChangedMsg:
		m.snapshot = m.store.Snapshot()
		m.table.SetRows(queueRows(m.snapshot.Queue))
		return m, waitForChange(m.store)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "d":
		return m, m.toggleDevMode()
	case "r":
		return m, connectCmd(m.sock, true)
	case "T":
		return m.cycleTheme()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// toggleDevMode flips the local flag optimistically and sends the request.
// A dropped send is fine: the flag stays in the switching state until the
// next authoritative read reconciles it either way.
func (m Model) toggleDevMode() tea.Cmd {
	desired := m.store.BeginDevModeToggle()
	sock := m.sock
	return func() tea.Msg {
		msg, err := socket.NewMessage(harbor.EventDevModeSet, harbor.DevModePayload{Enabled: desired})
		if err != nil {
			log.Printf("devmode toggle: %v", err)
			return nil
		}
		if !sock.Send(msg) {
			log.Printf("devmode toggle not sent: socket down, poll will reconcile")
		}
		return nil
	}
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	next := NextTheme(m.theme.Name)
	m.theme = GetTheme(next)
	m.styles = m.theme.Styles()
	m.table = restyleTable(m.table, m.theme)

	path := m.prefsPath
	return m, func() tea.Msg {
		if err := prefs.Save(path, prefs.Prefs{Theme: next}); err != nil {
			log.Printf("save prefs: %v", err)
		}
		return nil
	}
}

func (m *Model) resize() {
	// Header, progress section (2 lines), command bar, and table chrome.
	tableHeight := m.height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)
	m.table.SetColumns(queueColumns(m.width))
	barWidth := m.width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	m.bar.Width = barWidth
}

func connectCmd(sock SocketControl, force bool) tea.Cmd {
	return func() tea.Msg {
		sock.Connect(force)
		return nil
	}
}

func waitForChange(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		<-store.Watch()
		return storeChangedMsg{}
	}
}
