package ui

import (
	"context"

	pbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"

	"github.com/calebmd/porthole/internal/socket"
	"github.com/calebmd/porthole/internal/state"
)

// SocketControl is the slice of the socket manager the UI drives: lifecycle
// triggers force reconnects, and the devmode key sends outbound messages.
// Connection state is read from store snapshots, not queried here.
type SocketControl interface {
	Connect(force bool)
	Send(msg socket.Message) bool
}

// Options configure the porthole UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Socket    SocketControl
	ThemeName string
	PrefsPath string
}

// storeChangedMsg signals that the store snapshot moved; the model re-reads
// it and re-arms the watch.
type storeChangedMsg struct{}

// Model is the root bubbletea model for the console.
type Model struct {
	store     *state.Store
	sock      SocketControl
	theme     Theme
	styles    Styles
	prefsPath string

	snapshot state.Snapshot
	table    table.Model
	bar      pbar.Model

	width  int
	height int
}

func newModel(opts Options) Model {
	theme := GetTheme(opts.ThemeName)
	m := Model{
		store:     opts.Store,
		sock:      opts.Socket,
		theme:     theme,
		styles:    theme.Styles(),
		prefsPath: opts.PrefsPath,
	}
	m.table = newQueueTable(theme)
	m.bar = pbar.New(
		pbar.WithSolidFill(theme.Accent),
		pbar.WithoutPercentage(),
	)
	m.snapshot = opts.Store.Snapshot()
	m.table.SetRows(queueRows(m.snapshot.Queue))
	return m
}
