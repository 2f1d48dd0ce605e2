package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/calebmd/porthole/internal/config"
	"github.com/calebmd/porthole/internal/harbor"
	"github.com/calebmd/porthole/internal/prefs"
	"github.com/calebmd/porthole/internal/progress"
	"github.com/calebmd/porthole/internal/socket"
	"github.com/calebmd/porthole/internal/state"
	"github.com/calebmd/porthole/internal/ui"
)

// Options configure the porthole application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/porthole/prefs.toml
	PollEvery  int    // seconds; zero uses the configured cadence
}

// session holds the current Harbor client behind a lock. A config reload
// swaps the client in place so the poller and the socket dialer pick up the
// new address without rebuilding either.
type session struct {
	mu     sync.Mutex
	client *harbor.Client
}

func (s *session) set(c *harbor.Client) {
	s.mu.Lock()
	s.client = c
	s.mu.Unlock()
}

func (s *session) current() *harbor.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// socketURL is handed to the socket manager as its dial target. Evaluated at
// each dial, so a swapped client repoints the next connection attempt.
func (s *session) socketURL() string {
	return s.current().SocketURL()
}

// Run boots the porthole TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load porthole config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := harbor.NewClient(cfg.Address)
	if err != nil {
		return fmt.Errorf("init harbor client: %w", err)
	}
	sess := &session{client: client}

	store := state.NewStore()

	tracker := progress.NewTracker(progress.NewScheduler(), store.SetFlash)
	defer tracker.Stop()

	dispatcher := socket.NewDispatcher()
	registerHandlers(dispatcher, store, tracker)

	manager := socket.NewManager(sess.socketURL, dispatcher, store.SetConnState)
	defer manager.Disconnect()

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	socketLive := func() bool { return manager.State() == socket.StateConnected }
	StartPoller(ctx, store, sess, tracker, socketLive, interval)

	// Populate the store before the first frame renders. The socket is not
	// up yet, so this always takes the full status+queue path.
	refresh(ctx, store, sess.current(), tracker, func() bool { return false })

	if err := StartConfigWatcher(ctx, opts.ConfigPath, func(next config.Config) {
		c, err := harbor.NewClient(next.Address)
		if err != nil {
			log.Printf("config reload: %v", err)
			return
		}
		sess.set(c)
		manager.Connect(true)
	}); err != nil {
		log.Printf("config watcher disabled: %v", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Socket:    manager,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
