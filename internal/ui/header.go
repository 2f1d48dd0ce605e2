package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/calebmd/porthole/internal/socket"
)

// renderHeader renders the status bar: logo, connection indicator, daemon
// state, queue counts, devmode badge, and the last error if any.
func (m Model) renderHeader() string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.styles
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("porthole", styles.Logo),
		m.connIndicator(bg),
	}

	if m.snapshot.Version != "" {
		parts = append(parts, bg.Render("harbor "+m.snapshot.Version, styles.MutedText))
	}

	parts = append(parts,
		bg.Render("Queue:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Queue)), styles.Text),
	)

	stats := m.snapshot.Stats
	if stats.MovieCount > 0 || stats.TVCount > 0 {
		parts = append(parts, bg.Render(
			fmt.Sprintf("%d movies • %d series", stats.MovieCount, stats.TVCount),
			styles.MutedText,
		))
	}

	if badge := m.devModeBadge(bg); badge != "" {
		parts = append(parts, badge)
	}

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	if m.snapshot.LastError != nil {
		errText := truncate(classifyConnectionError(m.snapshot.LastError), 40)
		parts = append(parts,
			bg.Render("DAEMON "+errText, styles.DangerText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// connIndicator shows the live-sync state. A down socket with a working
// poller is degraded, not offline; offline needs the poller failing too.
func (m Model) connIndicator(bg BgStyle) string {
	switch {
	case m.snapshot.Conn == socket.StateConnected:
		return bg.Render("● LIVE", m.styles.SuccessText)
	case m.snapshot.Conn == socket.StateConnecting:
		return bg.Render("◐ CONNECTING", m.styles.WarningText)
	case m.snapshot.IsOffline():
		return bg.Render("○ OFFLINE", m.styles.DangerText)
	default:
		return bg.Render("○ POLLING", m.styles.MutedText)
	}
}

func (m Model) devModeBadge(bg BgStyle) string {
	dm := m.snapshot.DevMode
	switch {
	case dm.Switching:
		return bg.Render("DEV switching…", m.styles.WarningText)
	case dm.Enabled:
		return bg.Render("DEV", m.styles.AccentText.Bold(true))
	default:
		return ""
	}
}

// formatTimestamp formats the last update time with a relative hint.
func (m Model) formatTimestamp() string {
	if m.snapshot.LastUpdated.IsZero() {
		return ""
	}
	since := time.Since(m.snapshot.LastUpdated)
	ts := m.snapshot.LastUpdated.Format("15:04:05")
	if since < time.Minute {
		return ts + " (now)"
	}
	return ts + " (" + humanizeDuration(since) + " ago)"
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the key hints bar.
func (m Model) renderCommandBar() string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.styles

	commands := []struct{ key, desc string }{
		{"j/k", "Navigate"},
		{"d", "DevMode"},
		{"r", "Reconnect"},
		{"T", m.theme.Name},
		{"q", "Quit"},
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	return styles.Footer.Width(m.width).Render(strings.Join(segments, sep))
}
