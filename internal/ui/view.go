package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/calebmd/porthole/internal/progress"
)

func (m Model) View() string {
	if m.width == 0 {
		return "starting porthole..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderProgress(),
		m.table.View(),
		m.renderCommandBar(),
	)
}

// renderProgress renders the aggregate progress line: either the bar with its
// counts, an idle notice, or a completion flash overriding both.
func (m Model) renderProgress() string {
	styles := m.styles

	if flash := m.snapshot.Flash; flash != nil {
		badge := styles.FlashStyle(flash.Theme).Render(flashLabel(flash.Theme))
		return lipgloss.NewStyle().Padding(0, 1).Render(badge)
	}

	stats := m.snapshot.Stats
	if !stats.HasDownloads {
		return lipgloss.NewStyle().Padding(0, 1).
			Render(styles.FaintText.Render("no active downloads"))
	}

	label := fmt.Sprintf(" %.1f%%", stats.Progress)
	if stats.AllPaused {
		label += styles.WarningText.Render(" (paused)")
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(
		m.bar.ViewAs(stats.Progress/100) + styles.MutedText.Render(label),
	)
}

func flashLabel(t progress.Theme) string {
	switch t {
	case progress.ThemeMovie:
		return "✔ movie completed"
	case progress.ThemeTV:
		return "✔ series completed"
	case progress.ThemeBoth:
		return "✔ downloads completed"
	default:
		return "✔ completed"
	}
}
