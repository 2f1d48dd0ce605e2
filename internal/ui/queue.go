package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/calebmd/porthole/internal/harbor"
)

func newQueueTable(theme Theme) table.Model {
	t := table.New(
		table.WithColumns(queueColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	return restyleTable(t, theme)
}

func restyleTable(t table.Model, theme Theme) table.Model {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		BorderBottom(true).
		Foreground(lipgloss.Color(theme.Muted)).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(theme.SelectionText)).
		Background(lipgloss.Color(theme.SelectionBg)).
		Bold(false)
	s.Cell = s.Cell.Foreground(lipgloss.Color(theme.Text))
	t.SetStyles(s)
	return t
}

func queueColumns(width int) []table.Column {
	// Fixed columns plus a title column that absorbs the leftover width.
	const fixed = 8 + 11 + 10 + 12 + 14 + 12 // type+status+progress+size+indexer+padding
	titleWidth := width - fixed
	if titleWidth < 20 {
		titleWidth = 20
	}
	return []table.Column{
		{Title: "Title", Width: titleWidth},
		{Title: "Type", Width: 8},
		{Title: "Status", Width: 11},
		{Title: "Progress", Width: 10},
		{Title: "Size", Width: 12},
		{Title: "Indexer", Width: 14},
	}
}

func queueRows(items []harbor.QueueItem) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, table.Row{
			item.Title,
			mediaLabel(item.MediaType),
			statusLabel(item),
			fmt.Sprintf("%.1f%%", item.Percent()),
			formatBytes(item.Size),
			item.Indexer,
		})
	}
	return rows
}

func mediaLabel(m harbor.MediaType) string {
	switch m {
	case harbor.MediaMovie:
		return "Movie"
	case harbor.MediaSeries:
		return "Series"
	default:
		return string(m)
	}
}

// statusLabel renders the status cell, folding the error message into the
// failed state since there is no room for a separate column.
func statusLabel(item harbor.QueueItem) string {
	if item.Status == harbor.StatusFailed && item.ErrorMessage != "" {
		return "failed!"
	}
	return string(item.Status)
}
