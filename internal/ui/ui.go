package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the console and blocks until the user quits or the context
// cancels. Focus reporting is enabled so a regained terminal focus can force
// a reconnect.
func Run(opts Options) error {
	program := tea.NewProgram(newModel(opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(opts.Context),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			// Context cancellation is the normal shutdown path.
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
