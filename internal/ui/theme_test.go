package ui

import (
	"testing"

	"github.com/calebmd/porthole/internal/progress"
)

func TestGetTheme_FallsBackToDracula(t *testing.T) {
	got := GetTheme("NoSuchTheme")
	if got.Name != "Dracula" {
		t.Errorf("GetTheme(unknown) = %q, want Dracula", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	seen := map[string]bool{}
	current := themeOrder[0]
	for range themeOrder {
		seen[current] = true
		current = NextTheme(current)
	}
	if current != themeOrder[0] {
		t.Errorf("cycle did not wrap: ended at %q", current)
	}
	for _, name := range themeOrder {
		if !seen[name] {
			t.Errorf("theme %q never visited", name)
		}
	}
}

func TestNextTheme_UnknownResetsToFirst(t *testing.T) {
	if got := NextTheme("NoSuchTheme"); got != themeOrder[0] {
		t.Errorf("NextTheme(unknown) = %q, want %q", got, themeOrder[0])
	}
}

func TestThemes_CoverAllStatusesAndFlashes(t *testing.T) {
	statuses := []string{"queued", "active", "paused", "importing", "failed"}
	flashes := []progress.Theme{progress.ThemeMovie, progress.ThemeTV, progress.ThemeBoth}

	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, status := range statuses {
			if theme.StatusColors[status] == "" {
				t.Errorf("theme %q missing status color for %q", name, status)
			}
		}
		for _, flash := range flashes {
			if theme.FlashColors[flash] == "" {
				t.Errorf("theme %q missing flash color for %q", name, flash)
			}
		}
	}
}
