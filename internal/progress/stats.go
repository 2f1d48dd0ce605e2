package progress

import "github.com/calebmd/porthole/internal/harbor"

// Theme classifies which kind of content an aggregate refers to. The UI picks
// colors and badges from it.
type Theme string

const (
	ThemeNone  Theme = "none"
	ThemeMovie Theme = "movie"
	ThemeTV    Theme = "tv"
	ThemeBoth  Theme = "both"
)

// DownloadStats is the derived view of the transfer queue, recomputed from
// scratch on every snapshot.
type DownloadStats struct {
	Progress     float64 // 0..100 across all items
	Theme        Theme
	MovieCount   int
	TVCount      int
	HasDownloads bool
	AllPaused    bool
}

// Project reduces a queue snapshot to its aggregate stats. Pure function: no
// side effects, no retained state.
func Project(items []harbor.QueueItem) DownloadStats {
	stats := DownloadStats{Theme: ThemeNone}

	var totalSize, totalDownloaded int64
	paused := 0
	for _, item := range items {
		switch item.MediaType {
		case harbor.MediaMovie:
			stats.MovieCount++
		case harbor.MediaSeries:
			stats.TVCount++
		}
		totalSize += item.Size
		totalDownloaded += item.DownloadedSize
		if item.Status == harbor.StatusPaused {
			paused++
		}
	}

	switch {
	case stats.MovieCount > 0 && stats.TVCount > 0:
		stats.Theme = ThemeBoth
	case stats.MovieCount > 0:
		stats.Theme = ThemeMovie
	case stats.TVCount > 0:
		stats.Theme = ThemeTV
	}

	if totalSize > 0 {
		stats.Progress = float64(totalDownloaded) / float64(totalSize) * 100
	}

	stats.HasDownloads = len(items) > 0
	stats.AllPaused = stats.HasDownloads && paused == len(items)

	return stats
}
