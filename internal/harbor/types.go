package harbor

import "time"

// MediaType distinguishes the two kinds of library content Harbor manages.
type MediaType string

const (
	MediaMovie  MediaType = "movie"
	MediaSeries MediaType = "series"
)

// Status enumerates the transfer states Harbor reports for queue items.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusImporting Status = "importing"
	StatusFailed    Status = "failed"
)

// QueueListResponse mirrors /api/queue.
type QueueListResponse struct {
	Items []QueueItem `json:"items"`
}

// QueueItem describes one in-flight transfer in transport-friendly form.
type QueueItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	MediaType      MediaType `json:"mediaType"`
	Status         Status    `json:"status"`
	Size           int64     `json:"size"`
	DownloadedSize int64     `json:"downloadedSize"`
	Indexer        string    `json:"indexer"`
	ErrorMessage   string    `json:"errorMessage"`
	UpdatedAt      string    `json:"updatedAt"`
}

// Remaining returns the bytes left to transfer, never negative.
func (q QueueItem) Remaining() int64 {
	if q.DownloadedSize >= q.Size {
		return 0
	}
	return q.Size - q.DownloadedSize
}

// Percent returns per-item completion in 0..100, or 0 for an unknown size.
func (q QueueItem) Percent() float64 {
	if q.Size <= 0 {
		return 0
	}
	return float64(q.DownloadedSize) / float64(q.Size) * 100
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (q QueueItem) ParsedUpdatedAt() time.Time {
	return parseTime(q.UpdatedAt)
}

// StatusResponse mirrors the payload returned by /api/status. DevMode is the
// authoritative developer-mode flag used for reconciliation.
type StatusResponse struct {
	Running bool         `json:"running"`
	Version string       `json:"version"`
	DevMode bool         `json:"devMode"`
	Tasks   []TaskStatus `json:"tasks"`
}

// TaskStatus reports one background task of the daemon.
type TaskStatus struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
