package exportevents

import "context"

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Repo defines persistence operations for export events.
type Repo interface {
	Create(ctx context.Context, ev Event) error
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
