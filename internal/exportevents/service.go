package exportevents

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service stamps and stores export events.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service backed by repo.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// Record assigns an ID and timestamp when missing and persists the event.
func (s *Service) Record(ctx context.Context, ev Event) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = s.Now().UTC()
	}
	return s.Repo.Create(ctx, ev)
}

// Recent returns the newest events, at most limit of them.
func (s *Service) Recent(ctx context.Context, limit int) ([]Event, error) {
	return s.Repo.ListRecent(ctx, limit)
}
