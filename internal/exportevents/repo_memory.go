package exportevents

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. It keeps only the
// newest MaxListLimit events, the most any ListRecent call can return.
type MemoryRepo struct {
	mu     sync.RWMutex
	events []Event
	next   int
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{events: make([]Event, 0, MaxListLimit)}
}

// Create stores an event, overwriting the oldest one once the buffer is full.
func (r *MemoryRepo) Create(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) < MaxListLimit {
		r.events = append(r.events, ev)
		return nil
	}
	r.events[r.next] = ev
	r.next = (r.next + 1) % MaxListLimit
	return nil
}

// Len reports how many events are retained.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

// ListRecent returns events newest first.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit = clampLimit(limit)

	r.mu.RLock()
	events := make([]Event, 0, len(r.events))
	events = append(events, r.events[r.next:]...)
	events = append(events, r.events[:r.next]...)
	r.mu.RUnlock()

	// events is in insertion order; reverse it so equal timestamps keep
	// newest-inserted first after the stable sort.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

var _ Repo = (*MemoryRepo)(nil)
