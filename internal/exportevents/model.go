package exportevents

import "time"

// Event records one successful export. Résumé content is never stored.
type Event struct {
	ID        string    `json:"id"`
	Format    string    `json:"format"`
	SizeBytes int64     `json:"sizeBytes"`
	Checksum  string    `json:"checksum"`
	Template  string    `json:"template"`
	Color     string    `json:"color"`
	Font      string    `json:"font"`
	RequestID string    `json:"requestId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
