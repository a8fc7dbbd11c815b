package exportevents

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an export event.
func (r *PGRepo) Create(ctx context.Context, ev Event) error {
	const query = `
INSERT INTO export_events (
    id,
    format,
    size_bytes,
    checksum,
    template,
    color,
    font,
    request_id,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var requestID sql.NullString
	if ev.RequestID != "" {
		requestID = sql.NullString{String: ev.RequestID, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		ev.ID,
		ev.Format,
		ev.SizeBytes,
		ev.Checksum,
		ev.Template,
		ev.Color,
		ev.Font,
		requestID,
		ev.CreatedAt,
	)
	return err
}

// ListRecent lists export events ordered newest-first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	const query = `
SELECT id, format, size_bytes, checksum, template, color, font, request_id, created_at
FROM export_events
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var ev Event
		var requestID sql.NullString
		if err := rows.Scan(
			&ev.ID,
			&ev.Format,
			&ev.SizeBytes,
			&ev.Checksum,
			&ev.Template,
			&ev.Color,
			&ev.Font,
			&requestID,
			&ev.CreatedAt,
		); err != nil {
			return nil, err
		}
		if requestID.Valid {
			ev.RequestID = requestID.String
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
