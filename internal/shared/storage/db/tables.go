package db

import (
	"context"
	"database/sql"
	"fmt"
)

// ListTables returns up to limit table names from the public schema, sorted by name.
func ListTables(ctx context.Context, database *sql.DB, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
SELECT table_name
FROM information_schema.tables
WHERE table_schema = 'public'
ORDER BY table_name
LIMIT $1`

	rows, err := database.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	tables := make([]string, 0, limit)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}
