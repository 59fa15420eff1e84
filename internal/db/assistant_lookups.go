package db

import (
	"context"

	"icolleague/internal/models"
)

// IncrementAssistantLookup upserts an assistant question count by outcome.
func (d *DB) IncrementAssistantLookup(ctx context.Context, keyword, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO assistant_lookups (keyword, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (keyword, outcome) DO UPDATE
		SET count = assistant_lookups.count + 1, last_seen_at = NOW()
	`, keyword, outcome)
	return err
}

// GetAllAssistantLookups returns all assistant lookup rows for metrics export.
func (d *DB) GetAllAssistantLookups(ctx context.Context) ([]models.AssistantLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT keyword, outcome, count, last_seen_at FROM assistant_lookups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.AssistantLookup
	for rows.Next() {
		var l models.AssistantLookup
		if err := rows.Scan(&l.Keyword, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
