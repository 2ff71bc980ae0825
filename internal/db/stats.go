package db

import (
	"context"

	"rebrain/internal/models"
)

// GetBrainStats returns aggregate counts for metrics export.
func (d *DB) GetBrainStats(ctx context.Context) (*models.BrainStats, error) {
	stats := &models.BrainStats{
		ContentByType: make(map[models.ContentType]int64),
	}

	err := d.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM share_links),
			(SELECT COALESCE(SUM(view_count), 0)::bigint FROM share_links)
	`).Scan(&stats.Users, &stats.ActiveShareLinks, &stats.ShareViews)
	if err != nil {
		return nil, err
	}

	rows, err := d.Pool.Query(ctx, `SELECT type, COUNT(*) FROM content GROUP BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			typ   string
			count int64
		)
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, err
		}
		stats.ContentByType[models.ContentType(typ)] = count
	}

	return stats, rows.Err()
}
