package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rebrain/internal/models"
)

// upsertTag returns the ID of the tag with the given title, creating it if it
// does not exist yet. The no-op update makes RETURNING yield the existing row
// when another writer created the tag first.
func upsertTag(ctx context.Context, tx pgx.Tx, title string) (uuid.UUID, error) {
	query := `
		INSERT INTO tags (title)
		VALUES ($1)
		ON CONFLICT (title) DO UPDATE SET title = EXCLUDED.title
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, title).Scan(&id)
	return id, err
}

// ListTagsByOwner returns the distinct tags used by a user's content, sorted by title.
func (d *DB) ListTagsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Tag, error) {
	query := `
		SELECT DISTINCT t.id, t.title
		FROM tags t
		JOIN content_tags ct ON ct.tag_id = t.id
		JOIN content c ON c.id = ct.content_id
		WHERE c.user_id = $1
		ORDER BY t.title ASC
	`

	rows, err := d.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Title); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
