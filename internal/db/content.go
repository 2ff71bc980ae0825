package db

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rebrain/internal/models"
)

// CreateContent inserts a content item owned by content.OwnerID together with
// its tags in a single transaction. Missing tags are created; existing ones are
// reused. content.Tags must not contain duplicates.
func (d *DB) CreateContent(ctx context.Context, content *models.Content) error {
	return pgx.BeginFunc(ctx, d.Pool, func(tx pgx.Tx) error {
		// Upsert in sorted order so concurrent writers lock tag rows in the
		// same sequence and cannot deadlock each other.
		sorted := slices.Clone(content.Tags)
		slices.Sort(sorted)
		tagIDs := make(map[string]uuid.UUID, len(sorted))
		for _, title := range sorted {
			id, err := upsertTag(ctx, tx, title)
			if err != nil {
				return fmt.Errorf("upsert tag %q: %w", title, err)
			}
			tagIDs[title] = id
		}

		query := `
			INSERT INTO content (user_id, title, link, type)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`
		err := tx.QueryRow(ctx, query,
			content.OwnerID,
			content.Title,
			content.Link,
			string(content.Type),
		).Scan(&content.ID, &content.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert content: %w", err)
		}

		for i, title := range content.Tags {
			if _, err := tx.Exec(ctx,
				`INSERT INTO content_tags (content_id, tag_id, position) VALUES ($1, $2, $3)`,
				content.ID, tagIDs[title], i,
			); err != nil {
				return fmt.Errorf("link tag: %w", err)
			}
		}

		return nil
	})
}

// ListContentByOwner returns all content owned by a user, oldest first, with
// tag titles and the owner expanded.
func (d *DB) ListContentByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Content, error) {
	query := `
		SELECT c.id, c.user_id, u.username, c.title, c.link, c.type, c.created_at,
		       COALESCE(array_agg(t.title ORDER BY ct.position) FILTER (WHERE t.id IS NOT NULL), '{}'::text[])
		FROM content c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN content_tags ct ON ct.content_id = c.id
		LEFT JOIN tags t ON t.id = ct.tag_id
		WHERE c.user_id = $1
		GROUP BY c.id, u.username
		ORDER BY c.created_at ASC, c.id ASC
	`

	rows, err := d.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Content{}
	for rows.Next() {
		var (
			item     models.Content
			owner    models.Owner
			itemType string
		)
		if err := rows.Scan(
			&item.ID,
			&owner.ID,
			&owner.Username,
			&item.Title,
			&item.Link,
			&itemType,
			&item.CreatedAt,
			&item.Tags,
		); err != nil {
			return nil, err
		}
		item.Type = models.ContentType(itemType)
		item.OwnerID = owner.ID
		item.Owner = &owner
		items = append(items, item)
	}

	return items, rows.Err()
}

// DeleteContent deletes a content item if it belongs to ownerID and reports how
// many rows were removed. Zero rows is not an error.
func (d *DB) DeleteContent(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	result, err := d.Pool.Exec(ctx, `DELETE FROM content WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// ContentTitleExists reports whether a user already has content with the given title.
func (d *DB) ContentTitleExists(ctx context.Context, ownerID uuid.UUID, title string) (bool, error) {
	var exists bool
	err := d.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM content WHERE user_id = $1 AND title = $2)`,
		ownerID, title,
	).Scan(&exists)
	return exists, err
}
