package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rebrain/internal/models"
)

// EnsureShareLink returns the user's share link, creating it with the given
// hash if the user has none. When a link already exists its hash is kept and
// the candidate hash is discarded, so concurrent callers converge on one link.
// Returns ErrDuplicateHash if the candidate collides with another user's hash.
func (d *DB) EnsureShareLink(ctx context.Context, userID uuid.UUID, hash string) (*models.ShareLink, error) {
	query := `
		INSERT INTO share_links (user_id, hash)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, hash, view_count, created_at
	`

	var link models.ShareLink
	err := d.Pool.QueryRow(ctx, query, userID, hash).Scan(
		&link.ID, &link.UserID, &link.Hash, &link.ViewCount, &link.CreatedAt,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "share_links_hash_key" {
			return nil, ErrDuplicateHash
		}
		return nil, err
	}

	return &link, nil
}

// GetShareLinkByUser returns the user's active share link.
func (d *DB) GetShareLinkByUser(ctx context.Context, userID uuid.UUID) (*models.ShareLink, error) {
	query := `
		SELECT id, user_id, hash, view_count, created_at
		FROM share_links WHERE user_id = $1
	`

	var link models.ShareLink
	err := d.Pool.QueryRow(ctx, query, userID).Scan(
		&link.ID, &link.UserID, &link.Hash, &link.ViewCount, &link.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrShareLinkNotFound
	}
	if err != nil {
		return nil, err
	}

	return &link, nil
}

// GetShareLinkByHash returns the share link published under hash.
func (d *DB) GetShareLinkByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	query := `
		SELECT id, user_id, hash, view_count, created_at
		FROM share_links WHERE hash = $1
	`

	var link models.ShareLink
	err := d.Pool.QueryRow(ctx, query, hash).Scan(
		&link.ID, &link.UserID, &link.Hash, &link.ViewCount, &link.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrShareLinkNotFound
	}
	if err != nil {
		return nil, err
	}

	return &link, nil
}

// DeleteShareLinkByUser removes the user's share link. Deleting a link that
// does not exist is not an error.
func (d *DB) DeleteShareLinkByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := d.Pool.Exec(ctx, `DELETE FROM share_links WHERE user_id = $1`, userID)
	return err
}

// IncrementShareViews bumps the view counter of the link published under hash.
func (d *DB) IncrementShareViews(ctx context.Context, hash string) error {
	_, err := d.Pool.Exec(ctx, `UPDATE share_links SET view_count = view_count + 1 WHERE hash = $1`, hash)
	return err
}
