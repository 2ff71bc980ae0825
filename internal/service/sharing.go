package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"rebrain/internal/db"
	"rebrain/internal/models"
)

const (
	hashAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// maxHashAttempts bounds retries when a fresh hash collides with an existing one.
	maxHashAttempts = 3
)

// HashFunc generates a candidate share hash.
type HashFunc func() (string, error)

// RandomHash returns a random alphanumeric hash of models.ShareLinkHashLength characters.
func RandomHash() (string, error) {
	return gonanoid.Generate(hashAlphabet, models.ShareLinkHashLength)
}

// Sharing publishes and resolves read-only share links.
type Sharing struct {
	links    ShareLinkStore
	users    UserStore
	contents ContentStore
	newHash  HashFunc
}

// NewSharing creates the share-link service. A nil newHash uses RandomHash.
func NewSharing(store Store, newHash HashFunc) *Sharing {
	if newHash == nil {
		newHash = RandomHash
	}
	return &Sharing{links: store, users: store, contents: store, newHash: newHash}
}

// Enable publishes ownerID's content and returns the share hash. A user who
// already has a link gets the same hash back.
func (s *Sharing) Enable(ctx context.Context, ownerID uuid.UUID) (string, error) {
	for attempt := 1; ; attempt++ {
		hash, err := s.newHash()
		if err != nil {
			return "", fmt.Errorf("generate hash: %w", err)
		}

		link, err := s.links.EnsureShareLink(ctx, ownerID, hash)
		if err == nil {
			return link.Hash, nil
		}
		if !errors.Is(err, db.ErrDuplicateHash) || attempt >= maxHashAttempts {
			return "", fmt.Errorf("ensure share link: %w", err)
		}
	}
}

// Disable removes ownerID's share link if there is one.
func (s *Sharing) Disable(ctx context.Context, ownerID uuid.UUID) error {
	if err := s.links.DeleteShareLinkByUser(ctx, ownerID); err != nil {
		return fmt.Errorf("delete share link: %w", err)
	}
	return nil
}

// Status returns ownerID's active share link, or nil when sharing is disabled.
func (s *Sharing) Status(ctx context.Context, ownerID uuid.UUID) (*models.ShareLink, error) {
	link, err := s.links.GetShareLinkByUser(ctx, ownerID)
	if errors.Is(err, db.ErrShareLinkNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get share link: %w", err)
	}
	return link, nil
}

// Resolve returns the username and content published under hash.
func (s *Sharing) Resolve(ctx context.Context, hash string) (*models.SharedBrain, error) {
	link, err := s.links.GetShareLinkByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, db.ErrShareLinkNotFound) {
			return nil, ErrShareLinkNotFound
		}
		return nil, fmt.Errorf("get share link: %w", err)
	}

	owner, err := s.users.GetUserByID(ctx, link.UserID)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("get owner: %w", err)
	}

	content, err := s.contents.ListContentByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	return &models.SharedBrain{Username: owner.Username, Content: content}, nil
}
