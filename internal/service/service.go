// Package service implements the credential, content and share-link
// operations on top of a persistence store.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"rebrain/internal/models"
)

// Service-level errors returned to handlers.
var (
	ErrUsernameTaken      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrShareLinkNotFound  = errors.New("invalid shared link")
	ErrOwnerNotFound      = errors.New("user not found")
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ContentStore persists content items and their tags.
type ContentStore interface {
	CreateContent(ctx context.Context, content *models.Content) error
	ListContentByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Content, error)
	DeleteContent(ctx context.Context, id, ownerID uuid.UUID) (int64, error)
	ListTagsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Tag, error)
	ContentTitleExists(ctx context.Context, ownerID uuid.UUID, title string) (bool, error)
}

// ShareLinkStore persists share links.
type ShareLinkStore interface {
	EnsureShareLink(ctx context.Context, userID uuid.UUID, hash string) (*models.ShareLink, error)
	GetShareLinkByUser(ctx context.Context, userID uuid.UUID) (*models.ShareLink, error)
	GetShareLinkByHash(ctx context.Context, hash string) (*models.ShareLink, error)
	DeleteShareLinkByUser(ctx context.Context, userID uuid.UUID) error
}

// Store is everything the services need from persistence. *db.DB satisfies it.
type Store interface {
	UserStore
	ContentStore
	ShareLinkStore
}
