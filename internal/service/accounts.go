package service

import (
	"context"
	"errors"
	"fmt"

	"rebrain/internal/auth"
	"rebrain/internal/db"
	"rebrain/internal/models"
)

// Accounts registers users and verifies their credentials.
type Accounts struct {
	store  UserStore
	hasher *auth.PasswordHasher
}

// NewAccounts creates the credential service.
func NewAccounts(store UserStore, hasher *auth.PasswordHasher) *Accounts {
	return &Accounts{store: store, hasher: hasher}
}

// Register creates a user with a hashed password. Returns ErrUsernameTaken if
// the username is already in use.
func (a *Accounts) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, PasswordHash: hash}
	if err := a.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Verify returns the user if the password matches. Unknown usernames and wrong
// passwords both yield ErrInvalidCredentials.
func (a *Accounts) Verify(ctx context.Context, username, password string) (*models.User, error) {
	user, err := a.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	return user, nil
}

// EnsureUser returns the existing user with username, or registers it with
// password when missing. Used by the seeder.
func (a *Accounts) EnsureUser(ctx context.Context, username, password string) (*models.User, bool, error) {
	user, err := a.store.GetUserByUsername(ctx, username)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, db.ErrUserNotFound) {
		return nil, false, fmt.Errorf("get user: %w", err)
	}

	user, err = a.Register(ctx, username, password)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}
