package db

import "errors"

// Domain-level database error sentinels.
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")

	// Share link errors
	ErrShareLinkNotFound = errors.New("share link not found")
	ErrDuplicateHash     = errors.New("share hash already in use")
)
