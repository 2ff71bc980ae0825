package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns content and at most one share link.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Owner returns the public view of the user embedded in content responses.
func (u *User) Owner() *Owner {
	return &Owner{ID: u.ID, Username: u.Username}
}

// Owner is the expanded owner reference of a content item.
type Owner struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
