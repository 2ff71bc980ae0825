package models

import (
	"time"

	"github.com/google/uuid"
)

// ShareLinkHashLength is the length of a generated share hash.
const ShareLinkHashLength = 10

// ShareLink publishes a read-only view of one user's content under a random hash.
type ShareLink struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Hash      string    `json:"hash"`
	ViewCount int64     `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
}

// SharedBrain is what an anonymous visitor of a share link sees.
type SharedBrain struct {
	Username string    `json:"username"`
	Content  []Content `json:"content"`
}
