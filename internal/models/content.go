package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentType is the kind of a saved content item.
type ContentType string

// Content type constants
const (
	TypeTwitter  ContentType = "twitter"
	TypeYoutube  ContentType = "youtube"
	TypeDocument ContentType = "document"
	TypeLink     ContentType = "link"
	TypeTag      ContentType = "tag"
)

// ContentTypes lists every accepted content type in display order.
var ContentTypes = []ContentType{TypeTwitter, TypeYoutube, TypeDocument, TypeLink, TypeTag}

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	for _, ct := range ContentTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// Content is a single saved bookmark or note.
type Content struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Link      string      `json:"link"`
	Type      ContentType `json:"type"`
	Tags      []string    `json:"tags"`    // tag titles, in the order they were given
	OwnerID   uuid.UUID   `json:"-"`
	Owner     *Owner      `json:"owner,omitempty"` // populated on reads
	CreatedAt time.Time   `json:"created_at"`
}
