package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rebrain/internal/models"
)

// NewContent is the validated input for adding a content item.
type NewContent struct {
	Title string
	Link  string
	Type  models.ContentType
	Tags  []string
}

// Contents adds, lists and removes a user's content items.
type Contents struct {
	store ContentStore
}

// NewContents creates the content service.
func NewContents(store ContentStore) *Contents {
	return &Contents{store: store}
}

// Add saves a content item for ownerID. Tags are looked up by exact title and
// created when missing; repeated titles in the input are collapsed.
func (s *Contents) Add(ctx context.Context, ownerID uuid.UUID, in NewContent) (*models.Content, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("unknown content type %q", in.Type)
	}

	content := &models.Content{
		OwnerID: ownerID,
		Title:   in.Title,
		Link:    in.Link,
		Type:    in.Type,
		Tags:    models.UniqueTagTitles(in.Tags),
	}
	if err := s.store.CreateContent(ctx, content); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	return content, nil
}

// List returns all content owned by ownerID.
func (s *Contents) List(ctx context.Context, ownerID uuid.UUID) ([]models.Content, error) {
	items, err := s.store.ListContentByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return items, nil
}

// Remove deletes a content item if it belongs to ownerID. Removing content
// that does not exist or belongs to someone else succeeds without effect, so
// callers cannot probe for other users' content.
func (s *Contents) Remove(ctx context.Context, ownerID, contentID uuid.UUID) error {
	if _, err := s.store.DeleteContent(ctx, contentID, ownerID); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}

// Tags returns the distinct tags used across ownerID's content.
func (s *Contents) Tags(ctx context.Context, ownerID uuid.UUID) ([]models.Tag, error) {
	tags, err := s.store.ListTagsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// AddIfMissing adds the item unless ownerID already has content with the same
// title. Reports whether it was added.
func (s *Contents) AddIfMissing(ctx context.Context, ownerID uuid.UUID, in NewContent) (bool, error) {
	exists, err := s.store.ContentTitleExists(ctx, ownerID, in.Title)
	if err != nil {
		return false, fmt.Errorf("check content: %w", err)
	}
	if exists {
		return false, nil
	}
	if _, err := s.Add(ctx, ownerID, in); err != nil {
		return false, err
	}
	return true, nil
}
