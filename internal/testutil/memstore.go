package testutil

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"rebrain/internal/db"
	"rebrain/internal/models"
)

// MemStore is an in-memory store with the same semantics and error sentinels
// as *db.DB. It lets service and handler tests run without Postgres.
type MemStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*models.User
	tags     map[string]uuid.UUID // title -> id
	content  []*models.Content
	links    map[uuid.UUID]*models.ShareLink // user id -> link
	err      error
	sequence time.Time
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		users:    make(map[uuid.UUID]*models.User),
		tags:     make(map[string]uuid.UUID),
		links:    make(map[uuid.UUID]*models.ShareLink),
		sequence: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (s *MemStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// TagCount returns the number of distinct tags stored.
func (s *MemStore) TagCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tags)
}

// now returns strictly increasing timestamps so list order is deterministic.
func (s *MemStore) now() time.Time {
	s.sequence = s.sequence.Add(time.Second)
	return s.sequence
}

func (s *MemStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	for _, u := range s.users {
		if u.Username == user.Username {
			return db.ErrDuplicateUsername
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = s.now()
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *MemStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	for _, u := range s.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, db.ErrUserNotFound
}

func (s *MemStore) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	u, ok := s.users[id]
	if !ok {
		return nil, db.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

// DeleteUser removes a user and cascades to their content and share link.
func (s *MemStore) DeleteUser(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
	delete(s.links, id)
	s.content = slices.DeleteFunc(s.content, func(c *models.Content) bool { return c.OwnerID == id })
}

func (s *MemStore) CreateContent(_ context.Context, content *models.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	for _, title := range content.Tags {
		if _, ok := s.tags[title]; !ok {
			s.tags[title] = uuid.New()
		}
	}

	content.ID = uuid.New()
	content.CreatedAt = s.now()
	stored := *content
	stored.Tags = slices.Clone(content.Tags)
	s.content = append(s.content, &stored)
	return nil
}

func (s *MemStore) ListContentByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	items := []models.Content{}
	for _, c := range s.content {
		if c.OwnerID != ownerID {
			continue
		}
		item := *c
		item.Tags = slices.Clone(c.Tags)
		if item.Tags == nil {
			item.Tags = []string{}
		}
		if u, ok := s.users[c.OwnerID]; ok {
			item.Owner = u.Owner()
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *MemStore) DeleteContent(_ context.Context, id, ownerID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}

	before := len(s.content)
	s.content = slices.DeleteFunc(s.content, func(c *models.Content) bool {
		return c.ID == id && c.OwnerID == ownerID
	})
	return int64(before - len(s.content)), nil
}

func (s *MemStore) ListTagsByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	seen := make(map[string]bool)
	tags := []models.Tag{}
	for _, c := range s.content {
		if c.OwnerID != ownerID {
			continue
		}
		for _, title := range c.Tags {
			if seen[title] {
				continue
			}
			seen[title] = true
			tags = append(tags, models.Tag{ID: s.tags[title], Title: title})
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Title < tags[j].Title })
	return tags, nil
}

func (s *MemStore) ContentTitleExists(_ context.Context, ownerID uuid.UUID, title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}

	for _, c := range s.content {
		if c.OwnerID == ownerID && c.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemStore) EnsureShareLink(_ context.Context, userID uuid.UUID, hash string) (*models.ShareLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	if link, ok := s.links[userID]; ok {
		found := *link
		return &found, nil
	}
	for _, link := range s.links {
		if link.Hash == hash {
			return nil, db.ErrDuplicateHash
		}
	}

	link := &models.ShareLink{ID: uuid.New(), UserID: userID, Hash: hash, CreatedAt: s.now()}
	s.links[userID] = link
	found := *link
	return &found, nil
}

func (s *MemStore) GetShareLinkByUser(_ context.Context, userID uuid.UUID) (*models.ShareLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	link, ok := s.links[userID]
	if !ok {
		return nil, db.ErrShareLinkNotFound
	}
	found := *link
	return &found, nil
}

func (s *MemStore) GetShareLinkByHash(_ context.Context, hash string) (*models.ShareLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	for _, link := range s.links {
		if link.Hash == hash {
			found := *link
			return &found, nil
		}
	}
	return nil, db.ErrShareLinkNotFound
}

func (s *MemStore) DeleteShareLinkByUser(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	delete(s.links, userID)
	return nil
}

func (s *MemStore) IncrementShareViews(_ context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	for _, link := range s.links {
		if link.Hash == hash {
			link.ViewCount++
		}
	}
	return nil
}

func (s *MemStore) GetBrainStats(_ context.Context) (*models.BrainStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	stats := &models.BrainStats{
		Users:            int64(len(s.users)),
		ContentByType:    make(map[models.ContentType]int64),
		ActiveShareLinks: int64(len(s.links)),
	}
	for _, c := range s.content {
		stats.ContentByType[c.Type]++
	}
	for _, link := range s.links {
		stats.ShareViews += link.ViewCount
	}
	return stats, nil
}

// Ping always succeeds unless the store was told to fail.
func (s *MemStore) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
