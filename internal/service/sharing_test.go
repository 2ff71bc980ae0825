package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebrain/internal/models"
	"rebrain/internal/testutil"
)

// sequenceHash returns the given hashes in order, then fails.
func sequenceHash(hashes ...string) HashFunc {
	i := 0
	return func() (string, error) {
		if i >= len(hashes) {
			return "", errors.New("out of hashes")
		}
		h := hashes[i]
		i++
		return h, nil
	}
}

func TestRandomHash(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		hash, err := RandomHash()
		require.NoError(t, err)
		assert.Len(t, hash, models.ShareLinkHashLength)
		assert.Regexp(t, `^[A-Za-z0-9]+$`, hash)
		seen[hash] = true
	}
	assert.Greater(t, len(seen), 95)
}

func TestSharing_EnableIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	alice := seedUser(t, store, "alice")
	sharing := NewSharing(store, sequenceHash("hashAAAAAA", "hashBBBBBB"))

	first, err := sharing.Enable(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashAAAAAA", first)

	second, err := sharing.Enable(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSharing_DisableThenEnableRotatesHash(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	alice := seedUser(t, store, "alice")
	sharing := NewSharing(store, sequenceHash("hashAAAAAA", "hashBBBBBB"))

	first, err := sharing.Enable(ctx, alice.ID)
	require.NoError(t, err)

	require.NoError(t, sharing.Disable(ctx, alice.ID))
	_, err = sharing.Resolve(ctx, first)
	assert.ErrorIs(t, err, ErrShareLinkNotFound)

	second, err := sharing.Enable(ctx, alice.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Disabling without a link is a no-op.
	require.NoError(t, sharing.Disable(ctx, alice.ID))
	require.NoError(t, sharing.Disable(ctx, alice.ID))
}

func TestSharing_EnableRetriesOnCollision(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")

	_, err := NewSharing(store, sequenceHash("collision0")).Enable(ctx, alice.ID)
	require.NoError(t, err)

	hash, err := NewSharing(store, sequenceHash("collision0", "freshhash1")).Enable(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "freshhash1", hash)
}

func TestSharing_EnableGivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")

	_, err := NewSharing(store, sequenceHash("collision0")).Enable(ctx, alice.ID)
	require.NoError(t, err)

	hashes := make([]string, maxHashAttempts)
	for i := range hashes {
		hashes[i] = "collision0"
	}
	_, err = NewSharing(store, sequenceHash(hashes...)).Enable(ctx, bob.ID)
	assert.Error(t, err)
}

func TestSharing_Status(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	alice := seedUser(t, store, "alice")
	sharing := NewSharing(store, nil)

	link, err := sharing.Status(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, link)

	hash, err := sharing.Enable(ctx, alice.ID)
	require.NoError(t, err)

	link, err = sharing.Status(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, hash, link.Hash)
}

func TestSharing_Resolve(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	alice := seedUser(t, store, "alice")
	contents := NewContents(store)
	sharing := NewSharing(store, nil)

	for i := 1; i <= 2; i++ {
		_, err := contents.Add(ctx, alice.ID, NewContent{
			Title: fmt.Sprintf("item %d", i),
			Link:  fmt.Sprintf("https://%d.example", i),
			Type:  models.TypeLink,
		})
		require.NoError(t, err)
	}

	hash, err := sharing.Enable(ctx, alice.ID)
	require.NoError(t, err)

	brain, err := sharing.Resolve(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "alice", brain.Username)
	require.Len(t, brain.Content, 2)
	assert.Equal(t, "item 1", brain.Content[0].Title)
}

func TestSharing_ResolveErrors(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	alice := seedUser(t, store, "alice")
	sharing := NewSharing(store, nil)

	_, err := sharing.Resolve(ctx, "doesnotexi")
	assert.ErrorIs(t, err, ErrShareLinkNotFound)

	// A link whose owner vanished resolves to ErrOwnerNotFound. MemStore's
	// DeleteUser cascades like the schema, so re-insert the link afterwards.
	hash, err := sharing.Enable(ctx, alice.ID)
	require.NoError(t, err)
	store.DeleteUser(alice.ID)
	_, err = store.EnsureShareLink(ctx, alice.ID, hash)
	require.NoError(t, err)

	_, err = sharing.Resolve(ctx, hash)
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	boom := errors.New("db down")
	store.FailWith(boom)
	_, err = sharing.Resolve(ctx, hash)
	assert.ErrorIs(t, err, boom)
}
