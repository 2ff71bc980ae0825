package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebrain/internal/auth"
	"rebrain/internal/config"
	"rebrain/internal/service"
	"rebrain/internal/testutil"
	"rebrain/internal/validation"
)

func TestSeedBrain_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemStore()
	accounts := service.NewAccounts(store, auth.NewPasswordHasher(4))
	contents := service.NewContents(store)

	seed, err := config.ParseSeedConfig([]byte(`
user:
  username: demo
  password: demo-password
content:
  - title: jwt
    link: https://www.youtube.com/watch?v=xrj3zzaqODw
    type: youtube
    tags: [jwt, tokens]
  - title: broken
    link: not a url
    type: link
  - title: doc ex
    link: https://www.princexml.com/samples/
    type: document
    tags: [example]
`))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, seedBrain(ctx, accounts, contents, validation.New(), seed))
	}

	user, err := accounts.Verify(ctx, "demo", "demo-password")
	require.NoError(t, err)

	items, err := contents.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2, "invalid items are skipped and reruns add nothing")
	assert.Equal(t, "jwt", items[0].Title)
	assert.Equal(t, []string{"jwt", "tokens"}, items[0].Tags)
	assert.Equal(t, 3, store.TagCount())
}
