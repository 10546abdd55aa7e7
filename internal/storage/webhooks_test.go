package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/githookbot/internal/relay"
)

func newTestStore(t *testing.T) *WebhookStore {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "bot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWebhookStore(db)
}

func TestCreateAndResolve(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Webhook{
		Name:      "ci-hook",
		URL:       "abc123",
		AuthorID:  10,
		ChannelID: 555,
	}))

	dest, err := store.Resolve(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, relay.Destination{ChatID: 555, ThreadID: 0}, dest)
}

func TestResolveWithThread(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Webhook{
		Name:      "forum-hook",
		URL:       "def456",
		AuthorID:  10,
		ChannelID: 555,
		ThreadID:  sql.NullInt64{Int64: 42, Valid: true},
	}))

	dest, err := store.Resolve(ctx, "def456")
	require.NoError(t, err)
	assert.Equal(t, relay.Destination{ChatID: 555, ThreadID: 42}, dest)
}

func TestResolveUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Resolve(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, relay.ErrUnknownWebhook)

	var sErr *relay.StorageError
	assert.False(t, errors.As(err, &sErr), "an unknown id is not a storage failure")
}

func TestCreateReplacesSameName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Webhook{
		Name: "ci-hook", URL: "old-id", AuthorID: 10, ChannelID: 555,
	}))
	require.NoError(t, store.Create(ctx, &Webhook{
		Name: "ci-hook", URL: "new-id", AuthorID: 10, ChannelID: 777,
	}))

	// The old identifier stops resolving; the fresh one takes over.
	_, err := store.Resolve(ctx, "old-id")
	assert.ErrorIs(t, err, relay.ErrUnknownWebhook)

	dest, err := store.Resolve(ctx, "new-id")
	require.NoError(t, err)
	assert.Equal(t, int64(777), dest.ChatID)

	hooks, err := store.ListByAuthor(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, hooks, 1)
}

func TestSameNameDifferentOwners(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Webhook{
		Name: "ci-hook", URL: "id-a", AuthorID: 10, ChannelID: 1,
	}))
	require.NoError(t, store.Create(ctx, &Webhook{
		Name: "ci-hook", URL: "id-b", AuthorID: 20, ChannelID: 2,
	}))

	hooksA, err := store.ListByAuthor(ctx, 10)
	require.NoError(t, err)
	hooksB, err := store.ListByAuthor(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, hooksA, 1)
	assert.Len(t, hooksB, 1)
	assert.NotEqual(t, hooksA[0].URL, hooksB[0].URL)
}

func TestGetByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Webhook{
		Name: "ci-hook", URL: "abc123", AuthorID: 10, ChannelID: 555,
	}))

	w, err := store.GetByName(ctx, 10, "ci-hook")
	require.NoError(t, err)
	assert.Equal(t, "abc123", w.URL)
	assert.Equal(t, int64(555), w.ChannelID)
	assert.False(t, w.ThreadID.Valid)

	_, err = store.GetByName(ctx, 10, "missing")
	assert.ErrorIs(t, err, ErrWebhookNotFound)

	// Another owner cannot see the record by name.
	_, err = store.GetByName(ctx, 99, "ci-hook")
	assert.ErrorIs(t, err, ErrWebhookNotFound)
}

func TestDeleteByNameKeepsAccessPathsConsistent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Webhook{
		Name: "ci-hook", URL: "abc123", AuthorID: 10, ChannelID: 555,
	}))

	require.NoError(t, store.DeleteByName(ctx, 10, "ci-hook"))

	// Both access paths observe the delete.
	_, err := store.Resolve(ctx, "abc123")
	assert.ErrorIs(t, err, relay.ErrUnknownWebhook)

	hooks, err := store.ListByAuthor(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, hooks)

	assert.ErrorIs(t, store.DeleteByName(ctx, 10, "ci-hook"), ErrWebhookNotFound)
}

func TestListByAuthorOrdersNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Webhook{Name: "a", URL: "id-1", AuthorID: 10, ChannelID: 1}))
	require.NoError(t, store.Create(ctx, &Webhook{Name: "b", URL: "id-2", AuthorID: 10, ChannelID: 2}))

	hooks, err := store.ListByAuthor(ctx, 10)
	require.NoError(t, err)
	require.Len(t, hooks, 2)
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, idLength)
		for _, c := range id {
			assert.True(t, (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'), "identifier must be ASCII letters")
		}
		assert.False(t, seen[id], "identifiers must not repeat")
		seen[id] = true
	}
}
