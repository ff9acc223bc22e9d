package results

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestStore_PutAndGet(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	id, err := store.Put(ctx, "user-1", "Taskboard", "generated text")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	res, err := store.Get(ctx, "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, "Taskboard", res.ProjectName)
	assert.Equal(t, "generated text", res.Document)
	assert.Equal(t, "user-1", res.OwnerID)
}

func TestStore_GetScopedToOwner(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	id, err := store.Put(ctx, "user-1", "Taskboard", "doc")
	require.NoError(t, err)

	_, err = store.Get(ctx, "user-2", id)
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := setupStore(t)
	_, err := store.Get(context.Background(), "user-1", "nope")
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestStore_ResultsExpire(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	id, err := store.Put(ctx, "user-1", "Taskboard", "doc")
	require.NoError(t, err)

	mr.FastForward(resultTTL + time.Minute)

	_, err = store.Get(ctx, "user-1", id)
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestStore_SweepRemovesStaleIndexEntries(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	id, err := store.Put(ctx, "user-1", "Taskboard", "doc")
	require.NoError(t, err)

	// Expire the payload but keep the owner index alive.
	mr.Del(resultKeyPrefix + id)

	ids, err := store.ListIDs(ctx, "user-1")
	require.NoError(t, err)
	require.Contains(t, ids, id)

	removed, err := store.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	ids, err = store.ListIDs(ctx, "user-1")
	require.NoError(t, err)
	assert.NotContains(t, ids, id)
}

func TestStore_AnonymousResultsAreNotIndexed(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	id, err := store.Put(ctx, "", "Taskboard", "doc")
	require.NoError(t, err)

	res, err := store.Get(ctx, "", id)
	require.NoError(t, err)
	assert.Equal(t, "doc", res.Document)

	ids, err := store.ListIDs(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
