package redisrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/sessions"
	"github.com/jrsteele09/tollway-portal/sessions/redisrepo"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, ttl time.Duration) (*redisrepo.SessionRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return redisrepo.NewSessionRepo(client, "test", ttl), mr
}

func TestSessionRepo_StoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRepo(t, 0)
	store := sessions.NewStore(repo)

	id := identity.Identity{Email: "jane@example.com", Token: "tok", Role: identity.RoleUser}
	require.NoError(t, store.Save(ctx, "abc", id))
	require.True(t, mr.Exists("test:abc:user"))
	require.True(t, mr.Exists("test:abc:token"))

	loaded, found, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, id, loaded)

	require.NoError(t, store.Clear(ctx, "abc"))
	require.False(t, mr.Exists("test:abc:user"))

	_, found, err = store.Load(ctx, "abc")
	require.NoError(t, err)
	require.False(t, found)
}

func TestSessionRepo_TTL(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRepo(t, time.Hour)

	require.NoError(t, repo.Set(ctx, "abc", sessions.KeyToken, "tok"))
	require.Equal(t, time.Hour, mr.TTL("test:abc:token"))

	mr.FastForward(2 * time.Hour)
	_, found, err := repo.Get(ctx, "abc", sessions.KeyToken)
	require.NoError(t, err)
	require.False(t, found)
}

func TestSessionRepo_RequiresKeys(t *testing.T) {
	repo, _ := newRepo(t, 0)
	require.Error(t, repo.Set(context.Background(), "", sessions.KeyUser, "x"))
	_, _, err := repo.Get(context.Background(), "abc", "")
	require.Error(t, err)
}
