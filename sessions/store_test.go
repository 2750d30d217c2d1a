package sessions_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/internal/errors"
	"github.com/jrsteele09/tollway-portal/sessions"
	fakesessionrepo "github.com/jrsteele09/tollway-portal/sessions/repofakes"
	"github.com/stretchr/testify/require"
)

const testSessionID = "session-1"

func TestStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	repo := fakesessionrepo.NewFakeSessionRepo()
	store := sessions.NewStore(repo)

	id := identity.Identity{Email: "jane@example.com", Token: "tok-123", Role: identity.RoleUser}

	t.Run("nothing saved", func(t *testing.T) {
		_, found, err := store.Load(ctx, testSessionID)
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, testSessionID, id))

		loaded, found, err := store.Load(ctx, testSessionID)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, id, loaded)
	})

	t.Run("token stored separately from record", func(t *testing.T) {
		rawUser, ok, err := repo.Get(ctx, testSessionID, sessions.KeyUser)
		require.NoError(t, err)
		require.True(t, ok)
		require.NotContains(t, rawUser, "tok-123")

		token, ok, err := repo.Get(ctx, testSessionID, sessions.KeyToken)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "tok-123", token)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx, testSessionID))
		_, found, err := store.Load(ctx, testSessionID)
		require.NoError(t, err)
		require.False(t, found)
		require.Equal(t, 0, repo.Len())
	})
}

func TestStore_LoadMalformed(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		entries map[string]string
	}{
		{name: "unparseable record", entries: map[string]string{sessions.KeyUser: "{not json", sessions.KeyToken: "tok"}},
		{name: "record without token", entries: map[string]string{sessions.KeyUser: `{"email":"a@b.com","role":"user"}`}},
		{name: "token without record", entries: map[string]string{sessions.KeyToken: "tok"}},
		{name: "missing role", entries: map[string]string{sessions.KeyUser: `{"email":"a@b.com"}`, sessions.KeyToken: "tok"}},
		{name: "unknown role", entries: map[string]string{sessions.KeyUser: `{"email":"a@b.com","role":"root"}`, sessions.KeyToken: "tok"}},
		{name: "empty token", entries: map[string]string{sessions.KeyUser: `{"email":"a@b.com","role":"user"}`, sessions.KeyToken: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := fakesessionrepo.NewFakeSessionRepo()
			for k, v := range tt.entries {
				require.NoError(t, repo.Set(ctx, testSessionID, k, v))
			}

			store := sessions.NewStore(repo)
			_, found, err := store.Load(ctx, testSessionID)
			require.False(t, found)
			require.Error(t, err)
			require.True(t, errors.Is(err, errors.ErrCorruptSession))
		})
	}
}

func TestStore_SaveRequiresSessionID(t *testing.T) {
	store := sessions.NewStore(fakesessionrepo.NewFakeSessionRepo())
	err := store.Save(context.Background(), "", identity.Identity{Email: "a@b.com", Token: "t", Role: identity.RoleUser})
	require.Error(t, err)
}

type writeFailure struct {
	*fakesessionrepo.FakeSessionRepo
	failKey string
}

func (r *writeFailure) Set(ctx context.Context, sessionID, key, value string) error {
	if r.failKey == key {
		return fmt.Errorf("backend down")
	}
	return r.FakeSessionRepo.Set(ctx, sessionID, key, value)
}

func TestStore_SaveFailureEmptiesSession(t *testing.T) {
	for _, key := range []string{sessions.KeyUser, sessions.KeyToken} {
		t.Run(key, func(t *testing.T) {
			ctx := context.Background()
			repo := &writeFailure{FakeSessionRepo: fakesessionrepo.NewFakeSessionRepo()}
			store := sessions.NewStore(repo)

			require.NoError(t, store.Save(ctx, testSessionID, identity.Identity{Email: "a@b.com", Token: "A", Role: identity.RoleUser}))

			repo.failKey = key
			err := store.Save(ctx, testSessionID, identity.Identity{Email: "b@b.com", Token: "B", Role: identity.RoleAdmin})
			require.Error(t, err)

			_, found, err := store.Load(ctx, testSessionID)
			require.NoError(t, err)
			require.False(t, found)
			require.Equal(t, 0, repo.Len())
		})
	}
}
