package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/sessions"
	"github.com/jrsteele09/tollway-portal/sessions/sqlite"
	"github.com/stretchr/testify/require"
)

func openRepo(t *testing.T, path string) *sqlite.SessionRepository {
	t.Helper()

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewSessionRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestSessionRepository_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, filepath.Join(t.TempDir(), "sessions.db"))

	_, found, err := repo.Get(ctx, "s1", sessions.KeyUser)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, repo.Set(ctx, "s1", sessions.KeyUser, "first"))
	require.NoError(t, repo.Set(ctx, "s1", sessions.KeyUser, "second"))
	require.NoError(t, repo.Set(ctx, "s1", sessions.KeyToken, "tok"))
	require.NoError(t, repo.Set(ctx, "s2", sessions.KeyToken, "other"))

	v, found, err := repo.Get(ctx, "s1", sessions.KeyUser)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "second", v)

	require.NoError(t, repo.Delete(ctx, "s1", sessions.KeyUser, sessions.KeyToken))

	_, found, err = repo.Get(ctx, "s1", sessions.KeyToken)
	require.NoError(t, err)
	require.False(t, found)

	v, found, err = repo.Get(ctx, "s2", sessions.KeyToken)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "other", v)
}

func TestSessionRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "sessions.db")
	id := identity.Identity{Email: "admin@example.com", Token: "dummy-admin-token", Role: identity.RoleAdmin}

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	first := sqlite.NewSessionRepository(db)
	require.NoError(t, first.Init(ctx))
	require.NoError(t, sessions.NewStore(first).Save(ctx, "s1", id))
	require.NoError(t, db.Close())

	loaded, found, err := sessions.NewStore(openRepo(t, path)).Load(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, id, loaded)
}
