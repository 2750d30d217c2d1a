package sessions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/internal/errors"
)

// Store persists identities for browser sessions on top of a Repo.
// The record (without token) and the token are kept under separate keys.
type Store struct {
	repo Repo
}

func NewStore(repo Repo) *Store {
	return &Store{repo: repo}
}

// Save persists both entries for the session. On failure the session is left empty.
func (s *Store) Save(ctx context.Context, sessionID string, id identity.Identity) error {
	if sessionID == "" {
		return fmt.Errorf("[sessions Save] sessionID is required")
	}
	rec, err := json.Marshal(id.Record())
	if err != nil {
		return fmt.Errorf("[sessions Save] marshal record: %w", err)
	}
	if err := s.repo.Set(ctx, sessionID, KeyUser, string(rec)); err != nil {
		s.discard(ctx, sessionID)
		return fmt.Errorf("[sessions Save] set user: %w", err)
	}
	if err := s.repo.Set(ctx, sessionID, KeyToken, id.Token); err != nil {
		s.discard(ctx, sessionID)
		return fmt.Errorf("[sessions Save] set token: %w", err)
	}
	return nil
}

// discard drops whatever a failed Save left behind, including a previous identity
func (s *Store) discard(ctx context.Context, sessionID string) {
	_ = s.repo.Delete(ctx, sessionID, KeyUser, KeyToken)
}

// Load returns the identity persisted for the session.
// found is false when nothing was saved, after Clear, or when the persisted data is
// unparseable or partial. In the last case err wraps ErrCorruptSession.
func (s *Store) Load(ctx context.Context, sessionID string) (id identity.Identity, found bool, err error) {
	if sessionID == "" {
		return identity.Identity{}, false, nil
	}

	rawUser, userFound, err := s.repo.Get(ctx, sessionID, KeyUser)
	if err != nil {
		return identity.Identity{}, false, fmt.Errorf("[sessions Load] get user: %w", err)
	}
	token, tokenFound, err := s.repo.Get(ctx, sessionID, KeyToken)
	if err != nil {
		return identity.Identity{}, false, fmt.Errorf("[sessions Load] get token: %w", err)
	}
	if !userFound && !tokenFound {
		return identity.Identity{}, false, nil
	}
	if !userFound || !tokenFound || token == "" {
		return identity.Identity{}, false, errors.Wrapf(errors.ErrCorruptSession, "[sessions Load] partial session %s", sessionID)
	}

	var rec identity.Record
	if err := json.Unmarshal([]byte(rawUser), &rec); err != nil {
		return identity.Identity{}, false, fmt.Errorf("[sessions Load] %w: %v", errors.ErrCorruptSession, err)
	}
	if rec.Email == "" || !rec.Role.Valid() {
		return identity.Identity{}, false, errors.Wrapf(errors.ErrCorruptSession, "[sessions Load] incomplete record for %s", sessionID)
	}

	return identity.FromRecord(rec, token), true, nil
}

// Clear removes every persisted entry of the session
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.repo.Delete(ctx, sessionID, KeyUser, KeyToken); err != nil {
		return fmt.Errorf("[sessions Clear] %w", err)
	}
	return nil
}
