package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jrsteele09/tollway-portal/sessions"
)

const createSessionEntriesTable = `
CREATE TABLE IF NOT EXISTS session_entries (
	session_id TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at DATETIME NOT NULL,
	PRIMARY KEY (session_id, key)
);
`

var _ sessions.Repo = (*SessionRepository)(nil)

// SessionRepository stores session entries in sqlite so they survive restarts
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSessionEntriesTable); err != nil {
		return fmt.Errorf("create session_entries table: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `
SELECT value
FROM session_entries
WHERE session_id = ? AND key = ?`,
		sessionID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get session entry: %w", err)
	}
	return value, true, nil
}

func (r *SessionRepository) Set(ctx context.Context, sessionID, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO session_entries (session_id, key, value, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		sessionID, key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert session entry: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, 0, len(keys)+1)
	args = append(args, sessionID)
	for _, k := range keys {
		args = append(args, k)
	}

	query := fmt.Sprintf(`DELETE FROM session_entries WHERE session_id = ? AND key IN (%s)`, placeholders)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session entries: %w", err)
	}
	return nil
}
