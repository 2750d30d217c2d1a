package sessions

import "context"

// Keys stored per browser session
const (
	KeyUser  = "user"  // JSON encoded identity.Record
	KeyToken = "token" // Raw bearer token
)

// Repo is string keyed persistence scoped to a browser session.
// Get reports found=false for a key that was never set or has been deleted.
type Repo interface {
	Get(ctx context.Context, sessionID, key string) (value string, found bool, err error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}
