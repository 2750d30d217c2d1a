package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/internal/errors"
	"github.com/jrsteele09/tollway-portal/sessions"
	"github.com/rs/zerolog/log"
)

// State is a point-in-time view of a Context used by guards and templates
type State struct {
	Identity *identity.Identity
	Loading  bool
}

func (s State) IsAdmin() bool {
	return s.Identity != nil && s.Identity.IsAdmin()
}

func (s State) IsUser() bool {
	return s.Identity != nil && s.Identity.IsUser()
}

// Context tracks the signed-in identity of one browser session.
// It starts out loading; Rehydrate restores any persisted identity and ends loading.
// Login and Logout keep the in-memory identity and the session store in lockstep.
type Context struct {
	store     *sessions.Store
	sessionID string

	mu       sync.RWMutex
	identity *identity.Identity
	loading  bool
	once     sync.Once
}

func New(store *sessions.Store, sessionID string) *Context {
	return &Context{
		store:     store,
		sessionID: sessionID,
		loading:   true,
	}
}

// Rehydrate loads the persisted identity. Unreadable or partial data is discarded and the
// context proceeds signed out. Loading ends exactly once whatever the outcome.
func (c *Context) Rehydrate(ctx context.Context) {
	c.once.Do(func() {
		id, found, err := c.store.Load(ctx, c.sessionID)
		if err != nil {
			log.Warn().Err(err).Str("session_id", c.sessionID).Msg("Discarding persisted session")
			if errors.Is(err, errors.ErrCorruptSession) {
				if clearErr := c.store.Clear(ctx, c.sessionID); clearErr != nil {
					log.Err(clearErr).Str("session_id", c.sessionID).Msg("Failed to clear corrupt session")
				}
			}
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if err == nil && found {
			c.identity = &id
		}
		c.loading = false
	})
}

// Login validates and persists the identity, then makes it current.
// An invalid identity leaves the context unchanged. A persistence failure signs the
// context out, matching the emptied session store.
func (c *Context) Login(ctx context.Context, id identity.Identity) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("[auth Login] %w", err)
	}
	if err := c.store.Save(ctx, c.sessionID, id); err != nil {
		c.mu.Lock()
		c.identity = nil
		c.mu.Unlock()
		return fmt.Errorf("[auth Login] %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = &id
	return nil
}

// Logout clears the session store and the in-memory identity
func (c *Context) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx, c.sessionID); err != nil {
		return errors.Wrapf(err, "[auth Logout] session %s", c.sessionID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = nil
	return nil
}

// Identity returns a copy of the current identity
func (c *Context) Identity() (identity.Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.identity == nil {
		return identity.Identity{}, false
	}
	return *c.identity, true
}

func (c *Context) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Context) IsAdmin() bool {
	return c.State().IsAdmin()
}

func (c *Context) IsUser() bool {
	return c.State().IsUser()
}

func (c *Context) SessionID() string {
	return c.sessionID
}

// State returns a snapshot safe to hand to guards and templates
func (c *Context) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := State{Loading: c.loading}
	if c.identity != nil {
		id := *c.identity
		s.Identity = &id
	}
	return s
}

type contextKey struct{}

// WithContext attaches the auth context to a request context
func WithContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the auth context attached by the session middleware
func FromContext(ctx context.Context) (*Context, bool) {
	c, ok := ctx.Value(contextKey{}).(*Context)
	return c, ok
}
