package main

import (
	"context"
	"fmt"

	"github.com/jrsteele09/tollway-portal/internal/config"
	"github.com/jrsteele09/tollway-portal/sessions"
	"github.com/jrsteele09/tollway-portal/sessions/redisrepo"
	fakesessionrepo "github.com/jrsteele09/tollway-portal/sessions/repofakes"
	"github.com/jrsteele09/tollway-portal/sessions/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// newSessionRepo opens the configured session backend. The returned func releases it.
func newSessionRepo(ctx context.Context, c config.Config) (sessions.Repo, func(), error) {
	backend := c.GetSessionBackend()
	log.Info().Str("backend", backend).Msg("Opening session store")

	switch backend {
	case config.SessionBackendSQLite:
		db, err := sqlite.Open(c.GetSessionSQLitePath())
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite.Open: %w", err)
		}
		repo := sqlite.NewSessionRepository(db)
		if err := repo.Init(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("sqlite Init: %w", err)
		}
		return repo, func() { _ = db.Close() }, nil

	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: c.GetRedisAddr()})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", c.GetRedisAddr(), err)
		}
		return redisrepo.NewSessionRepo(client, c.GetRedisPrefix(), c.GetSessionTTL()), func() { _ = client.Close() }, nil

	default:
		log.Warn().Msg("In-memory sessions do not survive a restart")
		return fakesessionrepo.NewFakeSessionRepo(), func() {}, nil
	}
}
