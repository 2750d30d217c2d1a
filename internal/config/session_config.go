package config

import (
	"fmt"
	"time"
)

// Session store backends
const (
	SessionBackendMemory = "memory"
	SessionBackendSQLite = "sqlite"
	SessionBackendRedis  = "redis"
)

type SessionConfig interface {
	GetSessionBackend() string
	GetSessionSQLitePath() string
	GetRedisAddr() string
	GetRedisPrefix() string
	GetSessionTTL() time.Duration
}

type Sessions struct {
	Backend    string        `env:"SESSION_BACKEND" envDefault:"memory"`
	SQLitePath string        `env:"SESSION_SQLITE_PATH" envDefault:"./data/sessions.db"`
	RedisAddr  string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPref  string        `env:"REDIS_PREFIX" envDefault:"portal:session"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"0s"` // Zero keeps sessions until logout
}

var _ SessionConfig = Sessions{}

func (s Sessions) validate() error {
	switch s.Backend {
	case SessionBackendMemory, SessionBackendSQLite, SessionBackendRedis:
		return nil
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", s.Backend)
	}
}

func (s Sessions) GetSessionBackend() string {
	return s.Backend
}

func (s Sessions) GetSessionSQLitePath() string {
	return s.SQLitePath
}

func (s Sessions) GetRedisAddr() string {
	return s.RedisAddr
}

func (s Sessions) GetRedisPrefix() string {
	return s.RedisPref
}

func (s Sessions) GetSessionTTL() time.Duration {
	return s.TTL
}
