package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config interface {
	EnvConfig
	CorsConfig
	SessionConfig
	LoginConfig
}

type mainConfig struct {
	EnvVars
	Cors
	Sessions
	Login
}

// New reads an optional .env file and parses the environment
func New() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("[config New] load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv parses the process environment without touching .env files
func FromEnv() (Config, error) {
	c := mainConfig{}
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("[config FromEnv] %w", err)
	}
	if err := c.Sessions.validate(); err != nil {
		return nil, fmt.Errorf("[config FromEnv] %w", err)
	}
	return c, nil
}
