package config

import "time"

type LoginConfig interface {
	GetLoginEndpointBase() string
	GetLoginTimeout() time.Duration
	GetAdminLoginEnabled() bool
	GetAdminLoginDelay() time.Duration
	GetTokenSigningSecret() string
	GetLoginRatePerMinute() int
	GetLoginRateBurst() int
}

type Login struct {
	EndpointBase  string        `env:"LOGIN_ENDPOINT_BASE" envDefault:"http://localhost:5000"`
	Timeout       time.Duration `env:"LOGIN_TIMEOUT" envDefault:"10s"`
	AdminEnabled  bool          `env:"ADMIN_LOGIN_ENABLED" envDefault:"true"`
	AdminDelay    time.Duration `env:"ADMIN_LOGIN_DELAY" envDefault:"800ms"`
	SigningSecret string        `env:"TOKEN_SIGNING_SECRET"` // Empty disables token verification
	RatePerMinute int           `env:"LOGIN_RATE_PER_MINUTE" envDefault:"20"`
	RateBurst     int           `env:"LOGIN_RATE_BURST" envDefault:"5"`
}

var _ LoginConfig = Login{}

func (l Login) GetLoginEndpointBase() string {
	return l.EndpointBase
}

func (l Login) GetLoginTimeout() time.Duration {
	return l.Timeout
}

func (l Login) GetAdminLoginEnabled() bool {
	return l.AdminEnabled
}

func (l Login) GetAdminLoginDelay() time.Duration {
	return l.AdminDelay
}

func (l Login) GetTokenSigningSecret() string {
	return l.SigningSecret
}

func (l Login) GetLoginRatePerMinute() int {
	return l.RatePerMinute
}

func (l Login) GetLoginRateBurst() int {
	return l.RateBurst
}
