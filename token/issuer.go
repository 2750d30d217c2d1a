package token

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/tollway-portal/identity"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Issuer mints signed bearer tokens carrying the role of the identity
type Issuer struct {
	signer *HMACSigner
	issuer string
	expiry time.Duration
}

func NewIssuer(signer *HMACSigner, issuer string, expiry time.Duration) *Issuer {
	return &Issuer{signer: signer, issuer: issuer, expiry: expiry}
}

// Issue creates a token for the subject with the given email and role
func (i *Issuer) Issue(subject, email string, role identity.Role) (string, error) {
	now := NowTimeFunc()
	claims := jwtlib.MapClaims{
		"iss":   i.issuer,
		"sub":   subject,
		"email": email,
		"role":  string(role),
		"iat":   now.Unix(),
		"exp":   now.Add(i.expiry).Unix(),
		"jti":   uuid.New().String(),
	}

	signed, err := i.signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("[token Issue] %w", err)
	}
	return signed, nil
}
