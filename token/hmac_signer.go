package token

import (
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// HMACSigner signs and verifies tokens with a shared HS256 secret
type HMACSigner struct {
	secret []byte
}

func NewHMACSigner(secret string) *HMACSigner {
	return &HMACSigner{secret: []byte(secret)}
}

func (h *HMACSigner) Sign(claims jwtlib.MapClaims) (string, error) {
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token with HMAC: %w", err)
	}
	return signed, nil
}

// VerificationKey is a jwt.Keyfunc that only accepts HMAC signed tokens
func (h *HMACSigner) VerificationKey(t *jwtlib.Token) (any, error) {
	if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return h.secret, nil
}
