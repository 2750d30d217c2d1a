package token

import (
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/internal/errors"
)

// Claims are the fields the portal reads from a verified token
type Claims struct {
	Subject string
	Email   string
	Role    identity.Role
}

// Verifier checks token signatures and expiry and extracts the role claim
type Verifier struct {
	signer *HMACSigner
}

func NewVerifier(signer *HMACSigner) *Verifier {
	return &Verifier{signer: signer}
}

func (v *Verifier) Verify(rawToken string) (Claims, error) {
	parsed, err := jwtlib.Parse(rawToken, v.signer.VerificationKey,
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(NowTimeFunc),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, fmt.Errorf("[token Verify] %w: %v", errors.ErrInvalidToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return Claims{}, errors.Wrapf(errors.ErrInvalidToken, "[token Verify] error extracting claims")
	}

	roleValue, _ := mapClaims["role"].(string)
	role, err := identity.ParseRole(roleValue)
	if err != nil {
		return Claims{}, fmt.Errorf("[token Verify] %w: %v", errors.ErrInvalidToken, err)
	}

	sub, _ := mapClaims.GetSubject()
	email, _ := mapClaims["email"].(string)
	return Claims{Subject: sub, Email: email, Role: role}, nil
}

// VerifyRole fails when the token does not carry the asserted role
func (v *Verifier) VerifyRole(rawToken string, asserted identity.Role) error {
	claims, err := v.Verify(rawToken)
	if err != nil {
		return err
	}
	if claims.Role != asserted {
		return errors.Wrapf(errors.ErrRoleMismatch, "[token VerifyRole] token has %q, asserted %q", claims.Role, asserted)
	}
	return nil
}
