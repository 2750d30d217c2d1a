package token_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/internal/errors"
	"github.com/jrsteele09/tollway-portal/token"
	"github.com/stretchr/testify/require"
)

const secretStr = "1234"

func TestIssueAndVerify(t *testing.T) {
	signer := token.NewHMACSigner(secretStr)
	issuer := token.NewIssuer(signer, "devlogin", time.Hour)
	verifier := token.NewVerifier(signer)

	raw, err := issuer.Issue("user-1", "jane@example.com", identity.RoleUser)
	require.NoError(t, err)

	claims, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "jane@example.com", claims.Email)
	require.Equal(t, identity.RoleUser, claims.Role)

	require.NoError(t, verifier.VerifyRole(raw, identity.RoleUser))

	err = verifier.VerifyRole(raw, identity.RoleAdmin)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrRoleMismatch))
}

func TestVerify_Rejects(t *testing.T) {
	signer := token.NewHMACSigner(secretStr)
	verifier := token.NewVerifier(signer)

	t.Run("opaque token", func(t *testing.T) {
		_, err := verifier.Verify("dummy-admin-token")
		require.True(t, errors.Is(err, errors.ErrInvalidToken))
	})

	t.Run("wrong secret", func(t *testing.T) {
		raw, err := token.NewIssuer(token.NewHMACSigner("other"), "x", time.Hour).Issue("u", "a@b.com", identity.RoleAdmin)
		require.NoError(t, err)
		_, err = verifier.Verify(raw)
		require.True(t, errors.Is(err, errors.ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		defer func() { token.NowTimeFunc = time.Now }()
		token.NowTimeFunc = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		raw, err := token.NewIssuer(signer, "x", time.Hour).Issue("u", "a@b.com", identity.RoleUser)
		require.NoError(t, err)

		token.NowTimeFunc = time.Now
		_, err = verifier.Verify(raw)
		require.True(t, errors.Is(err, errors.ErrInvalidToken))
	})
}
