package devlogin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jrsteele09/tollway-portal/devlogin"
	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/login"
	"github.com/jrsteele09/tollway-portal/token"
	fakeuserrepo "github.com/jrsteele09/tollway-portal/users/repofake"
	"github.com/stretchr/testify/require"
)

const testSecret = "dev-secret"

func newEndpoint(t *testing.T) (*httptest.Server, *fakeuserrepo.FakeUserRepo) {
	t.Helper()

	repo := fakeuserrepo.NewFakeUserRepo()
	n, err := devlogin.Seed(repo, "jane@example.com:Password1:user, ops@example.com:Secret99:admin")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	mux := http.NewServeMux()
	mux.Handle(login.EndpointPath, devlogin.NewHandler(repo, token.NewIssuer(token.NewHMACSigner(testSecret), "devlogin", time.Hour)))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, repo
}

func post(t *testing.T, url, body string) (int, map[string]string) {
	t.Helper()
	resp, err := http.Post(url+login.EndpointPath, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandler(t *testing.T) {
	srv, repo := newEndpoint(t)

	t.Run("wrong password", func(t *testing.T) {
		status, body := post(t, srv.URL, `{"email":"jane@example.com","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("unknown user", func(t *testing.T) {
		status, body := post(t, srv.URL, `{"email":"nobody@example.com","password":"Password1"}`)
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("malformed body", func(t *testing.T) {
		status, body := post(t, srv.URL, `{"email":`)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Invalid request", body["message"])
	})

	t.Run("success", func(t *testing.T) {
		status, body := post(t, srv.URL, `{"email":"Jane@Example.com","password":"Password1"}`)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "jane@example.com", body["email"])
		require.Equal(t, "user", body["role"])

		claims, err := token.NewVerifier(token.NewHMACSigner(testSecret)).Verify(body["token"])
		require.NoError(t, err)
		require.Equal(t, identity.RoleUser, claims.Role)

		user, err := repo.GetByEmail("jane@example.com")
		require.NoError(t, err)
		require.False(t, user.LastLogin.IsZero())
	})

	t.Run("blocked", func(t *testing.T) {
		user, err := repo.GetByEmail("ops@example.com")
		require.NoError(t, err)
		user.Blocked = true
		require.NoError(t, repo.Upsert(user))

		status, _ := post(t, srv.URL, `{"email":"ops@example.com","password":"Secret99"}`)
		require.Equal(t, http.StatusForbidden, status)
	})
}

func TestHandler_WithLoginClient(t *testing.T) {
	srv, _ := newEndpoint(t)
	client := login.NewClient(srv.URL, time.Second)

	id, err := client.Login(context.Background(), "jane@example.com", "Password1")
	require.NoError(t, err)
	require.Equal(t, identity.RoleUser, id.Role)
	require.NoError(t, token.NewVerifier(token.NewHMACSigner(testSecret)).VerifyRole(id.Token, identity.RoleUser))

	_, err = client.Login(context.Background(), "jane@example.com", "nope")
	require.Error(t, err)
	require.Equal(t, "Invalid credentials", login.UserMessage(err))
}

func TestSeed_Malformed(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()

	_, err := devlogin.Seed(repo, "missing-password")
	require.Error(t, err)

	_, err = devlogin.Seed(repo, "a@b.com:pw:root")
	require.Error(t, err)

	n, err := devlogin.Seed(repo, " , a@b.com:pw ")
	require.NoError(t, err)
	require.Equal(t, 1, n)
	user, err := repo.GetByEmail("a@b.com")
	require.NoError(t, err)
	require.Equal(t, identity.RoleUser, user.Role)
}
