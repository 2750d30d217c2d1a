package login

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/internal/errors"
)

// EndpointPath is the login route of the backend
const EndpointPath = "/api/auth/login"

// maxResponseBytes caps how much of a login response is read
const maxResponseBytes = 1 << 20

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email   string `json:"email"`
	Token   string `json:"token"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

// Client posts user credentials to the backend login endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		endpoint:   strings.TrimRight(baseURL, "/") + EndpointPath,
		httpClient: httpClient,
	}
}

// Login exchanges credentials for an identity. The response is treated as untrusted: it must
// carry a token and a known role, otherwise the login fails.
func (c *Client) Login(ctx context.Context, email, password string) (identity.Identity, error) {
	body, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return identity.Identity{}, newError(MsgLoginFailed, fmt.Errorf("[login Client] marshal: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return identity.Identity{}, newError(MsgLoginFailed, fmt.Errorf("[login Client] new request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return identity.Identity{}, newError(MsgLoginFailed, fmt.Errorf("[login Client] %w: %v", errors.ErrLoginUnavailable, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return identity.Identity{}, newError(MsgLoginFailed, fmt.Errorf("[login Client] %w: read body: %v", errors.ErrLoginUnavailable, err))
	}

	var payload loginResponse
	decodeErr := json.Unmarshal(raw, &payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := MsgLoginFailed
		if decodeErr == nil && strings.TrimSpace(payload.Message) != "" {
			message = payload.Message
		}
		return identity.Identity{}, newError(message, fmt.Errorf("[login Client] %w: status %d", errors.ErrLoginRejected, resp.StatusCode))
	}

	if decodeErr != nil {
		return identity.Identity{}, newError(MsgLoginFailed, fmt.Errorf("[login Client] %w: decode: %v", errors.ErrInvalidIdentity, decodeErr))
	}

	id := identity.Identity{
		Email: payload.Email,
		Token: payload.Token,
		Role:  identity.Role(payload.Role),
	}
	if id.Email == "" {
		id.Email = email
	}
	if err := id.Validate(); err != nil {
		return identity.Identity{}, newError(MsgLoginFailed, fmt.Errorf("[login Client] %w: %v", errors.ErrInvalidIdentity, err))
	}
	return id, nil
}
