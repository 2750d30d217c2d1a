// Package devlogin is a stand-in for the backend login endpoint, used for local development
// and tests. It checks bcrypt password hashes and answers with a signed token.
package devlogin

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/token"
	"github.com/jrsteele09/tollway-portal/users"
	"github.com/rs/zerolog/log"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidRequest     = "Invalid request"
	msgBlocked            = "Account is blocked"
	msgInternal           = "Internal error"

	maxRequestBytes = 64 << 10
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email string        `json:"email"`
	Token string        `json:"token"`
	Role  identity.Role `json:"role"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Handler serves POST /api/auth/login
type Handler struct {
	users  users.UserRepo
	issuer *token.Issuer
}

func NewHandler(userRepo users.UserRepo, issuer *token.Issuer) *Handler {
	return &Handler{users: userRepo, issuer: issuer}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "Method not allowed"})
		return
	}

	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgInvalidRequest})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgInvalidRequest})
		return
	}

	user, err := h.users.GetByEmail(req.Email)
	if err != nil || !users.CheckPasswordHash(req.Password, user.PasswordHash) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: msgInvalidCredentials})
		return
	}
	if user.Blocked {
		writeJSON(w, http.StatusForbidden, errorResponse{Message: msgBlocked})
		return
	}

	signed, err := h.issuer.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("Failed to issue token")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: msgInternal})
		return
	}

	if err := h.users.SetLastLogin(user.Email); err != nil {
		log.Err(err).Str("email", user.Email).Msg("Failed to record last login")
	}

	writeJSON(w, http.StatusOK, loginResponse{Email: user.Email, Token: signed, Role: user.Role})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("Failed to write response")
	}
}
