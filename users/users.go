package users

import (
	"strings"
	"time"

	"github.com/jrsteele09/tollway-portal/identity"
	"golang.org/x/crypto/bcrypt"
)

// User is an account known to the development login endpoint
type User struct {
	ID           string        `json:"id,omitempty"`
	Email        string        `json:"email,omitempty"`
	PasswordHash string        `json:"-"` // Hashed version of the user's password - never serialize
	Role         identity.Role `json:"role,omitempty"`
	DateJoined   time.Time     `json:"date_joined,omitempty"`
	LastLogin    time.Time     `json:"last_login,omitempty"`
	Blocked      bool          `json:"blocked,omitempty"` // Blocked, has the user been blocked from logging in
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// NormaliseEmail lower-cases and trims an email so lookups are case insensitive
func NormaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
