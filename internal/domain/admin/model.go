package admin

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptySecretKey = errors.New("secret key is required")
)

// User is the administrator returned by the backend's current-user endpoint.
type User struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Credentials are what the login form posts to the backend.
type Credentials struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	SecretKey string `json:"secretKey"`
}

// Validate checks that all three login fields are present.
func (c *Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return ErrEmptyUsername
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		return ErrEmptySecretKey
	}
	return nil
}
