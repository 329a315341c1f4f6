package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"clubadmin/internal/domain/admin"
)

// CurrentUser asks the backend who owns the bound token.
// POST: Returns ErrUnauthorized unless the backend reports success with a user
func (c *Client) CurrentUser(ctx context.Context) (admin.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/admin/getuser", nil)
	if err != nil {
		return admin.User{}, err
	}
	var env struct {
		Success bool        `json:"success"`
		User    *admin.User `json:"user"`
	}
	if err := json.Unmarshal(body, &env); err != nil || !env.Success || env.User == nil {
		return admin.User{}, ErrUnauthorized
	}
	return *env.User, nil
}

// Login exchanges credentials for a backend token.
// The token comes from the backend's token cookie, or a token field in the body.
func (c *Client) Login(ctx context.Context, creds admin.Credentials) (token, message string, err error) {
	resp, err := c.exchange(ctx, http.MethodPost, "/api/admin/login", creds)
	if err != nil {
		return "", "", err
	}
	var env struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	_ = json.Unmarshal(resp.body, &env)

	for _, ck := range resp.cookies {
		if ck.Name == TokenCookie && ck.Value != "" {
			return ck.Value, env.Message, nil
		}
	}
	if env.Token != "" {
		return env.Token, env.Message, nil
	}
	return "", env.Message, ErrNoToken
}

// Logout ends the backend session for the bound token.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/admin/logout", nil)
	return err
}
