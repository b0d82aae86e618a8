package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/revcopy/adminctl/internal/auth"
	"github.com/rs/zerolog/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminProfile is the authenticated administrator's own account.
type AdminProfile struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Login authenticates with email and password and stores the issued token
// pair for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	env := c.Do(ctx, http.MethodPost, loginPath, LoginRequest{Email: email, Password: password})
	if !env.Success {
		return env.Err()
	}

	var grant auth.Grant
	if err := json.Unmarshal(env.Data, &grant); err != nil {
		return err
	}

	c.store.SetTokens(auth.PairFromGrant(grant, time.Now()))
	log.Info().Str("email", email).Msg("logged in")
	return nil
}

// Logout invalidates the session on the server and clears stored
// credentials. The local store is cleared even if the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	env := c.Do(ctx, http.MethodPost, logoutPath, nil)
	c.store.Clear()
	return env.Err()
}

// Me fetches the authenticated administrator's profile.
func (c *Client) Me(ctx context.Context) (AdminProfile, error) {
	var profile AdminProfile
	err := decode(c.Do(ctx, http.MethodGet, mePath, nil), &profile)
	return profile, err
}
