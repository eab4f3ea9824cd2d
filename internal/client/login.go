// ABOUTME: Sign-in call against the authentication endpoint
// ABOUTME: Returns the issued token and the signed-in user's profile

package client

import (
	"context"
	"errors"

	"github.com/K25anjali/local-Konnect/internal/session"
)

// LoginPath is the authentication endpoint.
const LoginPath = "/api/users/auth/login"

// User is the profile returned on sign-in.
type User struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// LoginResult is the sign-in response.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrNoToken is returned when the auth endpoint answers without a token.
var ErrNoToken = errors.New("login response carried no token")

// Login exchanges credentials for a token. The client's own session is not
// sent.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	anon := c.WithSession(session.Session{})

	var res LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := anon.CreateInto(ctx, LoginPath, body, &res); err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, ErrNoToken
	}
	return &res, nil
}
