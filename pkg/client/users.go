package client

import (
	"context"
	"net/http"
)

// Identity is the payload returned by register, login and profile.
type Identity struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}

// Register creates an account and stores the returned token on the client.
func (c *Client) Register(ctx context.Context, name, email, password string) (*Identity, error) {
	req := map[string]string{"name": name, "email": email, "password": password}

	var id Identity
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/register", req, &id); err != nil {
		return nil, err
	}
	c.token = id.Token
	return &id, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Identity, error) {
	req := map[string]string{"email": email, "password": password}

	var id Identity
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/login", req, &id); err != nil {
		return nil, err
	}
	c.token = id.Token
	return &id, nil
}

// Profile returns the identity behind the client's bearer token.
func (c *Client) Profile(ctx context.Context) (*Identity, error) {
	var id Identity
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", "", nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// ListUsers returns all users. Requires an admin token.
func (c *Client) ListUsers(ctx context.Context) ([]Identity, error) {
	var users []Identity
	if err := c.do(ctx, http.MethodGet, "/api/users", "", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
