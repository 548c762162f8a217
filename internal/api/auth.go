package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// User is a server-side account profile.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResult carries the identity and bearer token returned by a
// successful login or registration.
type LoginResult struct {
	UserID string
	Token  string
}

// loginResponse tolerates numeric or string user ids, which the server
// has sent both of over time.
type loginResponse struct {
	User        json.Number `json:"user"`
	AccessToken string      `json:"access_token"`
}

// Login exchanges a username and password for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/auth/user/login", "", body)
	if err != nil {
		return LoginResult{}, err
	}

	var resp loginResponse
	if err := decode(data, &resp); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{UserID: resp.User.String(), Token: resp.AccessToken}, nil
}

// Register creates an account. The server logs the new user in as part
// of registration, so the same token shape comes back.
func (c *Client) Register(ctx context.Context, username, email, password string) (LoginResult, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	data, err := c.do(ctx, http.MethodPost, "/auth/user/register", "", body)
	if err != nil {
		return LoginResult{}, err
	}

	var resp loginResponse
	if err := decode(data, &resp); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{UserID: resp.User.String(), Token: resp.AccessToken}, nil
}

// profilePayload mirrors loginResponse's id flexibility for the profile
// endpoint.
type profilePayload struct {
	ID       json.Number `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
}

func (p profilePayload) user() User {
	return User{ID: p.ID.String(), Username: p.Username, Email: p.Email}
}

// Profile fetches the authenticated user's account details.
func (c *Client) Profile(ctx context.Context, token string) (User, error) {
	data, err := c.do(ctx, http.MethodGet, "/auth/user/profile", token, nil)
	if err != nil {
		return User{}, err
	}

	var resp profilePayload
	if err := decode(data, &resp); err != nil {
		return User{}, err
	}
	return resp.user(), nil
}

// ProfileUpdate holds the fields an update may change. Empty fields are
// left out of the request so the server keeps their current values.
type ProfileUpdate struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// UpdateProfile applies changes to the authenticated user's account and
// returns the updated profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (User, error) {
	data, err := c.do(ctx, http.MethodPut, "/auth/user/profile", token, update)
	if err != nil {
		return User{}, err
	}

	var resp profilePayload
	if err := decode(data, &resp); err != nil {
		return User{}, err
	}
	return resp.user(), nil
}

// DeleteAccount permanently removes the authenticated user's account.
func (c *Client) DeleteAccount(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodDelete, "/user/profile", token, nil)
	return err
}
