package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Veraticus/wardrobe/internal/model"
)

// ErrNoUser is returned when a login succeeds but the backend sends no profile.
var ErrNoUser = errors.New("backend returned no user")

// Login signs in. The session cookies it sets are persisted by the request itself.
func (c *Client) Login(ctx context.Context, username, password string) (*model.UserProfile, error) {
	env, err := c.send(ctx, http.MethodPost, "/api/auth/login", loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	var data userData
	if err := env.decodeData(&data); err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, ErrNoUser
	}

	c.logger.Info("signed in", "username", data.User.Username)
	return data.User, nil
}

// Logout ends the backend session. Local cookies are dropped even when the call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.send(ctx, http.MethodPost, "/api/auth/logout", nil)
	c.clearSession(ctx)
	if err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// CurrentUser returns the signed-in profile, or nil when there is no session.
func (c *Client) CurrentUser(ctx context.Context) (*model.UserProfile, error) {
	env, err := c.get(ctx, "/api/user")
	if err != nil {
		if errors.Is(err, ErrAuthRequired) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var data userData
	if err := env.decodeData(&data); err != nil {
		return nil, err
	}
	return data.User, nil
}

// UpdateProfile sends a partial profile edit and returns the stored profile.
// A nil profile with a nil error means the backend accepted the edit without echoing it.
func (c *Client) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.UserProfile, error) {
	env, err := c.send(ctx, http.MethodPost, "/api/user/update", update)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var data userData
	if err := env.decodeData(&data); err != nil {
		return nil, err
	}
	return data.User, nil
}
