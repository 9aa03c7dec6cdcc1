package client

import (
	"context"
	"fmt"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// Login authenticates and returns the bearer token plus the profile the
// backend attached to it. Persisting both is the caller's job.
func (c *Client) Login(ctx context.Context, email, password string) (string, models.User, error) {
	var out models.LoginResponse

	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(models.LoginPayload{Email: email, Password: password}).
		SetResult(&out).
		Post("/login")
	if err != nil {
		return "", models.User{}, err
	}
	if resp.IsError() {
		return "", models.User{}, apiError(resp)
	}

	token, user := out.Session()
	if token == "" {
		return "", models.User{}, fmt.Errorf("login succeeded but no token returned")
	}
	return token, user, nil
}

// Register creates an account. The backend logs the new user in, so the
// response carries a token just like Login.
func (c *Client) Register(ctx context.Context, p models.RegisterPayload) (string, models.User, error) {
	var out models.LoginResponse

	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(p).
		SetResult(&out).
		Post("/register")
	if err != nil {
		return "", models.User{}, err
	}
	if resp.IsError() {
		return "", models.User{}, apiError(resp)
	}

	token, user := out.Session()
	return token, user, nil
}

// ForgotPassword triggers the reset email for the given address.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email}).
		Post("/forgot-password")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// ResetPassword completes the reset flow with the token from the
// reset email. Public endpoint; the confirmation field mirrors the
// password because the CLI has no second input.
func (c *Client) ResetPassword(ctx context.Context, token, email, newPassword string) error {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"token":                 token,
			"email":                 email,
			"password":              newPassword,
			"password_confirmation": newPassword,
		}).
		Post("/reset-password")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Logout revokes the current token server-side. A failure here is not
// fatal; the local session is cleared regardless.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Post("/logout")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}
