package gateway

import (
	"context"
	"net/http"

	"gymslot/internal/models"
)

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// Login exchanges credentials for a user and bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrValidation
	}

	var resp authResponse
	err := c.do(ctx, call{
		endpoint: "login",
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     map[string]string{"email": email, "password": password},
	}, &resp)
	if err != nil {
		return nil, "", err
	}
	return resp.User, resp.Token, nil
}

// Register creates an account and returns the fresh session credentials.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", ErrValidation
	}

	var resp authResponse
	err := c.do(ctx, call{
		endpoint: "register",
		method:   http.MethodPost,
		path:     "/auth/register",
		body:     req,
	}, &resp)
	if err != nil {
		return nil, "", err
	}
	return resp.User, resp.Token, nil
}

// Logout invalidates the server-side session for the current token.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{
		endpoint: "logout",
		method:   http.MethodPost,
		path:     "/auth/logout",
		body:     struct{}{},
		authed:   true,
	}, nil)
}

// VerifyToken checks the stored token and returns its user when valid.
func (c *Client) VerifyToken(ctx context.Context) (*models.User, error) {
	var resp authResponse
	err := c.do(ctx, call{
		endpoint: "verify",
		method:   http.MethodGet,
		path:     "/auth/verify",
		authed:   true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

// UpdateProfile patches the user's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, userID string, patch map[string]interface{}) (*models.User, error) {
	if userID == "" {
		return nil, ErrValidation
	}

	var resp authResponse
	err := c.do(ctx, call{
		endpoint: "update_profile",
		method:   http.MethodPatch,
		path:     "/users/" + userID,
		body:     patch,
		authed:   true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

// RequestPasswordReset asks the backend to email a reset token.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return ErrValidation
	}
	return c.do(ctx, call{
		endpoint: "forgot_password",
		method:   http.MethodPost,
		path:     "/auth/forgot-password",
		body:     map[string]string{"email": email},
	}, nil)
}

// ResetPassword completes a password reset.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return ErrValidation
	}
	return c.do(ctx, call{
		endpoint: "reset_password",
		method:   http.MethodPost,
		path:     "/auth/reset-password",
		body:     map[string]string{"token": token, "newPassword": newPassword},
	}, nil)
}
