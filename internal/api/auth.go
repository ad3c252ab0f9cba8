package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the first leg of the two-step login: the backend sends
// an OTP to the user and returns a pending user id to verify against.
type LoginResult struct {
	UserID      string `json:"user_id"`
	OTPRequired bool   `json:"otp_required"`
	Message     string `json:"message,omitempty"`
}

type VerifyLoginInput struct {
	UserID string `json:"user_id"`
	Code   string `json:"code"`
}

type VerifyLoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type RegisterCleaningBusinessInput struct {
	BusinessName string `json:"business_name"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	City         string `json:"city,omitempty"`
	TeamSize     int    `json:"team_size,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (c *Client) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return LoginResult{}, &Error{Status: http.StatusBadRequest, Code: "invalid_request", Message: "email and password are required"}
	}
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", input, &out, false)
	return out, err
}

func (c *Client) VerifyLogin(ctx context.Context, input VerifyLoginInput) (VerifyLoginResult, error) {
	input.Code = strings.TrimSpace(input.Code)
	if input.UserID == "" || input.Code == "" {
		return VerifyLoginResult{}, &Error{Status: http.StatusBadRequest, Code: "invalid_request", Message: "user_id and code are required"}
	}
	var out VerifyLoginResult
	err := c.do(ctx, http.MethodPost, "/auth/verify-login", input, &out, false)
	return out, err
}

func (c *Client) RegisterCleaningBusiness(ctx context.Context, input RegisterCleaningBusinessInput) (models.User, error) {
	input.BusinessName = strings.TrimSpace(input.BusinessName)
	input.Email = strings.TrimSpace(input.Email)
	if input.BusinessName == "" || input.Email == "" || input.Password == "" {
		return models.User{}, &Error{Status: http.StatusBadRequest, Code: "invalid_request", Message: "business_name, email, and password are required"}
	}
	var out models.User
	err := c.do(ctx, http.MethodPost, "/auth/register-cleaning-business", input, &out, false)
	return out, err
}

func (c *Client) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return &Error{Status: http.StatusBadRequest, Code: "invalid_request", Message: "current and new passwords are required"}
	}
	return c.post(ctx, "/auth/change-password", input, nil)
}

// SetTwoFactor toggles TOTP two-factor on the account.
func (c *Client) SetTwoFactor(ctx context.Context, enabled bool) error {
	payload := map[string]bool{"enabled": enabled}
	return c.post(ctx, "/auth/two-factor", payload, nil)
}
