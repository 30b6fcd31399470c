package dto

import "github.com/tyforge/launchpad-backend/internal/domain"

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

// AuthClaims is what the middleware puts in ctx.Locals("user") after a
// token verifies.
type AuthClaims struct {
	UserID  string
	Email   string
	IsAdmin bool
	Expiry  float64
	Iat     float64
}
