package auth

import (
	"github.com/honestpc/honestpc-backend/internal/users"
)

// RegisterRequest captures the signup payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse contains the token and user produced by a successful
// registration or login.
type AuthResponse struct {
	AccessToken string         `json:"accessToken"`
	User        *users.UserDTO `json:"user"`
}
