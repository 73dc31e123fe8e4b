// Package dto defines request and response shapes for authentication.
package dto

import "time"

// LoginDTO carries credential input.
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserDTO carries admin input for creating an account.
type RegisterUserDTO struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	CompanyID string `json:"companyId" binding:"omitempty"`
	Role      string `json:"role" binding:"required,oneof=admin member"`
}

// LoginResultDTO is returned on successful authentication.
type LoginResultDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserDTO   `json:"user"`
}

// UserDTO is the API representation of an account.
type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CompanyID string `json:"companyId,omitempty"`
	Role      string `json:"role"`
}
