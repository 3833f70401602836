package contract

import "github.com/google/uuid"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=128" sanitize:"-"`
}

type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=128" sanitize:"-"`
	Active   *bool  `json:"active"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required" sanitize:"-"`
}

// UpdateProfileRequest only changes what was filled in. The password is
// changed when NewPassword or ConfirmPassword is set.
type UpdateProfileRequest struct {
	Name            string `json:"name" validate:"omitempty,max=100"`
	Email           string `json:"email" validate:"omitempty,email,max=100"`
	CurrentPassword string `json:"current_password" sanitize:"-"`
	NewPassword     string `json:"new_password" validate:"omitempty,max=128" sanitize:"-"`
	ConfirmPassword string `json:"confirm_password" sanitize:"-"`
}

type ReplaceAccountRequest struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name" validate:"required,notblank,max=100"`
	Email  string    `json:"email" validate:"required,email,max=100"`
	Active *bool     `json:"active" validate:"required"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type AccountIdentityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AccountTokenResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
