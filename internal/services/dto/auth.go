package dto

import "agencia_backend/internal/models"

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Role     models.UserRole `json:"role" validate:"required,oneof=visitor model"`

	// Only meaningful when registering as a model.
	ArtisticName string `json:"artistic_name" validate:"omitempty,min=2,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type UserResponse struct {
	ID      string           `json:"id"`
	Email   string           `json:"email"`
	Name    string           `json:"name"`
	Role    models.UserRole  `json:"role"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

func NewUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
	if user.Profile != nil {
		resp.Profile = NewProfileResponse(user.Profile)
	}
	return resp
}
