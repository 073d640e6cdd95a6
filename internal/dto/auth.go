package dto

import "time"

// RegisterRequest is the payload for creating a new user
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=4,max=15"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=8,eqfield=Password"`
}

// LoginRequest is the payload for authenticating a user
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the payload for exchanging a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ChangePasswordRequest is the payload for changing the current password
type ChangePasswordRequest struct {
	OldPassword        string `json:"oldPassword" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required,min=8"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required,eqfield=NewPassword"`
}

// AuthResponse carries a freshly issued token pair
type AuthResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// UserResponse is the public representation of a user
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
