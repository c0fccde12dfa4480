package usecase

import (
	authdomain "notevault-backend/internal/auth/domain"
	authdto "notevault-backend/internal/auth/dto"
)

// AuthUsecase orchestrates the account and session-token lifecycle.
type AuthUsecase interface {
	// Register validates the fields and creates a new user
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)

	// Login verifies credentials, mints an access/refresh token pair and
	// stores the refresh token on the user record
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Logout clears the stored refresh token; calling twice is safe
	Logout(userID string) error

	// GetUser returns the sanitized user record
	GetUser(userID string) (*authdomain.User, error)

	// UpdateFullName changes the profile full name
	UpdateFullName(userID, fullName string) (*authdomain.User, error)

	// UpdatePassword verifies the old password and stores a hash of the new one
	UpdatePassword(userID, oldPassword, newPassword string) error

	// DeleteAccount verifies the confirmation password and removes the user
	DeleteAccount(userID, confirmPassword string) error

	// RefreshAccessToken exchanges a valid refresh token for a new access
	// token; the refresh token itself is not rotated
	RefreshAccessToken(refreshToken string) (string, error)

	// ForgotPassword stores a one-time reset token and emails a reset link
	ForgotPassword(email string) error

	// ResetPassword consumes a reset token and stores the new password
	ResetPassword(resetToken, newPassword string) error
}
