// Package domain holds DTOs for auth http and service contracts
package domain

// RegisterInput is the payload for creating an account
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=1,max=100" example:"Ada Lovelace"`
	Username string `json:"username" validate:"required,min=3,max=40,printascii" example:"ada"`
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required,min=8,max=128" example:"hunter2hunter2"`
}

// LoginInput is the payload for exchanging credentials for a token
type LoginInput struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"hunter2hunter2"`
}

// TokenResponse carries a signed bearer token
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at" example:"2026-08-31T13:00:00Z"`
}

// Profile is the account view returned to the owner
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Verified    bool   `json:"verified"`
	PicturePath string `json:"picture_path,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// UpdateProfileInput is the payload for editing name and username
type UpdateProfileInput struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Username string `json:"username" validate:"required,min=3,max=40,printascii"`
}

// ChangePasswordInput rotates the password for a logged in user
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=128"`
}

// VerifyRequestInput asks for a fresh verification mail
type VerifyRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput sets a new password through a reset token
type ResetPasswordInput struct {
	Password string `json:"password" validate:"required,min=8,max=128"`
}
