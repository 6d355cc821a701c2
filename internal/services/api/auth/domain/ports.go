package domain

import "context"

// ServicePort defines the service contract for auth
type ServicePort interface {
	Register(ctx context.Context, in RegisterInput) (Profile, error)
	Login(ctx context.Context, in LoginInput) (TokenResponse, error)
	Profile(ctx context.Context, userID string) (Profile, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (Profile, error)
	ChangePassword(ctx context.Context, userID string, in ChangePasswordInput) error
	RequestVerify(ctx context.Context, in VerifyRequestInput) error
	ConfirmVerify(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token string, in ResetPasswordInput) error
	SetProfilePicture(ctx context.Context, userID, filename string, data []byte) (Profile, error)

	// VerifyToken parses a bearer token and returns the user id it names
	VerifyToken(token string) (string, error)
}

// MailerPort delivers account mail. The default implementation only logs;
// a real SMTP adapter can be injected through module ports
type MailerPort interface {
	SendVerification(ctx context.Context, email, token string) error
	SendPasswordReset(ctx context.Context, email, token string) error
}
