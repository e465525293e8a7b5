package auth

import (
	"context"

	"hobyhub/models"
)

// Upstream is the slice of the API client the auth flow needs.
type Upstream interface {
	GenerateOTP(ctx context.Context, phoneNumber, recaptchaToken string) (string, error)
	VerifyOTP(ctx context.Context, requestID, code string) (*models.AuthResult, error)
	GetProfile(ctx context.Context, token string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, profile models.UserProfile) (*models.UserProfile, error)
}

// AuthService drives the OTP login flow against the upstream and keeps the
// issued token and profile in the local store.
type AuthService interface {
	// RequestOTP asks the upstream to send a code. There is no automatic
	// resend; the caller re-invokes explicitly.
	RequestOTP(ctx context.Context, phoneNumber, recaptchaToken string) (string, error)
	// VerifyOTP exchanges the code for a token, validates it, and persists
	// token and profile for the session.
	VerifyOTP(ctx context.Context, sessionID, requestID, code string) (*models.AuthResult, error)
	// Token returns the stored token for the session, or "" when signed out.
	Token(ctx context.Context, sessionID string) (string, error)
	Profile(ctx context.Context, sessionID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, sessionID string, profile models.UserProfile) (*models.UserProfile, error)
	SignOut(ctx context.Context, sessionID string) error
}
