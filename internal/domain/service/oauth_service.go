package service

import "context"

// OAuthUser is the identity carried by a verified provider ID token.
type OAuthUser struct {
	ID            string // Provider subject
	Email         string
	Name          string
	EmailVerified bool
}

// OAuthAuthService verifies ID tokens sent directly by the mobile client.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
