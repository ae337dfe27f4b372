// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"estate/config"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"google.golang.org/api/idtoken"
)

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type idTokenVerifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService returns a verifier for ID tokens issued to googleOAuth.clientId.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &idTokenVerifier{clientID: clientID, validate: idtoken.Validate, logger: logger}
}

func (v *idTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if v.clientID == "" {
		return nil, errors.New("googleOAuth.clientId is not configured")
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		v.logger.WarnContext(ctx, "google id token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	user := &service.OAuthUser{ID: payload.Subject}
	user.Email, _ = payload.Claims["email"].(string)
	user.Name, _ = payload.Claims["name"].(string)
	user.EmailVerified, _ = payload.Claims["email_verified"].(bool)

	if user.Email == "" {
		return nil, errors.New("ID token carries no email")
	}

	return user, nil
}
