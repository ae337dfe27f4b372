package google

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newVerifier(fn validateFunc) *idTokenVerifier {
	return &idTokenVerifier{
		clientID: "client-123.apps.googleusercontent.com",
		validate: fn,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestVerifyIDToken(t *testing.T) {
	v := newVerifier(func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "client-123.apps.googleusercontent.com", audience)

		return &idtoken.Payload{
			Subject: "1084",
			Claims:  map[string]any{"email": "asha@example.com", "name": "Asha", "email_verified": true},
		}, nil
	})

	user, err := v.VerifyIDToken(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "1084", user.ID)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "Asha", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestVerifyIDToken_Rejected(t *testing.T) {
	v := newVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	})

	_, err := v.VerifyIDToken(context.Background(), "stale")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ID token")
}

func TestVerifyIDToken_RequiresEmail(t *testing.T) {
	v := newVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "1", Claims: map[string]any{}}, nil
	})

	_, err := v.VerifyIDToken(context.Background(), "t")
	assert.Error(t, err)
}
