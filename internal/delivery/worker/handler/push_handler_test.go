package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/errors"
	"estate/internal/infra/pubsub"
	mockUsecase "estate/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func pushBody(t *testing.T, event *entity.ListingEvent, attributes map[string]string) []byte {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var envelope pubsub.PushEnvelope
	envelope.Message.Data = base64.StdEncoding.EncodeToString(raw)
	envelope.Message.MessageID = "m-1"
	envelope.Message.Attributes = attributes
	envelope.Subscription = "projects/p/subscriptions/listing-events"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return body
}

func newPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	notifications := mockUsecase.NewMockNotificationUsecase(t)

	return &PushHandler{
		validate:      idtoken.Validate,
		logger:        slog.New(slog.DiscardHandler),
		notifications: notifications,
	}, notifications
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func soldEvent() *entity.ListingEvent {
	owner := uuid.New()

	return &entity.ListingEvent{
		Type:        entity.ListingEventSold,
		ListingID:   uuid.New(),
		CustomID:    "S4-2",
		OwnerUserID: &owner,
		ActorID:     owner,
		RequestID:   "req-from-event",
	}
}

func TestHandlePush_Success(t *testing.T) {
	h, notifications := newPushHandler(t)
	event := soldEvent()

	notifications.EXPECT().
		HandleListingEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-attrs"
		}), mock.MatchedBy(func(e *entity.ListingEvent) bool {
			return e.ListingID == event.ListingID && e.Type == entity.ListingEventSold
		})).
		Return(nil)

	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-from-attrs"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RetryPolicy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "upstream outage is retried", err: errors.Join(domainerrors.ErrUpstreamUnavailable, errors.New("fcm 503")), wantStatus: http.StatusServiceUnavailable},
		{name: "permanent failure is acknowledged", err: domainerrors.ErrValidationFailed.WithDetails("unknown event"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := newPushHandler(t)
			notifications.EXPECT().HandleListingEvent(mock.Anything, mock.Anything).Return(tt.err)

			rec := servePush(h, pushBody(t, soldEvent(), nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_MalformedPayload(t *testing.T) {
	h, _ := newPushHandler(t)

	var envelope pubsub.PushEnvelope
	envelope.Message.Data = "%%%not-base64"
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, servePush(h, body, nil).Code)
	assert.Equal(t, http.StatusBadRequest, servePush(h, []byte("{"), nil).Code)
}

func TestHandlePush_VerifiesToken(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		h, _ := newPushHandler(t)
		h.verifyPushAuth = true

		assert.Equal(t, http.StatusUnauthorized, servePush(h, pushBody(t, soldEvent(), nil), nil).Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newPushHandler(t)
		h.verifyPushAuth = true
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		header := http.Header{}
		header.Set(echo.HeaderAuthorization, "Bearer tok")

		assert.Equal(t, http.StatusUnauthorized, servePush(h, pushBody(t, soldEvent(), nil), header).Code)
	})

	t.Run("valid token with push endpoint audience", func(t *testing.T) {
		h, notifications := newPushHandler(t)
		h.verifyPushAuth = true
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "tok", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		notifications.EXPECT().HandleListingEvent(mock.Anything, mock.Anything).Return(nil)

		header := http.Header{}
		header.Set(echo.HeaderAuthorization, "Bearer tok")

		assert.Equal(t, http.StatusOK, servePush(h, pushBody(t, soldEvent(), nil), header).Code)
	})
}
