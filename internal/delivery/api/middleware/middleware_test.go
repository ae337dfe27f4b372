package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"estate/internal/delivery/api/response"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"
	"estate/internal/errors"
	mockSvc "estate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)

	return env.Error.Code
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token sets principal", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("good").
			Return(&service.Claims{Principal: entity.NewUserPrincipal(userID)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		c, rec := newContext(req)

		var seen entity.Principal
		handler := NewAuthMiddleware(tokens, slog.New(slog.DiscardHandler)).RequireAuth(func(c echo.Context) error {
			seen = deliverycontext.PrincipalFromContext(c.Request().Context())

			return okHandler(c)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, entity.NewUserPrincipal(userID), seen)
	})

	t.Run("missing header", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/user/profile", nil))

		require.NoError(t, NewAuthMiddleware(tokens, slog.New(slog.DiscardHandler)).RequireAuth(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
	})

	t.Run("invalid token", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

		req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
		c, rec := newContext(req)

		require.NoError(t, NewAuthMiddleware(tokens, slog.New(slog.DiscardHandler)).RequireAuth(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireKind(t *testing.T) {
	tests := []struct {
		name       string
		principal  *entity.Principal
		middleware echo.MiddlewareFunc
		wantStatus int
	}{
		{name: "admin passes admin gate", principal: ptr(entity.NewAdminPrincipal(uuid.New())), middleware: RequireAdmin, wantStatus: http.StatusNoContent},
		{name: "user blocked at admin gate", principal: ptr(entity.NewUserPrincipal(uuid.New())), middleware: RequireAdmin, wantStatus: http.StatusForbidden},
		{name: "user passes user gate", principal: ptr(entity.NewUserPrincipal(uuid.New())), middleware: RequireUser, wantStatus: http.StatusNoContent},
		{name: "admin blocked at user gate", principal: ptr(entity.NewAdminPrincipal(uuid.New())), middleware: RequireUser, wantStatus: http.StatusForbidden},
		{name: "anonymous", middleware: RequireUser, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
			if tt.principal != nil {
				deliverycontext.SetPrincipal(c, *tt.principal)
			}

			require.NoError(t, tt.middleware(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetUserID(t *testing.T) {
	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := GetUserID(c)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	id := uuid.New()
	deliverycontext.SetPrincipal(c, entity.NewUserPrincipal(id))
	got, err := GetUserID(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "domain error", err: errors.Wrap(domainerrors.ErrListingNotFound, "get listing"), wantStatus: http.StatusNotFound, wantCode: domainerrors.ErrListingNotFound.ErrorCode()},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), wantStatus: http.StatusMethodNotAllowed, wantCode: "HTTP_ERROR"},
		{name: "unknown error", err: errors.New("pq: connection reset"), wantStatus: http.StatusInternalServerError, wantCode: domainerrors.ErrInternalError.ErrorCode()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

			NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
