package middleware

import (
	"log/slog"
	"strings"

	"estate/internal/delivery/api/response"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware turns a bearer access token into a Principal.
type AuthMiddleware struct {
	tokens service.TokenService
	logger *slog.Logger
}

func NewAuthMiddleware(tokens service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth rejects requests without a valid token.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokens.ValidateToken(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		deliverycontext.SetPrincipal(c, claims.Principal)

		return next(c)
	}
}

// RequireUser allows user principals only. Must follow RequireAuth.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := deliverycontext.GetPrincipal(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}
		if !principal.IsUser() {
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}

		return next(c)
	}
}

// RequireAdmin allows admin principals only. Must follow RequireAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := deliverycontext.GetPrincipal(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}
		if !principal.IsAdmin() {
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}

		return next(c)
	}
}

// GetPrincipal returns the caller or ErrUnauthorized.
func GetPrincipal(c echo.Context) (entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthorized
	}

	return principal, nil
}

// GetUserID returns the caller's id when the caller is a user.
func GetUserID(c echo.Context) (uuid.UUID, error) {
	principal, err := GetPrincipal(c)
	if err != nil {
		return uuid.Nil, err
	}
	if !principal.IsUser() {
		return uuid.Nil, domainerrors.ErrForbidden
	}

	return principal.ID, nil
}
