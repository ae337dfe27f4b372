// Package context carries per-request values between the echo layer and the
// usecases: the request id, a logger tagged with it, and the caller.
package context

import (
	"context"
	"log/slog"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from inbound requests and echoed on responses.
const HeaderXRequestID = "X-Request-Id"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	loggerKey    ctxKey = "logger"
	principalKey ctxKey = "principal"
)

// GetRequestID falls back to a fresh UUID so log lines are never untagged.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(requestIDKey)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(requestIDKey), requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault lets usecases log with the request's logger when they
// run under one and with their own otherwise.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// SetPrincipal stores the verified caller on both the echo.Context and the
// request context, so handlers and usecases see the same value.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(string(principalKey), principal)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), principalKey, principal)))
}

// GetPrincipal reports false when auth did not run or produced nothing.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(string(principalKey)).(entity.Principal)
	if !ok || principal.IsZero() {
		return entity.Principal{}, false
	}

	return principal, true
}

// PrincipalFromContext returns the zero Principal when none is set.
func PrincipalFromContext(ctx context.Context) entity.Principal {
	principal, _ := ctx.Value(principalKey).(entity.Principal)

	return principal
}
