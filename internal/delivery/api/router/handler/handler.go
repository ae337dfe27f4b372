// Package handler holds the echo handlers of the API server.
package handler

import (
	"estate/internal/delivery/api/response"
	domainerrors "estate/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.OK(c, "ok", map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request and runs struct validation. Both
// failures come back as ErrValidationFailed.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return c.Validate(req)
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a UUID")
	}

	return id, nil
}
