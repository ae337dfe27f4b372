package validator

import (
	"testing"

	domainerrors "estate/internal/domain/errors"
	"estate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	City  string `json:"city" validate:"required"`
	State string `json:"state" validate:"required"`
}

type submission struct {
	Address address `json:"address"`
	Price   float64 `json:"price" validate:"gt=0"`
	Purpose string  `json:"purpose" validate:"required,oneof=Sell Rent"`
	Email   string  `json:"email" validate:"omitempty,email"`
}

func TestValidate_Valid(t *testing.T) {
	err := New().Validate(&submission{
		Address: address{City: "Pune", State: "MH"},
		Price:   100,
		Purpose: "Sell",
	})

	assert.NoError(t, err)
}

func TestValidate_ReportsJSONPaths(t *testing.T) {
	err := New().Validate(&submission{
		Address: address{City: "Pune"},
		Purpose: "Swap",
		Email:   "nope",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "address.state: is required")
	assert.Contains(t, appErr.Details(), "price: must be gt 0")
	assert.Contains(t, appErr.Details(), "purpose: must be one of [Sell Rent]")
	assert.Contains(t, appErr.Details(), "email: must be a valid email")
}
