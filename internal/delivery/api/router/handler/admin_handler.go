package handler

import (
	"log/slog"

	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/response"
	"estate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AdminHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// AdminHandler serves maintenance operations.
type AdminHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// ReconcileListingCounts recomputes every user's listing count from the
// listings table.
func (h *AdminHandler) ReconcileListingCounts(c echo.Context) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	updated, err := h.listingUC.ReconcileListingCounts(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "listing counts reconciled", map[string]int64{"usersUpdated": updated})
}
