package handler

import (
	"log/slog"

	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/response"
	"estate/internal/domain/entity"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type UserHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	MarkUC    usecase.MarkUsecase
	Logger    *slog.Logger
}

// UserHandler serves the caller's profile and saved or bought listings.
type UserHandler struct {
	accountUC usecase.AccountUsecase
	markUC    usecase.MarkUsecase
	logger    *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accountUC: params.AccountUC,
		markUC:    params.MarkUC,
		logger:    params.Logger,
	}
}

type UpdateProfileRequest struct {
	Name           *string                `json:"name" validate:"omitempty,min=1,max=120"`
	ProfileAddress *entity.ProfileAddress `json:"profileAddress"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "profile fetched", user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), userID, &usecase.ProfileUpdate{
		Name:    req.Name,
		Profile: req.ProfileAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "profile updated", user)
}

func (h *UserHandler) ListSaved(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listings, err := h.markUC.ListSaved(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "saved properties fetched", listings)
}

func (h *UserHandler) Save(c echo.Context) error {
	userID, listingID, err := h.userAndListing(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.markUC.Save(c.Request().Context(), userID, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "property saved", nil)
}

func (h *UserHandler) Unsave(c echo.Context) error {
	userID, listingID, err := h.userAndListing(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.markUC.Unsave(c.Request().Context(), userID, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "property removed from saved", nil)
}

func (h *UserHandler) ListBought(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listings, err := h.markUC.ListBought(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "bought properties fetched", listings)
}

func (h *UserHandler) MarkBought(c echo.Context) error {
	userID, listingID, err := h.userAndListing(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.markUC.MarkBought(c.Request().Context(), userID, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "property marked as bought", nil)
}

func (h *UserHandler) userAndListing(c echo.Context) (userID, listingID uuid.UUID, err error) {
	if userID, err = middleware.GetUserID(c); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if listingID, err = pathID(c, "id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, listingID, nil
}
