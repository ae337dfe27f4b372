package handler

import (
	"log/slog"

	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/response"
	"estate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthHandler serves sign-up and the sign-in flows.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=16"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type OTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type OTPVerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required,numeric"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, "registration successful", result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.accountUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "login successful", result)
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.accountUC.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "admin login successful", result)
}

func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req GoogleSignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.accountUC.GoogleSignIn(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "login successful", result)
}

func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req OTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.RequestOTP(c.Request().Context(), req.Phone); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "otp sent", nil)
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req OTPVerifyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.accountUC.VerifyOTP(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "login successful", result)
}

// Me echoes the authenticated principal.
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "authenticated", principal)
}
