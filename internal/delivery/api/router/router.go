// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	DeviceHandler   *handler.DeviceHandler
	PropertyHandler *handler.PropertyHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	deviceHandler   *handler.DeviceHandler
	propertyHandler *handler.PropertyHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		deviceHandler:   params.DeviceHandler,
		propertyHandler: params.PropertyHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	requireAuth := r.authMiddleware.RequireAuth

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleSignIn)
		authGroup.POST("/otp/request", r.authHandler.RequestOTP)
		authGroup.POST("/otp/verify", r.authHandler.VerifyOTP)
		authGroup.GET("/me", r.authHandler.Me, requireAuth)
	}

	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/login", r.authHandler.AdminLogin)
		adminGroup.POST("/reconcile/listing-counts", r.adminHandler.ReconcileListingCounts, requireAuth, middleware.RequireAdmin)
	}

	// Profile, marks and devices belong to user accounts only.
	userGroup := e.Group("/user", requireAuth, middleware.RequireUser)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)

		userGroup.GET("/saved", r.userHandler.ListSaved)
		userGroup.POST("/saved/:id", r.userHandler.Save)
		userGroup.DELETE("/saved/:id", r.userHandler.Unsave)
		userGroup.GET("/bought", r.userHandler.ListBought)
		userGroup.POST("/bought/:id", r.userHandler.MarkBought)

		userGroup.POST("/devices", r.deviceHandler.RegisterDevice)
		userGroup.GET("/devices", r.deviceHandler.GetUserDevices)
		userGroup.PUT("/devices/:id/token", r.deviceHandler.UpdateFCMToken)
		userGroup.DELETE("/devices/:id", r.deviceHandler.DeactivateDevice)
	}

	propertyGroup := e.Group("/property")
	{
		// Public reads.
		propertyGroup.GET("/all", r.propertyHandler.List)
		propertyGroup.GET("/:id", r.propertyHandler.Get)
		propertyGroup.GET("/:id/qr", r.propertyHandler.QRCode)

		propertyGroup.POST("", r.propertyHandler.Create, requireAuth)
		propertyGroup.GET("/nearby", r.propertyHandler.Nearby, requireAuth)
		propertyGroup.GET("/sold", r.propertyHandler.ListSold, requireAuth)
		propertyGroup.PUT("/:id", r.propertyHandler.Update, requireAuth)
		propertyGroup.DELETE("/:id", r.propertyHandler.Delete, requireAuth)
		propertyGroup.PATCH("/:id/sold", r.propertyHandler.ToggleSold, requireAuth)
		propertyGroup.POST("/:id/visit", r.propertyHandler.RecordVisit, requireAuth)
		propertyGroup.POST("/:id/images", r.propertyHandler.UploadImages, requireAuth)
	}
}
