// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"siakad/internal/delivery/http/middleware"
	"siakad/internal/delivery/http/router/handler"
	"siakad/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Public
// routes carry no middleware; everything else is authenticated and gated by a
// per-route role allow-list.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	auth := e.Group("/auth")
	authed := r.authMiddleware.Authenticate
	{
		// Public: credential and token endpoints.
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh", r.userHandler.Refresh)
		auth.POST("/verify-username", r.userHandler.VerifyUsername)
		auth.PUT("/change-password", r.userHandler.UpdatePassword)
		auth.POST("/register-admin-disdik", r.userHandler.RegisterDisdikAdmin)

		auth.POST("/register-siswa", r.userHandler.RegisterSiswa, authed,
			r.authMiddleware.RequireRole(entity.RoleAdminSD, entity.RoleAdminDisdik))
		auth.POST("/register-admin", r.userHandler.RegisterSekolahAdmin, authed,
			r.authMiddleware.RequireRole(entity.RoleAdminDisdik))

		auth.PUT("/users/update/:id", r.userHandler.UpdateUser, authed,
			r.authMiddleware.RequireRole(entity.RoleAdminSD, entity.RoleAdminDisdik))
		auth.GET("/users/:sekolah_id", r.userHandler.ListSiswaBySekolah, authed,
			r.authMiddleware.RequireRole(entity.RoleAdminSD, entity.RoleAdminDisdik))

		auth.DELETE("/logout", r.userHandler.Logout, authed,
			r.authMiddleware.RequireRole(entity.RoleSiswa, entity.RoleAdminSD, entity.RoleAdminSMP, entity.RoleAdminDisdik))
		auth.DELETE("/users/:id", r.userHandler.DeleteUser, authed,
			r.authMiddleware.RequireRole(entity.RoleSiswa, entity.RoleAdminSD, entity.RoleAdminSMP, entity.RoleAdminDisdik))

		auth.GET("/role", r.userHandler.ListRoles, authed,
			r.authMiddleware.RequireRole(entity.RoleAdminSD, entity.RoleAdminDisdik))
		auth.GET("/users-admin", r.userHandler.ListAdminSekolah, authed,
			r.authMiddleware.RequireRole(entity.RoleAdminDisdik, entity.RoleSuperAdmin))
	}
}
