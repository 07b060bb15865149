package routes

import (
	"agencia_backend/internal/auth"
	"agencia_backend/internal/handlers"
	"agencia_backend/internal/middleware"
	"agencia_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route. Three tiers: public catalog,
// authenticated uploads, and the admin back office.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenManager) {
	api := router.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.Catalog.RegisterRoutes(api)
	}

	authed := router.Group("/api/v1")
	authed.Use(middleware.AuthMiddleware(tokens))
	{
		h.Photo.RegisterRoutes(authed)
	}

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(tokens))
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		h.AdminModel.RegisterRoutes(admin)
		h.Photo.RegisterAdminRoutes(admin)
		h.Slider.RegisterRoutes(admin)
		h.Settings.RegisterRoutes(admin)
	}
}
