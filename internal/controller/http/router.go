package http

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Admin      *AdminHandler
	SuperAdmin *SuperAdminHandler
	Upload     *UploadHandler
}

// RegisterRoutes mounts the API surface under /api/v1. rateLimit guards the
// credential endpoints only; pass nil to disable.
func RegisterRoutes(r *gin.Engine, h Handlers, auth *AuthMiddleware, rateLimit gin.HandlerFunc) {
	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	if rateLimit != nil {
		authGroup.Use(rateLimit)
	}
	{
		authGroup.POST("/sign-up", h.Auth.SignUp)
		authGroup.POST("/sign-in", h.Auth.SignIn)
		authGroup.POST("/google", h.Auth.GoogleSignIn)
		authGroup.POST("/sign-out", h.Auth.SignOut)
	}

	protected := api.Group("")
	protected.Use(auth.Authenticate())
	{
		protected.GET("/users/me", h.User.Me)
		protected.GET("/users/:id", h.User.GetUser)
		protected.PUT("/users/me/username", h.User.UpdateUsername)
		protected.PUT("/users/me/avatar", h.User.UpdateAvatar)

		protected.POST("/temp-uploads", h.Upload.Create)
		protected.GET("/temp-uploads", h.Upload.List)
		protected.DELETE("/temp-uploads", h.Upload.Clear)

		admin := protected.Group("/admin", auth.RequireAdmin())
		{
			admin.GET("/users", h.Admin.ListUsers)
			admin.POST("/users", h.Admin.CreateUser)
			admin.PUT("/users/force-logout", h.Admin.ForceLogout)
			admin.DELETE("/users/soft-delete", h.Admin.SoftDelete)
			admin.PUT("/users/restore", h.Admin.Restore)
			admin.PUT("/users/:id", h.Admin.UpdateUser)
		}

		superAdmin := protected.Group("/super-admin", auth.RequireSuperAdmin())
		{
			superAdmin.PUT("/users/force-logout-all", h.SuperAdmin.ForceLogoutAll)
			superAdmin.PUT("/users/force-logout", h.SuperAdmin.ForceLogout)
			superAdmin.DELETE("/users/soft-delete", h.SuperAdmin.SoftDelete)
			superAdmin.DELETE("/users/hard-delete", h.SuperAdmin.HardDelete)
			superAdmin.PUT("/users/restore", h.SuperAdmin.Restore)
			superAdmin.POST("/impersonate/:id", h.SuperAdmin.Impersonate)
		}
	}
}
