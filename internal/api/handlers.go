package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/heritage-recipes/backend/internal/middleware"
	"github.com/pageza/heritage-recipes/backend/internal/service"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheck returns the health status of the API
func HealthCheck(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Server is running",
		})
	}
}

// Dependencies are the services the routes are served from.
type Dependencies struct {
	AuthService   service.IAuthService
	RecipeService service.IRecipeService
	DB            HealthChecker
	// ImageUploads enables POST /api/recipes/:id/image.
	ImageUploads bool
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", HealthCheck(deps.DB))

	requireAuth := middleware.AuthMiddleware(deps.AuthService)

	api := router.Group("/api")
	NewAuthHandler(deps.AuthService).RegisterRoutes(api, requireAuth)
	NewRecipeHandler(deps.RecipeService).RegisterRoutes(api, requireAuth, deps.ImageUploads)
}
