package serverApp

import (
	"context"
	"net/http"

	storefrontHandler "ashok-storefront/internal/handler/storefront"
	"ashok-storefront/internal/pkg/middleware"
	catalogService "ashok-storefront/internal/service/catalog"
	orderService "ashok-storefront/internal/service/order"

	"github.com/gin-gonic/gin"
)

// Setup initializes the HTTP server with middleware and routes
func Setup(
	engine *gin.Engine,
	ctx context.Context,
	catalog catalogService.IService,
	order orderService.IService,
	allowOrigins []string,
) {
	InitMiddleware(engine, allowOrigins)

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": http.StatusOK,
			"service": gin.H{
				"catalog": gin.H{
					"status":   "healthy",
					"products": len(catalog.Products()),
				},
			},
		})
	})

	e := engine.Group(BasePath())
	InitRoutes(e, ctx, catalog, order)
}

// BasePath returns the base API path
func BasePath() string {
	return "/api"
}

// InitMiddleware initializes global middleware
func InitMiddleware(e *gin.Engine, allowOrigins []string) {
	e.Use(middleware.CorsMiddleware(allowOrigins))
	e.Use(middleware.RequestInit())
	e.Use(middleware.ResponseInit())
}

func InitRoutes(
	e *gin.RouterGroup,
	ctx context.Context,
	catalog catalogService.IService,
	order orderService.IService,
) {
	// === Storefront ===
	StorefrontHandler := storefrontHandler.NewHandler(ctx, catalog, order)
	StorefrontHandler.NewRoutes(e)
}
