package handlers

import (
	"net/http"

	"github.com/SscSPs/user_profile_aggregator/cmd/docs"
	portssvc "github.com/SscSPs/user_profile_aggregator/internal/core/ports/services"
	"github.com/SscSPs/user_profile_aggregator/internal/dto"
	"github.com/SscSPs/user_profile_aggregator/internal/middleware"
	"github.com/SscSPs/user_profile_aggregator/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// A nil rateLimiter leaves /api/user unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	api := r.Group("/api")

	registerHealthRoutes(api, cfg.Port)
	registerUserRoutes(api, services.Profile, rateLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	// Everything else is served from the public directory
	setupStaticRoutes(r, cfg.PublicDir)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupStaticRoutes serves the front-end bundle for any GET that no API route matched.
func setupStaticRoutes(r *gin.Engine, publicDir string) {
	fileServer := http.FileServer(http.Dir(publicDir))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("route not found"))
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Serving static asset")
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}
