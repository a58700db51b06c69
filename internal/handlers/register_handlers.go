package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/eni-training/course_management_app/cmd/docs"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/platform/config"
	"github.com/eni-training/course_management_app/internal/platform/filestore"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	files *filestore.Store,
) {
	registerCustomValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := r.Group("/api")

	registerAuthRoutes(api, cfg, services)
	registerUserRoutes(api, cfg.JWTSecret, services, files)
	registerAreaRoutes(api, cfg.JWTSecret, services.Area)
	registerCourseRoutes(api, cfg.JWTSecret, services.Course)
	registerEnrollmentRoutes(api, cfg.JWTSecret, services.Enrollment)
	registerEvidenceRoutes(api, cfg.JWTSecret, services.Evidence)

	setupSwaggerRoutes(r, cfg)
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
