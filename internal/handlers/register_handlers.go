package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/oclock/event_backend/cmd/docs"
	"github.com/oclock/event_backend/internal/dto"
	"github.com/oclock/event_backend/internal/middleware"
	"github.com/oclock/event_backend/internal/platform/config"

	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidations()

	registerHomeRoutes(r)

	// Public authentication routes sit outside the token gate
	registerAuthRoutes(r, services)

	setupAPIRoutes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// registerValidations hooks struct-level checks into Gin's binding validator.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(eventDatesValidation, dto.CreateEventRequest{})
	}
}

// eventDatesValidation rejects events that end before they start.
func eventDatesValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.CreateEventRequest)
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		sl.ReportError(req.EndDate, "endDate", "EndDate", "gtfield", "StartDate")
	}
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// The token gate runs for the whole group; role checks happen per route
	api := r.Group("/api", middleware.AuthMiddleware(cfg, services.Auth))

	registerUserRoutes(api, services.User)
	registerEventRoutes(api, services.Event)
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
