package routes

import (
	"ClinicDesk/config"
	"ClinicDesk/controllers"
	"ClinicDesk/handlers"
	"ClinicDesk/logging"
	"ClinicDesk/middlewares"
	"ClinicDesk/services"
	"ClinicDesk/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(store *services.ClinicStore, config *config.AppConfig, logger *logging.Logger, issuer *utils.TokenIssuer, gatherer prometheus.Gatherer) http.Handler {
	if config.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middlewares.LoggingMiddleware(logger))
	router.Use(middlewares.CorsMiddleware(middlewares.NewCorsConfig(config.AllowedOrigins)))
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: config.RateLimitRPS,
		Burst:             config.RateLimitBurst,
	}))

	authController := controllers.NewAuthController(handlers.NewAuthHandler(store, issuer), issuer)
	authController.RegisterRoutes(router)

	api := router.Group("/api")
	api.Use(middlewares.TokenAuthMiddleware(issuer))
	controllers.SetupClinicRoutes(
		api,
		handlers.NewAppointmentHandler(store),
		handlers.NewPatientHandler(store),
		handlers.NewInvoiceHandler(store),
		handlers.NewToothHandler(store),
		handlers.NewDashboardHandler(store),
		handlers.NewExportHandler(store),
		handlers.NewPreferencesHandler(store),
		handlers.NewViewHandler(store),
		handlers.NewNematodeHandler(),
	)

	controllers.SetupRootRoute(router, gatherer)

	return router
}
