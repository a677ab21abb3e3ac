package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/dqexpress/courier-tracking/docs"
	"github.com/dqexpress/courier-tracking/internal/api/handler"
	"github.com/dqexpress/courier-tracking/internal/api/middleware"
	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
	"github.com/dqexpress/courier-tracking/internal/core/service"
	"github.com/dqexpress/courier-tracking/internal/infrastructure/carrier"
	"github.com/dqexpress/courier-tracking/internal/infrastructure/config"
	redisinfra "github.com/dqexpress/courier-tracking/internal/infrastructure/db/redis"

	mongostore "github.com/dqexpress/courier-tracking/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(echoprometheus.NewMiddleware("courier"))

	// --- Dependencies ---
	shipmentRepo := mongostore.NewShipmentRepository(db)
	userRepo := mongostore.NewUserRepository(db)

	// Absence of the carrier credential is a configuration state, not a
	// crash: the tracking service reports it on the carrier path.
	var carrierClient ports.CarrierClient
	if cfg.Carrier.APIKey != "" {
		carrierClient = carrier.NewAfterShipClient(cfg.Carrier.APIKey, cfg.Carrier.BaseURL, cfg.Carrier.Timeout, log)
	} else {
		log.Warn().Msg("AFTERSHIP_API_KEY not set, carrier lookups disabled")
	}

	mode := service.ParseMode(cfg.TrackingMode)
	if mode == service.ModeDemo {
		log.Warn().Msg("tracking runs in demo mode, carrier failures serve synthetic data")
	}

	trackingService := service.NewTrackingService(shipmentRepo, carrierClient, mode, log)
	shipmentService := service.NewShipmentService(shipmentRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour, cfg.AdminEmails)

	trackingHandler := handler.NewTrackingHandler(trackingService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	carrierHandler := handler.NewCarrierHandler(carrierClient)
	authHandler := handler.NewAuthHandler(authService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	rateLimiter := redisinfra.NewFixedWindowLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// --- Public tracking ---
	e.POST("/v1/track", trackingHandler.Track, middleware.RateLimit(rateLimiter, log))

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Admin dashboard ---
	admin := e.Group("/v1", authMiddleware, adminOnly)
	admin.POST("/shipments", shipmentHandler.Create)
	admin.GET("/shipments", shipmentHandler.List)
	admin.GET("/shipments/:id", shipmentHandler.Get)
	admin.PATCH("/shipments/:id", shipmentHandler.Update)
	admin.DELETE("/shipments/:id", shipmentHandler.Delete)
	admin.POST("/carrier/trackings", carrierHandler.CreateTracking)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
