package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/skyparcel/admin-api/docs"
	"github.com/skyparcel/admin-api/internal/api/handler"
	"github.com/skyparcel/admin-api/internal/api/middleware"
	"github.com/skyparcel/admin-api/internal/core/domain"
	"github.com/skyparcel/admin-api/internal/core/service"
	mongodb "github.com/skyparcel/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/skyparcel/admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The event dispatcher is constructed by the caller because its worker
// lifecycle is tied to the process, not to the router.
func NewRouter(db *mongo.Database, rdb *redis.Client, dispatcher handler.EventDispatcher, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("skyparcel"))

	// --- Dependencies ---
	revoker := redisdb.NewTokenRevoker(rdb)

	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, revoker, jwtSecret, 24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	shipmentRepo := mongodb.NewShipmentRepository(db)
	shipmentService := service.NewShipmentService(shipmentRepo, log)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)

	eventHandler := handler.NewEventHandler(dispatcher)

	authMiddleware := middleware.Auth(jwtSecret, revoker)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleOps)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Console routes (staff only) ---
	v1 := e.Group("/v1", authMiddleware, staffOnly)
	v1.GET("/shipments", shipmentHandler.List)
	v1.GET("/shipments/:id", shipmentHandler.Get)
	v1.PATCH("/shipments/:id/status", shipmentHandler.UpdateStatus)
	v1.POST("/events", eventHandler.Receive)
	v1.POST("/events/batch", eventHandler.ReceiveBatch)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
