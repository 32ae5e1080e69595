package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/priorityparcel/portal-api/docs"
	"github.com/priorityparcel/portal-api/internal/api/handler"
	"github.com/priorityparcel/portal-api/internal/api/middleware"
	"github.com/priorityparcel/portal-api/internal/core/domain"
	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// RouterDeps bundles everything the router needs to register routes.
// MongoDB and Redis are nil when running on the in-memory store.
type RouterDeps struct {
	AuthService    ports.AuthService
	ContactService ports.ContactService
	OfferteService ports.OfferteService
	ZendingService ports.ZendingService
	UpdateQueue    handler.Enqueuer
	JWTSecret      string
	Mongo          *mongo.Database
	Redis          *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("priorityparcel"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	contactHandler := handler.NewContactHandler(deps.ContactService)
	offerteHandler := handler.NewOfferteHandler(deps.OfferteService)
	zendingHandler := handler.NewZendingHandler(deps.ZendingService)
	updateHandler := handler.NewUpdateHandler(deps.UpdateQueue)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleMedewerker)

	// --- Public routes ---
	e.POST("/api/contact", contactHandler.Submit)
	e.POST("/api/prijsofferte", offerteHandler.Submit)
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)
	e.GET("/api/track/:trackingCode", zendingHandler.Track)

	// --- Authenticated routes ---
	authed := e.Group("/api", authMiddleware)
	authed.GET("/auth/user", authHandler.CurrentUser)
	authed.GET("/zendingen", zendingHandler.List)
	authed.GET("/zendingen/:id", zendingHandler.Get)
	authed.GET("/dashboard/stats", zendingHandler.Stats)

	// --- Staff routes ---
	authed.POST("/zendingen/updates", updateHandler.Submit, staffOnly)

	// --- Admin routes ---
	admin := authed.Group("", adminOnly)
	admin.GET("/contact", contactHandler.List)
	admin.GET("/contact/:id", contactHandler.Get)
	admin.PATCH("/contact/:id/beantwoord", contactHandler.MarkBeantwoord)
	admin.GET("/prijsofferte", offerteHandler.List)
	admin.GET("/prijsofferte/:id", offerteHandler.Get)
	admin.PATCH("/prijsofferte/:id/verwerkt", offerteHandler.MarkVerwerkt)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
