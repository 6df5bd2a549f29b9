package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecomarket/catalog-api/internal/api/handler"
	"github.com/ecomarket/catalog-api/internal/api/middleware"
	"github.com/ecomarket/catalog-api/internal/core/ports"
	"github.com/ecomarket/catalog-api/pkg/logger"
)

// Services bundles the service layer handed to the router.
type Services struct {
	Auth       ports.AuthService
	Permission ports.PermissionService
	Category   ports.CategoryService
	Product    ports.ProductService
	Audit      ports.AuditService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, svc Services, authMW echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	permissionHandler := handler.NewPermissionHandler(svc.Permission)
	categoryHandler := handler.NewCategoryHandler(svc.Category)
	productHandler := handler.NewProductHandler(svc.Product)
	auditHandler := handler.NewAuditHandler(svc.Audit)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/token", authHandler.Token)
	e.GET("/auth/me", authHandler.Me, authMW)

	// --- Catalog routes (reads public, mutations authenticated) ---
	e.GET("/categories", categoryHandler.List)
	e.POST("/categories", categoryHandler.Create, authMW)
	e.PUT("/categories/:id", categoryHandler.Update, authMW)
	e.DELETE("/categories/:id", categoryHandler.Delete, authMW)

	e.GET("/products", productHandler.List)
	e.GET("/products/category/:category_slug", productHandler.ListByCategory)
	e.GET("/products/detail/:product_slug", productHandler.Detail)
	e.POST("/products", productHandler.Create, authMW)
	e.PUT("/products/detail/:product_slug", productHandler.Update, authMW)
	e.DELETE("/products/:id", productHandler.Delete, authMW)

	// --- Admin routes ---
	admin := e.Group("/admin", authMW, middleware.RequireAdmin())
	admin.PATCH("/permissions/:user_id", permissionHandler.ToggleSupplier)
	admin.PATCH("/users/:user_id/active", permissionHandler.ToggleActive)
	admin.GET("/audit/:username", auditHandler.ListByActor)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
