package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/salesmgmt/sales-system/internal/api/handler"
	"github.com/salesmgmt/sales-system/internal/api/middleware"
	"github.com/salesmgmt/sales-system/internal/core/auth"
	"github.com/salesmgmt/sales-system/internal/core/service"
	"github.com/salesmgmt/sales-system/internal/infrastructure/db/postgres"
	redisinfra "github.com/salesmgmt/sales-system/internal/infrastructure/db/redis"
	"github.com/salesmgmt/sales-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("sales"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	roleRepo := redisinfra.NewRoleCache(rdb, postgres.NewRoleRepository(pool), log)

	// --- Services ---
	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	tokenVerifier := auth.NewTokenVerifier(cfg.JWTSecret)

	roleService := service.NewRoleService(roleRepo)
	authService := service.NewAuthService(userRepo, customerRepo, roleService, tokenIssuer, service.OperatorCredentials{
		Username: cfg.Operator.Username,
		Password: cfg.Operator.Password,
	})
	userService := service.NewUserService(userRepo)
	customerService := service.NewCustomerService(customerRepo)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	roleHandler := handler.NewRoleHandler(roleService)
	userHandler := handler.NewUserHandler(userService)
	customerHandler := handler.NewCustomerHandler(customerService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)

	authGuard := middleware.Auth(tokenVerifier)

	apiGroup := e.Group("/api")

	// --- Auth ---
	apiGroup.POST("/login", authHandler.Login)

	// --- Roles ---
	apiGroup.GET("/roles", roleHandler.List)

	// --- Staff users (token required) ---
	users := apiGroup.Group("/users", authGuard)
	users.GET("", userHandler.List)
	users.GET("/search", userHandler.Search)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.PUT("/:id/role", userHandler.UpdateRole)
	users.DELETE("/:id", userHandler.Delete)

	// --- Customers ---
	customers := apiGroup.Group("/customers")
	customers.POST("", customerHandler.Register)
	customers.GET("", customerHandler.List)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	// --- Products (token required) ---
	products := apiGroup.Group("/products", authGuard)
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Cart ---
	cart := apiGroup.Group("/cart")
	cart.POST("", cartHandler.Add)
	cart.GET("/:customerId", cartHandler.Get)
	cart.PUT("/:id", cartHandler.Update)
	cart.DELETE("/:id", cartHandler.Delete)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
