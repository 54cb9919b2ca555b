// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inventra/inventory-backend/internal/config"
	"github.com/inventra/inventory-backend/internal/handlers"
	"github.com/inventra/inventory-backend/internal/metrics"
	"github.com/inventra/inventory-backend/internal/middleware"
	"github.com/inventra/inventory-backend/internal/services"
	"github.com/inventra/inventory-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	m := metrics.New(cfg.Metrics.Namespace)

	// Initialize services
	userService := services.NewUserService(db)
	authService := services.NewAuthService(db, userService, cfg)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db, cfg.Catalog)
	stockService := services.NewStockService(db)

	sessions := middleware.NewSessionManager(cfg.Session)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, sessions, m)
	categoryHandler := handlers.NewCategoryHandler(categoryService, m)
	productHandler := handlers.NewProductHandler(productService, stockService, m)
	healthHandler := handlers.NewHealthHandler(db)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group("/api")
	api.Use(middleware.GeneralRateLimit(cfg.RateLimit))
	api.Use(middleware.Authenticate(authService, sessions))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(cfg.RateLimit), authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/check", middleware.AuthRequired(), authHandler.Check)
		}

		products := api.Group("/products")
		products.Use(middleware.AuthRequired())
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.PATCH("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.PUT("/:id/stock", productHandler.UpdateStock)
			products.GET("/:id/updates", productHandler.GetProductUpdates)
		}

		// Role checks for writes happen in CategoryService.
		categories := api.Group("/categories")
		categories.Use(middleware.AuthRequired())
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.PATCH("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		utils.NotFoundResponse(c, "Not found")
	})

	return r
}
