// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/electronet/electronet-backend/internal/config"
	"github.com/electronet/electronet-backend/internal/handlers"
	"github.com/electronet/electronet-backend/internal/middleware"
	"github.com/electronet/electronet-backend/internal/services"
	"github.com/electronet/electronet-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	networkService := services.NewNetworkService(db)
	productService := services.NewProductService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	nodeHandler := handlers.NewNetworkNodeHandler(networkService, cfg.Pagination)
	productHandler := handlers.NewProductHandler(productService, cfg.Pagination)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Authentication routes
	auth := r.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/register/", authHandler.Register)
		auth.POST("/login/", authHandler.Login)
		auth.POST("/refresh/", authHandler.RefreshToken)
	}

	// Product routes
	products := r.Group("/product")
	products.Use(middleware.AuthRequired())
	{
		products.POST("/create/", productHandler.CreateProduct)
		products.GET("/view/", productHandler.ListProducts)
		products.GET("/view/:id", productHandler.GetProduct)
		products.PUT("/update/:id", productHandler.UpdateProduct)
		products.DELETE("/delete/:id", productHandler.DeleteProduct)
	}

	// Network node routes
	nodes := r.Group("/networknode")
	nodes.Use(middleware.AuthRequired())
	{
		nodes.POST("/create/", nodeHandler.CreateNode)
		nodes.GET("/view/", nodeHandler.ListNodes)
		nodes.GET("/view/:id", nodeHandler.GetNode)
		nodes.PUT("/update/:id", nodeHandler.UpdateNode)
		nodes.DELETE("/delete/:id", nodeHandler.DeleteNode)
	}

	// Operator-only routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.POST("/networknode/nullify-debt/", adminHandler.NullifyDebt)
	}

	return r
}
