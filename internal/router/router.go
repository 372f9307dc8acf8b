package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"king_backend/internal/config"
	"king_backend/internal/handlers"
	"king_backend/internal/middleware"
	"king_backend/internal/repositories"
	"king_backend/internal/services"
	"king_backend/pkg/utils"
)

// Roles allowed to write through the back-office routes when auth is enabled.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operador"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sqlx.DB, cfg config.Config) {
	// Initialize Repositories
	productRepo := repositories.NewProductRepository()
	clientRepo := repositories.NewClientRepository()
	saleRepo := repositories.NewSaleRepository()
	purchaseRepo := repositories.NewPurchaseRepository()

	// Initialize Services
	productService := services.NewProductService(productRepo, db)
	clientService := services.NewClientService(clientRepo, db)
	saleService := services.NewSaleService(saleRepo, productRepo, db)
	purchaseService := services.NewPurchaseService(purchaseRepo, productRepo, db)
	assistantService := services.NewAssistantService(productRepo, db)

	// Initialize Handlers
	productHandler := handlers.NewProductHandler(productService)
	clientHandler := handlers.NewClientHandler(clientService)
	saleHandler := handlers.NewSaleHandler(saleService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// The voice assistant cannot send our bearer tokens.
	SetupAssistantRoutes(engine.Group("/alexa"), assistantHandler)

	backOffice := engine.Group("")
	var writeGuard []gin.HandlerFunc
	if cfg.AuthJWTSecret != "" {
		backOffice.Use(middleware.AuthMiddleware([]byte(cfg.AuthJWTSecret)))
		writeGuard = append(writeGuard, middleware.RoleAuthMiddleware(RoleAdmin, RoleOperator))
	} else {
		utils.LogInfo("AUTH_JWT_SECRET not set, back-office routes are unauthenticated")
	}

	SetupProductRoutes(backOffice, productHandler, writeGuard...)
	SetupClientRoutes(backOffice, clientHandler, writeGuard...)
	SetupSaleRoutes(backOffice, saleHandler, writeGuard...)
	SetupPurchaseRoutes(backOffice, purchaseHandler, writeGuard...)
}
