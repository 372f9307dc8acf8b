package router

import (
	"github.com/gin-gonic/gin"

	"king_backend/internal/handlers"
)

func withGuard(guard []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guard)+1)
	chain = append(chain, guard...)
	return append(chain, h)
}

// SetupProductRoutes sets up the product routes. guard runs before the write handlers.
func SetupProductRoutes(group *gin.RouterGroup, productHandler *handlers.ProductHandler, guard ...gin.HandlerFunc) {
	group.POST("/inserir-produto", withGuard(guard, productHandler.CreateProduct)...)
	group.GET("/consultar-produto/:nome", productHandler.GetProductByName)
	group.GET("/consultar-produto-codigo/:codigo", productHandler.GetProductByCode)
	group.GET("/estoque/:nome", productHandler.GetStockByName)
}

// SetupClientRoutes sets up the client routes.
func SetupClientRoutes(group *gin.RouterGroup, clientHandler *handlers.ClientHandler, guard ...gin.HandlerFunc) {
	group.POST("/inserir-cliente", withGuard(guard, clientHandler.CreateClient)...)
}

// SetupSaleRoutes sets up the sale routes.
func SetupSaleRoutes(group *gin.RouterGroup, saleHandler *handlers.SaleHandler, guard ...gin.HandlerFunc) {
	group.POST("/inserir-venda", withGuard(guard, saleHandler.CreateSale)...)
	group.GET("/consultar-venda/:id", saleHandler.GetSaleByID)
}

// SetupPurchaseRoutes sets up the purchase routes.
func SetupPurchaseRoutes(group *gin.RouterGroup, purchaseHandler *handlers.PurchaseHandler, guard ...gin.HandlerFunc) {
	group.POST("/inserir-compra", withGuard(guard, purchaseHandler.CreatePurchase)...)
	group.GET("/consultar-compra/:id", purchaseHandler.GetPurchaseByID)
}

// SetupAssistantRoutes sets up the voice-assistant routes. They are never authenticated.
func SetupAssistantRoutes(group *gin.RouterGroup, assistantHandler *handlers.AssistantHandler) {
	group.POST("/verificar-estoque", assistantHandler.CheckStock)
	group.POST("/buscar-produto", assistantHandler.LookupProduct)
}
