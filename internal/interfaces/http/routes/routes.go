// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/domain/cart"
	"github.com/your-org/snackshop-backend/internal/domain/catalog"
	"github.com/your-org/snackshop-backend/internal/domain/checkout"
	"github.com/your-org/snackshop-backend/internal/domain/order"
	"github.com/your-org/snackshop-backend/internal/domain/session"
	"github.com/your-org/snackshop-backend/internal/interfaces/http/handlers"
	"github.com/your-org/snackshop-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes against their services
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	logger := logrus.New()
	if cfg.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// Domain services
	catalogService := catalog.NewService()
	cartStore := cart.NewRedisStore(redisClient, cfg.Shop.SessionTTL)
	cartService := cart.NewService(cartStore, catalogService)
	sessionStore := session.NewRedisStore(redisClient, cfg.Shop.SessionTTL)
	sessionService := session.NewService(sessionStore, cartService)

	orderRepo := order.NewGormRepository(db)
	builder := order.NewBuilder(cfg.Shop.DeliveryFee)
	checkoutService := checkout.NewService(cartService, sessionService, orderRepo, builder, logger)

	pdfService := pdf.NewService(cfg)

	// Handlers
	menuHandler := handlers.NewMenuHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderRepo)
	receiptHandler := handlers.NewReceiptHandler(orderRepo, pdfService)

	// Menu
	rg.GET("/menu", menuHandler.GetMenu)

	// Cart
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items", cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items", cartHandler.RemoveItem)
	}

	// Session navigation
	sessionGroup := rg.Group("/session")
	{
		sessionGroup.GET("", sessionHandler.GetSession)
		sessionGroup.POST("/navigate", sessionHandler.Navigate)
	}

	// Checkout
	rg.POST("/checkout", checkoutHandler.PlaceOrder)

	// Orders and receipts
	ordersGroup := rg.Group("/orders")
	{
		ordersGroup.GET("", orderHandler.ListOrders)
		ordersGroup.GET("/:order_id", orderHandler.GetOrder)
		ordersGroup.GET("/:order_id/receipt", receiptHandler.GetReceipt)
		ordersGroup.GET("/:order_id/receipt.pdf", receiptHandler.GetReceiptPDF)
	}
}
