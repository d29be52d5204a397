// internal/api/routes/routes.go
package routes

import (
	"log"

	"invoice-api/internal/api/handlers"
	"invoice-api/internal/app"
	"invoice-api/internal/cache"
	"invoice-api/internal/services"
	"invoice-api/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")

	// Wire storage -> service -> handler
	invoiceRepo := postgres.NewInvoiceRepo(app.DBPool)
	listCache := cache.NewInvoiceListCache(app.RedisClient)
	invoiceService := services.NewInvoiceService(invoiceRepo, listCache)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, app.Validator)

	// --- Register Resource Routes ---
	RegisterInvoiceRoutes(api, invoiceHandler)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
