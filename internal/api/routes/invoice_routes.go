// internal/api/routes/invoice_routes.go
package routes

import (
	"invoice-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterInvoiceRoutes registers all routes related to invoices.
func RegisterInvoiceRoutes(
	rg *gin.RouterGroup,
	invoiceHandler handlers.InvoiceHandlerInterface,
) {
	invoices := rg.Group("/invoice")
	{
		invoices.GET("", invoiceHandler.ListInvoices)                         // Paginated list, newest date first
		invoices.POST("", invoiceHandler.SaveInvoice)                         // Create, or update when the number already exists
		invoices.GET("/:invoice_number", invoiceHandler.GetInvoiceByNumber)   // Read one invoice by number
		invoices.PUT("/:invoice_number", invoiceHandler.UpdateInvoice)        // Strict update, 404 when missing
		invoices.DELETE("/:invoice_number", invoiceHandler.DeleteInvoice)     // Delete by number
	}
}
