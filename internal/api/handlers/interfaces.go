// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// InvoiceHandlerInterface defines the methods needed by the invoice routes.
type InvoiceHandlerInterface interface {
	ListInvoices(c *gin.Context)
	GetInvoiceByNumber(c *gin.Context)
	SaveInvoice(c *gin.Context)
	UpdateInvoice(c *gin.Context)
	DeleteInvoice(c *gin.Context)
}

// Ensure handlers implements the interface (compile-time check)
var _ InvoiceHandlerInterface = (*InvoiceHandler)(nil)
