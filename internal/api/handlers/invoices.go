package handlers

import (
	"errors"
	"log"
	"net/http"

	"invoice-api/internal/services"
	"invoice-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

// InvoiceHandler holds dependencies for invoice operations.
type InvoiceHandler struct {
	service   services.InvoiceService
	validator *validator.Validate
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(service services.InvoiceService, validate *validator.Validate) *InvoiceHandler {
	return &InvoiceHandler{
		service:   service,
		validator: validate,
	}
}

// ListInvoices godoc
// @Summary      List invoices
// @Description  Retrieves a paginated list of invoices ordered by date, newest first.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        page  query int false "Page number (1-indexed)" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200 {object}  dto.ListInvoicesResponse "Paginated invoices"
// @Failure      400 {object}  dto.ErrorResponse "Invalid query parameters"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /invoice [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var req dto.ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	list, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListInvoices: Error listing invoices: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server error"})
		return
	}

	c.JSON(http.StatusOK, MapInvoiceListToResponse(list))
}

// GetInvoiceByNumber godoc
// @Summary      Get an invoice by number
// @Description  Retrieves a single invoice by its invoice number.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice_number path string true "Invoice number"
// @Success      200 {object}  dto.InvoiceResponse "Successfully retrieved invoice"
// @Failure      404 {object}  dto.MessageResponse "Invoice Not Found"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /invoice/{invoice_number} [get]
func (h *InvoiceHandler) GetInvoiceByNumber(c *gin.Context) {
	number := c.Param("invoice_number")

	invoice, err := h.service.GetByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Invoice not found"})
		} else {
			log.Printf("GetInvoiceByNumber: Error fetching invoice %s: %v", number, err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error retrieving the invoice", Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, MapInvoiceModelToInvoiceResponse(invoice))
}

// SaveInvoice godoc
// @Summary      Create or update an invoice
// @Description  Creates a new invoice, or updates the existing one when the invoice number is already taken. The invoice number is the business key; callers cannot force create-only behavior through this endpoint.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice body      dto.SaveInvoiceRequest true  "Invoice payload"
// @Success      200 {object}  dto.SaveInvoiceResponse "Invoice updated"
// @Success      201 {object}  dto.SaveInvoiceResponse "Invoice created"
// @Failure      400 {object}  dto.MessageResponse "Validation failure"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /invoice [post]
func (h *InvoiceHandler) SaveInvoice(c *gin.Context) {
	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	invoice, created, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: validationErr.Message})
			return
		}
		log.Printf("SaveInvoice: Error saving invoice %s: %v", req.InvoiceNumber, err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error processing the invoice", Error: err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, dto.SaveInvoiceResponse{
			Message: "Invoice created successfully",
			Invoice: MapInvoiceModelToInvoiceResponse(invoice),
		})
		return
	}
	c.JSON(http.StatusOK, dto.SaveInvoiceResponse{
		Message: "Invoice updated successfully",
		Invoice: MapInvoiceModelToInvoiceResponse(invoice),
	})
}

// UpdateInvoice godoc
// @Summary      Update an invoice
// @Description  Replaces the customer, date and line items of an existing invoice. Fails when the invoice number does not exist.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice_number path string true "Invoice number"
// @Param        invoice body      dto.UpdateInvoiceRequest true  "Replacement fields"
// @Success      200 {object}  dto.SaveInvoiceResponse "Invoice updated"
// @Failure      400 {object}  dto.MessageResponse "Invalid request body"
// @Failure      404 {object}  dto.MessageResponse "Invoice Not Found"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /invoice/{invoice_number} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	number := c.Param("invoice_number")

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	invoice, err := h.service.Update(c.Request.Context(), number, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Invoice not found"})
		} else {
			log.Printf("UpdateInvoice: Error updating invoice %s: %v", number, err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error updating invoice", Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SaveInvoiceResponse{
		Message: "Invoice updated successfully",
		Invoice: MapInvoiceModelToInvoiceResponse(invoice),
	})
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Description  Deletes an invoice by its invoice number.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice_number path string true "Invoice number"
// @Success      200 {object}  dto.MessageResponse "Invoice deleted"
// @Failure      404 {object}  dto.MessageResponse "Invoice Not Found"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /invoice/{invoice_number} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	number := c.Param("invoice_number")

	if err := h.service.Delete(c.Request.Context(), number); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Invoice not found"})
		} else {
			log.Printf("DeleteInvoice: Error deleting invoice %s: %v", number, err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error deleting the invoice", Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Invoice deleted successfully"})
}
