// internal/transport/dto/invoice_dto.go
package dto

import (
	"time"

	"invoice-api/internal/models"

	"github.com/google/uuid"
)

// SaveInvoiceRequest is the POST /invoice payload. The same payload either
// creates a new invoice or updates the one already holding its
// invoice_number. Field presence is checked by the domain validator, not by
// struct tags, because the error contract reports only the first violated
// rule in a fixed order.
type SaveInvoiceRequest struct {
	InvoiceNumber string              `json:"invoice_number"`
	CustomerName  string              `json:"customer_name"`
	Date          models.Date         `json:"date"`
	Details       models.LineItemList `json:"details"`
}

// UpdateInvoiceRequest is the PUT /invoice/:invoice_number payload. The
// target number comes from the URL path; the body carries the replacement
// fields.
type UpdateInvoiceRequest struct {
	CustomerName string              `json:"customer_name"`
	Date         models.Date         `json:"date"`
	Details      models.LineItemList `json:"details"`
}

// ListInvoicesRequest defines the pagination query parameters.
type ListInvoicesRequest struct {
	Page  int `form:"page,default=1" validate:"omitempty,min=0"`
	Limit int `form:"limit,default=10" validate:"omitempty,min=0,max=100"`
}

// LineItemResponse is one embedded line item as returned to the client.
type LineItemResponse struct {
	Description string         `json:"description"`
	Quantity    models.Decimal `json:"quantity"`
	UnitPrice   models.Decimal `json:"unit_price"`
	LineTotal   models.Decimal `json:"line_total"`
}

// InvoiceResponse defines the standard invoice data returned to the client.
type InvoiceResponse struct {
	ID            uuid.UUID          `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	CustomerName  string             `json:"customer_name"`
	Date          models.Date        `json:"date"`
	Details       []LineItemResponse `json:"details"`
	TotalAmount   models.Decimal     `json:"total_amount"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// SaveInvoiceResponse wraps a write result with its outcome message.
type SaveInvoiceResponse struct {
	Message string          `json:"message"`
	Invoice InvoiceResponse `json:"invoice"`
}

// ListInvoicesResponse is the paginated list envelope.
type ListInvoicesResponse struct {
	Invoices      []InvoiceResponse `json:"invoices"`
	TotalPages    int               `json:"totalPages"`
	CurrentPage   int               `json:"currentPage"`
	TotalInvoices int               `json:"totalInvoices"`
}

// MessageResponse carries a bare status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a user-facing message plus the underlying error text
// for unexpected failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
