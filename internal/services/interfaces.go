package services

import (
	"context"

	"invoice-api/internal/models"
	"invoice-api/internal/transport/dto"
)

// InvoiceList is one page of invoices together with the total count.
type InvoiceList struct {
	Invoices      []models.Invoice
	TotalInvoices int
	TotalPages    int
	CurrentPage   int
}

// InvoiceService defines the interface for invoice business logic.
type InvoiceService interface {
	// Save validates the payload and then either creates a new invoice or
	// updates the one already holding its invoice_number. The bool reports
	// whether a new record was created.
	Save(ctx context.Context, req *dto.SaveInvoiceRequest) (*models.Invoice, bool, error)
	// Update replaces the fields of an existing invoice. Unlike Save it never
	// creates: a missing number is ErrNotFound.
	Update(ctx context.Context, number string, req *dto.UpdateInvoiceRequest) (*models.Invoice, error)
	// GetByNumber returns a single invoice, or ErrNotFound.
	GetByNumber(ctx context.Context, number string) (*models.Invoice, error)
	// Delete removes an invoice by number, or ErrNotFound.
	Delete(ctx context.Context, number string) error
	// List returns one page of invoices ordered by date descending.
	List(ctx context.Context, req *dto.ListInvoicesRequest) (*InvoiceList, error)
}
