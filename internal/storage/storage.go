package storage

import (
	"context"

	"invoice-api/internal/models"
)

// InvoiceRepository defines the interface for invoice data operations.
// Invoices are addressed by their invoice_number natural key; the surrogate
// id never leaves the storage layer's write path.
type InvoiceRepository interface {
	// GetByNumber returns the invoice with the given number, or ErrNotFound.
	GetByNumber(ctx context.Context, number string) (*models.Invoice, error)
	// Create inserts a new invoice. Returns ErrConflict when the number is
	// already taken.
	Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	// Replace overwrites the invoice holding invoice.InvoiceNumber in full.
	// Returns ErrNotFound when no such invoice exists.
	Replace(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	// DeleteByNumber removes the invoice with the given number and reports
	// whether a record was actually removed.
	DeleteByNumber(ctx context.Context, number string) (bool, error)
	// List returns one page of invoices ordered by date descending, plus the
	// total count across all pages. page is 1-indexed.
	List(ctx context.Context, page, pageSize int) ([]models.Invoice, int, error)
}
