// internal/storage/postgres/invoices.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"invoice-api/internal/models"
	"invoice-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InvoiceRepo implements the storage.InvoiceRepository interface using
// PostgreSQL. Line items are embedded in a JSONB column so an invoice stays
// a single document: no joins, no independent line-item lifecycle.
type InvoiceRepo struct {
	db Querier
}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo(db *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// WithTx creates a new InvoiceRepo bound to the transaction.
func (r *InvoiceRepo) WithTx(tx pgx.Tx) storage.InvoiceRepository {
	return &InvoiceRepo{db: tx}
}

// Compile-time check to ensure InvoiceRepo implements InvoiceRepository
var _ storage.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, invoice_number, customer_name, date, details, total_amount, created_at, updated_at`

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var inv models.Invoice
	var detailsJSON []byte
	err := row.Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.CustomerName,
		&inv.Date,
		&detailsJSON,
		&inv.TotalAmount,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(detailsJSON, &inv.Details); err != nil {
		return nil, fmt.Errorf("failed to decode invoice details: %w", err)
	}
	if inv.Details == nil {
		inv.Details = []models.LineItem{}
	}
	return &inv, nil
}

// GetByNumber retrieves an invoice by its invoice_number natural key.
func (r *InvoiceRepo) GetByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_number = $1
	`
	invoice, err := scanInvoice(r.db.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning invoice by number %s: %v\n", number, err)
		return nil, fmt.Errorf("failed to get invoice %s: %w", number, err)
	}
	return invoice, nil
}

// Create inserts a new invoice document.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	detailsJSON, err := json.Marshal(invoice.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode invoice details: %w", err)
	}

	query := `
		INSERT INTO invoices (id, invoice_number, customer_name, date, details, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + invoiceColumns + `
	`
	created, err := scanInvoice(r.db.QueryRow(ctx, query,
		invoice.ID,
		invoice.InvoiceNumber,
		invoice.CustomerName,
		invoice.Date,
		detailsJSON,
		invoice.TotalAmount,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			log.Printf("Error creating invoice %s: duplicate invoice number: %v\n", invoice.InvoiceNumber, err)
			return nil, fmt.Errorf("invoice number %s already exists: %w", invoice.InvoiceNumber, storage.ErrConflict)
		}
		log.Printf("Error creating invoice %s: %v\n", invoice.InvoiceNumber, err)
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	log.Printf("Invoice created successfully with number: %s", created.InvoiceNumber)
	return created, nil
}

// Replace performs a full overwrite of the invoice holding the given number.
func (r *InvoiceRepo) Replace(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	detailsJSON, err := json.Marshal(invoice.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode invoice details: %w", err)
	}

	query := `
		UPDATE invoices
		SET customer_name = $2, date = $3, details = $4, total_amount = $5, updated_at = NOW()
		WHERE invoice_number = $1
		RETURNING ` + invoiceColumns + `
	`
	updated, err := scanInvoice(r.db.QueryRow(ctx, query,
		invoice.InvoiceNumber,
		invoice.CustomerName,
		invoice.Date,
		detailsJSON,
		invoice.TotalAmount,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Invoice not found for replace with number: %s\n", invoice.InvoiceNumber)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error replacing invoice %s: %v\n", invoice.InvoiceNumber, err)
		return nil, fmt.Errorf("failed to replace invoice %s: %w", invoice.InvoiceNumber, err)
	}

	return updated, nil
}

// DeleteByNumber removes an invoice and reports whether a row was removed.
func (r *InvoiceRepo) DeleteByNumber(ctx context.Context, number string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE invoice_number = $1`, number)
	if err != nil {
		log.Printf("Error deleting invoice %s: %v\n", number, err)
		return false, fmt.Errorf("failed to delete invoice %s: %w", number, err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	log.Printf("Invoice deleted successfully: %s", number)
	return true, nil
}

// List returns one page of invoices ordered by date descending along with
// the total invoice count.
func (r *InvoiceRepo) List(ctx context.Context, page, pageSize int) ([]models.Invoice, int, error) {
	if pageSize <= 0 {
		pageSize = 10
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&total); err != nil {
		log.Printf("Error counting invoices: %v\n", err)
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, pageSize, pageOffset(page, pageSize))
	if err != nil {
		log.Printf("Error querying invoices: %v\n", err)
		return nil, 0, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]models.Invoice, 0, pageSize)
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			log.Printf("Error scanning invoice row: %v\n", err)
			return nil, 0, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate invoice rows: %w", err)
	}

	return invoices, total, nil
}
