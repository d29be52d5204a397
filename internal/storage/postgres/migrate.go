package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL mirrors the ent schema in ent/schema/invoice.go. The uniqueness
// of invoice_number is enforced here, at the storage layer.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS invoices (
	id UUID PRIMARY KEY,
	invoice_number TEXT NOT NULL,
	customer_name TEXT NOT NULL,
	date DATE NOT NULL,
	details JSONB NOT NULL DEFAULT '[]'::jsonb,
	total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS invoices_invoice_number_key ON invoices (invoice_number);
CREATE INDEX IF NOT EXISTS invoices_date_idx ON invoices (date DESC);
`

// EnsureSchema creates the invoices table and its indexes if they do not
// exist yet. Called once at startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure invoices schema: %w", err)
	}
	return nil
}
